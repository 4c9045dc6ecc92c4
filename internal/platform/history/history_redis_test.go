package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func testRecord(id string) *entity.AnalysisRecord {
	return &entity.AnalysisRecord{
		ID:        id,
		Position:  "https://x.test/job",
		Skills:    []string{"Python", "SQL"},
		Message:   "Match 80%",
		CreatedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewHistoryRedis_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewHistoryRedis(nil, "", 0)
	assert.Equal(t, DefaultPrefix, repo.prefix)
	assert.Equal(t, DefaultTTL, repo.ttl)

	repo = NewHistoryRedis(nil, "custom", time.Hour)
	assert.Equal(t, "custom", repo.prefix)
	assert.Equal(t, time.Hour, repo.ttl)
}

func TestHistoryRedis_SaveAndFind(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewHistoryRedis(client, "analysis", time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testRecord("rec-001")))

	assert.True(t, mr.Exists("analysis:rec-001"))
	assert.Equal(t, time.Hour, mr.TTL("analysis:rec-001"))

	got, err := repo.FindByID(ctx, "rec-001")
	require.NoError(t, err)
	assert.Equal(t, testRecord("rec-001"), got)
}

func TestHistoryRedis_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	client, _ := setupTestRedis(t)
	repo := NewHistoryRedis(client, "analysis", time.Hour)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestHistoryRedis_FindByID_Expired(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewHistoryRedis(client, "analysis", time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testRecord("rec-002")))
	mr.FastForward(2 * time.Minute)

	_, err := repo.FindByID(ctx, "rec-002")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestHistoryRedis_FindByID_Corrupted(t *testing.T) {
	t.Parallel()

	client, mr := setupTestRedis(t)
	repo := NewHistoryRedis(client, "analysis", time.Hour)
	require.NoError(t, mr.Set("analysis:bad", "{not json"))

	_, err := repo.FindByID(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestHistoryRedis_RedisErrors(t *testing.T) {
	t.Parallel()

	errRedis := errors.New("connection refused")

	t.Run("save error", func(t *testing.T) {
		t.Parallel()

		db, mock := redismock.NewClientMock()
		repo := NewHistoryRedis(db, "analysis", time.Hour)
		mock.Regexp().ExpectSet("analysis:rec-003", `.*`, time.Hour).SetErr(errRedis)

		err := repo.Save(context.Background(), testRecord("rec-003"))
		assert.ErrorIs(t, err, errRedis)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("find error", func(t *testing.T) {
		t.Parallel()

		db, mock := redismock.NewClientMock()
		repo := NewHistoryRedis(db, "analysis", time.Hour)
		mock.ExpectGet("analysis:rec-004").SetErr(errRedis)

		_, err := repo.FindByID(context.Background(), "rec-004")
		assert.ErrorIs(t, err, errRedis)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
