package di

import (
	"context"
	"fmt"

	"jobmatch_backend/internal/app/config"
	analysisadapters "jobmatch_backend/internal/feature/analysis/adapters"
	"jobmatch_backend/internal/feature/analysis/usecase"
	"jobmatch_backend/internal/platform/db"
	"jobmatch_backend/internal/platform/history"
	infraredis "jobmatch_backend/internal/platform/redis"
)

// NewHistoryRepository creates the HistoryRepository selected by HISTORY_BACKEND.
// For "none" it returns a nil repository, which disables history.
// The returned close function releases the underlying connection.
func NewHistoryRepository(ctx context.Context, cfg config.HistoryConfig, rcfg config.RedisConfig) (usecase.HistoryRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", config.HistoryNone:
		return nil, noop, nil
	case config.HistoryRedis:
		rdb, err := infraredis.NewRedisClient(ctx, rcfg.Addr(), rcfg.Password)
		if err != nil {
			return nil, noop, err
		}
		return history.NewHistoryRedis(rdb, history.DefaultPrefix, cfg.TTL), rdb.Close, nil
	case config.HistoryPostgres, config.HistorySQLite:
		gdb, err := db.OpenDB(cfg.Backend, cfg.DSN)
		if err != nil {
			return nil, noop, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, noop, fmt.Errorf("get sql.DB: %w", err)
		}
		return analysisadapters.NewHistoryGorm(gdb), sqlDB.Close, nil
	default:
		return nil, noop, fmt.Errorf("unsupported history backend %q", cfg.Backend)
	}
}
