package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
)

func TestNewGeminiMatcher_DefaultModel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultModel, NewGeminiMatcher(http.DefaultClient, "").model)
	assert.Equal(t, "gemini-2.5-pro", NewGeminiMatcher(http.DefaultClient, "gemini-2.5-pro").model)
}

func TestGeminiMatcher_Match_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := NewGeminiMatcher(http.DefaultClient, "").Match(context.Background(), []string{"Go"}, "desc",
		entity.Credentials{Provider: entity.ProviderGemini})

	assert.ErrorIs(t, err, domain.ErrGeminiKeyNotConfigured)
	assert.Equal(t, domain.KindConfig, domain.KindOf(err))
}

func TestGeminiMatcher_Match_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/"+DefaultModel+":generateContent"), r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "Habilidades do candidato: Python")
		assert.Contains(t, string(body), "PORTUGUÊS DO BRASIL")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Match 80%"}]}}]}`))
	}))
	defer server.Close()

	m := NewGeminiMatcher(server.Client(), "").WithBaseURL(server.URL)
	got, err := m.Match(context.Background(), []string{"Python"}, "Backend role",
		entity.Credentials{Provider: entity.ProviderGemini, APIKey: "test-key"})

	require.NoError(t, err)
	assert.Equal(t, "Match 80%", got)
}

func TestGeminiMatcher_Match_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key invalid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	m := NewGeminiMatcher(server.Client(), "").WithBaseURL(server.URL)
	_, err := m.Match(context.Background(), []string{"Python"}, "Backend role",
		entity.Credentials{Provider: entity.ProviderGemini, APIKey: "bad"})

	require.Error(t, err)
	assert.Equal(t, domain.KindHTTPStatus, domain.KindOf(err))
	assert.True(t, domain.IsTransport(err))
}

func TestGeminiMatcher_Match_EmptyCandidates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	m := NewGeminiMatcher(server.Client(), "").WithBaseURL(server.URL)
	_, err := m.Match(context.Background(), nil, "d", entity.Credentials{Provider: entity.ProviderGemini, APIKey: "k"})

	assert.ErrorIs(t, err, domain.ErrInvalidLLMResponse)
}
