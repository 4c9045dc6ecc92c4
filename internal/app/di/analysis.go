// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"

	"jobmatch_backend/internal/app/config"
	"jobmatch_backend/internal/feature/analysis/adapters/chatcompletion"
	"jobmatch_backend/internal/feature/analysis/adapters/gemini"
	"jobmatch_backend/internal/feature/analysis/adapters/scraper"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	analysishandler "jobmatch_backend/internal/feature/analysis/transport/handler"
	"jobmatch_backend/internal/feature/analysis/usecase"
	infrahttp "jobmatch_backend/internal/platform/http"
)

// NewPageFetcher creates a PageFetcher bounded by REQUEST_TIMEOUT.
func NewPageFetcher(cfg config.Config) *scraper.PageFetcher {
	return scraper.NewPageFetcher(infrahttp.NewHTTPClient(cfg.RequestTimeout), cfg.RequestTimeout)
}

// NewSkillMatcher creates the LLM client for LLM_PROVIDER.
func NewSkillMatcher(cfg config.LLMConfig) usecase.SkillMatcher {
	httpClient := infrahttp.NewHTTPClient(chatcompletion.Timeout)
	if cfg.Provider == entity.ProviderGemini {
		return gemini.NewGeminiMatcher(httpClient, cfg.GeminiModel)
	}
	return chatcompletion.NewClient(httpClient, cfg.OpenAIAPIURL)
}

// NewAnalysisUsecase wires the full analysis pipeline.
// The returned close function releases the history store, if any.
func NewAnalysisUsecase(ctx context.Context, cfg config.Config) (analysishandler.AnalysisUsecase, func() error, error) {
	repo, closeFn, err := NewHistoryRepository(ctx, cfg.History, cfg.Redis)
	if err != nil {
		return nil, closeFn, err
	}
	if repo != nil {
		slog.Info("analysis history enabled", "backend", cfg.History.Backend)
	}

	uc := usecase.NewAnalysisUsecase(
		NewPageFetcher(cfg),
		scraper.MetaExtractor{},
		NewSkillMatcher(cfg.LLM),
		repo,
	)
	return uc, closeFn, nil
}
