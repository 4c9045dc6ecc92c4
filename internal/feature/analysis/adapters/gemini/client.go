// Package gemini はGoogle Gemini APIを使用したスキルマッチ評価クライアントを提供します。
package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"google.golang.org/genai"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	"jobmatch_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	opQuery = "query gemini"
)

// GeminiMatcher はGoogle Gemini APIでスキルと求人説明の適合度を評価します。
type GeminiMatcher struct {
	httpClient *http.Client
	model      string
	baseURL    string // 空の場合はSDKのデフォルト
}

// GeminiMatcherがSkillMatcherを実装していることをコンパイル時に検証します。
var _ usecase.SkillMatcher = (*GeminiMatcher)(nil)

// NewGeminiMatcher はGeminiMatcherの新しいインスタンスを生成します。
// model が空の場合は DefaultModel を使用します。
func NewGeminiMatcher(httpClient *http.Client, model string) *GeminiMatcher {
	if model == "" {
		model = DefaultModel
	}
	return &GeminiMatcher{httpClient: httpClient, model: model}
}

// WithBaseURL はAPIのベースURLを差し替えたコピーを返します。
func (g *GeminiMatcher) WithBaseURL(baseURL string) *GeminiMatcher {
	cp := *g
	cp.baseURL = baseURL
	return &cp
}

// Match はchat-completionクライアントと同じプロンプトでGeminiに評価を依頼します。
// APIキーはリクエストごとに渡されるため、クライアントも呼び出しごとに生成します。
func (g *GeminiMatcher) Match(ctx context.Context, skills []string, description string, creds entity.Credentials) (string, error) {
	if creds.APIKey == "" {
		slog.Error("gemini api key not configured", "stage", "gemini")
		return "", domain.ErrGeminiKeyNotConfigured
	}

	cfg := &genai.ClientConfig{
		APIKey:     creds.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		slog.Error("failed to create gemini client", "stage", "gemini", "error", err)
		return "", &domain.Error{Kind: domain.KindConfig, Op: opQuery, Message: "falha ao criar cliente Gemini", Err: err}
	}

	slog.Info("analysing skill match", "stage", "gemini", "skills", len(skills), "model", g.model)

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(usecase.SystemPrompt, genai.RoleUser),
		MaxOutputTokens:   usecase.MaxCompletionTokens,
	}
	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(usecase.BuildUserPrompt(skills, description)), genCfg)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil {
		slog.Error("gemini returned nil response", "stage", "gemini")
		return "", domain.ErrInvalidLLMResponse
	}

	text := resp.Text()
	if text == "" {
		slog.Error("gemini response has no text", "stage", "gemini")
		return "", domain.ErrInvalidLLMResponse
	}
	slog.Info("skill match analysis completed", "stage", "gemini")
	return text, nil
}

// classify maps a genai error to the analysis error taxonomy.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		slog.Error("gemini returned error status", "stage", "gemini", "status", apiErr.Code, "body", apiErr.Message)
		return domain.NewHTTPStatusError(opQuery, apiErr.Code, apiErr.Message)
	}
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		slog.Error("gemini request timed out", "stage", "gemini", "error", err)
		return domain.NewTimeoutError(opQuery, err)
	}
	slog.Error("gemini request failed", "stage", "gemini", "error", err)
	return domain.NewTransportError(opQuery, err)
}
