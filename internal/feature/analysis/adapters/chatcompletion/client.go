// Package chatcompletion はchat-completion互換API（OpenAI / Azure OpenAI）のクライアントを提供します。
package chatcompletion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"jobmatch_backend/internal/feature/analysis/adapters/chatcompletion/dto"
	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	"jobmatch_backend/internal/feature/analysis/usecase"
)

const (
	// Timeout はLLM呼び出しの固定タイムアウトです。
	Timeout = 30 * time.Second

	// APIKeyHeader はAPIキーを送るヘッダー名です。
	APIKeyHeader = "api-key"

	opQuery = "query llm"
)

// Client はスキルと求人説明をchat-completionエンドポイントへ送信します。
type Client struct {
	client     *http.Client
	defaultURL string
}

// ClientがSkillMatcherを実装していることをコンパイル時に検証します。
var _ usecase.SkillMatcher = (*Client)(nil)

// NewClient はClientの新しいインスタンスを生成します。
// defaultURL はリクエストごとのURLが空のときに使用されます（空でも構いません）。
func NewClient(client *http.Client, defaultURL string) *Client {
	return &Client{client: client, defaultURL: defaultURL}
}

// Match はLLMに評価を依頼し、choices[0].message.content をそのまま返します。
func (c *Client) Match(ctx context.Context, skills []string, description string, creds entity.Credentials) (string, error) {
	endpoint := creds.APIURL
	if endpoint == "" {
		endpoint = c.defaultURL
	}
	if endpoint == "" {
		slog.Error("llm endpoint not configured", "stage", "openai")
		return "", domain.ErrEndpointNotConfigured
	}

	payload := dto.ChatRequest{
		Messages: []dto.Message{
			{Role: "system", Content: usecase.SystemPrompt},
			{Role: "user", Content: usecase.BuildUserPrompt(skills, description)},
		},
		MaxCompletionTokens: usecase.MaxCompletionTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	slog.Info("analysing skill match", "stage", "openai", "skills", len(skills))

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to build llm request", "stage", "openai", "error", err)
		return "", domain.NewTransportError(opQuery, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(APIKeyHeader, creds.APIKey)

	res, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			slog.Error("llm request timed out", "stage", "openai", "error", err)
			return "", domain.NewTimeoutError(opQuery, err)
		}
		slog.Error("llm request failed", "stage", "openai", "error", err)
		return "", domain.NewTransportError(opQuery, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		slog.Error("failed to read llm response", "stage", "openai", "error", err)
		return "", domain.NewTransportError(opQuery, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		slog.Error("llm returned error status", "stage", "openai", "status", res.StatusCode, "body", string(raw))
		return "", domain.NewHTTPStatusError(opQuery, res.StatusCode, string(raw))
	}

	var out dto.ChatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Error("failed to decode llm response", "stage", "openai", "error", err)
		return "", domain.NewInvalidResponseError(opQuery, err)
	}
	if len(out.Choices) == 0 {
		slog.Error("llm response has no choices", "stage", "openai")
		return "", domain.ErrInvalidLLMResponse
	}

	content := out.Choices[0].Message.Content
	if content == nil {
		slog.Error("llm response has no message content", "stage", "openai")
		return "", domain.ErrInvalidLLMResponse
	}

	slog.Info("skill match analysis completed", "stage", "openai")
	return *content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
