// Package scraper は求人ページの取得とmeta descriptionの抽出を提供します。
package scraper

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultTimeout はページ取得のデフォルトタイムアウトです。
	DefaultTimeout = 10 * time.Second

	opFetch = "fetch page"

	// maxErrorBody はエラー時に保持するレスポンスボディの上限です。
	maxErrorBody = 4 << 10
)

// PageFetcher はタイムアウト付きのGETで求人ページを取得します。
// リトライは行いません。リダイレクトは渡されたhttp.Clientの方針に従います
// （net/httpのデフォルトでは最大10回まで追従）。
type PageFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// PageFetcherがusecase.PageFetcherを実装していることをコンパイル時に検証します。
var _ usecase.PageFetcher = (*PageFetcher)(nil)

// NewPageFetcher はPageFetcherの新しいインスタンスを生成します。
// timeout が0以下の場合は DefaultTimeout を使用します。
func NewPageFetcher(client *http.Client, timeout time.Duration) *PageFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PageFetcher{client: client, timeout: timeout}
}

// Timeout はこのインスタンスのタイムアウトを返します。
func (f *PageFetcher) Timeout() time.Duration { return f.timeout }

// Fetch はurlをGETし、2xxの場合にボディを返します。
func (f *PageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		slog.Error("failed to build page request", "stage", "web_scraping", "url", url, "error", err)
		return nil, domain.NewTransportError(opFetch, err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			slog.Error("page request timed out", "stage", "web_scraping", "url", url, "timeout", f.timeout)
			return nil, domain.NewTimeoutError(opFetch, err)
		}
		slog.Error("page request failed", "stage", "web_scraping", "url", url, "error", err)
		return nil, domain.NewTransportError(opFetch, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		slog.Error("page request returned error status", "stage", "web_scraping", "url", url, "status", res.StatusCode)
		return nil, domain.NewHTTPStatusError(opFetch, res.StatusCode, string(body))
	}

	content, err := io.ReadAll(res.Body)
	if err != nil {
		if isTimeout(err) {
			slog.Error("page body read timed out", "stage", "web_scraping", "url", url, "timeout", f.timeout)
			return nil, domain.NewTimeoutError(opFetch, err)
		}
		slog.Error("failed to read page body", "stage", "web_scraping", "url", url, "error", err)
		return nil, domain.NewTransportError(opFetch, err)
	}
	if content == nil {
		content = []byte{}
	}
	return content, nil
}

// isTimeout reports whether err comes from an exceeded deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
