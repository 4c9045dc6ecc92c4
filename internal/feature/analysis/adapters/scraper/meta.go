package scraper

import (
	"bytes"
	"log/slog"

	"golang.org/x/net/html"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/usecase"
)

// MetaExtractor は usecase.DescriptionExtractor のHTML実装です。
type MetaExtractor struct{}

// MetaExtractorがDescriptionExtractorを実装していることをコンパイル時に検証します。
var _ usecase.DescriptionExtractor = MetaExtractor{}

// Extract は ExtractMetaDescription に委譲します。
func (MetaExtractor) Extract(content []byte) (string, bool, error) {
	return ExtractMetaDescription(content)
}

// ExtractMetaDescription は文書順で最初の <meta name="description"> の content 属性を返します。
//
//   - name 属性の値は大文字小文字を区別して比較します（"DESCRIPTION" は一致しません）
//   - content は加工せずに返します（空白のみの値もそのまま返します）
//   - タグが無い・content が無い・content が空文字の場合は ok=false
//   - 壊れたHTMLでもエラーにはなりません。nil の入力のみ domain.ErrNilContent を返します
func ExtractMetaDescription(content []byte) (string, bool, error) {
	if content == nil {
		slog.Error("meta description extraction failed", "stage", "meta_extraction", "error", domain.ErrNilContent)
		return "", false, domain.ErrNilContent
	}

	// noscript の中身も要素として扱うため、スクリプト無効でパースする
	doc, err := html.ParseWithOptions(bytes.NewReader(content), html.ParseOptionEnableScripting(false))
	if err != nil {
		slog.Error("meta description extraction failed", "stage", "meta_extraction", "error", err)
		return "", false, &domain.Error{Kind: domain.KindExtraction, Op: "extract meta description", Message: "falha ao ler HTML", Err: err}
	}

	meta := findMeta(doc)
	if meta == nil {
		return "", false, nil
	}
	// 最初に一致したタグで判定する
	value, ok := attr(meta, "content")
	if !ok || value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// findMeta returns the first <meta name="description"> in document order.
func findMeta(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "meta" {
		if name, _ := attr(n, "name"); name == "description" {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findMeta(c); found != nil {
			return found
		}
	}
	return nil
}

// attr returns the first attribute named key. The parser lower-cases keys.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
