// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	"jobmatch_backend/internal/shared/textutil"
)

// PageFetcher は求人ページの生データを取得するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// DescriptionExtractor はHTMLからmeta descriptionを抽出するインターフェースです。
// 見つからない場合は ok=false を返します。
type DescriptionExtractor interface {
	Extract(content []byte) (description string, ok bool, err error)
}

// SkillMatcher はスキルと求人説明をLLMに送り、評価文を返すインターフェースです。
type SkillMatcher interface {
	Match(ctx context.Context, skills []string, description string, creds entity.Credentials) (string, error)
}

// HistoryRepository は分析履歴の保存先です。
type HistoryRepository interface {
	Save(ctx context.Context, record *entity.AnalysisRecord) error
	FindByID(ctx context.Context, id string) (*entity.AnalysisRecord, error)
}

// analysisUsecase は fetch → extract → normalize → match の直列パイプラインです。
type analysisUsecase struct {
	fetcher   PageFetcher
	extractor DescriptionExtractor
	matcher   SkillMatcher
	history   HistoryRepository // nilの場合は履歴を保存しない

	newID func() string
	now   func() time.Time
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
// history は nil でも構いません。
func NewAnalysisUsecase(f PageFetcher, e DescriptionExtractor, m SkillMatcher, h HistoryRepository) *analysisUsecase {
	return &analysisUsecase{
		fetcher:   f,
		extractor: e,
		matcher:   m,
		history:   h,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// Analyse は求人ページを取得し、候補者スキルとの適合度をLLMで評価します。
// どのステージの失敗もそのまま呼び出し元へ返し、部分的な結果は返しません。
func (u *analysisUsecase) Analyse(ctx context.Context, req entity.AnalysisRequest, creds entity.Credentials) (*entity.AnalysisResult, error) {
	// 1) ページ取得
	content, err := u.fetcher.Fetch(ctx, req.Position)
	if err != nil {
		return nil, err
	}

	// 2) meta description抽出
	raw, ok, err := u.extractor.Extract(content)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		slog.Warn("meta description not found", "stage", "analysis", "position", req.Position)
		return nil, domain.ErrMetaDescriptionNotFound
	}

	// 3) 正規化（失敗しない）
	description := textutil.Normalize(raw)

	// 4) LLM問い合わせ
	message, err := u.matcher.Match(ctx, req.Skills, description, creds)
	if err != nil {
		return nil, err
	}

	result := &entity.AnalysisResult{Message: message}
	if u.history != nil {
		result.ID = u.record(ctx, req, message)
	}
	return result, nil
}

// Find は保存済みの分析履歴を取得します。
func (u *analysisUsecase) Find(ctx context.Context, id string) (*entity.AnalysisRecord, error) {
	if u.history == nil {
		return nil, domain.ErrRecordNotFound
	}
	return u.history.FindByID(ctx, id)
}

// record は履歴を保存し、そのIDを返します。保存に失敗してもリクエストは失敗させません。
func (u *analysisUsecase) record(ctx context.Context, req entity.AnalysisRequest, message string) string {
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	rec := &entity.AnalysisRecord{
		ID:        u.newID(),
		Position:  req.Position,
		Skills:    skills,
		Message:   message,
		CreatedAt: u.now().UTC(),
	}
	if err := u.history.Save(ctx, rec); err != nil {
		slog.Warn("failed to save analysis history", "stage", "history", "error", err)
		return ""
	}
	return rec.ID
}
