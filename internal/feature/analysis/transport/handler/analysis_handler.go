// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch_backend/internal/api"
	"jobmatch_backend/internal/feature/analysis/domain"
	"jobmatch_backend/internal/feature/analysis/domain/entity"
	"jobmatch_backend/internal/shared/validation"
)

// クライアントに返すエラーメッセージ。
const (
	msgNoJSON          = "JSON não fornecido"
	msgInvalidJSON     = "JSON inválido"
	msgPositionMissing = "Campo position é obrigatório"
	msgTransportPrefix = "Erro ao acessar a URL: "
	msgInternal        = "Erro interno do servidor"
	msgRecordNotFound  = "Análise não encontrada"
)

// AnalysisUsecase は求人とスキルの適合分析のユースケースを定義します。
// インターフェースはコンシューマー（handler）側で定義します。
type AnalysisUsecase interface {
	Analyse(ctx context.Context, req entity.AnalysisRequest, creds entity.Credentials) (*entity.AnalysisResult, error)
	Find(ctx context.Context, id string) (*entity.AnalysisRecord, error)
}

// AnalysisHandler は /analyse と /analyses/:id を処理します。
type AnalysisHandler struct {
	uc    AnalysisUsecase
	creds entity.Credentials
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
// creds はサーバー側のLLM設定で、起動時に一度だけ読み込まれたものを渡します。
func NewAnalysisHandler(uc AnalysisUsecase, creds entity.Credentials) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, creds: creds}
}

// Analyse は分析APIエンドポイントを処理します。
// - LLM設定が欠けていれば本文に関係なく500
// - 本文が空・不正・position欠落なら400
// - コンテンツの問題（meta description無し）は404
// - 通信エラーは500で詳細付き、それ以外は汎用の500
func (h *AnalysisHandler) Analyse(c *gin.Context) {
	if err := domain.CheckCredentials(h.creds); err != nil {
		slog.Error("llm is not configured", "stage", "endpoint", "provider", h.creds.Provider, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: domain.PublicMessage(err)})
		return
	}

	req, msg, ok := decodeRequest(c)
	if !ok {
		slog.Warn("analyse request rejected", "stage", "endpoint", "reason", msg, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msg})
		return
	}

	res, err := h.uc.Analyse(c.Request.Context(), req, h.creds)
	if err != nil {
		status, body := errorResponse(err)
		slog.Error("analysis failed", "stage", "endpoint", "position", req.Position,
			"kind", domain.KindOf(err).String(), "status", status, "error", err)
		c.JSON(status, body)
		return
	}

	if res.ID != "" {
		c.Header(api.AnalysisIDHeader, res.ID)
	}
	slog.Info("analysis completed", "position", req.Position, "skills", len(req.Skills))
	c.JSON(http.StatusOK, api.MessageResponse{Message: res.Message})
}

// Get は保存済みの分析結果を返します。
func (h *AnalysisHandler) Get(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.uc.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: msgRecordNotFound})
			return
		}
		slog.Error("failed to load analysis", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgInternal})
		return
	}
	c.JSON(http.StatusOK, api.AnalysisRecordResponse{
		ID:        rec.ID,
		Position:  rec.Position,
		Skills:    rec.Skills,
		Message:   rec.Message,
		CreatedAt: rec.CreatedAt,
	})
}

// decodeRequest はリクエスト本文をスキーマ検証してからサニタイズします。
// 失敗時はクライアントに返すメッセージと false を返します。
func decodeRequest(c *gin.Context) (entity.AnalysisRequest, string, bool) {
	if c.Request.Body == nil {
		return entity.AnalysisRequest{}, msgNoJSON, false
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return entity.AnalysisRequest{}, msgNoJSON, false
		}
		return entity.AnalysisRequest{}, msgInvalidJSON, false
	}
	// null と {} は本文なしとして扱う
	if len(body) == 0 {
		return entity.AnalysisRequest{}, msgNoJSON, false
	}

	position, present := body["position"]
	if !present || position == nil {
		return entity.AnalysisRequest{}, msgPositionMissing, false
	}
	if _, ok := position.(string); !ok {
		return entity.AnalysisRequest{}, msgInvalidJSON, false
	}
	if skills, present := body["skills"]; present && skills != nil {
		list, ok := skills.([]any)
		if !ok {
			return entity.AnalysisRequest{}, msgInvalidJSON, false
		}
		for _, s := range list {
			if _, ok := s.(string); !ok {
				return entity.AnalysisRequest{}, msgInvalidJSON, false
			}
		}
	}

	clean := validation.Sanitize(body).(map[string]any)
	req := entity.AnalysisRequest{Position: clean["position"].(string), Skills: []string{}}
	if list, ok := clean["skills"].([]any); ok {
		for _, s := range list {
			req.Skills = append(req.Skills, s.(string))
		}
	}
	return req, "", true
}

// errorResponse はユースケースのエラーをステータスコードと本文に変換します。
func errorResponse(err error) (int, api.ErrorResponse) {
	switch {
	case domain.KindOf(err) == domain.KindValidation:
		return http.StatusNotFound, api.ErrorResponse{Error: domain.PublicMessage(err)}
	case domain.IsTransport(err):
		return http.StatusInternalServerError, api.ErrorResponse{Error: msgTransportPrefix + err.Error()}
	case domain.KindOf(err) == domain.KindConfig:
		return http.StatusInternalServerError, api.ErrorResponse{Error: domain.PublicMessage(err)}
	default:
		return http.StatusInternalServerError, api.ErrorResponse{Error: msgInternal}
	}
}
