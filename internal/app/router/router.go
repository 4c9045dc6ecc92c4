package router

import (
	"github.com/gin-gonic/gin"

	analysishandler "jobmatch_backend/internal/feature/analysis/transport/handler"
	"jobmatch_backend/internal/platform/http/handler"
)

// NewRouter はルーティングを設定したgin.Engineを返します。
// historyEnabled が false の場合、/analyses/:id は登録しません。
func NewRouter(analysis *analysishandler.AnalysisHandler, historyEnabled bool) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/health", handler.Health)
	r.HEAD("/health", handler.Health)
	r.OPTIONS("/health", handler.Health)

	// 求人とスキルの適合分析
	r.POST("/analyse", analysis.Analyse)

	// 分析履歴
	if historyEnabled {
		r.GET("/analyses/:id", analysis.Get)
	}

	return r
}
