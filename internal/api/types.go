// Package api はHTTPの入出力で使うワイヤ形式の型を定義します。
package api

import "time"

// ErrorResponse は2xx以外の全レスポンスのボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は /analyse の成功レスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse は /health のレスポンスです。
type HealthResponse struct {
	Status string `json:"status"`
}

// AnalysisRecordResponse は保存済み分析結果のレスポンスです。
type AnalysisRecordResponse struct {
	ID        string    `json:"id"`
	Position  string    `json:"position"`
	Skills    []string  `json:"skills"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisIDHeader は履歴が有効なときに分析IDを返すレスポンスヘッダーです。
const AnalysisIDHeader = "X-Analysis-ID"
