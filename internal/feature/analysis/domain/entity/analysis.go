// Package entity はanalysisフィーチャーのドメインモデルを定義します。
package entity

import "time"

// AnalysisRequest は求人URLと候補者スキルの組を表します。
type AnalysisRequest struct {
	Position string   // 求人ページのURL
	Skills   []string // 候補者のスキル（順序を保持）
}

// AnalysisResult はLLMが生成した適合度の評価です。
type AnalysisResult struct {
	ID      string // 履歴に保存された場合のID（未保存なら空）
	Message string // LLMの回答（加工なし）
}

// AnalysisRecord は保存済みの分析履歴1件を表します。
type AnalysisRecord struct {
	ID        string    `json:"id"`
	Position  string    `json:"position"`
	Skills    []string  `json:"skills"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
