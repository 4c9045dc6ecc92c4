// Package dto はchat-completion APIのリクエスト/レスポンス形式を定義します。
package dto

// Message はchat-completionの1メッセージです。
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest はchat-completionエンドポイントへのリクエストボディです。
type ChatRequest struct {
	Messages            []Message `json:"messages"`
	MaxCompletionTokens int       `json:"max_completion_tokens"`
}

// ChatResponse はレスポンスのうち利用するフィールドのみを表します。
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

// Choice は生成候補1件です。
type Choice struct {
	Message ResponseMessage `json:"message"`
}

// ResponseMessage は応答側のメッセージです。content の有無を区別するためポインタで受けます。
type ResponseMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}
