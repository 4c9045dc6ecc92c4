package entity

// Provider はLLMプロバイダーの種別です。
type Provider string

const (
	// ProviderChatCompletion はchat-completion互換エンドポイント（OpenAI / Azure OpenAI）です。
	ProviderChatCompletion Provider = "openai"
	// ProviderGemini はGoogle Gemini APIです。
	ProviderGemini Provider = "gemini"
)

// Credentials はリクエストごとにLLMクライアントへ渡すサーバー側の認証情報です。
type Credentials struct {
	Provider Provider
	APIKey   string
	APIURL   string // chat-completionエンドポイントのURL（Geminiでは未使用）
}
