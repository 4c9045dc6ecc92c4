package usecase

import (
	"fmt"
	"strings"
)

const (
	// SystemPrompt はLLMに与える固定のシステムメッセージです。
	// ブラジルポルトガル語で、推定マッチ率と改善提案を返すよう指示します。
	SystemPrompt = "Você é um assistente de IA e trabalha fazendo match de habilidades com descrição de vagas. " +
		"As habilidades chegam no seguinte formato JSON para você: {\"skills\":[]}, a descrição da vaga chega em formato de texto. " +
		"Responda de maneira resumida com uma porcentagem estimada de match das habilidades do candidato com a vaga " +
		"e como o candidato pode aumentar suas chances de ser selecionado. " +
		"É EXTREMAMENTE IMPORTANTE QUE SUAS RESPOSTAS SEJAM SEMPRE EM PORTUGUÊS DO BRASIL"

	// UserPromptTemplate はスキルと求人説明を2行にまとめるテンプレートです。
	UserPromptTemplate = "Habilidades do candidato: %s\nDescrição da vaga: %s"

	// MaxCompletionTokens はLLM応答の最大トークン数です。
	MaxCompletionTokens = 1000
)

// BuildUserPrompt はスキル（カンマ区切り）と求人説明からユーザーメッセージを生成します。
// スキルが空でもエラーにはしません。
func BuildUserPrompt(skills []string, description string) string {
	return fmt.Sprintf(UserPromptTemplate, strings.Join(skills, ", "), description)
}
