// Package domain defines domain-level errors for the analysis feature.
package domain

import (
	"errors"
	"strconv"
	"strings"

	"jobmatch_backend/internal/feature/analysis/domain/entity"
)

// Kind classifies an analysis failure so that upper layers can map it to a response.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindValidation is a content problem, e.g. a page without a meta description.
	KindValidation
	// KindConfig means LLM credentials or endpoint are not configured server-side.
	KindConfig
	// KindHTTPStatus is a non-2xx answer from an outbound call.
	KindHTTPStatus
	// KindTimeout is an outbound call that exceeded its deadline.
	KindTimeout
	// KindTransport is any other network failure of an outbound call.
	KindTransport
	// KindInvalidResponse is a 2xx LLM answer that cannot be used.
	KindInvalidResponse
	// KindExtraction is malformed input handed to the meta-description extractor.
	KindExtraction
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfig:
		return "config"
	case KindHTTPStatus:
		return "http_status"
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindInvalidResponse:
		return "invalid_response"
	case KindExtraction:
		return "extraction"
	default:
		return "unknown"
	}
}

// Error is the structured error used by every stage of the analysis pipeline.
// Message is safe to show to API clients; Err keeps the underlying cause.
type Error struct {
	Kind       Kind
	Op         string // stage that failed, e.g. "fetch page"
	Message    string
	StatusCode int    // KindHTTPStatus only
	Body       string // KindHTTPStatus only
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Kind == KindHTTPStatus {
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(e.StatusCode))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinel errors. They are returned as-is so callers can match them with errors.Is.
var (
	// ErrMetaDescriptionNotFound is returned when the job page has no usable meta description.
	ErrMetaDescriptionNotFound = &Error{Kind: KindValidation, Message: "Meta description não encontrada"}

	// ErrAPIKeyNotConfigured is returned when the chat-completion API key is missing.
	ErrAPIKeyNotConfigured = &Error{Kind: KindConfig, Message: "API key da OpenAI não configurada"}

	// ErrAPIURLNotConfigured is returned when the chat-completion URL is missing.
	ErrAPIURLNotConfigured = &Error{Kind: KindConfig, Message: "URL da API OpenAI não configurada"}

	// ErrGeminiKeyNotConfigured is returned when the Gemini API key is missing.
	ErrGeminiKeyNotConfigured = &Error{Kind: KindConfig, Message: "API key do Gemini não configurada"}

	// ErrEndpointNotConfigured is returned by the LLM client when no endpoint can be resolved.
	ErrEndpointNotConfigured = &Error{Kind: KindConfig, Message: "OPENAI_API_URL não configurada"}

	// ErrInvalidLLMResponse is returned when the LLM answers 2xx without usable choices.
	ErrInvalidLLMResponse = &Error{Kind: KindInvalidResponse, Message: "Resposta da OpenAI inválida"}

	// ErrNilContent is returned when the extractor receives no content at all.
	ErrNilContent = &Error{Kind: KindExtraction, Message: "conteúdo HTML ausente"}

	// ErrRecordNotFound is returned when an analysis record does not exist in history.
	ErrRecordNotFound = errors.New("analysis record not found")
)

// NewHTTPStatusError builds a KindHTTPStatus error for op carrying the response status and body.
func NewHTTPStatusError(op string, status int, body string) *Error {
	return &Error{Kind: KindHTTPStatus, Op: op, Message: "unexpected status", StatusCode: status, Body: body}
}

// NewTimeoutError builds a KindTimeout error for op.
func NewTimeoutError(op string, err error) *Error {
	return &Error{Kind: KindTimeout, Op: op, Message: "request timed out", Err: err}
}

// NewTransportError builds a KindTransport error for op.
func NewTransportError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Message: "request failed", Err: err}
}

// NewInvalidResponseError builds a KindInvalidResponse error wrapping a decode failure.
func NewInvalidResponseError(op string, err error) *Error {
	return &Error{Kind: KindInvalidResponse, Op: op, Message: ErrInvalidLLMResponse.Message, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsTransport reports whether err is a failure of an outbound HTTP call.
func IsTransport(err error) bool {
	switch KindOf(err) {
	case KindHTTPStatus, KindTimeout, KindTransport:
		return true
	}
	return false
}

// PublicMessage returns the client-facing message of the first *Error in err's chain.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// CheckCredentials verifies that the server-side LLM settings needed by creds.Provider are present.
func CheckCredentials(creds entity.Credentials) error {
	if creds.Provider == entity.ProviderGemini {
		if creds.APIKey == "" {
			return ErrGeminiKeyNotConfigured
		}
		return nil
	}
	if creds.APIKey == "" {
		return ErrAPIKeyNotConfigured
	}
	if creds.APIURL == "" {
		return ErrAPIURLNotConfigured
	}
	return nil
}
