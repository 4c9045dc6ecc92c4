package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmatch_backend/internal/feature/analysis/domain/entity"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  ErrMetaDescriptionNotFound,
			want: "Meta description não encontrada",
		},
		{
			name: "http status",
			err:  NewHTTPStatusError("fetch page", 503, "unavailable"),
			want: "fetch page: unexpected status 503",
		},
		{
			name: "timeout with cause",
			err:  NewTimeoutError("fetch page", context.DeadlineExceeded),
			want: "fetch page: request timed out: context deadline exceeded",
		},
		{
			name: "transport with cause",
			err:  NewTransportError("query llm", errors.New("connection refused")),
			want: "query llm: request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("pipeline: %w", NewTimeoutError("fetch page", context.DeadlineExceeded))

	assert.Equal(t, KindValidation, KindOf(ErrMetaDescriptionNotFound))
	assert.Equal(t, KindTimeout, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
}

func TestIsTransport(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTransport(NewHTTPStatusError("query llm", 500, "")))
	assert.True(t, IsTransport(NewTimeoutError("fetch page", nil)))
	assert.True(t, IsTransport(NewTransportError("fetch page", nil)))
	assert.False(t, IsTransport(ErrInvalidLLMResponse))
	assert.False(t, IsTransport(ErrAPIKeyNotConfigured))
	assert.False(t, IsTransport(errors.New("boom")))
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Meta description não encontrada", PublicMessage(fmt.Errorf("x: %w", ErrMetaDescriptionNotFound)))
	assert.Equal(t, "", PublicMessage(errors.New("boom")))
}

func TestCheckCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		creds entity.Credentials
		want  error
	}{
		{
			name:  "chat completion complete",
			creds: entity.Credentials{Provider: entity.ProviderChatCompletion, APIKey: "k", APIURL: "https://llm.test"},
		},
		{
			name:  "empty provider defaults to chat completion",
			creds: entity.Credentials{APIKey: "k"},
			want:  ErrAPIURLNotConfigured,
		},
		{
			name:  "chat completion without key",
			creds: entity.Credentials{Provider: entity.ProviderChatCompletion, APIURL: "https://llm.test"},
			want:  ErrAPIKeyNotConfigured,
		},
		{
			name:  "gemini with key and no url",
			creds: entity.Credentials{Provider: entity.ProviderGemini, APIKey: "k"},
		},
		{
			name:  "gemini without key",
			creds: entity.Credentials{Provider: entity.ProviderGemini},
			want:  ErrGeminiKeyNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckCredentials(tt.creds)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, KindConfig, KindOf(err))
		})
	}
}
