package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Timeout(t *testing.T) {
	t.Parallel()

	c := NewHTTPClient(7 * time.Second)

	assert.Equal(t, 7*time.Second, c.Timeout)
	assert.IsType(t, &userAgentTransport{}, c.Transport)
}

func TestNewHTTPClient_UserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		set      string
		expected string
	}{
		{name: "default user agent added", set: "", expected: DefaultUserAgent},
		{name: "caller user agent preserved", set: "custom/2.0", expected: "custom/2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("User-Agent")
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			require.NoError(t, err)
			if tt.set != "" {
				req.Header.Set("User-Agent", tt.set)
			}

			res, err := NewHTTPClient(time.Second).Do(req)
			require.NoError(t, err)
			_ = res.Body.Close()

			assert.Equal(t, tt.expected, got)
			if tt.set == "" {
				assert.Empty(t, req.Header.Get("User-Agent"), "original request must not be mutated")
			}
		})
	}
}
