package fetchserp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{name: "valid key", apiKey: "test-key"},
		{name: "missing key", apiKey: "", wantErr: true},
		{name: "blank key", apiKey: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMissingAPIKey)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.apiKey, client.apiKey)
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient("test-key")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, client.BaseURL())
	assert.Equal(t, "https://www.fetchserp.com", client.BaseURL())
	assert.Equal(t, 30000*time.Millisecond, client.Timeout())
}

func TestClientOptions(t *testing.T) {
	t.Run("with base URL", func(t *testing.T) {
		client, err := NewClient("test-key", WithBaseURL("http://localhost:3000/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000", client.BaseURL())
	})

	t.Run("empty base URL keeps default", func(t *testing.T) {
		client, err := NewClient("test-key", WithBaseURL(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.BaseURL())
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.Timeout())
	})

	t.Run("non-positive timeout keeps default", func(t *testing.T) {
		client, err := NewClient("test-key", WithTimeout(0))
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, client.Timeout())
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-key", WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("nil option is ignored", func(t *testing.T) {
		_, err := NewClient("test-key", nil)
		require.NoError(t, err)
	})
}

func TestTestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/user", r.URL.Path)

		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"email": "dev@example.com"}})
	}))
	defer server.Close()

	client, err := NewClient("test-key", WithBaseURL(server.URL), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.NoError(t, client.TestConnection(context.Background()))

	bad, err := NewClient("wrong-key", WithBaseURL(server.URL))
	require.NoError(t, err)
	err = bad.TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to FetchSERP")
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
}
