package fetchserp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", append([]Option{WithBaseURL(server.URL)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestExecuteHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "fetchserp-test", r.Header.Get("User-Agent"))

		_, err := uuid.Parse(r.Header.Get("X-Request-Id"))
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{}`)
	}, WithUserAgent("fetchserp-test"), WithRequestID("X-Request-Id"))

	_, err := client.execute(context.Background(), http.MethodGet, "/api/v1/user", nil, nil)
	require.NoError(t, err)
}

func TestExecuteQueryEncoding(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		assert.Equal(t, []string{"a", "b"}, r.URL.Query()["keywords[]"])
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{}`)
	})

	params := Params{}.
		Add("keywords", []string{"a", "b"}).
		Add("skipped", nil).
		Add("country", "us")

	_, err := client.execute(context.Background(), http.MethodGet, "/api/v1/keywords_search_volume", params, nil)
	require.NoError(t, err)
	assert.Equal(t, "keywords%5B%5D=a&keywords%5B%5D=b&country=us", rawQuery)
}

func TestExecuteDecodesJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		io.WriteString(w, `{"result":1}`)
	})

	resp, err := client.execute(context.Background(), http.MethodGet, "/api/v1/serp", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.IsJSON())
	assert.Equal(t, map[string]any{"result": float64(1)}, resp.Data)

	var typed struct {
		Result int `json:"result"`
	}
	require.NoError(t, resp.Decode(&typed))
	assert.Equal(t, 1, typed.Result)
}

func TestExecuteReturnsTextForOtherContentTypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, `<html><body>ok</body></html>`)
	})

	resp, err := client.execute(context.Background(), http.MethodGet, "/api/v1/scrape", nil, nil)
	require.NoError(t, err)

	assert.False(t, resp.IsJSON())
	assert.Equal(t, "<html><body>ok</body></html>", resp.Data)
	assert.Equal(t, "<html><body>ok</body></html>", resp.Text())
	assert.Error(t, resp.Decode(&map[string]any{}))
}

func TestExecuteSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"js_script":"return 1"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":1}`)
	})

	body := map[string]string{"js_script": "return 1"}
	_, err := client.execute(context.Background(), http.MethodPost, "/api/v1/scrape_js", nil, body)
	require.NoError(t, err)
}

func TestExecuteAPIError(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		status      int
		body        string
		wantMessage string
		wantBody    any
	}{
		{
			name:        "error field in JSON body",
			contentType: "application/json",
			status:      http.StatusNotFound,
			body:        `{"error":"not found"}`,
			wantMessage: "not found",
			wantBody:    map[string]any{"error": "not found"},
		},
		{
			name:        "JSON body without error field",
			contentType: "application/json",
			status:      http.StatusUnauthorized,
			body:        `{"message":"nope"}`,
			wantMessage: "Unauthorized",
			wantBody:    map[string]any{"message": "nope"},
		},
		{
			name:        "structured error field",
			contentType: "application/json",
			status:      http.StatusUnprocessableEntity,
			body:        `{"error":{"code":"bad_query"}}`,
			wantMessage: `{"code":"bad_query"}`,
			wantBody:    map[string]any{"error": map[string]any{"code": "bad_query"}},
		},
		{
			name:        "plain text body",
			contentType: "text/plain",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantMessage: "Internal Server Error",
			wantBody:    "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			resp, err := client.execute(context.Background(), http.MethodGet, "/api/v1/serp", nil, nil)
			require.Error(t, err)
			assert.Nil(t, resp)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantBody, apiErr.Body)
			assert.Equal(t, tt.body, string(apiErr.Raw))
		})
	}
}

func TestAPIErrorClassification(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 404}).IsNotFound())
	assert.True(t, (&APIError{StatusCode: 401}).IsUnauthorized())
	assert.True(t, (&APIError{StatusCode: 403}).IsUnauthorized())
	assert.True(t, (&APIError{StatusCode: 429}).IsRateLimited())
	assert.False(t, (&APIError{StatusCode: 500}).IsNotFound())
	assert.Equal(t, "request failed with status 404: not found", (&APIError{StatusCode: 404, Message: "not found"}).Error())
}

func TestExecuteMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"result":`)
	})

	_, err := client.execute(context.Background(), http.MethodGet, "/api/v1/serp", nil, nil)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
	assert.Equal(t, `{"result":`, string(decodeErr.Raw))
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI)
}

func TestExecuteTimeout(t *testing.T) {
	aborted := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			close(aborted)
		case <-time.After(2 * time.Second):
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"late":true}`)
		}
	}, WithTimeout(50*time.Millisecond))

	resp, err := client.execute(context.Background(), http.MethodGet, "/api/v1/serp", nil, nil)
	require.Error(t, err)
	assert.Nil(t, resp)

	assert.ErrorIs(t, err, ErrTimeout)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, transportErr.Timeout())
	_, isAPI := AsAPIError(err)
	assert.False(t, isAPI)

	select {
	case <-aborted:
	case <-time.After(time.Second):
		t.Fatal("server did not observe the aborted request")
	}
}

func TestExecuteTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClient("test-key", WithBaseURL(baseURL))
	require.NoError(t, err)

	_, err = client.execute(context.Background(), http.MethodGet, "/api/v1/serp", Params{}.Add("query", "secret"), nil)
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.False(t, transportErr.Timeout())
	assert.False(t, errors.Is(err, ErrTimeout))
	assert.NotContains(t, err.Error(), "secret")
}

func TestExecuteRejectsUnsupportedMethod(t *testing.T) {
	client, err := NewClient("test-key")
	require.NoError(t, err)

	_, err = client.execute(context.Background(), http.MethodDelete, "/api/v1/serp", nil, nil)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

type recorderFunc func(RequestInfo)

func (f recorderFunc) ObserveRequest(info RequestInfo) { f(info) }

func TestExecuteNotifiesRecorder(t *testing.T) {
	var (
		mu    sync.Mutex
		infos []RequestInfo
	)
	recorder := recorderFunc(func(info RequestInfo) {
		mu.Lock()
		defer mu.Unlock()
		infos = append(infos, info)
	})

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, `{}`)
	}, WithRecorder(recorder))

	_, err := client.execute(context.Background(), http.MethodGet, "/api/v1/user", nil, nil)
	require.Error(t, err)

	require.Len(t, infos, 1)
	assert.Equal(t, http.MethodGet, infos[0].Method)
	assert.Equal(t, "/api/v1/user", infos[0].Path)
	assert.Equal(t, http.StatusTeapot, infos[0].StatusCode)
	assert.Error(t, infos[0].Err)
}
