package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/fetchserp/fetchserp"
)

func TestObserveRequest(t *testing.T) {
	m := New(nil)

	m.ObserveRequest(fetchserp.RequestInfo{Method: "GET", Path: "/api/v1/serp", StatusCode: 200, Duration: time.Second})
	m.ObserveRequest(fetchserp.RequestInfo{Method: "GET", Path: "/api/v1/serp", StatusCode: 200, Duration: time.Second})
	m.ObserveRequest(fetchserp.RequestInfo{
		Method: "GET",
		Path:   "/api/v1/serp",
		Err:    &fetchserp.TransportError{Method: "GET", URL: "http://x", Err: context.Canceled},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/serp", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/serp", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TimeoutsTotal.WithLabelValues("/api/v1/serp")))
}

func TestMetricsWiredIntoClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/serp_ai_mode" {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{}}`)
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	m := New(reg)

	client, err := fetchserp.NewClient("test-key",
		fetchserp.WithBaseURL(server.URL),
		fetchserp.WithTimeout(50*time.Millisecond),
		fetchserp.WithRecorder(m),
	)
	require.NoError(t, err)

	_, err = client.GetUser(context.Background())
	require.NoError(t, err)
	_, err = client.GetSerpAIMode(context.Background(), "coffee")
	require.ErrorIs(t, err, fetchserp.ErrTimeout)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/user", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TimeoutsTotal.WithLabelValues("/api/v1/serp_ai_mode")))

	count, err := testutil.GatherAndCount(reg, "fetchserp_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
