package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryMetricsInterceptorCountsByCode(t *testing.T) {
	const method = "/todo.ToDoIt/DeleteToDo"
	info := &grpc.UnaryServerInfo{FullMethod: method}

	okBefore := testutil.ToFloat64(requestsTotal.WithLabelValues(method, codes.OK.String()))
	nfBefore := testutil.ToFloat64(requestsTotal.WithLabelValues(method, codes.NotFound.String()))

	_, err := UnaryMetricsInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		assert.Equal(t, float64(1), testutil.ToFloat64(inFlightRequests))
		return "ok", nil
	})
	require.NoError(t, err)

	_, err = UnaryMetricsInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "gone")
	})
	require.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(requestsTotal.WithLabelValues(method, codes.OK.String())))
	assert.Equal(t, nfBefore+1, testutil.ToFloat64(requestsTotal.WithLabelValues(method, codes.NotFound.String())))
	assert.Equal(t, float64(0), testutil.ToFloat64(inFlightRequests))
}

func TestMetricsHandlerExposesCounters(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/todo.ToDoIt/ListToDo"}
	_, _ = UnaryMetricsInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, nil
	})

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "grpc_requests_total"))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
