package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sun1tar/todo-grpc/shared/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestRequestIDMiddlewareKeepsIncomingID(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestLoggingMiddlewareRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "todo", "info")

	h := LoggingMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(WithRequestID(req.Context(), "r-1")))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, "/healthz", line["path"])
	assert.Equal(t, "r-1", line["request_id"])
}

func TestUnaryRequestIDInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/todo.ToDoIt/ReadToDo"}
	echo := func(ctx context.Context, req any) (any, error) {
		return GetRequestID(ctx), nil
	}

	t.Run("from metadata", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDMetadata, "md-7"))
		got, err := UnaryRequestIDInterceptor(ctx, nil, info, echo)
		require.NoError(t, err)
		assert.Equal(t, "md-7", got)
	})

	t.Run("generated", func(t *testing.T) {
		got, err := UnaryRequestIDInterceptor(context.Background(), nil, info, echo)
		require.NoError(t, err)
		_, err = uuid.Parse(got.(string))
		assert.NoError(t, err)
	})
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "todo", "info")
	intercept := UnaryLoggingInterceptor(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/todo.ToDoIt/ReadToDo"}

	_, err := intercept(WithRequestID(context.Background(), "r-9"), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "no task with id 3")
	})
	require.Error(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warning", line["level"])
	assert.Equal(t, "NotFound", line["code"])
	assert.Equal(t, "/todo.ToDoIt/ReadToDo", line["method"])
	assert.Equal(t, "r-9", line["request_id"])
}
