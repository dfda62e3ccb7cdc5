package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/todo-grpc/internal/middleware"
	"github.com/sun1tar/todo-grpc/shared/logger"
	sharedMiddleware "github.com/sun1tar/todo-grpc/shared/middleware"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OpsHandler serves the operations endpoints next to the gRPC listener.
type OpsHandler struct {
	store       Pinger
	logger      *logrus.Logger
	pingTimeout time.Duration
}

func NewOpsHandler(store Pinger, logger *logrus.Logger) *OpsHandler {
	return &OpsHandler{
		store:       store,
		logger:      logger,
		pingTimeout: 2 * time.Second,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /healthz.
func (h *OpsHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.pingTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	if err := h.store.Ping(ctx); err != nil {
		logger.WithRequestID(h.logger, sharedMiddleware.GetRequestID(r.Context())).WithFields(logrus.Fields{
			"component": "http_handler",
			"handler":   "Health",
		}).WithError(err).Warn("store ping failed")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(healthResponse{Status: "unavailable"})
		return
	}
	json.NewEncoder(w).Encode(healthResponse{Status: "ok"})
}

// Routes builds the ops mux with its middleware chain.
func (h *OpsHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	handler := sharedMiddleware.RequestIDMiddleware(mux)
	handler = middleware.SecurityHeadersMiddleware(handler)
	handler = sharedMiddleware.LoggingMiddleware(h.logger)(handler)
	return handler
}
