package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Определяем метрики
var (
	// Счётчик вызовов по методу и gRPC-коду
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grpc_requests_total",
			Help: "Total number of gRPC requests by method and status code",
		},
		[]string{"method", "code"},
	)

	// Гистограмма длительности вызовов
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 1, 3},
		},
		[]string{"method"},
	)

	// Текущее количество активных вызовов
	inFlightRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "grpc_in_flight_requests",
			Help: "Current number of in-flight gRPC requests",
		},
	)
)

// UnaryMetricsInterceptor собирает метрики для каждого unary вызова
func UnaryMetricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	// Увеличиваем счётчик активных вызовов
	inFlightRequests.Inc()
	defer inFlightRequests.Dec()

	// Засекаем время начала и выполняем обработчик
	start := time.Now()
	resp, err := handler(ctx, req)

	// Метка code - имя gRPC-кода (OK, NotFound, ...), FullMethod уже нормализован
	requestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	requestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	return resp, err
}

// MetricsHandler возвращает handler для /metrics
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
