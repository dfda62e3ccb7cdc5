package middleware

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/todo-grpc/shared/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryLoggingInterceptor логирует каждый gRPC вызов в структурированном формате
func UnaryLoggingInterceptor(log *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		// Создаём entry с request-id, который проставил UnaryRequestIDInterceptor
		entry := logger.WithRequestID(log, GetRequestID(ctx)).WithFields(logrus.Fields{
			"component":   "grpc_server",
			"method":      info.FullMethod,
			"code":        code.String(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		// Ошибки клиента - warn, ошибки сервера - error
		switch code {
		case codes.OK:
			entry.Info("request completed")
		case codes.InvalidArgument, codes.NotFound, codes.Canceled, codes.DeadlineExceeded:
			entry.WithError(err).Warn("request failed")
		default:
			entry.WithError(err).Error("request failed")
		}
		return resp, err
	}
}
