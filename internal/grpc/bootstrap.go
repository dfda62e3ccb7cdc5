package grpc

import (
	"github.com/sirupsen/logrus"
	"github.com/sun1tar/todo-grpc/internal/middleware"
	"github.com/sun1tar/todo-grpc/internal/service"
	pb "github.com/sun1tar/todo-grpc/proto/todo"
	sharedMiddleware "github.com/sun1tar/todo-grpc/shared/middleware"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewGRPCServer registers ToDoIt, health and reflection on a server whose
// interceptor chain runs request id, logging, then metrics.
func NewGRPCServer(svc *service.ToDoService, logger *logrus.Logger, opts ...gogrpc.ServerOption) (*gogrpc.Server, *health.Server) {
	opts = append(opts, gogrpc.ChainUnaryInterceptor(
		sharedMiddleware.UnaryRequestIDInterceptor,
		sharedMiddleware.UnaryLoggingInterceptor(logger),
		middleware.UnaryMetricsInterceptor,
	))
	s := gogrpc.NewServer(opts...)

	pb.RegisterToDoItServer(s, &Server{Service: svc, Logger: logger})

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ToDoIt_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	reflection.Register(s)
	return s, healthServer
}
