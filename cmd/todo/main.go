package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/todo-grpc/internal/config"
	grp "github.com/sun1tar/todo-grpc/internal/grpc"
	opsHTTP "github.com/sun1tar/todo-grpc/internal/http"
	"github.com/sun1tar/todo-grpc/internal/repository"
	"github.com/sun1tar/todo-grpc/internal/service"
	pb "github.com/sun1tar/todo-grpc/proto/todo"
	"github.com/sun1tar/todo-grpc/shared/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	logrusLogger := logger.Init("todo")

	// Fatal только здесь: к этому моменту start уже закрыл хранилище
	if err := start(logrusLogger); err != nil {
		logrusLogger.WithError(err).Fatal("todo server stopped")
	}
}

func start(logrusLogger *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(logrusLogger, cfg.LogLevel)

	openCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repository.Open(openCtx, cfg.DB.StoreOptions(), logrusLogger)
	cancel()
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.DB.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logrusLogger.WithError(err).Warn("close store")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, store, logrusLogger)
}

// serve runs the gRPC and ops listeners until ctx is done or one of them
// fails, then shuts both down. The failure, if any, is returned.
func serve(ctx context.Context, cfg *config.Config, store repository.Store, logrusLogger *logrus.Logger) error {
	todoService := service.NewToDoService(store)
	grpcServer, healthServer := grp.NewGRPCServer(todoService, logrusLogger)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	// буфер на оба сервера, чтобы горутины не зависли после выхода из select
	serveErr := make(chan error, 2)

	go func() {
		logrusLogger.WithField("addr", lis.Addr().String()).Info("todo gRPC server starting")
		if err := grpcServer.Serve(lis); err != nil {
			serveErr <- fmt.Errorf("grpc serve: %w", err)
		}
	}()

	opsServer := &http.Server{
		Addr:              ":" + cfg.OpsPort,
		Handler:           opsHTTP.NewOpsHandler(store, logrusLogger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logrusLogger.WithField("port", cfg.OpsPort).Info("ops HTTP server starting")
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("ops HTTP serve: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logrusLogger.Info("shutting down todo server...")
	case runErr = <-serveErr:
		logrusLogger.WithError(runErr).Error("server failed, shutting down")
	}

	// сначала health, чтобы балансировщик перестал слать трафик
	healthServer.SetServingStatus(pb.ToDoIt_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	// GracefulStop ждёт активные RPC, но не дольше ShutdownTimeout
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(cfg.ShutdownTimeout):
		logrusLogger.Warn("graceful stop timed out, forcing")
		grpcServer.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		logrusLogger.WithError(err).Warn("ops HTTP server shutdown")
	}
	return runErr
}
