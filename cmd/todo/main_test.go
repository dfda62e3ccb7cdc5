package main

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sun1tar/todo-grpc/internal/config"
	"github.com/sun1tar/todo-grpc/internal/repository"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testConfig(opsPort string) *config.Config {
	return &config.Config{
		GRPCPort:        "0",
		OpsPort:         opsPort,
		ShutdownTimeout: 2 * time.Second,
		DB:              config.DatabaseConfig{Driver: repository.DriverMemory},
	}
}

func runServe(ctx context.Context, cfg *config.Config) <-chan error {
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, repository.NewMemoryToDoRepository(), quietLogger()) }()
	return done
}

func TestServeStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := runServe(ctx, testConfig("0"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

// Ошибка listener-а в горутине не должна ронять процесс: serve возвращает
// её вызывающему, и отложенное закрытие хранилища успевает отработать.
func TestServeReturnsListenerError(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })
	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	done := runServe(context.Background(), testConfig(port))

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ops HTTP serve")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not report the listener error")
	}
}
