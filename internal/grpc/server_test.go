package grpc

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sun1tar/todo-grpc/internal/models"
	"github.com/sun1tar/todo-grpc/internal/repository"
	"github.com/sun1tar/todo-grpc/internal/service"
	pb "github.com/sun1tar/todo-grpc/proto/todo"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type brokenRepo struct {
	repository.ToDoRepository
}

func (brokenRepo) List(context.Context) ([]*models.ToDoItem, error) {
	return nil, errors.New("pq: connection refused")
}

func (brokenRepo) GetByID(context.Context, int64) (*models.ToDoItem, error) {
	return nil, context.DeadlineExceeded
}

func newTestServer(repo repository.ToDoRepository) *Server {
	return &Server{Service: service.NewToDoService(repo), Logger: quietLogger()}
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), "error: %v", err)
}

func TestServerCRUD(t *testing.T) {
	s := newTestServer(repository.NewMemoryToDoRepository())
	ctx := context.Background()

	created, err := s.CreateToDo(ctx, &pb.CreateToDoRequest{Title: "Buy milk", Description: "2% milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GetId())

	read, err := s.ReadToDo(ctx, &pb.ReadToDoRequest{Id: created.GetId()})
	require.NoError(t, err)
	want := &pb.ReadToDoResponse{Id: 1, Title: "Buy milk", Description: "2% milk", ToDoStatus: "NEW"}
	assert.True(t, proto.Equal(want, read), "got %v", read)

	updated, err := s.UpdateToDo(ctx, &pb.UpdateToDoRequest{Id: 1, Title: "Buy milk", Description: "1% milk", ToDoStatus: "DONE"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.GetId())

	list, err := s.ListToDo(ctx, &pb.GetAllToDoRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetToDo(), 1)
	assert.Equal(t, "DONE", list.GetToDo()[0].GetToDoStatus())

	deleted, err := s.DeleteToDo(ctx, &pb.DeleteToDoRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.GetId())

	_, err = s.ReadToDo(ctx, &pb.ReadToDoRequest{Id: 1})
	requireCode(t, err, codes.NotFound)
}

func TestServerStatusCodes(t *testing.T) {
	s := newTestServer(repository.NewMemoryToDoRepository())
	ctx := context.Background()

	_, err := s.CreateToDo(ctx, &pb.CreateToDoRequest{Title: " ", Description: "x"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = s.ReadToDo(ctx, &pb.ReadToDoRequest{Id: 0})
	requireCode(t, err, codes.InvalidArgument)

	_, err = s.UpdateToDo(ctx, &pb.UpdateToDoRequest{Id: 5, Title: "t", Description: "d"})
	requireCode(t, err, codes.NotFound)

	_, err = s.DeleteToDo(ctx, &pb.DeleteToDoRequest{Id: -3})
	requireCode(t, err, codes.InvalidArgument)

	list, err := s.ListToDo(ctx, &pb.GetAllToDoRequest{})
	require.NoError(t, err)
	assert.NotNil(t, list.GetToDo())
	assert.Empty(t, list.GetToDo())
}

func TestServerHidesStorageErrors(t *testing.T) {
	s := newTestServer(brokenRepo{})
	ctx := context.Background()

	_, err := s.ListToDo(ctx, &pb.GetAllToDoRequest{})
	requireCode(t, err, codes.Internal)
	assert.NotContains(t, status.Convert(err).Message(), "pq:")

	_, err = s.ReadToDo(ctx, &pb.ReadToDoRequest{Id: 1})
	requireCode(t, err, codes.DeadlineExceeded)
}

// dialBufconn поднимает полный сервер (интерсепторы, health, reflection) на bufconn
// и возвращает клиентское соединение без дополнительных call options.
func dialBufconn(t *testing.T) *gogrpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv, _ := NewGRPCServer(service.NewToDoService(repository.NewMemoryToDoRepository()), quietLogger())
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestGRPCServerOverBufconn(t *testing.T) {
	conn := dialBufconn(t)
	ctx := context.Background()

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: pb.ToDoIt_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.GetStatus())

	client := pb.NewToDoItClient(conn)
	created, err := client.CreateToDo(ctx, &pb.CreateToDoRequest{Title: "a", Description: "b"})
	require.NoError(t, err)

	read, err := client.ReadToDo(ctx, &pb.ReadToDoRequest{Id: created.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "a", read.GetTitle())

	_, err = client.CreateToDo(ctx, &pb.CreateToDoRequest{})
	requireCode(t, err, codes.InvalidArgument)
}

// Обычный gRPC-клиент (application/grpc, protobuf-кодек) должен работать без
// каких-либо content-subtype опций.
func TestGRPCServerDefaultCodec(t *testing.T) {
	conn := dialBufconn(t)
	ctx := context.Background()

	created := new(pb.CreateToDoResponse)
	err := conn.Invoke(ctx, pb.ToDoIt_CreateToDo_FullMethodName,
		&pb.CreateToDoRequest{Title: "Buy milk", Description: "2% milk"}, created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GetId())

	// явный "proto" subtype - то же самое, что и по умолчанию
	list := new(pb.GetAllToDoResponse)
	err = conn.Invoke(ctx, pb.ToDoIt_ListToDo_FullMethodName, &pb.GetAllToDoRequest{}, list,
		gogrpc.CallContentSubtype("proto"))
	require.NoError(t, err)
	require.Len(t, list.GetToDo(), 1)
	assert.Equal(t, "NEW", list.GetToDo()[0].GetToDoStatus())

	// GetAllToDoRequest без полей совместим по проводу с google.protobuf.Empty
	list = new(pb.GetAllToDoResponse)
	err = conn.Invoke(ctx, pb.ToDoIt_ListToDo_FullMethodName, &emptypb.Empty{}, list)
	require.NoError(t, err)
	assert.Len(t, list.GetToDo(), 1)
}

func TestGRPCServerReflection(t *testing.T) {
	conn := dialBufconn(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stream.CloseSend() })

	// список сервисов
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, "todo.ToDoIt")

	// дескриптор файла по символу сервиса
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: "todo.ToDoIt"},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)
	raw := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, raw, "error response: %v", resp.GetErrorResponse())

	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(raw[0], &fd))
	assert.Equal(t, "todo", fd.GetPackage())
	require.Len(t, fd.GetService(), 1)
	var methods []string
	for _, m := range fd.GetService()[0].GetMethod() {
		methods = append(methods, m.GetName())
	}
	assert.Equal(t, []string{"CreateToDo", "ReadToDo", "ListToDo", "UpdateToDo", "DeleteToDo"}, methods)
}
