package todoclient

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/todo-grpc/internal/models"
	pb "github.com/sun1tar/todo-grpc/proto/todo"
	"github.com/sun1tar/todo-grpc/shared/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Client - клиент сервиса todo.ToDoIt с таймаутом на каждый вызов.
// Ошибки возвращаются как есть (gRPC status), чтобы вызывающий мог смотреть код.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.ToDoItClient
	timeout time.Duration
	logger  *logrus.Logger
}

func NewClient(addr string, timeout time.Duration, logger *logrus.Logger, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo client: %w", err)
	}

	return &Client{
		conn:    conn,
		client:  pb.NewToDoItClient(conn),
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Create(ctx context.Context, title, description string) (int64, error) {
	ctx, cancel, log := c.prepare(ctx, "CreateToDo")
	defer cancel()

	resp, err := c.client.CreateToDo(ctx, &pb.CreateToDoRequest{Title: title, Description: description})
	if err != nil {
		return 0, c.fail(log, err)
	}
	return resp.GetId(), nil
}

func (c *Client) Read(ctx context.Context, id int64) (*models.ToDoItem, error) {
	ctx, cancel, log := c.prepare(ctx, "ReadToDo")
	defer cancel()

	resp, err := c.client.ReadToDo(ctx, &pb.ReadToDoRequest{Id: id})
	if err != nil {
		return nil, c.fail(log, err)
	}
	return fromReadResponse(resp), nil
}

func (c *Client) List(ctx context.Context) ([]*models.ToDoItem, error) {
	ctx, cancel, log := c.prepare(ctx, "ListToDo")
	defer cancel()

	resp, err := c.client.ListToDo(ctx, &pb.GetAllToDoRequest{})
	if err != nil {
		return nil, c.fail(log, err)
	}
	items := make([]*models.ToDoItem, 0, len(resp.GetToDo()))
	for _, r := range resp.GetToDo() {
		items = append(items, fromReadResponse(r))
	}
	return items, nil
}

func (c *Client) Update(ctx context.Context, item *models.ToDoItem) (int64, error) {
	ctx, cancel, log := c.prepare(ctx, "UpdateToDo")
	defer cancel()

	resp, err := c.client.UpdateToDo(ctx, &pb.UpdateToDoRequest{
		Id:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ToDoStatus:  string(item.Status),
	})
	if err != nil {
		return 0, c.fail(log, err)
	}
	return resp.GetId(), nil
}

func (c *Client) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel, log := c.prepare(ctx, "DeleteToDo")
	defer cancel()

	resp, err := c.client.DeleteToDo(ctx, &pb.DeleteToDoRequest{Id: id})
	if err != nil {
		return 0, c.fail(log, err)
	}
	return resp.GetId(), nil
}

func (c *Client) prepare(ctx context.Context, method string) (context.Context, context.CancelFunc, *logrus.Entry) {
	// Извлекаем request-id из контекста для прокидывания в gRPC метаданные
	requestID := middleware.GetRequestID(ctx)

	log := c.logger.WithFields(logrus.Fields{
		"component":  "todo_client",
		"method":     method,
		"request_id": requestID,
	})
	log.Debug("calling todo service")

	// Создаём контекст с таймаутом
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	// Прокидываем request-id в метаданные gRPC
	if requestID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, middleware.RequestIDMetadata, requestID)
	}
	return ctx, cancel, log
}

func (c *Client) fail(log *logrus.Entry, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		log.WithError(err).Error("todo service unavailable")
		return err
	}

	fields := logrus.Fields{"code": st.Code(), "error": st.Message()}
	switch st.Code() {
	case codes.InvalidArgument, codes.NotFound:
		// ошибка вызывающего, не сервиса
		log.WithFields(fields).Debug("todo service rejected request")
	case codes.DeadlineExceeded:
		log.WithFields(fields).Warn("todo service timeout")
	default:
		log.WithFields(fields).Error("todo service error")
	}
	return err
}

func fromReadResponse(r *pb.ReadToDoResponse) *models.ToDoItem {
	return &models.ToDoItem{
		ID:          r.GetId(),
		Title:       r.GetTitle(),
		Description: r.GetDescription(),
		Status:      models.Status(r.GetToDoStatus()),
	}
}
