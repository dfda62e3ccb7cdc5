package grpc

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/todo-grpc/internal/models"
	"github.com/sun1tar/todo-grpc/internal/service"
	pb "github.com/sun1tar/todo-grpc/proto/todo"
	"github.com/sun1tar/todo-grpc/shared/logger"
	"github.com/sun1tar/todo-grpc/shared/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server реализует gRPC сервис todo.ToDoIt поверх ToDoService
type Server struct {
	pb.UnimplementedToDoItServer
	Service *service.ToDoService
	Logger  *logrus.Logger
}

func (s *Server) CreateToDo(ctx context.Context, req *pb.CreateToDoRequest) (*pb.CreateToDoResponse, error) {
	id, err := s.Service.Create(ctx, req.GetTitle(), req.GetDescription())
	if err != nil {
		return nil, s.toStatus(ctx, "CreateToDo", err)
	}
	return &pb.CreateToDoResponse{Id: id}, nil
}

func (s *Server) ReadToDo(ctx context.Context, req *pb.ReadToDoRequest) (*pb.ReadToDoResponse, error) {
	item, err := s.Service.Read(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, "ReadToDo", err)
	}
	return toReadResponse(item), nil
}

func (s *Server) ListToDo(ctx context.Context, _ *pb.GetAllToDoRequest) (*pb.GetAllToDoResponse, error) {
	items, err := s.Service.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "ListToDo", err)
	}

	// пустой список, а не nil: клиент получает явный пустой ответ
	resp := &pb.GetAllToDoResponse{ToDo: make([]*pb.ReadToDoResponse, 0, len(items))}
	for _, item := range items {
		resp.ToDo = append(resp.ToDo, toReadResponse(item))
	}
	return resp, nil
}

func (s *Server) UpdateToDo(ctx context.Context, req *pb.UpdateToDoRequest) (*pb.UpdateToDoResponse, error) {
	id, err := s.Service.Update(ctx, req.GetId(), req.GetTitle(), req.GetDescription(), models.Status(req.GetToDoStatus()))
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateToDo", err)
	}
	return &pb.UpdateToDoResponse{Id: id}, nil
}

func (s *Server) DeleteToDo(ctx context.Context, req *pb.DeleteToDoRequest) (*pb.DeleteToDoResponse, error) {
	id, err := s.Service.Delete(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, "DeleteToDo", err)
	}
	return &pb.DeleteToDoResponse{Id: id}, nil
}

func toReadResponse(item *models.ToDoItem) *pb.ReadToDoResponse {
	return &pb.ReadToDoResponse{
		Id:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		ToDoStatus:  string(item.Status),
	}
}

// toStatus переводит ошибки сервиса в gRPC коды
func (s *Server) toStatus(ctx context.Context, method string, err error) error {
	switch {
	// Ошибки клиента отдаём с текстом сервиса
	case errors.Is(err, service.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	// Отмена и таймаут вызывающего сохраняют свой код
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	// Всё остальное - сбой хранилища: подробности только в лог, наружу Internal
	logger.WithRequestID(s.Logger, middleware.GetRequestID(ctx)).WithFields(logrus.Fields{
		"component": "grpc_server",
		"handler":   method,
	}).WithError(err).Error("storage failure")
	return status.Error(codes.Internal, "internal server error")
}
