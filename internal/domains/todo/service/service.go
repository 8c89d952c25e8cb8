package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoapp/infras/otel"
	"todoapp/infras/s3"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/shared/constant"
	"todoapp/shared/failure"
	"todoapp/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	msgTodoNotFound   = "todo not found"
	msgTodoIDRequired = "todo id is required"
)

type Todo interface {
	GetAll(ctx context.Context, userID string) (dto.GetTodosResponse, error)
	Create(ctx context.Context, userID string, req dto.CreateTodoRequest) (dto.GetTodoResponse, error)
	Get(ctx context.Context, userID, todoID string) (dto.GetTodoResponse, error)
	Update(ctx context.Context, userID, todoID string, req dto.UpdateTodoRequest) (dto.UpdateTodoResponse, error)
	Delete(ctx context.Context, userID, todoID string) (dto.DeleteTodoResponse, error)
	CreateAttachmentURL(ctx context.Context, userID, todoID string) (dto.UploadURLResponse, error)
}

type serviceImpl struct {
	repo  repository.Todo
	s3    s3.S3
	otel  otel.Otel
	now   func() time.Time
	newID func() string
}

func New(repo repository.Todo, s3 s3.S3, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:  repo,
		s3:    s3,
		otel:  otel,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func key(userID, todoID string) (model.Key, error) {
	if userID == "" {
		return model.Key{}, failure.MissingUserError
	}

	if todoID == "" {
		return model.Key{}, failure.BadRequestFromString(msgTodoIDRequired) // nolint:wrapcheck
	}

	return model.Key{UserID: userID, TodoID: todoID}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, userID string) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == "" {
		return res, failure.MissingUserError
	}

	items, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(items)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateTodoRequest) (res dto.GetTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == "" {
		return res, failure.MissingUserError
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	todoID := s.newID()
	item := req.ToModel(userID, todoID, s.now(), s.s3.AttachmentURL(todoID))

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	scope.SetAttribute("todo.id", todoID)
	res.Item.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, todoID string) (res dto.GetTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	k, err := key(userID, todoID)
	if err != nil {
		return res, err
	}

	item, err := s.repo.Get(ctx, k)
	if errors.Is(err, repository.ErrNotFound) {
		return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	res.Item.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, userID, todoID string, req dto.UpdateTodoRequest) (res dto.UpdateTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	k, err := key(userID, todoID)
	if err != nil {
		return res, err
	}

	updated, err := s.repo.Update(ctx, k, req.ToModel())
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn().Str("todoId", todoID).Msg("update of unknown todo")

		return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	res.Item.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, userID, todoID string) (res dto.DeleteTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	k, err := key(userID, todoID)
	if err != nil {
		return res, err
	}

	if err = s.repo.Delete(ctx, k); err != nil {
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to delete todo")

		return res, fmt.Errorf("failed to delete todo: %w", err)
	}

	res.TodoID = todoID

	return res, nil
}

func (s *serviceImpl) CreateAttachmentURL(ctx context.Context, userID, todoID string) (res dto.UploadURLResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAttachmentURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	k, err := key(userID, todoID)
	if err != nil {
		return res, err
	}

	// Only the owner may obtain an upload location for a record.
	_, err = s.repo.Get(ctx, k)
	if errors.Is(err, repository.ErrNotFound) {
		return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	uploadURL, err := s.s3.UploadURL(ctx, todoID)
	if err != nil {
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to sign upload url")

		return res, fmt.Errorf("failed to sign upload url: %w", err)
	}

	res.UploadURL = uploadURL

	return res, nil
}
