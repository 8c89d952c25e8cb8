package todo

import (
	"net/http"

	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/constant"
	"todoapp/shared/validator"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Todo
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Todo, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/{todoId}", handler.GetTodo)
		routerGroup.Patch("/{todoId}", handler.UpdateTodo)
		routerGroup.Delete("/{todoId}", handler.DeleteTodo)
		routerGroup.Post("/{todoId}/attachment", handler.CreateAttachmentURL)
	})
}

func userID(request *http.Request) string {
	user, _ := request.Context().Value(constant.ContextKeyUserID).(string)

	return user
}

// GetTodos lists the caller's todo items.
// @Summary Get all todo items
// @Description Retrieve every todo item owned by the authenticated user.
// @Tags Todo
// @Produce json
// @Success 200 {object} dto.GetTodosResponse "List of todo items"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos [get]
// @Security BearerAuth
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.GetAll(ctx, userID(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a new todo item
// @Description Create a todo item for the authenticated user. done defaults to false.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 201 {object} dto.GetTodoResponse "Created todo item"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos [post]
// @Security BearerAuth
func (handler *Handler) CreateTodo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	todo, err := handler.service.Create(ctx, userID(request), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Todo created successfully by user " + todo.Item.UserID)

	response.WithJSON(writer, http.StatusCreated, todo)
}

// GetTodo retrieves one of the caller's todo items.
// @Summary Get a todo item by ID
// @Tags Todo
// @Produce json
// @Param todoId path string true "Todo ID"
// @Success 200 {object} dto.GetTodoResponse "Todo item details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId} [get]
// @Security BearerAuth
func (handler *Handler) GetTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodo")
	defer scope.End()

	todoID := chi.URLParam(r, constant.RequestParamTodoID)

	todo, err := handler.service.Get(ctx, userID(r), todoID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to get todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// UpdateTodo replaces name, dueDate and done of an existing todo item.
// @Summary Update a todo item by ID
// @Description Fields missing from the body are stored as empty values.
// @Tags Todo
// @Accept json
// @Produce json
// @Param todoId path string true "Todo ID"
// @Param request body dto.UpdateTodoRequest true "Update Todo Request"
// @Success 200 {object} dto.UpdateTodoResponse "Updated fields"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	todoID := chi.URLParam(r, constant.RequestParamTodoID)

	req := dto.UpdateTodoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	updated, err := handler.service.Update(ctx, userID(r), todoID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated successfully")

	response.WithJSON(w, http.StatusOK, updated)
}

// DeleteTodo removes a todo item. Deleting an unknown item succeeds.
// @Summary Delete a todo item by ID
// @Tags Todo
// @Produce json
// @Param todoId path string true "Todo ID"
// @Success 200 {object} dto.DeleteTodoResponse "Deleted todo id"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	todoID := chi.URLParam(r, constant.RequestParamTodoID)

	deleted, err := handler.service.Delete(ctx, userID(r), todoID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithJSON(w, http.StatusOK, deleted)
}

// CreateAttachmentURL returns a presigned URL for uploading the item's attachment.
// @Summary Get an attachment upload URL
// @Tags Todo
// @Produce json
// @Param todoId path string true "Todo ID"
// @Success 200 {object} dto.UploadURLResponse "Presigned upload URL"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{todoId}/attachment [post]
// @Security BearerAuth
func (handler *Handler) CreateAttachmentURL(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAttachmentURL")
	defer scope.End()

	todoID := chi.URLParam(r, constant.RequestParamTodoID)

	upload, err := handler.service.CreateAttachmentURL(ctx, userID(r), todoID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to create attachment upload url")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, upload)
}
