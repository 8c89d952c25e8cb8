package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"todoapp/infras/otel"
	s3Mocks "todoapp/infras/s3/mocks"
	todoMocks "todoapp/internal/domains/todo/mocks"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/constant"
	"todoapp/shared/failure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const attachmentBase = "https://todo-attachments.s3.amazonaws.com/"

func attachmentURL(todoID string) string {
	return attachmentBase + todoID
}

func newMockS3(ctrl *gomock.Controller) *s3Mocks.MockS3 {
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockS3.EXPECT().AttachmentURL(gomock.Any()).DoAndReturn(attachmentURL).AnyTimes()

	return mockS3
}

func TestTodoService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, newMockS3(ctrl), otel.NewNoop())

	tests := []struct {
		name      string
		userID    string
		setupMock func()
		wantLen   int
		wantCode  int
		wantErr   bool
	}{
		{
			name:   "user without items",
			userID: "u1",
			setupMock: func() {
				mockRepo.EXPECT().GetAllByUser(gomock.Any(), "u1").Return([]model.TodoItem{}, nil)
			},
			wantLen: 0,
		},
		{
			name:   "user with items",
			userID: "u1",
			setupMock: func() {
				mockRepo.EXPECT().GetAllByUser(gomock.Any(), "u1").Return([]model.TodoItem{{UserID: "u1", TodoID: "a"}}, nil)
			},
			wantLen: 1,
		},
		{
			name:      "missing user",
			userID:    "",
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
			wantErr:   true,
		},
		{
			name:   "store error",
			userID: "u1",
			setupMock: func() {
				mockRepo.EXPECT().GetAllByUser(gomock.Any(), "u1").Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, res.Items)
				assert.Len(t, res.Items, tt.wantLen)
			}
		})
	}
}

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, newMockS3(ctrl), otel.NewNoop())

	done := true

	tests := []struct {
		name      string
		userID    string
		req       dto.CreateTodoRequest
		setupMock func()
		wantDone  bool
		wantErr   bool
	}{
		{
			name:   "successful creation",
			userID: "u1",
			req:    dto.CreateTodoRequest{Name: "Buy milk", DueDate: "2025-01-10"},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantDone: false,
		},
		{
			name:   "explicit done",
			userID: "u1",
			req:    dto.CreateTodoRequest{Name: "Buy milk", Done: &done},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantDone: true,
		},
		{
			name:      "missing user",
			req:       dto.CreateTodoRequest{Name: "Buy milk"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "missing name",
			userID:    "u1",
			req:       dto.CreateTodoRequest{DueDate: "2025-01-10"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:   "repository error",
			userID: "u1",
			req:    dto.CreateTodoRequest{Name: "Buy milk"},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			before := time.Now().UTC().Add(-time.Second)
			res, err := svc.Create(context.Background(), tt.userID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			item := res.Item
			parsed, parseErr := uuid.Parse(item.TodoID)
			require.NoError(t, parseErr)
			assert.Equal(t, uuid.Version(4), parsed.Version())

			assert.Equal(t, tt.userID, item.UserID)
			assert.Equal(t, tt.req.Name, item.Name)
			assert.Equal(t, tt.req.DueDate, item.DueDate)
			assert.Equal(t, tt.wantDone, item.Done)
			assert.Equal(t, attachmentURL(item.TodoID), item.AttachmentURL)

			createdAt, parseErr := time.Parse(constant.DateFormat, item.CreatedAt)
			require.NoError(t, parseErr)
			assert.False(t, createdAt.Before(before))
		})
	}
}

func TestTodoService_CreatePersistsReturnedItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, newMockS3(ctrl), otel.NewNoop())

	var stored model.TodoItem

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item model.TodoItem) error {
			stored = item

			return nil
		})

	res, err := svc.Create(context.Background(), "u1", dto.CreateTodoRequest{Name: "Buy milk"})
	require.NoError(t, err)

	var want dto.TodoResponse
	want.FromModel(stored)

	assert.Equal(t, want, res.Item)
}

func TestTodoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, newMockS3(ctrl), otel.NewNoop())

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), model.Key{UserID: "u1", TodoID: "a"}).
					Return(model.TodoItem{UserID: "u1", TodoID: "a", Name: "Buy milk"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TodoItem{}, repository.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "store error",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TodoItem{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "u1", "a")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Buy milk", res.Item.Name)
			}
		})
	}
}

func TestTodoService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, newMockS3(ctrl), otel.NewNoop())

	req := dto.UpdateTodoRequest{Name: "Buy milk and eggs", DueDate: "2025-01-11", Done: true}
	update := model.TodoUpdate{Name: "Buy milk and eggs", DueDate: "2025-01-11", Done: true}

	tests := []struct {
		name      string
		userID    string
		todoID    string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name:   "successful update",
			userID: "u1",
			todoID: "a",
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), model.Key{UserID: "u1", TodoID: "a"}, update).Return(update, nil)
			},
		},
		{
			name:   "unknown record",
			userID: "u1",
			todoID: "missing",
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), update).Return(model.TodoUpdate{}, repository.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name:      "missing user",
			todoID:    "a",
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
			wantErr:   true,
		},
		{
			name:      "missing todo id",
			userID:    "u1",
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:   "store error",
			userID: "u1",
			todoID: "a",
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), update).Return(model.TodoUpdate{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.userID, tt.todoID, req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, dto.TodoUpdateResponse{Name: req.Name, DueDate: req.DueDate, Done: req.Done}, res.Item)
			}
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, newMockS3(ctrl), otel.NewNoop())

	mockRepo.EXPECT().Delete(gomock.Any(), model.Key{UserID: "u1", TodoID: "a"}).Return(nil)

	res, err := svc.Delete(context.Background(), "u1", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", res.TodoID)

	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	_, err = svc.Delete(context.Background(), "u1", "a")
	assert.Error(t, err)
}

func TestTodoService_CreateAttachmentURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockS3 := newMockS3(ctrl)
	svc := service.New(mockRepo, mockS3, otel.NewNoop())

	tests := []struct {
		name      string
		setupMock func()
		wantURL   string
		wantCode  int
		wantErr   bool
	}{
		{
			name: "owner gets upload url",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), model.Key{UserID: "u1", TodoID: "a"}).Return(model.TodoItem{UserID: "u1", TodoID: "a"}, nil)
				mockS3.EXPECT().UploadURL(gomock.Any(), "a").Return("https://signed/a?X-Amz-Signature=x", nil)
			},
			wantURL: "https://signed/a?X-Amz-Signature=x",
		},
		{
			name: "record of another user",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TodoItem{}, repository.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "signing error",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TodoItem{UserID: "u1", TodoID: "a"}, nil)
				mockS3.EXPECT().UploadURL(gomock.Any(), "a").Return("", errors.New("no credentials"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.CreateAttachmentURL(context.Background(), "u1", "a")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantURL, res.UploadURL)
			}
		})
	}
}

func newMemoryService(t *testing.T) service.Todo {
	t.Helper()

	ctrl := gomock.NewController(t)

	return service.New(repository.NewMemory(otel.NewNoop()), newMockS3(ctrl), otel.NewNoop())
}

func TestTodoService_Scenario(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t)

	list, err := svc.GetAll(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)

	created, err := svc.Create(ctx, "u1", dto.CreateTodoRequest{Name: "Buy milk"})
	require.NoError(t, err)

	item := created.Item
	assert.False(t, item.Done)
	assert.Contains(t, item.AttachmentURL, item.TodoID)

	list, err = svc.GetAll(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []dto.TodoResponse{item}, list.Items)

	other, err := svc.GetAll(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)

	updated, err := svc.Update(ctx, "u1", item.TodoID, dto.UpdateTodoRequest{Name: "Buy milk and eggs", DueDate: "", Done: true})
	require.NoError(t, err)
	assert.Equal(t, dto.TodoUpdateResponse{Name: "Buy milk and eggs", DueDate: "", Done: true}, updated.Item)

	list, err = svc.GetAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.True(t, list.Items[0].Done)

	deleted, err := svc.Delete(ctx, "u1", item.TodoID)
	require.NoError(t, err)
	assert.Equal(t, item.TodoID, deleted.TodoID)

	list, err = svc.GetAll(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestTodoService_UpdateChangesOnlyMutableFields(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t)

	created, err := svc.Create(ctx, "u1", dto.CreateTodoRequest{Name: "Buy milk", DueDate: "2025-01-10"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "u1", created.Item.TodoID, dto.UpdateTodoRequest{Name: "A", DueDate: "2025-01-01", Done: true})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u1", created.Item.TodoID)
	require.NoError(t, err)

	want := created.Item
	want.Name = "A"
	want.DueDate = "2025-01-01"
	want.Done = true

	assert.Equal(t, want, got.Item)
}

func TestTodoService_OwnershipAndIdempotentDelete(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService(t)

	created, err := svc.Create(ctx, "u1", dto.CreateTodoRequest{Name: "Buy milk"})
	require.NoError(t, err)

	todoID := created.Item.TodoID

	_, err = svc.Get(ctx, "u2", todoID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = svc.Update(ctx, "u2", todoID, dto.UpdateTodoRequest{Name: "hijack"})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = svc.CreateAttachmentURL(ctx, "u2", todoID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = svc.Update(ctx, "u1", "never-existed", dto.UpdateTodoRequest{Name: "x"})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	list, err := svc.GetAll(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list.Items, 1, "update of an unknown id must not create a record")

	_, err = svc.Delete(ctx, "u1", "never-existed")
	assert.NoError(t, err)

	_, err = svc.Delete(ctx, "u2", todoID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, "u1", todoID)
	assert.NoError(t, err, "another user's delete must not remove the record")
}

func TestTodoService_ConcurrentCreatesAreUnique(t *testing.T) {
	const workers = 50

	ctx := context.Background()
	svc := newMemoryService(t)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[string]struct{}{}
		url = map[string]struct{}{}
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := svc.Create(ctx, "u1", dto.CreateTodoRequest{Name: "Buy milk"})
			assert.NoError(t, err)

			mu.Lock()
			ids[res.Item.TodoID] = struct{}{}
			url[res.Item.AttachmentURL] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, ids, workers)
	assert.Len(t, url, workers)

	list, err := svc.GetAll(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list.Items, workers)
}
