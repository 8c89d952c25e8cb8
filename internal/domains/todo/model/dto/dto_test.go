package dto_test

import (
	"testing"
	"time"

	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreateTodoRequest_ToModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.FixedZone("WIB", 7*60*60))
	done := true

	tests := []struct {
		name     string
		req      dto.CreateTodoRequest
		wantDone bool
	}{
		{
			name:     "done defaults to false",
			req:      dto.CreateTodoRequest{Name: "Buy milk", DueDate: "2025-01-10"},
			wantDone: false,
		},
		{
			name:     "explicit done is kept",
			req:      dto.CreateTodoRequest{Name: "Buy milk", Done: &done},
			wantDone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.req.ToModel("u1", "todo-1", createdAt, "https://bucket/todo-1")

			assert.Equal(t, model.TodoItem{
				UserID:        "u1",
				TodoID:        "todo-1",
				CreatedAt:     "2025-01-01T20:04:05.678Z",
				Name:          tt.req.Name,
				DueDate:       tt.req.DueDate,
				Done:          tt.wantDone,
				AttachmentURL: "https://bucket/todo-1",
			}, item)
		})
	}
}

func TestUpdateTodoRequest_ToModel(t *testing.T) {
	req := dto.UpdateTodoRequest{Name: "Buy milk and eggs", Done: true}

	assert.Equal(t, model.TodoUpdate{Name: "Buy milk and eggs", DueDate: "", Done: true}, req.ToModel())
}

func TestTodoResponse_FromModel(t *testing.T) {
	item := model.TodoItem{
		UserID:        "u1",
		TodoID:        "todo-1",
		CreatedAt:     "2025-01-01T00:00:00.000Z",
		Name:          "Buy milk",
		DueDate:       "2025-01-10",
		Done:          true,
		AttachmentURL: "https://bucket/todo-1",
	}

	var res dto.TodoResponse
	res.FromModel(item)

	assert.Equal(t, dto.TodoResponse{
		UserID:        "u1",
		TodoID:        "todo-1",
		CreatedAt:     "2025-01-01T00:00:00.000Z",
		Name:          "Buy milk",
		DueDate:       "2025-01-10",
		Done:          true,
		AttachmentURL: "https://bucket/todo-1",
	}, res)
}

func TestGetTodosResponse_FromModels(t *testing.T) {
	var empty dto.GetTodosResponse
	empty.FromModels(nil)

	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)

	var res dto.GetTodosResponse
	res.FromModels([]model.TodoItem{{TodoID: "a"}, {TodoID: "b"}})

	assert.Len(t, res.Items, 2)
	assert.Equal(t, "a", res.Items[0].TodoID)
	assert.Equal(t, "b", res.Items[1].TodoID)
}

func TestTodoItem_ApplyKeepsImmutableFields(t *testing.T) {
	item := model.TodoItem{
		UserID:        "u1",
		TodoID:        "todo-1",
		CreatedAt:     "2025-01-01T00:00:00.000Z",
		Name:          "Buy milk",
		DueDate:       "2025-01-10",
		AttachmentURL: "https://bucket/todo-1",
	}

	item.Apply(model.TodoUpdate{Name: "A", DueDate: "2025-01-01", Done: true})

	assert.Equal(t, model.TodoUpdate{Name: "A", DueDate: "2025-01-01", Done: true}, item.Mutable())
	assert.Equal(t, model.Key{UserID: "u1", TodoID: "todo-1"}, item.Key())
	assert.Equal(t, "2025-01-01T00:00:00.000Z", item.CreatedAt)
	assert.Equal(t, "https://bucket/todo-1", item.AttachmentURL)
}

func TestRequests_DueDateFormats(t *testing.T) {
	dueDates := []string{
		"2025-01-10",
		"2025-01-10T10:00:00Z",
		"2025-01-01T00:00:00.123456789+05:30",
	}

	for _, dueDate := range dueDates {
		t.Run(dueDate, func(t *testing.T) {
			assert.NoError(t, validator.ValidateStruct(&dto.CreateTodoRequest{Name: "Buy milk", DueDate: dueDate}))
			assert.NoError(t, validator.ValidateStruct(&dto.UpdateTodoRequest{Name: "Buy milk", DueDate: dueDate}))
		})
	}

	assert.Error(t, validator.ValidateStruct(&dto.CreateTodoRequest{Name: "Buy milk", DueDate: "10/01/2025"}))
}
