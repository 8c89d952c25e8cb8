package dto

import (
	"time"

	"todoapp/internal/domains/todo/model"
	"todoapp/shared/constant"
)

type CreateTodoRequest struct {
	Name    string `json:"name"    validate:"required,notblank,max=255"`
	DueDate string `json:"dueDate" validate:"omitempty,isodate"`
	Done    *bool  `json:"done"`
}

// ToModel builds the record to persist. Every field is set here: ids, timestamp
// and attachment location come from the caller, done defaults to false.
func (c *CreateTodoRequest) ToModel(userID, todoID string, createdAt time.Time, attachmentURL string) model.TodoItem {
	done := false
	if c.Done != nil {
		done = *c.Done
	}

	return model.TodoItem{
		UserID:        userID,
		TodoID:        todoID,
		CreatedAt:     createdAt.UTC().Format(constant.DateFormat),
		Name:          c.Name,
		DueDate:       c.DueDate,
		Done:          done,
		AttachmentURL: attachmentURL,
	}
}

// UpdateTodoRequest always replaces all three fields; omitted ones are written as zero values.
type UpdateTodoRequest struct {
	Name    string `json:"name"    validate:"max=255"`
	DueDate string `json:"dueDate" validate:"omitempty,isodate"`
	Done    bool   `json:"done"`
}

func (u *UpdateTodoRequest) ToModel() model.TodoUpdate {
	return model.TodoUpdate{
		Name:    u.Name,
		DueDate: u.DueDate,
		Done:    u.Done,
	}
}

type TodoResponse struct {
	UserID        string `json:"userId"`
	TodoID        string `json:"todoId"`
	CreatedAt     string `json:"createdAt"`
	Name          string `json:"name"`
	DueDate       string `json:"dueDate"`
	Done          bool   `json:"done"`
	AttachmentURL string `json:"attachmentUrl"`
}

func (r *TodoResponse) FromModel(model model.TodoItem) {
	r.UserID = model.UserID
	r.TodoID = model.TodoID
	r.CreatedAt = model.CreatedAt
	r.Name = model.Name
	r.DueDate = model.DueDate
	r.Done = model.Done
	r.AttachmentURL = model.AttachmentURL
}

type TodoUpdateResponse struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
	Done    bool   `json:"done"`
}

func (r *TodoUpdateResponse) FromModel(model model.TodoUpdate) {
	r.Name = model.Name
	r.DueDate = model.DueDate
	r.Done = model.Done
}

type GetTodoResponse struct {
	Item TodoResponse `json:"item"`
}

type UpdateTodoResponse struct {
	Item TodoUpdateResponse `json:"item"`
}

type GetTodosResponse struct {
	Items []TodoResponse `json:"items"`
}

func (r *GetTodosResponse) FromModels(models []model.TodoItem) {
	r.Items = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type DeleteTodoResponse struct {
	TodoID string `json:"todoId"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}
