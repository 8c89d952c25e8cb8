package model

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldUserID        = "userId"
	FieldTodoID        = "todoId"
	FieldCreatedAt     = "createdAt"
	FieldName          = "name"
	FieldDueDate       = "dueDate"
	FieldDone          = "done"
	FieldAttachmentURL = "attachmentUrl"

	ColumnUserID        = "user_id"
	ColumnTodoID        = "todo_id"
	ColumnCreatedAt     = "created_at"
	ColumnName          = "name"
	ColumnDueDate       = "due_date"
	ColumnDone          = "done"
	ColumnAttachmentURL = "attachment_url"
)

// TodoItem is the persisted record. UserID, TodoID, CreatedAt and
// AttachmentURL never change after creation.
type TodoItem struct {
	UserID        string `db:"user_id"        dynamodbav:"userId"`
	TodoID        string `db:"todo_id"        dynamodbav:"todoId"`
	CreatedAt     string `db:"created_at"     dynamodbav:"createdAt"`
	Name          string `db:"name"           dynamodbav:"name"`
	DueDate       string `db:"due_date"       dynamodbav:"dueDate"`
	Done          bool   `db:"done"           dynamodbav:"done"`
	AttachmentURL string `db:"attachment_url" dynamodbav:"attachmentUrl"`
}

func (t TodoItem) Key() Key {
	return Key{UserID: t.UserID, TodoID: t.TodoID}
}

// Mutable returns the fields an update replaces.
func (t TodoItem) Mutable() TodoUpdate {
	return TodoUpdate{Name: t.Name, DueDate: t.DueDate, Done: t.Done}
}

// Apply overwrites the mutable fields as a set.
func (t *TodoItem) Apply(update TodoUpdate) {
	t.Name = update.Name
	t.DueDate = update.DueDate
	t.Done = update.Done
}

// TodoUpdate is the mutable projection of TodoItem.
type TodoUpdate struct {
	Name    string `db:"name"     dynamodbav:"name"`
	DueDate string `db:"due_date" dynamodbav:"dueDate"`
	Done    bool   `db:"done"     dynamodbav:"done"`
}

// Key identifies a record. Every store access is scoped by both parts.
type Key struct {
	UserID string `db:"user_id" dynamodbav:"userId"`
	TodoID string `db:"todo_id" dynamodbav:"todoId"`
}
