package todo

import "github.com/google/uuid"

// CreateTodoInput carries the fields for creating a todo.
type CreateTodoInput struct {
	Title       string
	Description *string
	Priority    *int
	TagID       *uuid.UUID
}

// UpdateTodoInput carries the fields for a partial todo update. Nil pointer
// fields keep the current value. ClearTag removes the tag reference; it wins
// over TagID when both are set.
type UpdateTodoInput struct {
	TodoID      uuid.UUID
	Title       *string
	Description *string
	Priority    *int
	TagID       *uuid.UUID
	ClearTag    bool
}
