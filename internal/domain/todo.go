package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Todo is a task on the user's list. TagID is optional; a todo without a tag
// is uncategorized. Priority is optional and only used for ordering.
type Todo struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TagID       *uuid.UUID
	Title       string
	Description *string
	Completed   bool
	Priority    *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks title and description constraints.
func (t *Todo) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if len(t.Title) > 255 {
		errs = append(errs, FieldError{Field: "title", Message: "too long (max 255)"})
	}

	if t.Description != nil && len(*t.Description) > 1000 {
		errs = append(errs, FieldError{Field: "description", Message: "too long (max 1000)"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
