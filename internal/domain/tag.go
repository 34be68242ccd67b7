package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tag is a per-user label used to categorize todos and time blocks.
// The label is unique per user; the color is a 6-digit hex string without "#".
type Tag struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Label     string
	HexColor  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeletedTagColor is substituted when a breakdown references a tag that no
// longer exists.
const DeletedTagColor = "000000"

// Validate checks label and color constraints.
func (t *Tag) Validate() error {
	var errs []FieldError

	label := strings.TrimSpace(t.Label)
	if label == "" {
		errs = append(errs, FieldError{Field: "label", Message: "required"})
	}
	if len(t.Label) > 50 {
		errs = append(errs, FieldError{Field: "label", Message: "too long (max 50)"})
	}

	if !isHexColor(t.HexColor) {
		errs = append(errs, FieldError{Field: "hex_color", Message: "must be 6 hex characters"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
