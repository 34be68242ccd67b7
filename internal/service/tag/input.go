package tag

import (
	"strings"

	"github.com/google/uuid"
)

// CreateTagInput carries the fields for creating a tag.
type CreateTagInput struct {
	Label    string
	HexColor string
}

// UpdateTagInput carries the fields for updating a tag. Both fields are
// required; a tag always has a label and a color.
type UpdateTagInput struct {
	TagID    uuid.UUID
	Label    string
	HexColor string
}

// normalizeColor strips a leading '#' so clients may send either form.
func normalizeColor(c string) string {
	return strings.TrimPrefix(strings.TrimSpace(c), "#")
}
