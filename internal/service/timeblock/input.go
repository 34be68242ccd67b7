package timeblock

import (
	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

// StartBlockInput carries the fields for starting a block.
type StartBlockInput struct {
	Purpose                domain.BlockPurpose
	Mode                   domain.BlockMode
	PlannedDurationSeconds *int64
	TodoID                 *uuid.UUID
	TagID                  *uuid.UUID
	Notes                  *string
}

// EndBlockInput carries the fields for ending a block. A non-nil Notes
// replaces the notes recorded at start.
type EndBlockInput struct {
	BlockID uuid.UUID
	Notes   *string
}
