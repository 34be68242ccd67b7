package domain

import (
	"time"

	"github.com/google/uuid"
)

// TodoFilter contains filtering parameters for todo listings.
// Nil fields mean "no filter".
type TodoFilter struct {
	Completed *bool
	TagID     *uuid.UUID
}

// TimeBlockFilter contains filtering/pagination parameters for time block
// listings. Nil fields mean "no filter". From/To bound started_at as a
// half-open interval [From, To).
type TimeBlockFilter struct {
	From    *time.Time
	To      *time.Time
	Purpose *BlockPurpose
	TagID   *uuid.UUID
	TodoID  *uuid.UUID
	Limit   int
	Offset  int
}
