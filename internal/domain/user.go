package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Every other entity is owned by exactly one user.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
