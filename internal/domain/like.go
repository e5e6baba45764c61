package domain

import (
	"time"

	"github.com/google/uuid"
)

// Like records one user's vote on one requirement. The store enforces
// UNIQUE(requirement_id, username); presence means liked.
type Like struct {
	ID            uuid.UUID `json:"id" db:"id"`
	RequirementID uuid.UUID `json:"requirement_id" db:"requirement_id"`
	Username      string    `json:"username" db:"username"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
