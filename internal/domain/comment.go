package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID            uuid.UUID `json:"id" db:"id"`
	RequirementID uuid.UUID `json:"-" db:"requirement_id"`
	Username      string    `json:"username" db:"username"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Suggestion is structurally a Comment but tracked as its own relation:
// the product treats implementation proposals and general remarks as
// separate concerns with independent deletion.
type Suggestion struct {
	ID            uuid.UUID `json:"id" db:"id"`
	RequirementID uuid.UUID `json:"-" db:"requirement_id"`
	Username      string    `json:"username" db:"username"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type CreateCommentInput struct {
	Username string `json:"username" validate:"required,min=1"`
	Content  string `json:"content" validate:"required,min=1,max=2000"`
}
