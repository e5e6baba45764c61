package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusSubmitted  Status = "submitted"
	StatusDeveloping Status = "developing"
	StatusCompleted  Status = "completed"
)

func ValidStatuses() []Status {
	return []Status{StatusPending, StatusSubmitted, StatusDeveloping, StatusCompleted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusDeveloping, StatusCompleted:
		return true
	}
	return false
}

type Requirement struct {
	ID               uuid.UUID      `json:"id" db:"id"`
	Title            string         `json:"title" db:"title"`
	Description      string         `json:"description" db:"description"`
	Username         string         `json:"username" db:"username"`
	AllowSuggestions bool           `json:"allowSuggestions" db:"allow_suggestions"`
	WillingToPay     bool           `json:"willingToPay" db:"willing_to_pay"`
	PaymentAmount    *float64       `json:"paymentAmount,omitempty" db:"payment_amount"`
	Likes            int            `json:"likes" db:"likes"`
	Tags             pq.StringArray `json:"tags" db:"tags"`
	Images           pq.StringArray `json:"images" db:"images"`
	Status           Status         `json:"status" db:"status"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`

	Comments    []Comment    `json:"comments" db:"-"`
	Suggestions []Suggestion `json:"suggestions" db:"-"`
}

type CreateRequirementInput struct {
	Title            string   `json:"title" validate:"required,min=1"`
	Description      string   `json:"description" validate:"required,min=1"`
	AllowSuggestions bool     `json:"allowSuggestions"`
	WillingToPay     bool     `json:"willingToPay"`
	PaymentAmount    *float64 `json:"paymentAmount,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Images           []string `json:"images,omitempty"`

	// Status lets seeding/import flows skip the default "pending".
	Status string `json:"status,omitempty"`
}
