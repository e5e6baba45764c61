package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"requirement-pool/internal/domain"
)

type SuggestionRepository interface {
	Create(ctx context.Context, suggestion *domain.Suggestion) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListByRequirement(ctx context.Context, requirementID uuid.UUID) ([]domain.Suggestion, error)
	ListAll(ctx context.Context) ([]domain.Suggestion, error)
}

type suggestionRepository struct {
	db *sqlx.DB
}

func NewSuggestionRepository(db *sqlx.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Create(ctx context.Context, suggestion *domain.Suggestion) error {
	query := `
		INSERT INTO suggestions (id, requirement_id, username, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		suggestion.ID, suggestion.RequirementID, suggestion.Username, suggestion.Content,
	).Scan(&suggestion.CreatedAt)
}

func (r *suggestionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM suggestions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *suggestionRepository) ListByRequirement(ctx context.Context, requirementID uuid.UUID) ([]domain.Suggestion, error) {
	var suggestions []domain.Suggestion
	query := `SELECT * FROM suggestions WHERE requirement_id = $1 ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &suggestions, query, requirementID)
	return suggestions, err
}

func (r *suggestionRepository) ListAll(ctx context.Context) ([]domain.Suggestion, error) {
	var suggestions []domain.Suggestion
	query := `SELECT * FROM suggestions ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &suggestions, query)
	return suggestions, err
}
