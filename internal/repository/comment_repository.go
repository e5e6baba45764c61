package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"requirement-pool/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListByRequirement(ctx context.Context, requirementID uuid.UUID) ([]domain.Comment, error)
	ListAll(ctx context.Context) ([]domain.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, requirement_id, username, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.RequirementID, comment.Username, comment.Content,
	).Scan(&comment.CreatedAt)
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *commentRepository) ListByRequirement(ctx context.Context, requirementID uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments WHERE requirement_id = $1 ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &comments, query, requirementID)
	return comments, err
}

func (r *commentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments ORDER BY created_at ASC`
	err := r.db.SelectContext(ctx, &comments, query)
	return comments, err
}
