package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"requirement-pool/internal/domain"
)

type RequirementRepository interface {
	Create(ctx context.Context, req *domain.Requirement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error)
	List(ctx context.Context) ([]domain.Requirement, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (bool, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error
}

type requirementRepository struct {
	db *sqlx.DB
}

func NewRequirementRepository(db *sqlx.DB) RequirementRepository {
	return &requirementRepository{db: db}
}

func (r *requirementRepository) Create(ctx context.Context, req *domain.Requirement) error {
	query := `
		INSERT INTO requirements
			(id, title, description, username, allow_suggestions, willing_to_pay,
			 payment_amount, likes, tags, images, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		req.ID, req.Title, req.Description, req.Username,
		req.AllowSuggestions, req.WillingToPay, req.PaymentAmount,
		req.Tags, req.Images, req.Status,
	).Scan(&req.CreatedAt)
}

func (r *requirementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error) {
	var req domain.Requirement
	query := `SELECT * FROM requirements WHERE id = $1`

	err := r.db.GetContext(ctx, &req, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requirementRepository) List(ctx context.Context) ([]domain.Requirement, error) {
	var reqs []domain.Requirement
	query := `SELECT * FROM requirements ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &reqs, query)
	return reqs, err
}

func (r *requirementRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM requirements WHERE id = $1)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

func (r *requirementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (bool, error) {
	query := `UPDATE requirements SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// DeleteCascade removes a requirement together with every row that
// references it, as one transaction. A partial cascade must never be
// observable.
func (r *requirementRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE requirement_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM suggestions WHERE requirement_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE requirement_id = $1`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM requirements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrDeleteFailed
	}

	return tx.Commit()
}

func (r *requirementRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Child relations first, mirroring the foreign-key direction.
	for _, table := range []string{"likes", "suggestions", "comments", "requirements"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}

	return tx.Commit()
}
