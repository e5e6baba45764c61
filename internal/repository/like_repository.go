package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LikeRepository interface {
	// Toggle flips the like state for (requirementID, username) and keeps
	// the cached likes counter on the requirement in step, all inside one
	// transaction. It reports the new liked state and whether the
	// requirement exists.
	Toggle(ctx context.Context, requirementID uuid.UUID, username string) (liked bool, found bool, err error)
	Exists(ctx context.Context, requirementID uuid.UUID, username string) (bool, error)
	CountByRequirement(ctx context.Context, requirementID uuid.UUID) (int, error)
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Toggle(ctx context.Context, requirementID uuid.UUID, username string) (bool, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, false, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM requirements WHERE id = $1)`, requirementID); err != nil {
		return false, false, err
	}
	if !exists {
		return false, false, nil
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE requirement_id = $1 AND username = $2`,
		requirementID, username)
	if err != nil {
		return false, false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, false, err
	}

	var liked bool
	if deleted > 0 {
		liked = false
		// likes > 0 guard keeps the counter non-negative even if it ever drifted.
		if _, err := tx.ExecContext(ctx,
			`UPDATE requirements SET likes = likes - 1 WHERE id = $1 AND likes > 0`,
			requirementID); err != nil {
			return false, false, err
		}
	} else {
		liked = true
		res, err := tx.ExecContext(ctx,
			`INSERT INTO likes (id, requirement_id, username)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (requirement_id, username) DO NOTHING`,
			uuid.New(), requirementID, username)
		if err != nil {
			return false, false, err
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return false, false, err
		}
		// A lost conflict means a concurrent toggle already inserted the row
		// and bumped the counter; incrementing again would double-apply.
		if inserted > 0 {
			if _, err := tx.ExecContext(ctx,
				`UPDATE requirements SET likes = likes + 1 WHERE id = $1`,
				requirementID); err != nil {
				return false, false, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, false, err
	}
	return liked, true, nil
}

func (r *likeRepository) Exists(ctx context.Context, requirementID uuid.UUID, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE requirement_id = $1 AND username = $2)`
	err := r.db.GetContext(ctx, &exists, query, requirementID, username)
	return exists, err
}

func (r *likeRepository) CountByRequirement(ctx context.Context, requirementID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM likes WHERE requirement_id = $1`
	err := r.db.GetContext(ctx, &count, query, requirementID)
	return count, err
}
