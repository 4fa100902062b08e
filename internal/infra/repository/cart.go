package repository

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

const insertCartItemSQL = `
INSERT INTO cart_items (user_id, course_id, created_at)
VALUES ($1, $2, now())`

func (r *CartRepository) Add(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID) error {
	if _, err := tx.Exec(ctx, insertCartItemSQL, userID, courseID); err != nil {
		return wrapPgError("failed to add cart item", err)
	}
	return nil
}

const deleteCartItemSQL = `
DELETE FROM cart_items WHERE user_id = $1 AND course_id = $2`

func (r *CartRepository) Remove(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteCartItemSQL, userID, courseID)
	if err != nil {
		return wrapPgError("failed to remove cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteCartLinesSQL = `
DELETE FROM cart_items WHERE user_id = $1 AND course_id = ANY($2)`

// DeleteLines is idempotent: deleting already-absent rows is not an error,
// which is what makes the Completed transition safe to re-run.
func (r *CartRepository) DeleteLines(ctx context.Context, tx db.DBTX, userID uuid.UUID, courseIDs []uuid.UUID) error {
	if len(courseIDs) == 0 {
		return nil
	}
	if _, err := tx.Exec(ctx, deleteCartLinesSQL, userID, courseIDs); err != nil {
		return wrapPgError("failed to delete cart lines", err)
	}
	return nil
}
