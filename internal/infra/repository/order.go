package repository

import (
	"context"

	"course-market/internal/domain/order"
	"course-market/internal/infra"
	"course-market/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const insertOrderSQL = `
INSERT INTO orders (id, user_id, total_amount, discounted_amount, promotion_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

const insertOrderLineSQL = `
INSERT INTO order_lines (order_id, course_id, price_amount)
VALUES ($1, $2, $3)`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	_, err := tx.Exec(ctx, insertOrderSQL,
		o.ID(),
		o.UserID(),
		o.TotalAmount(),
		o.DiscountedAmount(),
		o.PromotionID(),
		o.Status().String(),
		o.CreatedAt(),
	)
	if err != nil {
		return wrapPgError("failed to create order", err)
	}

	for _, line := range o.Lines() {
		if _, err := tx.Exec(ctx, insertOrderLineSQL, o.ID(), line.CourseID(), line.Price()); err != nil {
			return wrapPgError("failed to create order line", err)
		}
	}

	return nil
}

const updateOrderStatusSQL = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1 AND status = 'pending'`

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status) error {
	tag, err := tx.Exec(ctx, updateOrderStatusSQL, id, status.String())
	if err != nil {
		return wrapPgError("failed to update order status", err)
	}

	// Zero rows means the order vanished or is already terminal; the row
	// guard is what keeps concurrent callbacks from re-finalizing an order.
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order is not pending", nil, infra.KindConflict)
	}

	return nil
}
