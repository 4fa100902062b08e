package readstore

import (
	"context"

	"course-market/internal/domain/order"
	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/pkg/pgconv"
	"course-market/internal/usecase/queries"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderSnapshotSQL = `
SELECT id, user_id, status, total_amount, discounted_amount, promotion_id, created_at
FROM orders
WHERE id = $1`

const orderLinesSQL = `
SELECT course_id, price_amount
FROM order_lines
WHERE order_id = $1`

// FindSnapshotByID rehydrates the order plus its lines for the status
// transition path. Run inside the transition's transaction it gives a
// consistent read of what is about to be finalized.
func (s *OrderReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	var (
		snap      shared.OrderSnapshot
		statusStr string
		promoID   uuid.NullUUID
	)
	err := s.db.QueryRow(ctx, orderSnapshotSQL, id).
		Scan(&snap.ID, &snap.UserID, &statusStr, &snap.TotalAmount, &snap.DiscountedAmount, &promoID, &snap.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	status, err := order.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to parse order status", err)
	}
	snap.Status = status
	snap.PromotionID = pgconv.UUIDPtrFromNull(promoID)

	rows, err := s.db.Query(ctx, orderLinesSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read order lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line shared.OrderLineSnapshot
		if err := rows.Scan(&line.CourseID, &line.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		snap.Lines = append(snap.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}

	return &snap, nil
}

const orderViewSQL = `
SELECT o.id, o.user_id, o.status, o.total_amount, o.discounted_amount, p.code, o.created_at
FROM orders o
LEFT JOIN promotions p ON p.id = o.promotion_id
WHERE o.id = $1`

const orderLineViewsSQL = `
SELECT ol.course_id, c.title, ol.price_amount
FROM order_lines ol
JOIN courses c ON c.id = ol.course_id
WHERE ol.order_id = $1`

func (s *OrderReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var view queries.OrderView
	err := s.db.QueryRow(ctx, orderViewSQL, id).
		Scan(&view.ID, &view.UserID, &view.Status, &view.TotalAmount, &view.DiscountedAmount, &view.PromotionCode, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order view", err)
	}

	rows, err := s.db.Query(ctx, orderLineViewsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read order line views", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line queries.OrderLineView
		if err := rows.Scan(&line.CourseID, &line.Title, &line.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line view", err)
		}
		view.Lines = append(view.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order line views", err)
	}

	return &view, nil
}

const listOrdersByUserSQL = `
SELECT o.id, o.user_id, o.status, o.total_amount, o.discounted_amount,
       (SELECT count(*) FROM order_lines ol WHERE ol.order_id = o.id) AS line_count,
       o.created_at
FROM orders o
WHERE o.user_id = $1
ORDER BY o.created_at DESC`

func (s *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listOrdersByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()

	return scanOrderListItems(rows)
}

const listAllOrdersSQL = `
SELECT o.id, o.user_id, o.status, o.total_amount, o.discounted_amount,
       (SELECT count(*) FROM order_lines ol WHERE ol.order_id = o.id) AS line_count,
       o.created_at
FROM orders o
ORDER BY o.created_at DESC
LIMIT $1`

func (s *OrderReadStore) ListAll(ctx context.Context, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listAllOrdersSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	return scanOrderListItems(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOrderListItems(rows rowScanner) ([]*queries.OrderListItem, error) {
	var items []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Status, &item.TotalAmount, &item.DiscountedAmount, &item.LineCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order list items", err)
	}
	return items, nil
}
