package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

// Prices come from the catalog at read time; the cart itself stores none.
const cartLinesSQL = `
SELECT ci.course_id, c.title, c.price_amount
FROM cart_items ci
JOIN courses c ON c.id = ci.course_id
WHERE ci.user_id = $1
ORDER BY ci.created_at`

func (s *CartReadStore) LinesByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartLine, error) {
	rows, err := s.db.Query(ctx, cartLinesSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read cart lines", err)
	}
	defer rows.Close()

	var lines []shared.CartLine
	for rows.Next() {
		var line shared.CartLine
		if err := rows.Scan(&line.CourseID, &line.Title, &line.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart lines", err)
	}
	return lines, nil
}
