package queries

import (
	"context"

	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartViewRepo interface {
	LinesByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartLine, error)
}

type CartQueries interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	repo CartViewRepo
}

func NewCartQueries(repo CartViewRepo) CartQueries {
	return &cartQueriesImpl{repo: repo}
}

func (q *cartQueriesImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	lines, err := q.repo.LinesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartItemView, len(lines))}
	for i, l := range lines {
		view.Items[i] = CartItemView{
			CourseID: l.CourseID,
			Title:    l.Title,
			Price:    l.Price,
		}
		view.Total += l.Price
	}
	return view, nil
}
