package queries

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrNotOrderOwner = errs.New("order belongs to another user")
)

type OrderViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	ListAll(ctx context.Context, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	// GetByID enforces ownership; admins read any order via GetByIDSystem.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	ListAll(ctx context.Context, limit int32) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor {
		return nil, ErrNotOrderOwner
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error) {
	return q.repo.ListByUser(ctx, userID)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, limit int32) ([]*OrderListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.ListAll(ctx, limit)
}
