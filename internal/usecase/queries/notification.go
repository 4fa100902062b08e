package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationViewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error) {
	return q.repo.ListByUser(ctx, userID)
}
