package readstore

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const listNotificationsByUserSQL = `
SELECT id, message, is_read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 100`

func (s *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, listNotificationsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var view queries.NotificationView
		if err := rows.Scan(&view.ID, &view.Message, &view.IsRead, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification rows", err)
	}
	return views, nil
}
