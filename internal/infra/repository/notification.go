package repository

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const insertNotificationSQL = `
INSERT INTO notifications (id, user_id, message, is_read, created_at)
VALUES ($1, $2, $3, false, now())`

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, message string) error {
	if _, err := tx.Exec(ctx, insertNotificationSQL, uuid.New(), userID, message); err != nil {
		return wrapPgError("failed to create notification", err)
	}
	return nil
}

const markNotificationReadSQL = `
UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, userID, notificationID uuid.UUID) error {
	tag, err := tx.Exec(ctx, markNotificationReadSQL, notificationID, userID)
	if err != nil {
		return wrapPgError("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
