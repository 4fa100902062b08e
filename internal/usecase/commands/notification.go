package commands

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (uc *notificationCommandsImpl) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().MarkRead(ctx, tx.DB(), userID, notificationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return err
		}
		return nil
	})
}
