package commands

import (
	"context"
	"fmt"
	"log/slog"

	"course-market/internal/domain/order"
	"course-market/internal/infra"
	"course-market/internal/infra/db"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFoundWrite  = errs.New("order not found")
	ErrOrderAlreadySettled = errs.New("order already settled")
)

// OrderFinalizer applies the pending → terminal transition. Complete also
// grants enrollments and clears the paid-for cart rows in the same
// transaction; both paths emit a post-commit notification that is never
// allowed to fail the workflow.
type OrderFinalizer interface {
	Complete(ctx context.Context, orderID uuid.UUID) error
	Fail(ctx context.Context, orderID uuid.UUID, reason string) error
}

type orderFinalizerImpl struct {
	uow              shared.UnitOfWork
	notificationRepo shared.NotificationRepository
}

func NewOrderFinalizer(uow shared.UnitOfWork, notificationRepo shared.NotificationRepository) OrderFinalizer {
	return &orderFinalizerImpl{uow: uow, notificationRepo: notificationRepo}
}

func (f *orderFinalizerImpl) Complete(ctx context.Context, orderID uuid.UUID) error {
	var (
		userID      uuid.UUID
		courseCount int
	)
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().OrderByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFoundWrite
			}
			return err
		}
		if snap.Status.IsTerminal() {
			return ErrOrderAlreadySettled
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, order.StatusCompleted); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrOrderAlreadySettled
			}
			return err
		}

		courseIDs := make([]uuid.UUID, 0, len(snap.Lines))
		for _, line := range snap.Lines {
			courseIDs = append(courseIDs, line.CourseID)
		}
		if err := tx.Cart().DeleteLines(ctx, tx.DB(), snap.UserID, courseIDs); err != nil {
			return err
		}

		for _, line := range snap.Lines {
			if _, err := tx.Enrollments().Upsert(ctx, tx.DB(), snap.UserID, line.CourseID); err != nil {
				return err
			}
		}

		userID = snap.UserID
		courseCount = len(snap.Lines)
		return nil
	})
	if err != nil {
		return err
	}

	f.notify(ctx, userID, fmt.Sprintf("Payment confirmed. You now have access to %d course(s).", courseCount))
	return nil
}

func (f *orderFinalizerImpl) Fail(ctx context.Context, orderID uuid.UUID, reason string) error {
	var userID uuid.UUID
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().OrderByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFoundWrite
			}
			return err
		}
		if snap.Status.IsTerminal() {
			return ErrOrderAlreadySettled
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, order.StatusFailed); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrOrderAlreadySettled
			}
			return err
		}

		userID = snap.UserID
		return nil
	})
	if err != nil {
		return err
	}

	f.notify(ctx, userID, "Payment failed: "+reason)
	return nil
}

// notify runs outside the transition transaction so a broken notifications
// table can never roll back a settled order.
func (f *orderFinalizerImpl) notify(ctx context.Context, userID uuid.UUID, message string) {
	err := f.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return f.notificationRepo.Create(ctx, dbtx, userID, message)
	})
	if err != nil {
		slog.Warn("notification insert failed", "user_id", userID, "error", err.Error())
	}
}
