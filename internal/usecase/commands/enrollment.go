package commands

import (
	"context"

	"course-market/internal/domain/order"
	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotFreeCourse = errs.New("course requires payment")

type EnrollmentCommands interface {
	// EnrollFree enrolls directly into a zero-price course. Paid courses must
	// go through checkout; the grant itself still travels the order ledger so
	// every enrollment has a completed order behind it.
	EnrollFree(ctx context.Context, userID, courseID uuid.UUID) (*CreatePaymentResult, error)
}

type enrollmentCommandsImpl struct {
	uow       shared.UnitOfWork
	finalizer OrderFinalizer
	clock     clock.Clock
}

func NewEnrollmentCommands(uow shared.UnitOfWork, finalizer OrderFinalizer, clk clock.Clock) EnrollmentCommands {
	return &enrollmentCommandsImpl{uow: uow, finalizer: finalizer, clock: clk}
}

func (uc *enrollmentCommandsImpl) EnrollFree(ctx context.Context, userID, courseID uuid.UUID) (*CreatePaymentResult, error) {
	var orderID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		course, err := tx.Reads().CourseByID(ctx, courseID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCourseNotFound
			}
			return err
		}
		if !course.Published {
			return ErrCourseUnavailable
		}
		if course.Price != 0 {
			return ErrNotFreeCourse
		}

		enrolled, err := tx.Reads().EnrollmentExists(ctx, userID, courseID)
		if err != nil {
			return err
		}
		if enrolled {
			return ErrAlreadyEnrolled
		}

		line, err := order.NewLine(courseID, 0)
		if err != nil {
			return err
		}
		ord, err := order.NewFromCart(userID, []order.Line{line}, nil, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, tx.DB(), ord); err != nil {
			return err
		}
		orderID = ord.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.finalizer.Complete(ctx, orderID); err != nil {
		return nil, err
	}
	return &CreatePaymentResult{OrderID: orderID, IsFree: true}, nil
}
