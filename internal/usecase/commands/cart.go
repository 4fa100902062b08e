package commands

import (
	"context"

	"course-market/internal/infra"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound    = errs.New("course not found")
	ErrCourseUnavailable = errs.New("course is not available")
	ErrAlreadyEnrolled   = errs.New("course already enrolled")
	ErrAlreadyInCart     = errs.New("course already in cart")
	ErrCartItemNotFound  = errs.New("cart item not found")
)

type CartCommands interface {
	Add(ctx context.Context, userID, courseID uuid.UUID) error
	Remove(ctx context.Context, userID, courseID uuid.UUID) error
}

type cartCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCartCommands(uow shared.UnitOfWork) CartCommands {
	return &cartCommandsImpl{uow: uow}
}

func (uc *cartCommandsImpl) Add(ctx context.Context, userID, courseID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
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

		enrolled, err := tx.Reads().EnrollmentExists(ctx, userID, courseID)
		if err != nil {
			return err
		}
		if enrolled {
			return ErrAlreadyEnrolled
		}

		if err := tx.Cart().Add(ctx, tx.DB(), userID, courseID); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyInCart
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCourseNotFound
			}
			return err
		}
		return nil
	})
}

func (uc *cartCommandsImpl) Remove(ctx context.Context, userID, courseID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Cart().Remove(ctx, tx.DB(), userID, courseID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}
		return nil
	})
}
