package commands

import (
	"context"
	"errors"

	"course-market/internal/domain/order"
	"course-market/internal/domain/promotion"
	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/queries"
	"course-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart        = errs.New("cart is empty")
	ErrInvalidPromotion = errs.New("invalid promotion")
)

type OrderCommands interface {
	// Checkout snapshots the user's cart into a pending order. The cart rows
	// themselves survive until payment settles; only the Completed transition
	// removes them.
	Checkout(ctx context.Context, userID uuid.UUID, promotionCode *string) (*queries.OrderView, error)
}

type orderCommandsImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
	clock        clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, orderQueries queries.OrderQueries, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, orderQueries: orderQueries, clock: clk}
}

func (uc *orderCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID, promotionCode *string) (*queries.OrderView, error) {
	var orderID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cartLines, err := tx.Reads().CartLinesByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartLines) == 0 {
			return ErrEmptyCart
		}

		lines := make([]order.Line, 0, len(cartLines))
		for _, cl := range cartLines {
			line, lerr := order.NewLine(cl.CourseID, cl.Price)
			if lerr != nil {
				return lerr
			}
			lines = append(lines, line)
		}

		var promo *promotion.Promotion
		if promotionCode != nil && *promotionCode != "" {
			snap, perr := tx.Reads().PromotionByCode(ctx, *promotionCode)
			if perr != nil {
				if infra.IsKind(perr, infra.KindNotFound) {
					return ErrInvalidPromotion
				}
				return perr
			}
			promo, perr = promotion.NewPromotion(snap.ID, snap.Code, snap.PercentOff, snap.ValidFrom, snap.ValidTo)
			if perr != nil {
				return errs.Mark(perr, ErrInvalidPromotion)
			}
		}

		ord, derr := order.NewFromCart(userID, lines, promo, uc.clock.Now())
		if derr != nil {
			if errors.Is(derr, promotion.ErrNotYetActive) || errors.Is(derr, promotion.ErrPromotionExpired) {
				return errs.Mark(derr, ErrInvalidPromotion)
			}
			return derr
		}

		if cerr := tx.Orders().Create(ctx, tx.DB(), ord); cerr != nil {
			return cerr
		}
		orderID = ord.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.orderQueries.GetByIDSystem(ctx, orderID)
}
