package queries

import (
	"context"

	"course-market/internal/domain/promotion"
	"course-market/internal/infra"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/shared"
)

var ErrInvalidPromotion = errs.New("invalid promotion")

type PromotionViewRepo interface {
	FindByCode(ctx context.Context, code string) (*shared.PromotionSnapshot, error)
}

// PromotionQueries is the user-facing "is this code valid right now" check.
// Checkout resolves codes through the same snapshot but applies them inline.
type PromotionQueries interface {
	Validate(ctx context.Context, code string) (*PromotionView, error)
}

type promotionQueriesImpl struct {
	repo  PromotionViewRepo
	clock clock.Clock
}

func NewPromotionQueries(repo PromotionViewRepo, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{repo: repo, clock: clk}
}

func (q *promotionQueriesImpl) Validate(ctx context.Context, code string) (*PromotionView, error) {
	snap, err := q.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidPromotion
		}
		return nil, err
	}

	promo, err := promotion.NewPromotion(snap.ID, snap.Code, snap.PercentOff, snap.ValidFrom, snap.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPromotion)
	}
	if err := promo.ValidateUsage(q.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidPromotion)
	}

	return &PromotionView{
		Code:       snap.Code,
		PercentOff: snap.PercentOff,
		ValidFrom:  snap.ValidFrom,
		ValidTo:    snap.ValidTo,
	}, nil
}
