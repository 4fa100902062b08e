package order

import (
	"errors"
	"time"

	"course-market/internal/domain/promotion"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNegativePrice = errors.New("line price cannot be negative")
)

// Line is one course inside an order. The price is a snapshot taken at
// order-creation time and never changes afterwards, no matter what happens
// to the catalog price.
type Line struct {
	courseID uuid.UUID
	price    int64
}

func NewLine(courseID uuid.UUID, price int64) (Line, error) {
	if price < 0 {
		return Line{}, ErrNegativePrice
	}
	return Line{courseID: courseID, price: price}, nil
}

func (l Line) CourseID() uuid.UUID { return l.courseID }
func (l Line) Price() int64        { return l.price }

type Order struct {
	id               uuid.UUID
	userID           uuid.UUID
	lines            []Line
	totalAmount      int64
	discountedAmount *int64
	promotionID      *uuid.UUID
	status           Status
	createdAt        time.Time
}

// NewFromCart turns cart contents into a pending order. The promotion, when
// present, must already be resolved; its window is validated against now and
// the discounted total is floored to a whole currency unit.
func NewFromCart(userID uuid.UUID, lines []Line, promo *promotion.Promotion, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	for _, l := range lines {
		if l.price < 0 {
			return nil, ErrNegativePrice
		}
		total += l.price
	}

	o := &Order{
		id:          uuid.New(),
		userID:      userID,
		lines:       lines,
		totalAmount: total,
		status:      StatusPending,
		createdAt:   now,
	}

	if promo != nil {
		if err := promo.ValidateUsage(now); err != nil {
			return nil, err
		}
		discounted := promo.Apply(total)
		promoID := promo.ID()
		o.discountedAmount = &discounted
		o.promotionID = &promoID
	}

	return o, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	lines []Line,
	totalAmount int64,
	discountedAmount *int64,
	promotionID *uuid.UUID,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:               id,
		userID:           userID,
		lines:            lines,
		totalAmount:      totalAmount,
		discountedAmount: discountedAmount,
		promotionID:      promotionID,
		status:           status,
		createdAt:        createdAt,
	}
}

// Payable is the amount the gateway must collect: the discounted total when a
// promotion applied, the raw total otherwise.
func (o *Order) Payable() int64 {
	if o.discountedAmount != nil {
		return *o.discountedAmount
	}
	return o.totalAmount
}

func (o *Order) TransitionTo(next Status) error {
	if err := o.status.CanTransitionTo(next); err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) UserID() uuid.UUID        { return o.userID }
func (o *Order) Lines() []Line            { return o.lines }
func (o *Order) TotalAmount() int64       { return o.totalAmount }
func (o *Order) DiscountedAmount() *int64 { return o.discountedAmount }
func (o *Order) PromotionID() *uuid.UUID  { return o.promotionID }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
