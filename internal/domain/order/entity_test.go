//go:build unit

package order_test

import (
	"testing"
	"time"

	"course-market/internal/domain/order"
	"course-market/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func mustLine(t *testing.T, price int64) order.Line {
	t.Helper()
	line, err := order.NewLine(uuid.New(), price)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("negative price rejected", func(t *testing.T) {
		_, err := order.NewLine(uuid.New(), -1)
		assert.ErrorIs(t, err, order.ErrNegativePrice)
	})

	t.Run("zero price allowed", func(t *testing.T) {
		line, err := order.NewLine(uuid.New(), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), line.Price())
	})
}

func TestNewFromCart(t *testing.T) {
	userID := uuid.New()

	t.Run("empty cart rejected", func(t *testing.T) {
		_, err := order.NewFromCart(userID, nil, nil, now)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("totals sum over lines", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 100_000), mustLine(t, 50_000)}

		ord, err := order.NewFromCart(userID, lines, nil, now)
		require.NoError(t, err)

		assert.Equal(t, int64(150_000), ord.TotalAmount())
		assert.Nil(t, ord.DiscountedAmount())
		assert.Nil(t, ord.PromotionID())
		assert.Equal(t, order.StatusPending, ord.Status())
		assert.Equal(t, int64(150_000), ord.Payable())
		assert.NotEqual(t, uuid.Nil, ord.ID())
		assert.Equal(t, now, ord.CreatedAt())
	})

	t.Run("promotion discounts and records itself", func(t *testing.T) {
		promo, err := promotion.NewPromotion(uuid.New(), "SAVE10", 10, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(t, err)

		lines := []order.Line{mustLine(t, 100_000), mustLine(t, 50_000)}
		ord, err := order.NewFromCart(uuid.New(), lines, promo, now)
		require.NoError(t, err)

		require.NotNil(t, ord.DiscountedAmount())
		assert.Equal(t, int64(135_000), *ord.DiscountedAmount())
		require.NotNil(t, ord.PromotionID())
		assert.Equal(t, promo.ID(), *ord.PromotionID())
		assert.Equal(t, int64(135_000), ord.Payable())
		assert.Equal(t, int64(150_000), ord.TotalAmount())
	})

	t.Run("expired promotion rejected", func(t *testing.T) {
		promo, err := promotion.NewPromotion(uuid.New(), "SAVE10", 10, now.Add(-2*time.Hour), now.Add(-time.Hour))
		require.NoError(t, err)

		_, err = order.NewFromCart(uuid.New(), []order.Line{mustLine(t, 100_000)}, promo, now)
		assert.ErrorIs(t, err, promotion.ErrPromotionExpired)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name  string
		from  order.Status
		to    order.Status
		errIs error
	}{
		{name: "pending to completed", from: order.StatusPending, to: order.StatusCompleted},
		{name: "pending to failed", from: order.StatusPending, to: order.StatusFailed},
		{name: "pending to cancelled", from: order.StatusPending, to: order.StatusCancelled},
		{name: "pending to pending", from: order.StatusPending, to: order.StatusPending, errIs: order.ErrInvalidTransition},
		{name: "completed is terminal", from: order.StatusCompleted, to: order.StatusFailed, errIs: order.ErrAlreadyTerminal},
		{name: "failed is terminal", from: order.StatusFailed, to: order.StatusCompleted, errIs: order.ErrAlreadyTerminal},
		{name: "cancelled is terminal", from: order.StatusCancelled, to: order.StatusCompleted, errIs: order.ErrAlreadyTerminal},
		{name: "completed never repeats", from: order.StatusCompleted, to: order.StatusCompleted, errIs: order.ErrAlreadyTerminal},
		{name: "unknown target", from: order.StatusPending, to: order.Status("shipped"), errIs: order.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.from.CanTransitionTo(tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransitionTo(t *testing.T) {
	ord, err := order.NewFromCart(uuid.New(), []order.Line{mustLine(t, 10_000)}, nil, now)
	require.NoError(t, err)

	require.NoError(t, ord.TransitionTo(order.StatusCompleted))
	assert.Equal(t, order.StatusCompleted, ord.Status())

	err = ord.TransitionTo(order.StatusFailed)
	assert.ErrorIs(t, err, order.ErrAlreadyTerminal)
	assert.Equal(t, order.StatusCompleted, ord.Status())
}
