//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"course-market/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	validFrom = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	validTo   = time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
)

func newPromotion(t *testing.T, code string, percentOff int32) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(uuid.New(), code, percentOff, validFrom, validTo)
	require.NoError(t, err)
	return p
}

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid uppercase", input: "SAVE10", want: "SAVE10"},
		{name: "lowercase is normalized", input: "save10", want: "SAVE10"},
		{name: "surrounding whitespace trimmed", input: "  SAVE10  ", want: "SAVE10"},
		{name: "too short", input: "AB", errIs: promotion.ErrInvalidCode},
		{name: "too long", input: "ABCDEFGHIJKLMNOPQRSTU", errIs: promotion.ErrInvalidCode},
		{name: "invalid characters", input: "SAVE-10", errIs: promotion.ErrInvalidCode},
		{name: "empty", input: "", errIs: promotion.ErrInvalidCode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := promotion.NewCode(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func TestNewPromotion(t *testing.T) {
	cases := []struct {
		name       string
		percentOff int32
		from, to   time.Time
		errIs      error
	}{
		{name: "valid", percentOff: 10, from: validFrom, to: validTo},
		{name: "zero percent allowed", percentOff: 0, from: validFrom, to: validTo},
		{name: "full discount allowed", percentOff: 100, from: validFrom, to: validTo},
		{name: "negative percent", percentOff: -1, from: validFrom, to: validTo, errIs: promotion.ErrInvalidPercent},
		{name: "over hundred percent", percentOff: 101, from: validFrom, to: validTo, errIs: promotion.ErrInvalidPercent},
		{name: "inverted window", percentOff: 10, from: validTo, to: validFrom, errIs: promotion.ErrInvalidWindow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := promotion.NewPromotion(uuid.New(), "SAVE10", tc.percentOff, tc.from, tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateUsage(t *testing.T) {
	p := newPromotion(t, "SAVE10", 10)

	cases := []struct {
		name  string
		at    time.Time
		errIs error
	}{
		{name: "inside window", at: validFrom.Add(24 * time.Hour)},
		{name: "exactly at start", at: validFrom},
		{name: "exactly at end", at: validTo},
		{name: "before window", at: validFrom.Add(-time.Second), errIs: promotion.ErrNotYetActive},
		{name: "after window", at: validTo.Add(time.Second), errIs: promotion.ErrPromotionExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := p.ValidateUsage(tc.at)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.False(t, p.IsValidAt(tc.at))
				return
			}
			require.NoError(t, err)
			assert.True(t, p.IsValidAt(tc.at))
		})
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		name       string
		percentOff int32
		total      int64
		want       int64
	}{
		{name: "ten percent off", percentOff: 10, total: 150_000, want: 135_000},
		{name: "rounds down to whole unit", percentOff: 33, total: 100, want: 67},
		{name: "zero percent keeps total", percentOff: 0, total: 99_999, want: 99_999},
		{name: "full discount", percentOff: 100, total: 150_000, want: 0},
		{name: "zero total", percentOff: 10, total: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPromotion(t, "SAVE10", tc.percentOff)
			assert.Equal(t, tc.want, p.Apply(tc.total))
		})
	}
}
