package promotion

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode      = errors.New("invalid promotion code format")
	ErrInvalidPercent   = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidWindow    = errors.New("promotion validity window is inverted")
	ErrNotYetActive     = errors.New("promotion is not yet active")
	ErrPromotionExpired = errors.New("promotion has expired")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Promotion is a percentage discount valid inside [validFrom, validTo].
type Promotion struct {
	id         uuid.UUID
	code       Code
	percentOff int32
	validFrom  time.Time
	validTo    time.Time
}

func NewPromotion(id uuid.UUID, code string, percentOff int32, validFrom, validTo time.Time) (*Promotion, error) {
	promoCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	if percentOff < 0 || percentOff > 100 {
		return nil, ErrInvalidPercent
	}

	if validTo.Before(validFrom) {
		return nil, ErrInvalidWindow
	}

	return &Promotion{
		id:         id,
		code:       promoCode,
		percentOff: percentOff,
		validFrom:  validFrom,
		validTo:    validTo,
	}, nil
}

func (p *Promotion) IsValidAt(t time.Time) bool {
	return !t.Before(p.validFrom) && !t.After(p.validTo)
}

func (p *Promotion) ValidateUsage(t time.Time) error {
	if t.Before(p.validFrom) {
		return ErrNotYetActive
	}
	if t.After(p.validTo) {
		return ErrPromotionExpired
	}
	return nil
}

// Apply returns the discounted total, rounding down to a whole currency unit.
func (p *Promotion) Apply(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return total * int64(100-p.percentOff) / 100
}

func (p *Promotion) ID() uuid.UUID        { return p.id }
func (p *Promotion) Code() Code           { return p.code }
func (p *Promotion) PercentOff() int32    { return p.percentOff }
func (p *Promotion) ValidFrom() time.Time { return p.validFrom }
func (p *Promotion) ValidTo() time.Time   { return p.validTo }
