package order

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrAlreadyTerminal   = errors.New("order is already in a terminal state")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusFailed
}

// CanTransitionTo enforces Pending → {Completed, Failed, Cancelled}.
// Terminal states never transition again, not even to themselves.
func (s Status) CanTransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if s.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if next == StatusPending {
		return ErrInvalidTransition
	}
	return nil
}
