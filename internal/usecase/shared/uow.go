package shared

import (
	"context"
	"time"

	"course-market/internal/domain/order"
	"course-market/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Cart() CartRepository
	Enrollments() EnrollmentRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*CourseSnapshot, error)
	CartLinesByUser(ctx context.Context, userID uuid.UUID) ([]CartLine, error)
	PromotionByCode(ctx context.Context, code string) (*PromotionSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	EnrollmentExists(ctx context.Context, studentID, courseID uuid.UUID) (bool, error)
}

// Minimal snapshots for command read operations

type CourseSnapshot struct {
	ID        uuid.UUID
	Title     string
	Price     int64
	Published bool
}

type CartLine struct {
	CourseID uuid.UUID
	Title    string
	Price    int64
}

type PromotionSnapshot struct {
	ID         uuid.UUID
	Code       string
	PercentOff int32
	ValidFrom  time.Time
	ValidTo    time.Time
}

type OrderLineSnapshot struct {
	CourseID uuid.UUID
	Price    int64
}

type OrderSnapshot struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Status           order.Status
	TotalAmount      int64
	DiscountedAmount *int64
	PromotionID      *uuid.UUID
	Lines            []OrderLineSnapshot
	CreatedAt        time.Time
}

// Payable mirrors order.Order.Payable for rehydrated snapshots.
func (s *OrderSnapshot) Payable() int64 {
	if s.DiscountedAmount != nil {
		return *s.DiscountedAmount
	}
	return s.TotalAmount
}

type OrderRepository interface {
	// Create inserts the order row and one line row per course in the
	// surrounding transaction.
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	// UpdateStatus applies a Pending → terminal transition. The WHERE guard
	// keeps terminal states immutable even under concurrent callbacks.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status) error
}

type CartRepository interface {
	Add(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID) error
	Remove(ctx context.Context, tx db.DBTX, userID, courseID uuid.UUID) error
	// DeleteLines removes only the given courses from the user's cart, so a
	// direct free enrollment never wipes unrelated cart rows.
	DeleteLines(ctx context.Context, tx db.DBTX, userID uuid.UUID, courseIDs []uuid.UUID) error
}

type EnrollmentRepository interface {
	// Upsert creates the (student, course) row if absent and reports whether
	// a new row was created. Existing rows are never an error.
	Upsert(ctx context.Context, tx db.DBTX, studentID, courseID uuid.UUID) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, message string) error
	MarkRead(ctx context.Context, tx db.DBTX, userID, notificationID uuid.UUID) error
}
