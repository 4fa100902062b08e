package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CourseView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
}

type CartItemView struct {
	CourseID uuid.UUID `json:"course_id"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"`
}

type CartView struct {
	Items []CartItemView `json:"items"`
	Total int64          `json:"total"`
}

type OrderLineView struct {
	CourseID uuid.UUID `json:"course_id"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"`
}

type OrderView struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	Status           string          `json:"status"`
	TotalAmount      int64           `json:"total_amount"`
	DiscountedAmount *int64          `json:"discounted_amount,omitempty"`
	PromotionCode    *string         `json:"promotion_code,omitempty"`
	Lines            []OrderLineView `json:"lines"`
	CreatedAt        time.Time       `json:"created_at"`
}

type OrderListItem struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Status           string    `json:"status"`
	TotalAmount      int64     `json:"total_amount"`
	DiscountedAmount *int64    `json:"discounted_amount,omitempty"`
	LineCount        int32     `json:"line_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type PromotionView struct {
	Code       string    `json:"code"`
	PercentOff int32     `json:"percent_off"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidTo    time.Time `json:"valid_to"`
}

type EnrolledCourseView struct {
	CourseID   uuid.UUID `json:"course_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
