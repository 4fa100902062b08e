package response

import (
	"time"

	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderLineResponse struct {
	CourseID uuid.UUID `json:"courseId"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"`
}

type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	UserID           uuid.UUID           `json:"userId"`
	Status           string              `json:"status"`
	TotalAmount      int64               `json:"totalAmount"`
	DiscountedAmount *int64              `json:"discountedAmount,omitempty"`
	PromotionCode    *string             `json:"promotionCode,omitempty"`
	Lines            []OrderLineResponse `json:"lines"`
	CreatedAt        time.Time           `json:"createdAt"`
}

type OrderListItemResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Status           string    `json:"status"`
	TotalAmount      int64     `json:"totalAmount"`
	DiscountedAmount *int64    `json:"discountedAmount,omitempty"`
	LineCount        int32     `json:"lineCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromOrderListItems(rms []*queries.OrderListItem) []*OrderListItemResponse {
	resps := make([]*OrderListItemResponse, 0, len(rms))
	for _, rm := range rms {
		var resp OrderListItemResponse
		_ = copier.Copy(&resp, rm)
		resps = append(resps, &resp)
	}
	return resps
}
