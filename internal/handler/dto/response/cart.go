package response

import (
	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	CourseID uuid.UUID `json:"courseId"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

func FromCartView(rm *queries.CartView) *CartResponse {
	items := make([]CartItemResponse, 0, len(rm.Items))
	for _, item := range rm.Items {
		items = append(items, CartItemResponse{
			CourseID: item.CourseID,
			Title:    item.Title,
			Price:    item.Price,
		})
	}
	return &CartResponse{Items: items, Total: rm.Total}
}
