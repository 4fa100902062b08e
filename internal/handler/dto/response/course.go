package response

import (
	"time"

	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CourseResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromCourseView(rm *queries.CourseView) *CourseResponse {
	var resp CourseResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCourseViews(rms []*queries.CourseView) []*CourseResponse {
	resps := make([]*CourseResponse, 0, len(rms))
	for _, rm := range rms {
		resps = append(resps, FromCourseView(rm))
	}
	return resps
}
