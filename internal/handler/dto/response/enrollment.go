package response

import (
	"time"

	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type EnrolledCourseResponse struct {
	CourseID   uuid.UUID `json:"courseId"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func FromEnrolledCourseViews(rms []*queries.EnrolledCourseView) []*EnrolledCourseResponse {
	resps := make([]*EnrolledCourseResponse, 0, len(rms))
	for _, rm := range rms {
		resps = append(resps, &EnrolledCourseResponse{
			CourseID:   rm.CourseID,
			Title:      rm.Title,
			Category:   rm.Category,
			EnrolledAt: rm.EnrolledAt,
		})
	}
	return resps
}
