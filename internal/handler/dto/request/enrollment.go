package request

import "github.com/google/uuid"

type EnrollRequest struct {
	CourseID uuid.UUID `json:"courseId" binding:"required"`
}
