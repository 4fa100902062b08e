package api

import (
	"errors"
	"net/http"

	reqdto "course-market/internal/handler/dto/request"
	resdto "course-market/internal/handler/dto/response"
	"course-market/internal/handler/middleware"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentCommands commands.EnrollmentCommands
	enrollmentQueries  queries.EnrollmentQueries
}

func NewEnrollmentHandler(enrollmentCommands commands.EnrollmentCommands, enrollmentQueries queries.EnrollmentQueries) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentCommands: enrollmentCommands,
		enrollmentQueries:  enrollmentQueries,
	}
}

// @Summary Enroll into a free course
// @Description Direct enrollment; paid courses must go through checkout
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EnrollRequest true "Course to enroll"
// @Success 201 {object} resdto.CreatePaymentURLResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.enrollmentCommands.EnrollFree(c.Request.Context(), userID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		case errors.Is(err, commands.ErrCourseUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Course is not available",
			})
		case errors.Is(err, commands.ErrNotFreeCourse):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Course requires payment",
			})
		case errors.Is(err, commands.ErrAlreadyEnrolled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Course already enrolled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatePaymentResult(result))
}

// @Summary List my enrollments
// @Description Courses the current user has access to
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EnrolledCourseResponse
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.enrollmentQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnrolledCourseViews(views))
}
