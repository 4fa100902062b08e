package api

import (
	"errors"
	"net/http"

	resdto "course-market/internal/handler/dto/response"
	"course-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseHandler struct {
	courseQueries queries.CourseQueries
}

func NewCourseHandler(courseQueries queries.CourseQueries) *CourseHandler {
	return &CourseHandler{courseQueries: courseQueries}
}

// @Summary List courses
// @Description List all published courses
// @Tags courses
// @Produce json
// @Success 200 {array} resdto.CourseResponse
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	views, err := h.courseQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourseViews(views))
}

// @Summary Get course
// @Description Get a single course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.CourseResponse
// @Failure 404 {object} map[string]string
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	view, err := h.courseQueries.GetByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, queries.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCourseView(view))
}
