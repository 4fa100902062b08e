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
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{cartCommands: cartCommands, cartQueries: cartQueries}
}

// @Summary Add course to cart
// @Description Put a published course into the current user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Course to add"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cartCommands.Add(c.Request.Context(), userID, req.CourseID); err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Course not found",
			})
		case errors.Is(err, commands.ErrCourseUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Course is not available",
			})
		case errors.Is(err, commands.ErrAlreadyInCart):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Course already in cart",
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

	c.JSON(http.StatusCreated, gin.H{
		"message": "Course added to cart",
	})
}

// @Summary Remove course from cart
// @Description Remove a course from the current user's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /cart/items/{courseId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid course ID",
		})
		return
	}

	if err := h.cartCommands.Remove(c.Request.Context(), userID, courseID); err != nil {
		if errors.Is(err, commands.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get cart
// @Description Current user's cart lines with catalog prices and running total
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.cartQueries.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
