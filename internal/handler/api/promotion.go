package api

import (
	"errors"
	"net/http"

	resdto "course-market/internal/handler/dto/response"
	"course-market/internal/handler/httperr"
	"course-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionQueries queries.PromotionQueries
}

func NewPromotionHandler(promotionQueries queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{promotionQueries: promotionQueries}
}

// @Summary Validate promotion code
// @Description Check a promotion code before checkout; unknown, expired and
// @Description not-yet-active codes all answer the same way
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param code path string true "Promotion code"
// @Success 200 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Router /promotions/{code} [get]
func (h *PromotionHandler) Validate(c *gin.Context) {
	view, err := h.promotionQueries.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidPromotion) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired promotion code", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}
