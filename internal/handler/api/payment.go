package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	reqdto "course-market/internal/handler/dto/request"
	resdto "course-market/internal/handler/dto/response"
	"course-market/internal/handler/middleware"
	"course-market/internal/pkg/config"
	"course-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	frontendCfg     config.FrontendConfig
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		frontendCfg:     cfg.Frontend,
	}
}

// @Summary Create payment URL
// @Description Checkout the cart and build a signed gateway URL; totals below
// @Description the gateway minimum settle immediately without redirecting
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout parameters"
// @Success 200 {object} resdto.CreatePaymentURLResponse
// @Failure 400 {object} map[string]string
// @Router /payment/create-payment-url [post]
func (h *PaymentHandler) CreatePaymentURL(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.paymentCommands.CreatePaymentURL(c.Request.Context(), userID, req.PromotionCode, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrInvalidPromotion):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid or expired promotion code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCreatePaymentResult(result))
}

// @Summary Gateway return callback
// @Description Browser redirect target after payment; verifies the signature,
// @Description settles the order and forwards the customer to the frontend
// @Tags payment
// @Produce json
// @Success 302
// @Router /payment/vnpay-return [get]
func (h *PaymentHandler) Return(c *gin.Context) {
	result := h.paymentCommands.HandleReturn(c.Request.Context(), c.Request.URL.Query())

	params := url.Values{}
	params.Set("success", strconv.FormatBool(result.Success))
	params.Set("message", result.Message)
	if result.OrderID != uuid.Nil {
		params.Set("orderId", result.OrderID.String())
	}

	c.Redirect(http.StatusFound, h.frontendCfg.PaymentResultURL+"?"+params.Encode())
}

// @Summary Gateway IPN callback
// @Description Server-to-server settlement notification. Always answers
// @Description HTTP 200; outcomes travel in the RspCode field
// @Tags payment
// @Produce json
// @Success 200 {object} vnpay.IPNResponse
// @Router /payment/vnpay-ipn [get]
func (h *PaymentHandler) IPN(c *gin.Context) {
	var params url.Values
	if c.Request.Method == http.MethodPost {
		if err := c.Request.ParseForm(); err != nil {
			params = url.Values{}
		} else {
			params = c.Request.Form
		}
	} else {
		params = c.Request.URL.Query()
	}

	ack := h.paymentCommands.HandleIPN(c.Request.Context(), params)
	c.JSON(http.StatusOK, ack)
}
