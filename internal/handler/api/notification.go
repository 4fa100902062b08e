package api

import (
	"errors"
	"net/http"

	resdto "course-market/internal/handler/dto/response"
	"course-market/internal/handler/httperr"
	"course-market/internal/handler/middleware"
	"course-market/internal/pkg/errs"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUser = errs.New("authenticated user missing from context")

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationHandler(notificationCommands commands.NotificationCommands, notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
	}
}

// @Summary List notifications
// @Description Current user's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUser, "Internal server error", nil)
		return
	}

	views, err := h.notificationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load notifications", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Mark notification read
// @Description Mark one of the current user's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUser, "Internal server error", nil)
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID", nil)
		return
	}

	if err := h.notificationCommands.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		if errors.Is(err, commands.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
