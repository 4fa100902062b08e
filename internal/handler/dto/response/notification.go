package response

import (
	"time"

	"course-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromNotificationViews(rms []*queries.NotificationView) []*NotificationResponse {
	resps := make([]*NotificationResponse, 0, len(rms))
	for _, rm := range rms {
		resps = append(resps, &NotificationResponse{
			ID:        rm.ID,
			Message:   rm.Message,
			IsRead:    rm.IsRead,
			CreatedAt: rm.CreatedAt,
		})
	}
	return resps
}
