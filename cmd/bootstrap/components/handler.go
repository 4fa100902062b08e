package components

import (
	"course-market/internal/handler"
	"course-market/internal/handler/api"
	"course-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCourseHandler,
		api.NewCartHandler,
		api.NewPromotionHandler,
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewEnrollmentHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	course *api.CourseHandler,
	cart *api.CartHandler,
	promotion *api.PromotionHandler,
	order *api.OrderHandler,
	payment *api.PaymentHandler,
	enrollment *api.EnrollmentHandler,
	notification *api.NotificationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Course:       course,
		Cart:         cart,
		Promotion:    promotion,
		Order:        order,
		Payment:      payment,
		Enrollment:   enrollment,
		Notification: notification,
	}
}
