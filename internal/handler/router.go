package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course-market/internal/domain/user"
	"course-market/internal/handler/api"
	"course-market/internal/handler/middleware"
	"course-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Course       *api.CourseHandler
	Cart         *api.CartHandler
	Promotion    *api.PromotionHandler
	Order        *api.OrderHandler
	Payment      *api.PaymentHandler
	Enrollment   *api.EnrollmentHandler
	Notification *api.NotificationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		courses := apiGroup.Group("/courses")
		{
			addRoutes(courses, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Course.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Course.Get},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.Add},
				{Method: http.MethodDelete, Path: "/items/:courseId", Handler: h.Cart.Remove},
			})
		}

		promotions := apiGroup.Group("/promotions")
		promotions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "/:code", Handler: h.Promotion.Validate},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Order.Checkout},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			})
		}

		payment := apiGroup.Group("/payment")
		{
			authRequired := payment.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/create-payment-url", Handler: h.Payment.CreatePaymentURL},
			})

			// Gateway callbacks authenticate by signature, not by session
			addRoutes(payment, []route{
				{Method: http.MethodGet, Path: "/vnpay-return", Handler: h.Payment.Return},
				{Method: http.MethodGet, Path: "/vnpay-ipn", Handler: h.Payment.IPN},
				{Method: http.MethodPost, Path: "/vnpay-ipn", Handler: h.Payment.IPN},
			})
		}

		enrollments := apiGroup.Group("/enrollments")
		enrollments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(enrollments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Enrollment.Enroll},
				{Method: http.MethodGet, Path: "", Handler: h.Enrollment.ListMine},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
				{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.AdminList},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
