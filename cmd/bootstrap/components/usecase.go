package components

import (
	"course-market/internal/infra/gateway/vnpay"
	"course-market/internal/pkg/clock"
	"course-market/internal/pkg/config"
	"course-market/internal/usecase"
	"course-market/internal/usecase/commands"
	"course-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewVNPayClient,
		fx.As(new(commands.PaymentGateway)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCourseQueries,
		queries.NewCartQueries,
		queries.NewPromotionQueries,
		queries.NewOrderQueries,
		queries.NewEnrollmentQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewOrderCommands,
		commands.NewOrderFinalizer,
		commands.NewPaymentCommands,
		commands.NewEnrollmentCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewVNPayClient(cfg config.Config, clk clock.Clock) *vnpay.Client {
	return vnpay.NewClient(cfg.VNPay, clk)
}
