// The antigaspi command runs the surplus-goods sharing service.
package main

import (
	"context"
	"log/slog"
	"os"

	"antigaspi/config"
	"antigaspi/internal/delivery"
	"antigaspi/internal/delivery/http"
	"antigaspi/internal/delivery/http/router/handler"
	"antigaspi/internal/infra/auth"
	"antigaspi/internal/infra/autoreply"
	logs "antigaspi/internal/infra/log"
	"antigaspi/internal/infra/persistence/memory"
	"antigaspi/internal/infra/persistence/sqlite"
	"antigaspi/internal/infra/qrcode"
	"antigaspi/internal/infra/simulator"
	"antigaspi/internal/usecase/impl"

	deliverymiddleware "antigaspi/internal/delivery/http/middleware"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewListingRepository,
			memory.NewReservationRepository,
			memory.NewConversationRepository,
			memory.NewAlertRepository,
			memory.NewCartRepository,
			memory.NewReviewRepository,
			sqlite.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			autoreply.NewResponder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewMessageService,
			impl.NewProfileService,
			impl.NewNotificationService,
			impl.NewCheckoutService,
			impl.NewPaymentService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewAuthMiddleware,
			deliverymiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewMessageHandler,
			handler.NewProfileHandler,
			handler.NewNotificationHandler,
			handler.NewCheckoutHandler,
			handler.NewPaymentHandler,
			handler.NewReviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				simulator.NewNotifier,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
