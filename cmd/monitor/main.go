package main

import (
	"context"
	"log/slog"
	"os"

	"safezone/config"
	"safezone/internal/delivery"
	"safezone/internal/delivery/monitor"
	"safezone/internal/domain/service"
	logs "safezone/internal/infra/log"
	"safezone/internal/infra/metrics"
	"safezone/internal/infra/position"
	"safezone/internal/infra/pubsub"
	"safezone/internal/infra/safelocation"
	"safezone/internal/usecase"
	"safezone/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		pubsub.Module,
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
		metrics.NewRegistry,
		newMonitorMetrics,
	)
}

// newMonitorMetrics registers the monitor collectors on the process registry
func newMonitorMetrics(reg *prometheus.Registry) *metrics.MonitorMetrics {
	return metrics.NewMonitorMetrics(reg)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			position.NewSource,
			safelocation.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSafeZoneMonitor,
			newAlertService,
		),
	)
}

// newAlertService creates a publish-only alert service; the worker does delivery
func newAlertService(logger *slog.Logger, publisher service.EventPublisher, cfg *config.Config) usecase.AlertUsecase {
	return impl.NewAlertService(logger, publisher, nil, cfg)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				monitor.NewRunner,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to run monitor", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
