// Package monitor runs one safe-zone monitoring session as a long-lived delivery.
package monitor

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"safezone/config"
	"safezone/internal/delivery"
	"safezone/internal/domain/constants"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/lifecycle"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/infra/metrics"
	"safezone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// replayer is implemented by sources that can be fed from a recorded stream.
type replayer interface {
	Replay(ctx context.Context, r io.Reader) error
}

// RunnerParams holds dependencies for the monitor runner, injected by Fx
type RunnerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	Monitor  usecase.SafeZoneMonitor
	AlertUC  usecase.AlertUsecase
	Source   service.PositionSource
	Registry *prometheus.Registry
}

type runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	monitor usecase.SafeZoneMonitor
	alertUC usecase.AlertUsecase
	source  service.PositionSource
	userID  string
	radius  float64

	metricsServer *echo.Echo
	replayInput   io.Reader

	runCtx   context.Context
	cancel   context.CancelFunc
	stopped  chan struct{}
	stopOnce sync.Once
	alerts   sync.WaitGroup
}

// NewRunner creates the monitor delivery.
// With the manual provider, samples are replayed from stdin as JSON lines.
func NewRunner(params RunnerParams) (delivery.Delivery, error) {
	r, err := newRunner(params.Config, params.Logger, params.Monitor, params.AlertUC, params.Source)
	if err != nil {
		return nil, err
	}

	if params.Config.Metrics != nil && params.Config.Metrics.Enabled && params.Config.Metrics.Port > 0 {
		r.metricsServer = newMetricsServer(params.Config.Metrics.Path, params.Registry)
	}
	if params.Config.PositionFeed != nil && params.Config.PositionFeed.Provider == constants.PositionProviderManual {
		r.replayInput = os.Stdin
	}

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

func newRunner(
	cfg *config.Config,
	logger *slog.Logger,
	monitor usecase.SafeZoneMonitor,
	alertUC usecase.AlertUsecase,
	source service.PositionSource,
) (*runner, error) {
	if cfg.SafeZone == nil || cfg.SafeZone.UserID == "" {
		return nil, errors.New("safeZone.userId is required")
	}

	runCtx, cancel := context.WithCancel(context.Background())

	return &runner{
		cfg:     cfg,
		logger:  logger,
		monitor: monitor,
		alertUC: alertUC,
		source:  source,
		userID:  cfg.SafeZone.UserID,
		radius:  cfg.SafeZone.RadiusMeters,
		runCtx:  runCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}, nil
}

func newMetricsServer(path string, registry *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET(path, metrics.Handler(registry))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}

// Serve loads the reference, starts monitoring and blocks until shutdown.
// SIGHUP re-fetches the reference; SIGUSR1 saves the latest position as the new one.
func (r *runner) Serve(ctx context.Context) error {
	log := r.logger.With(slog.String("user_id", r.userID))

	r.refresh(ctx)

	err := r.monitor.Start(ctx, usecase.StartParams{
		RadiusMeters: r.radius,
		OnUpdate:     r.onUpdate,
		OnAlert:      r.onAlert,
	})
	if err != nil {
		return errors.Wrap(err, "start safe-zone monitor")
	}
	log.Info("[Monitor] Safe-zone monitoring started", slog.Float64("radius_meters", r.radius))

	if r.metricsServer != nil {
		go r.serveMetrics()
	}

	if rp, ok := r.source.(replayer); ok && r.replayInput != nil {
		go func() {
			if err := rp.Replay(r.runCtx, r.replayInput); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("[Monitor] Position replay failed", slog.Any("error", err))

				return
			}
			log.Info("[Monitor] Position replay finished")
		}()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGUSR1)
	defer signal.Stop(signals)

	for {
		select {
		case <-r.stopped:
			return nil
		case sig := <-signals:
			switch sig {
			case syscall.SIGHUP:
				r.refresh(r.runCtx)
			case syscall.SIGUSR1:
				r.saveCurrent(r.runCtx)
			}
		}
	}
}

// refresh keeps monitoring in its previous state when the store is unreachable.
func (r *runner) refresh(ctx context.Context) {
	if err := r.monitor.Refresh(ctx, r.userID); err != nil {
		r.logger.Warn("[Monitor] Failed to load safe location, keeping previous reference",
			slog.String("user_id", r.userID),
			slog.Any("error", err),
		)

		return
	}

	if ref := r.monitor.Reference(); ref != nil {
		r.logger.Info("[Monitor] Safe location loaded",
			slog.String("user_id", r.userID),
			slog.Float64("latitude", ref.Coordinate.Latitude),
			slog.Float64("longitude", ref.Coordinate.Longitude),
		)
	}
}

func (r *runner) saveCurrent(ctx context.Context) {
	if err := r.monitor.SaveCurrentAsReference(ctx, r.userID); err != nil {
		r.logger.Warn("[Monitor] Failed to save current position as safe location",
			slog.String("user_id", r.userID),
			slog.Any("error", err),
		)

		return
	}

	r.logger.Info("[Monitor] Current position saved as safe location", slog.String("user_id", r.userID))
}

func (r *runner) onUpdate(state entity.SafetyState) {
	r.logger.Debug("[Monitor] Safety state updated",
		slog.String("user_id", r.userID),
		slog.String("state", state.String()),
	)
}

// onAlert runs under the monitor's delivery lock, so publishing happens on its own goroutine.
func (r *runner) onAlert() {
	snap := r.monitor.Snapshot()
	if snap.Reference == nil || snap.Position == nil {
		return
	}

	input := &usecase.BoundaryExitInput{
		UserID:         r.userID,
		Reference:      snap.Reference.Coordinate,
		Position:       *snap.Position,
		DistanceMeters: snap.DistanceMeters,
		RadiusMeters:   snap.RadiusMeters,
	}

	r.alerts.Add(1)
	go func() {
		defer r.alerts.Done()

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		event, err := r.alertUC.NotifyBoundaryExit(ctx, input)
		if err != nil {
			r.logger.Error("[Monitor] Failed to publish boundary event",
				slog.String("user_id", r.userID),
				slog.Any("error", err),
			)

			return
		}
		r.logger.Info("[Monitor] Boundary event published", slog.String("event_id", event.EventID))
	}()
}

func (r *runner) serveMetrics() {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(r.cfg.Metrics.Port))
	r.logger.Info("Starting metrics server", slog.String("hostPort", hostPort))
	if err := r.metricsServer.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.logger.Error("Metrics server stopped", slog.Any("error", err))
	}
}

func (r *runner) stop(ctx context.Context) error {
	var stopErr error
	r.stopOnce.Do(func() {
		r.logger.Info("[Monitor] Stopping safe-zone monitoring")

		close(r.stopped)
		r.cancel()
		stopErr = r.monitor.Stop()

		// Let in-flight publishes finish
		done := make(chan struct{})
		go func() {
			r.alerts.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			r.logger.Warn("[Monitor] Shutdown deadline reached with alerts in flight")
		}

		if r.metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			if err := r.metricsServer.Shutdown(shutdownCtx); err != nil {
				stopErr = errors.Join(stopErr, err)
			}
		}
	})

	return errors.WithStack(stopErr)
}
