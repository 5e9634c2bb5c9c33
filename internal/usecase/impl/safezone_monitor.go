package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"safezone/config"
	"safezone/internal/domain/constants"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/geo"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/infra/metrics"
	"safezone/internal/usecase"
)

const (
	dropReasonReadError   = "read_error"
	dropReasonNoReference = "no_reference"
)

// monitorSession identifies one Start..Stop cycle. Handlers registered by an
// earlier session compare their session against the current one and bail out.
type monitorSession struct {
	radius   float64
	onUpdate func(entity.SafetyState)
	onAlert  func()
}

type safeZoneMonitor struct {
	source        service.PositionSource
	store         service.ReferenceStore
	watchOptions  service.WatchOptions
	defaultRadius float64
	logger        *slog.Logger
	metrics       *metrics.MonitorMetrics
	now           func() time.Time

	// lifecycleMu serializes Start and Stop.
	lifecycleMu sync.Mutex
	// deliverMu is held across one evaluation and its callbacks.
	deliverMu sync.Mutex

	reference atomic.Pointer[entity.ReferenceLocation]

	mu       sync.RWMutex
	running  bool
	session  *monitorSession
	sub      service.Subscription
	state    entity.SafetyState
	position *entity.Coordinate
	distance float64
}

// NewSafeZoneMonitor creates a monitor reading from source and persisting
// through store. m may be nil.
func NewSafeZoneMonitor(
	source service.PositionSource,
	store service.ReferenceStore,
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.MonitorMetrics,
) usecase.SafeZoneMonitor {
	zone := &config.SafeZoneConfig{}
	if cfg != nil && cfg.SafeZone != nil {
		zone = cfg.SafeZone
	}

	radius := zone.RadiusMeters
	if radius <= 0 {
		radius = constants.DefaultSafeZoneRadiusMeters
	}

	interval := zone.UpdateInterval
	if interval <= 0 {
		interval = constants.DefaultPositionIntervalMillis * time.Millisecond
	}

	return &safeZoneMonitor{
		source: source,
		store:  store,
		watchOptions: service.WatchOptions{
			Accuracy:    service.ParseAccuracy(zone.Accuracy),
			MinInterval: interval,
		},
		defaultRadius: radius,
		logger:        logger,
		metrics:       m,
		now:           time.Now,
	}
}

// Start implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) Start(ctx context.Context, params usecase.StartParams) error {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	m.mu.RLock()
	running := m.running
	m.mu.RUnlock()
	if running {
		return domainerrors.ErrMonitorAlreadyRunning
	}

	granted, err := m.source.RequestPermission(ctx)
	if err != nil {
		return errors.Wrap(err, "request location permission")
	}
	if !granted {
		m.logger.Warn("[SafeZoneMonitor] Location permission denied")

		return domainerrors.ErrPermissionDenied
	}

	if params.Reference != nil {
		ref := *params.Reference
		m.reference.Store(&ref)
	}

	sess := &monitorSession{
		radius:   params.RadiusMeters,
		onUpdate: params.OnUpdate,
		onAlert:  params.OnAlert,
	}
	if sess.radius <= 0 {
		sess.radius = m.defaultRadius
	}

	// The session is live before Watch so samples pushed during subscription
	// are evaluated.
	m.deliverMu.Lock()
	m.mu.Lock()
	m.running = true
	m.session = sess
	m.state = entity.SafetyStateUnknown
	m.position = nil
	m.distance = 0
	m.mu.Unlock()
	m.deliverMu.Unlock()
	m.metrics.ObserveState(entity.SafetyStateUnknown)

	sub, err := m.source.Watch(ctx, m.watchOptions, func(u entity.PositionUpdate) {
		m.handle(sess, u)
	})
	if err != nil {
		m.deliverMu.Lock()
		m.mu.Lock()
		m.running = false
		m.session = nil
		m.mu.Unlock()
		m.deliverMu.Unlock()

		return errors.Wrap(err, "watch positions")
	}

	m.mu.Lock()
	m.sub = sub
	m.mu.Unlock()

	m.logger.Info("[SafeZoneMonitor] Started",
		slog.Float64("radius_meters", sess.radius),
		slog.Duration("min_interval", m.watchOptions.MinInterval),
		slog.Bool("has_reference", m.reference.Load() != nil),
	)

	return nil
}

// Stop implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) Stop() error {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	m.deliverMu.Lock()
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		m.deliverMu.Unlock()

		return nil
	}
	sub := m.sub
	m.running = false
	m.session = nil
	m.sub = nil
	m.mu.Unlock()
	m.deliverMu.Unlock()

	m.logger.Info("[SafeZoneMonitor] Stopped")

	if sub == nil {
		return nil
	}

	return errors.Wrap(sub.Unsubscribe(), "unsubscribe positions")
}

func (m *safeZoneMonitor) handle(sess *monitorSession, u entity.PositionUpdate) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.mu.Lock()
	if !m.running || m.session != sess {
		m.mu.Unlock()

		return
	}

	if u.Err != nil {
		m.mu.Unlock()
		m.metrics.ObserveDropped(dropReasonReadError)
		m.logger.Debug("[SafeZoneMonitor] Skipping unreadable position", slog.Any("error", u.Err))

		return
	}

	pos := u.Coordinate
	m.position = &pos

	ref := m.reference.Load()
	if ref == nil {
		m.mu.Unlock()
		m.metrics.ObserveDropped(dropReasonNoReference)

		return
	}

	state, alert := m.evaluateLocked(ref.Coordinate, pos, sess.radius)
	distance := m.distance
	m.mu.Unlock()

	m.notify(sess, state, distance, alert)
}

// evaluateLocked derives the state from pos and center. It reports whether
// the transition entered Unsafe. m.mu must be held.
func (m *safeZoneMonitor) evaluateLocked(center, pos entity.Coordinate, radius float64) (entity.SafetyState, bool) {
	distance := geo.DistanceMeters(pos, center)

	next := entity.SafetyStateSafe
	if distance > radius {
		next = entity.SafetyStateUnsafe
	}

	entered := next == entity.SafetyStateUnsafe && m.state != entity.SafetyStateUnsafe
	m.state = next
	m.distance = distance

	return next, entered
}

func (m *safeZoneMonitor) notify(sess *monitorSession, state entity.SafetyState, distance float64, alert bool) {
	m.metrics.ObserveEvaluation(distance, state)

	if sess.onUpdate != nil {
		sess.onUpdate(state)
	}

	if !alert {
		return
	}

	m.metrics.ObserveAlert()
	m.logger.Warn("[SafeZoneMonitor] Left safe zone",
		slog.Float64("distance_meters", distance),
		slog.Float64("radius_meters", sess.radius),
	)

	if sess.onAlert != nil {
		sess.onAlert()
	}
}

// State implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) State() entity.SafetyState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

// LastDistance implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) LastDistance() (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.distance, m.state != entity.SafetyStateUnknown
}

// Reference implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) Reference() *entity.ReferenceLocation {
	ref := m.reference.Load()
	if ref == nil {
		return nil
	}
	cp := *ref

	return &cp
}

// Snapshot implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) Snapshot() usecase.MonitorSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := usecase.MonitorSnapshot{
		State:          m.state,
		Reference:      m.Reference(),
		DistanceMeters: m.distance,
		RadiusMeters:   m.defaultRadius,
		Running:        m.running,
	}
	if m.session != nil {
		snap.RadiusMeters = m.session.radius
	}
	if m.position != nil {
		pos := *m.position
		snap.Position = &pos
	}

	return snap
}

// ReplaceReference implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) ReplaceReference(ref entity.ReferenceLocation) {
	m.deliverMu.Lock()
	defer m.deliverMu.Unlock()

	m.reference.Store(&ref)

	m.mu.Lock()
	sess := m.session
	if !m.running || sess == nil || m.position == nil {
		m.mu.Unlock()

		return
	}

	state, alert := m.evaluateLocked(ref.Coordinate, *m.position, sess.radius)
	distance := m.distance
	m.mu.Unlock()

	m.logger.Info("[SafeZoneMonitor] Reference replaced",
		slog.String("user_id", ref.UserID),
		slog.String("state", state.String()),
	)

	m.notify(sess, state, distance, alert)
}

// Refresh implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) Refresh(ctx context.Context, userID string) error {
	ref, err := m.store.Fetch(ctx, userID)
	if err != nil {
		return err
	}
	if ref == nil {
		return domainerrors.ErrReferenceNotFound
	}

	m.ReplaceReference(*ref)

	return nil
}

// SaveCurrentAsReference implements usecase.SafeZoneMonitor.
func (m *safeZoneMonitor) SaveCurrentAsReference(ctx context.Context, userID string) error {
	m.mu.RLock()
	var pos *entity.Coordinate
	if m.position != nil {
		cp := *m.position
		pos = &cp
	}
	m.mu.RUnlock()

	if pos == nil {
		return domainerrors.ErrNoPositionYet
	}

	if err := m.store.Save(ctx, userID, *pos); err != nil {
		return err
	}

	m.ReplaceReference(entity.ReferenceLocation{
		UserID:     userID,
		Coordinate: *pos,
		UpdatedAt:  m.now(),
	})

	return nil
}
