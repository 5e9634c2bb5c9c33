package position

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	"github.com/nats-io/nats.go"
)

const permissionProbeTimeout = 5 * time.Second

// NATSSource receives position samples published on positions.<userID>.
type NATSSource struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// ConnectNATS opens a NATS connection that keeps reconnecting in the background.
func ConnectNATS(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, errors.Wrap(err, "nats connect")
	}

	return conn, nil
}

// NewNATSSource creates a source for one user's position subject.
func NewNATSSource(conn *nats.Conn, subjectPrefix, userID string, logger *slog.Logger) *NATSSource {
	return &NATSSource{
		conn:    conn,
		subject: subjectPrefix + "." + userID,
		logger:  logger,
	}
}

// Subject returns the subject the source listens on.
func (s *NATSSource) Subject() string {
	return s.subject
}

// RequestPermission probes the subject and reports false when the server
// rejects the subscription with a permissions violation.
func (s *NATSSource) RequestPermission(ctx context.Context) (bool, error) {
	probe, err := s.conn.SubscribeSync(s.subject)
	if err != nil {
		if isPermissionViolation(err, s.subject) {
			return false, nil
		}

		return false, errors.Wrap(err, "nats probe subscribe")
	}
	defer func() {
		_ = probe.Unsubscribe()
	}()

	// FlushWithContext refuses contexts without a deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, permissionProbeTimeout)
		defer cancel()
	}

	// The server answers the SUB before the PONG, so a violation is visible after flushing.
	if err := s.conn.FlushWithContext(ctx); err != nil {
		return false, errors.Wrap(err, "nats flush")
	}

	// LastError is connection-wide; only a violation naming this subject counts.
	if isPermissionViolation(s.conn.LastError(), s.subject) {
		return false, nil
	}

	return true, nil
}

// Watch implements service.PositionSource.
func (s *NATSSource) Watch(ctx context.Context, opts service.WatchOptions, handler func(entity.PositionUpdate)) (service.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	guard := newGuardedHandler(opts, handler)

	sub, err := s.conn.Subscribe(s.subject, func(msg *nats.Msg) {
		guard.deliver(DecodePayload(msg.Data, time.Now))
	})
	if err != nil {
		return nil, errors.Wrapf(err, "nats subscribe %s", s.subject)
	}

	s.logger.Info("[NATS] Watching positions", slog.String("subject", s.subject))

	return &subscription{
		guard: guard,
		cancel: func() error {
			s.logger.Info("[NATS] Stopped watching positions", slog.String("subject", s.subject))

			return errors.WithStack(sub.Unsubscribe())
		},
	}, nil
}

func isPermissionViolation(err error, subject string) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	return strings.Contains(strings.ToLower(msg), "permissions violation") &&
		strings.Contains(msg, `"`+subject+`"`)
}
