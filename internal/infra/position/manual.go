package position

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
)

// ManualSource is an in-process PositionSource. Samples are pushed with Emit,
// which delivers synchronously to every active watch in registration order.
type ManualSource struct {
	mu       sync.Mutex
	granted  bool
	nextID   uint64
	watchers map[uint64]*guardedHandler
	order    []uint64
	now      func() time.Time
}

// NewManualSource creates a manual source with the given permission answer.
func NewManualSource(granted bool) *ManualSource {
	return &ManualSource{
		granted:  granted,
		watchers: make(map[uint64]*guardedHandler),
		now:      time.Now,
	}
}

// SetPermission changes the answer given to later permission requests.
func (s *ManualSource) SetPermission(granted bool) {
	s.mu.Lock()
	s.granted = granted
	s.mu.Unlock()
}

// RequestPermission implements service.PositionSource.
func (s *ManualSource) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.granted, nil
}

// Watch implements service.PositionSource.
func (s *ManualSource) Watch(ctx context.Context, opts service.WatchOptions, handler func(entity.PositionUpdate)) (service.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	guard := newGuardedHandler(opts, handler)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = guard
	s.order = append(s.order, id)
	s.mu.Unlock()

	return &subscription{
		guard: guard,
		cancel: func() error {
			s.remove(id)

			return nil
		},
	}, nil
}

// Emit delivers u to every active watch.
func (s *ManualSource) Emit(u entity.PositionUpdate) {
	s.mu.Lock()
	guards := make([]*guardedHandler, 0, len(s.order))
	for _, id := range s.order {
		guards = append(guards, s.watchers[id])
	}
	s.mu.Unlock()

	for _, g := range guards {
		g.deliver(u)
	}
}

// EmitCoordinate delivers an exact sample at the current time.
func (s *ManualSource) EmitCoordinate(c entity.Coordinate) {
	s.Emit(entity.PositionUpdate{Coordinate: c, Timestamp: s.now()})
}

// Watchers returns the number of active watches.
func (s *ManualSource) Watchers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.watchers)
}

// Replay reads one JSON Payload per line from r and emits each sample until r
// is exhausted or ctx is cancelled. Malformed lines are emitted as read errors.
func (s *ManualSource) Replay(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		s.Emit(DecodePayload(line, s.now))
	}

	return errors.WithStack(scanner.Err())
}

func (s *ManualSource) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.watchers, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}
}
