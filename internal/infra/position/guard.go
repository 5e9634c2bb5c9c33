package position

import (
	"sync"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
)

// sampleFilter throttles a stream of samples to WatchOptions.MinInterval.
// The reported accuracy never drops a sample; Accuracy is only a request to
// the platform.
type sampleFilter struct {
	minInterval time.Duration
	last        time.Time
}

func newSampleFilter(opts service.WatchOptions) *sampleFilter {
	return &sampleFilter{
		minInterval: opts.MinInterval,
	}
}

// accept reports whether u should be delivered. Read errors always pass so the
// consumer can account for them.
func (f *sampleFilter) accept(u entity.PositionUpdate) bool {
	if u.Err != nil {
		return true
	}

	if f.minInterval > 0 && !f.last.IsZero() && u.Timestamp.Sub(f.last) < f.minInterval {
		return false
	}

	f.last = u.Timestamp

	return true
}

// guardedHandler serializes delivery to a handler and blocks delivery after close.
type guardedHandler struct {
	mu      sync.Mutex
	closed  bool
	filter  *sampleFilter
	handler func(entity.PositionUpdate)
}

func newGuardedHandler(opts service.WatchOptions, handler func(entity.PositionUpdate)) *guardedHandler {
	return &guardedHandler{
		filter:  newSampleFilter(opts),
		handler: handler,
	}
}

func (g *guardedHandler) deliver(u entity.PositionUpdate) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed || !g.filter.accept(u) {
		return
	}

	g.handler(u)
}

// close waits for an in-flight delivery to finish.
func (g *guardedHandler) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

// subscription runs cancel once, after the guard is closed.
type subscription struct {
	once   sync.Once
	guard  *guardedHandler
	cancel func() error
	err    error
}

func (s *subscription) Unsubscribe() error {
	s.once.Do(func() {
		s.guard.close()
		if s.cancel != nil {
			s.err = s.cancel()
		}
	})

	return s.err
}
