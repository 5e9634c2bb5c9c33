// Package delivery holds the outer surfaces of the service: HTTP API, push
// worker and monitor runner. Each one is started by its cmd through Serve.
package delivery

import "context"

// Delivery is a long-running surface. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
