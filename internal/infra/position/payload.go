// Package position provides PositionSource implementations fed by message
// transports and by in-process emitters.
package position

import (
	"encoding/json"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/errors"
)

// Payload is the wire format of one position sample on every transport.
type Payload struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DecodePayload turns raw transport bytes into a position update.
// Malformed samples come back as transient read errors rather than failures.
func DecodePayload(data []byte, now func() time.Time) entity.PositionUpdate {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return entity.PositionUpdate{
			Timestamp: now(),
			Err:       errors.Wrap(domainerrors.ErrTransientRead, err.Error()),
		}
	}

	coord := entity.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
	if err := coord.Validate(); err != nil {
		return entity.PositionUpdate{
			Timestamp: now(),
			Err:       errors.Wrap(domainerrors.ErrTransientRead, err.Error()),
		}
	}

	ts := p.Timestamp
	if ts.IsZero() {
		ts = now()
	}

	return entity.PositionUpdate{
		Coordinate:     coord,
		AccuracyMeters: p.Accuracy,
		Timestamp:      ts,
	}
}
