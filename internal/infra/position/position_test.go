package position

import (
	"context"
	"strings"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

func TestDecodePayload(t *testing.T) {
	u := DecodePayload([]byte(`{"latitude":25.03,"longitude":121.56,"accuracy":5,"timestamp":"2026-01-01T00:00:00Z"}`), fixedNow)

	require.NoError(t, u.Err)
	assert.Equal(t, entity.Coordinate{Latitude: 25.03, Longitude: 121.56}, u.Coordinate)
	assert.Equal(t, 5.0, u.AccuracyMeters)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), u.Timestamp)
}

func TestDecodePayload_DefaultsTimestamp(t *testing.T) {
	u := DecodePayload([]byte(`{"latitude":1,"longitude":2}`), fixedNow)

	require.NoError(t, u.Err)
	assert.Equal(t, fixedNow(), u.Timestamp)
}

func TestDecodePayload_MalformedIsTransient(t *testing.T) {
	for _, raw := range []string{`not-json`, `{"latitude":120,"longitude":0}`} {
		u := DecodePayload([]byte(raw), fixedNow)
		assert.True(t, errors.Is(u.Err, domainerrors.ErrTransientRead), raw)
	}
}

func TestSampleFilter_MinInterval(t *testing.T) {
	f := newSampleFilter(service.WatchOptions{MinInterval: 5 * time.Second})
	base := fixedNow()

	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base}))
	assert.False(t, f.accept(entity.PositionUpdate{Timestamp: base.Add(2 * time.Second)}))
	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base.Add(5 * time.Second)}))
	assert.False(t, f.accept(entity.PositionUpdate{Timestamp: base.Add(9 * time.Second)}))
	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base.Add(10 * time.Second)}))
}

func TestSampleFilter_KeepsCoarseFixes(t *testing.T) {
	f := newSampleFilter(service.WatchOptions{Accuracy: service.AccuracyHigh})
	base := fixedNow()

	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base, AccuracyMeters: 0}))
	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base.Add(time.Second), AccuracyMeters: 15}))
	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base.Add(2 * time.Second), AccuracyMeters: 250}))
}

func TestSampleFilter_ErrorsPassThrough(t *testing.T) {
	f := newSampleFilter(service.WatchOptions{MinInterval: time.Hour, Accuracy: service.AccuracyHigh})
	base := fixedNow()

	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base}))
	assert.True(t, f.accept(entity.PositionUpdate{Timestamp: base, Err: domainerrors.ErrTransientRead}))
}

func TestManualSource_EmitAndUnsubscribe(t *testing.T) {
	src := NewManualSource(true)
	ctx := context.Background()

	var got []entity.Coordinate
	sub, err := src.Watch(ctx, service.WatchOptions{}, func(u entity.PositionUpdate) {
		got = append(got, u.Coordinate)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, src.Watchers())

	src.EmitCoordinate(entity.Coordinate{Latitude: 1})
	src.EmitCoordinate(entity.Coordinate{Latitude: 2})

	require.NoError(t, sub.Unsubscribe())
	require.NoError(t, sub.Unsubscribe())
	assert.Equal(t, 0, src.Watchers())

	src.EmitCoordinate(entity.Coordinate{Latitude: 3})

	assert.Equal(t, []entity.Coordinate{{Latitude: 1}, {Latitude: 2}}, got)
}

func TestManualSource_Permission(t *testing.T) {
	src := NewManualSource(false)

	granted, err := src.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.False(t, granted)

	src.SetPermission(true)
	granted, err = src.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.RequestPermission(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManualSource_Replay(t *testing.T) {
	src := NewManualSource(true)
	src.now = fixedNow

	var updates []entity.PositionUpdate
	_, err := src.Watch(context.Background(), service.WatchOptions{}, func(u entity.PositionUpdate) {
		updates = append(updates, u)
	})
	require.NoError(t, err)

	input := strings.Join([]string{
		`{"latitude":0,"longitude":0}`,
		``,
		`garbage`,
		`{"latitude":0,"longitude":0.02}`,
	}, "\n")

	require.NoError(t, src.Replay(context.Background(), strings.NewReader(input)))
	require.Len(t, updates, 3)
	assert.NoError(t, updates[0].Err)
	assert.True(t, errors.Is(updates[1].Err, domainerrors.ErrTransientRead))
	assert.Equal(t, 0.02, updates[2].Coordinate.Longitude)
}
