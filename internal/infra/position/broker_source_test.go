package position

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func pendingToken() *fakeToken {
	return &fakeToken{done: make(chan struct{})}
}

func completedToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)

	return t
}

func (t *fakeToken) Wait() bool {
	<-t.done

	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} { return t.done }

func (t *fakeToken) Error() error { return t.err }

// fakeMQTTClient answers Subscribe with a preset token and records Unsubscribe calls.
type fakeMQTTClient struct {
	mqtt.Client

	mu           sync.Mutex
	subscribe    mqtt.Token
	callback     mqtt.MessageHandler
	unsubscribed []string
}

func (c *fakeMQTTClient) Subscribe(_ string, _ byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callback = callback

	return c.subscribe
}

func (c *fakeMQTTClient) Unsubscribe(topics ...string) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unsubscribed = append(c.unsubscribed, topics...)

	return completedToken(nil)
}

func (c *fakeMQTTClient) unsubscribedTopics() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.unsubscribed...)
}

type fakeMessage struct {
	mqtt.Message
	payload []byte
}

func (m fakeMessage) Payload() []byte { return m.payload }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMQTTSource_WatchCancelledReleasesSubscription(t *testing.T) {
	client := &fakeMQTTClient{subscribe: pendingToken()}
	src := NewMQTTSource(client, "safezone", "user-1", 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	delivered := 0
	sub, err := src.Watch(ctx, service.WatchOptions{}, func(entity.PositionUpdate) { delivered++ })
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, sub)
	assert.Equal(t, []string{"safezone/user-1/position"}, client.unsubscribedTopics())

	// A message racing the release must not reach the handler.
	require.NotNil(t, client.callback)
	client.callback(client, fakeMessage{payload: []byte(`{"latitude":0,"longitude":0}`)})
	assert.Zero(t, delivered)
}

func TestMQTTSource_WatchDelivers(t *testing.T) {
	client := &fakeMQTTClient{subscribe: completedToken(nil)}
	src := NewMQTTSource(client, "safezone", "user-1", 1, testLogger())

	var got []entity.Coordinate
	sub, err := src.Watch(context.Background(), service.WatchOptions{}, func(u entity.PositionUpdate) {
		got = append(got, u.Coordinate)
	})
	require.NoError(t, err)
	assert.Empty(t, client.unsubscribedTopics())

	client.callback(client, fakeMessage{payload: []byte(`{"latitude":1,"longitude":2}`)})
	assert.Equal(t, []entity.Coordinate{{Latitude: 1, Longitude: 2}}, got)

	require.NoError(t, sub.Unsubscribe())
	assert.Equal(t, []string{"safezone/user-1/position"}, client.unsubscribedTopics())
}

func TestMQTTSource_RequestPermissionCancelledReleasesSubscription(t *testing.T) {
	client := &fakeMQTTClient{subscribe: pendingToken()}
	src := NewMQTTSource(client, "safezone", "user-1", 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	granted, err := src.RequestPermission(ctx)
	assert.False(t, granted)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, []string{"safezone/user-1/position"}, client.unsubscribedTopics())
}

func TestIsPermissionViolation(t *testing.T) {
	const subject = "positions.user-1"

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "no error", err: nil, want: false},
		{name: "this subject", err: errors.New(`nats: permissions violation for subscription to "positions.user-1"`), want: true},
		{name: "server casing", err: errors.New(`nats: Permissions Violation for Subscription to "positions.user-1"`), want: true},
		{name: "other subject", err: errors.New(`nats: permissions violation for publish to "billing.events"`), want: false},
		{name: "subject prefix only", err: errors.New(`nats: permissions violation for subscription to "positions.user-10"`), want: false},
		{name: "unrelated error", err: errors.New(`nats: connection closed`), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isPermissionViolation(tt.err, subject))
		})
	}
}
