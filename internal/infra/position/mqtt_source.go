package position

import (
	"context"
	"log/slog"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// subackFailure is the SUBACK return code for a rejected subscription.
const subackFailure byte = 0x80

const releaseTimeout = 2 * time.Second

// MQTTSource receives position samples published on <prefix>/<userID>/position.
type MQTTSource struct {
	client mqtt.Client
	topic  string
	qos    byte
	logger *slog.Logger
}

// ConnectMQTT connects to the broker and keeps message order per subscription.
func ConnectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetOrderMatters(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.Wrap(token.Error(), "mqtt connect")
	}

	return client, nil
}

// NewMQTTSource creates a source for one user's position topic.
func NewMQTTSource(client mqtt.Client, topicPrefix, userID string, qos byte, logger *slog.Logger) *MQTTSource {
	return &MQTTSource{
		client: client,
		topic:  topicPrefix + "/" + userID + "/position",
		qos:    qos,
		logger: logger,
	}
}

// Topic returns the topic the source listens on.
func (s *MQTTSource) Topic() string {
	return s.topic
}

// RequestPermission subscribes once and reports false when the broker refuses
// the topic in its SUBACK.
func (s *MQTTSource) RequestPermission(ctx context.Context) (bool, error) {
	token := s.client.Subscribe(s.topic, s.qos, nil)
	err := waitToken(ctx, token)
	if rejected(token, s.topic) {
		s.release()

		return false, nil
	}
	if err != nil {
		s.release()

		return false, errors.Wrap(err, "mqtt probe subscribe")
	}

	unsub := s.client.Unsubscribe(s.topic)
	if err := waitToken(ctx, unsub); err != nil {
		return false, errors.Wrap(err, "mqtt probe unsubscribe")
	}

	return true, nil
}

// Watch implements service.PositionSource.
func (s *MQTTSource) Watch(ctx context.Context, opts service.WatchOptions, handler func(entity.PositionUpdate)) (service.Subscription, error) {
	guard := newGuardedHandler(opts, handler)

	token := s.client.Subscribe(s.topic, s.qos, func(_ mqtt.Client, msg mqtt.Message) {
		guard.deliver(DecodePayload(msg.Payload(), time.Now))
	})
	if err := waitToken(ctx, token); err != nil {
		guard.close()
		s.release()

		return nil, errors.Wrapf(err, "mqtt subscribe %s", s.topic)
	}
	if rejected(token, s.topic) {
		guard.close()
		s.release()

		return nil, errors.Errorf("mqtt subscribe %s rejected by broker", s.topic)
	}

	s.logger.Info("[MQTT] Watching positions", slog.String("topic", s.topic))

	return &subscription{
		guard: guard,
		cancel: func() error {
			s.logger.Info("[MQTT] Stopped watching positions", slog.String("topic", s.topic))
			unsub := s.client.Unsubscribe(s.topic)
			unsub.Wait()

			return errors.WithStack(unsub.Error())
		},
	}, nil
}

// release drops a subscription whose SUBACK was refused or never arrived.
// The caller's context may already be done, so it waits on its own timeout.
func (s *MQTTSource) release() {
	token := s.client.Unsubscribe(s.topic)
	if !token.WaitTimeout(releaseTimeout) || token.Error() != nil {
		s.logger.Warn("[MQTT] Failed to release subscription",
			slog.String("topic", s.topic),
			slog.Any("error", token.Error()),
		)
	}
}

func waitToken(ctx context.Context, token mqtt.Token) error {
	select {
	case <-token.Done():
		return errors.WithStack(token.Error())
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func rejected(token mqtt.Token, topic string) bool {
	st, ok := token.(*mqtt.SubscribeToken)
	if !ok {
		return false
	}

	code, found := st.Result()[topic]

	return found && code == subackFailure
}
