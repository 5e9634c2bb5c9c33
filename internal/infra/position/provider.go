package position

import (
	"context"
	"log/slog"

	"safezone/config"
	"safezone/internal/domain/constants"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	"go.uber.org/fx"
)

// mqttDisconnectQuiesce is how long, in milliseconds, MQTT may finish in-flight work on shutdown.
const mqttDisconnectQuiesce = 250

// SourceParams holds dependencies for the PositionSource, injected by Fx
type SourceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSource creates the PositionSource selected by positionFeed.provider and
// closes its broker connection on shutdown.
func NewSource(params SourceParams) (service.PositionSource, error) {
	feed := params.Config.PositionFeed
	if feed == nil || feed.Provider == "" {
		return nil, errors.New("positionFeed.provider is required")
	}

	userID := ""
	if params.Config.SafeZone != nil {
		userID = params.Config.SafeZone.UserID
	}

	switch feed.Provider {
	case constants.PositionProviderManual:
		params.Logger.Info("Using manual position source", slog.Bool("permission", feed.ManualPermission))

		return NewManualSource(feed.ManualPermission), nil

	case constants.PositionProviderNATS:
		if feed.NATS == nil || feed.NATS.URL == "" {
			return nil, errors.New("positionFeed.nats.url is required for nats provider")
		}
		if userID == "" {
			return nil, errors.New("safeZone.userId is required for nats provider")
		}

		conn, err := ConnectNATS(feed.NATS.URL)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				params.Logger.Info("Draining NATS connection")

				return errors.WithStack(conn.Drain())
			},
		})

		source := NewNATSSource(conn, subjectPrefix(feed.NATS.SubjectPrefix), userID, params.Logger)
		params.Logger.Info("Using NATS position source", slog.String("subject", source.Subject()))

		return source, nil

	case constants.PositionProviderMQTT:
		if feed.MQTT == nil || feed.MQTT.Broker == "" {
			return nil, errors.New("positionFeed.mqtt.broker is required for mqtt provider")
		}
		if userID == "" {
			return nil, errors.New("safeZone.userId is required for mqtt provider")
		}

		client, err := ConnectMQTT(feed.MQTT.Broker, feed.MQTT.ClientID)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				params.Logger.Info("Disconnecting MQTT client")
				client.Disconnect(mqttDisconnectQuiesce)

				return nil
			},
		})

		source := NewMQTTSource(client, topicPrefix(feed.MQTT.TopicPrefix), userID, feed.MQTT.QoS, params.Logger)
		params.Logger.Info("Using MQTT position source", slog.String("topic", source.Topic()))

		return source, nil

	default:
		return nil, errors.Errorf("unknown position feed provider: %s", feed.Provider)
	}
}

func subjectPrefix(prefix string) string {
	if prefix == "" {
		return "positions"
	}

	return prefix
}

func topicPrefix(prefix string) string {
	if prefix == "" {
		return "safezone"
	}

	return prefix
}
