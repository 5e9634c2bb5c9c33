// Package constants holds configuration values shared across deliveries.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used in production.
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Position feed providers.
const (
	PositionProviderNATS   = "nats"
	PositionProviderMQTT   = "mqtt"
	PositionProviderManual = "manual"
)

const (
	// DefaultSafeZoneRadiusMeters is the safe-zone radius used when none is configured.
	DefaultSafeZoneRadiusMeters = 2000.0

	// DefaultPositionIntervalMillis is the minimum interval between delivered position samples.
	DefaultPositionIntervalMillis = 5000
)
