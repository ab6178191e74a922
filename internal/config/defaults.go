// Package config provides centralized configuration constants for taskdeck.
// All default values should be defined here to ensure a single source of truth.
package config

import "time"

// EnvPrefix is prepended to every config key read from the environment,
// e.g. TASKDECK_SERVER_PORT.
const EnvPrefix = "TASKDECK"

// ConfigName is the base name of the config file searched for on startup.
const ConfigName = ".taskdeck"

// Server defaults
const (
	DefaultHost            = ""
	DefaultPort            = 3000
	DefaultShutdownTimeout = 5 * time.Second
)

// Store defaults
const (
	DefaultBackend  = "memory"
	DefaultIDPolicy = "monotonic"
	DefaultDBFile   = "tasks.db"
)

// Logging defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultTelemetryInterval is how often metrics are exported when telemetry is enabled.
const DefaultTelemetryInterval = 30 * time.Second

// Client defaults
const (
	DefaultServerURL     = "http://localhost:3000"
	DefaultClientTimeout = 10 * time.Second
)

// DefaultAllowedOrigins allows any browser origin.
var DefaultAllowedOrigins = []string{"*"}

// LegacyEnv maps config keys to the bare environment variables older
// deployments used. They are consulted after the prefixed variables.
var LegacyEnv = map[string]string{
	"server.port":      "PORT",
	"auth.secretToken": "SECRET_TOKEN",
	"client.token":     "SECRET_TOKEN",
}
