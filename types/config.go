/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

import "time"

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	DataDir   string          `mapstructure:"dataDir" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Store     StoreConfig     `mapstructure:"store" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Client    ClientConfig    `mapstructure:"client" validate:"required"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"omitempty,hostname|ip"`
	Port            int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" validate:"required,min=1ms"`
}

// AuthConfig holds the shared bearer secret. An empty secret rejects every request.
type AuthConfig struct {
	SecretToken string `mapstructure:"secretToken"`
}

// StoreConfig selects the task store backend
type StoreConfig struct {
	Backend  string `mapstructure:"backend" validate:"required,oneof=memory sqlite"`
	Path     string `mapstructure:"path" validate:"required_if=Backend sqlite"`
	IDPolicy string `mapstructure:"idPolicy" validate:"required,oneof=monotonic length"`
}

// LogConfig controls slog output
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// TelemetryConfig controls OpenTelemetry metrics export
type TelemetryConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval" validate:"required_if=Enabled true"`
}

// CORSConfig lists origins allowed to call the API from a browser. "*" allows any origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// ClientConfig configures the CLI commands that talk to a running server
type ClientConfig struct {
	Server  string        `mapstructure:"server" validate:"required,url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout" validate:"required"`
}
