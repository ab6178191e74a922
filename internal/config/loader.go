package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/taskdeck/types"
	"github.com/spf13/viper"
)

var validate = validator.New()

// LoadDotenv loads .env files into the process environment. A missing file is not an error.
func LoadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.shutdownTimeout", DefaultShutdownTimeout)

	v.SetDefault("store.backend", DefaultBackend)
	v.SetDefault("store.idPolicy", DefaultIDPolicy)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.interval", DefaultTelemetryInterval)

	v.SetDefault("cors.allowedOrigins", DefaultAllowedOrigins)

	v.SetDefault("client.server", DefaultServerURL)
	v.SetDefault("client.timeout", DefaultClientTimeout)
}

// BindEnv wires the prefixed environment variables and the legacy bare ones.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range LegacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

// Load reads configuration from defaults, the config file and the environment,
// in increasing order of precedence, and validates the result.
// An explicit cfgFile that cannot be read is an error; a missing searched file is not.
func Load(v *viper.Viper, cfgFile string) (*types.AppConfig, error) {
	SetDefaults(v)
	if err := BindEnv(v); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if info, err := os.Stat(ConfigName); err == nil && info.IsDir() {
			v.AddConfigPath(ConfigName) // ./.taskdeck/.taskdeck.yaml
		}
		if dir, err := GetGlobalConfigDir(); err == nil {
			v.AddConfigPath(filepath.Dir(dir)) // ~/.taskdeck.yaml
		}
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg types.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Config = v.ConfigFileUsed()
	cfg.DataDir = ResolveDataDir(cfg.DataDir)
	if cfg.Store.Backend == "sqlite" && cfg.Store.Path == "" {
		cfg.Store.Path = DefaultDBPath(cfg.DataDir)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
