package cmd

import (
	"fmt"
	"os"

	"github.com/josephgoksu/taskdeck/internal/config"
	"github.com/josephgoksu/taskdeck/internal/logger"
	"github.com/josephgoksu/taskdeck/types"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// InitConfig reads in .env, the config file and ENV variables if set.
func InitConfig() error {
	// It's okay if .env file doesn't exist.
	if err := config.LoadDotenv(); err != nil {
		return err
	}

	cfg, err := config.Load(viper.GetViper(), viper.GetString("config"))
	if err != nil {
		return err
	}
	GlobalAppConfig = *cfg

	if cfg.Verbose {
		if cfg.Config != "" {
			fmt.Fprintln(os.Stderr, "Using config file:", cfg.Config)
		} else {
			fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
		}
	}

	logger.SetBasePath(cfg.DataDir)
	logger.SetVersion(version)
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
