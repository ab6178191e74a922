package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with no global config.
func isolate(t *testing.T) string {
	t.Helper()
	wd, _ := os.Getwd()
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	orig := GetGlobalConfigDir
	GetGlobalConfigDir = func() (string, error) { return filepath.Join(tmp, "home", ".taskdeck"), nil }
	t.Cleanup(func() { GetGlobalConfigDir = orig })

	for _, k := range []string{"PORT", "SECRET_TOKEN", "TASKDECK_SERVER_PORT", "TASKDECK_AUTH_SECRETTOKEN", "TASKDECK_CLIENT_TOKEN", "TASKDECK_DATADIR", "XDG_DATA_HOME"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	return tmp
}

func TestLoad_Defaults(t *testing.T) {
	tmp := isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "monotonic", cfg.Store.IDPolicy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, DefaultServerURL, cfg.Client.Server)
	assert.Empty(t, cfg.Auth.SecretToken)
	assert.Empty(t, cfg.Config)
	assert.Equal(t, filepath.Join(tmp, "home", ".taskdeck"), cfg.DataDir)
}

func TestLoad_LegacyEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8080")
	t.Setenv("SECRET_TOKEN", "s3cret")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Auth.SecretToken)
	assert.Equal(t, "s3cret", cfg.Client.Token)
}

func TestLoad_PrefixedEnvBeatsLegacy(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TASKDECK_SERVER_PORT", "9090")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, "custom.yaml")
	content := `
server:
  port: 4000
  shutdownTimeout: 2s
store:
  backend: sqlite
log:
  format: json
dataDir: ` + filepath.Join(tmp, "data") + `
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, path, cfg.Config)
	assert.Equal(t, filepath.Join(tmp, "data", "tasks.db"), cfg.Store.Path)
}

func TestLoad_SearchedConfigFile(t *testing.T) {
	tmp := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".taskdeck.yaml"), []byte("server:\n  port: 5050\n"), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.Server.Port)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		tmp := isolate(t)
		_, err := Load(viper.New(), filepath.Join(tmp, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		isolate(t)
		t.Setenv("TASKDECK_STORE_BACKEND", "mongo")
		_, err := Load(viper.New(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

func TestLoadDotenv_MissingFileIsFine(t *testing.T) {
	isolate(t)
	assert.NoError(t, LoadDotenv())
}

func TestLoadDotenv_SetsEnv(t *testing.T) {
	tmp := isolate(t)
	path := filepath.Join(tmp, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SECRET_TOKEN=fromdotenv\n"), 0o644))

	require.NoError(t, LoadDotenv(path))
	t.Cleanup(func() { _ = os.Unsetenv("SECRET_TOKEN") })

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "fromdotenv", cfg.Auth.SecretToken)
}
