/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/josephgoksu/taskdeck/internal/auth"
	"github.com/josephgoksu/taskdeck/internal/config"
	"github.com/josephgoksu/taskdeck/internal/logger"
	"github.com/josephgoksu/taskdeck/internal/server"
	"github.com/josephgoksu/taskdeck/internal/telemetry"
	"github.com/josephgoksu/taskdeck/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the task HTTP API",
	Long: `Run the HTTP API until SIGINT or SIGTERM.

Routes:
  GET    /tasks        list tasks
  POST   /tasks        create a task        {"content": "..."}
  GET    /tasks/{id}   get a task
  PUT    /tasks/{id}   replace task content {"content": "..."}
  DELETE /tasks/{id}   delete a task
  GET    /healthz      liveness, no auth

Every /tasks request needs "Authorization: Bearer <SECRET_TOKEN>".
Changing auth.secretToken in the config file takes effect without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", config.DefaultHost, "interface to listen on (default all)")
	serveCmd.Flags().IntP("port", "p", config.DefaultPort, "port to listen on ($PORT)")
	bindServeFlags()
	rootCmd.AddCommand(serveCmd)
}

func bindServeFlags() {
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	logger.SetCommand("serve")

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	policy, err := store.ParseIDPolicy(cfg.Store.IDPolicy)
	if err != nil {
		return err
	}
	taskStore, err := store.Open(cfg.Store.Backend, cfg.Store.Path, policy)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer func() { _ = taskStore.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := telemetry.Init(ctx, cfg.Telemetry, cmd.ErrOrStderr(), GetVersion())
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	stats, _ := taskStore.(store.StatsProvider)
	metrics, err := telemetry.NewMetrics(provider.Meter, stats)
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}
	defer func() { _ = metrics.Close() }()

	authn := auth.NewBearerAuthenticator(cfg.Auth.SecretToken)
	if !authn.Enabled() {
		log.Warn("no secret token configured; every /tasks request will be rejected", "hint", "set SECRET_TOKEN")
	}
	watchSecret(viper.GetViper(), authn, log)

	srv, err := server.New(server.Options{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Store:          taskStore,
		Auth:           authn,
		Logger:         log,
		Metrics:        metrics,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	log.Info("starting taskdeck",
		"version", GetVersion(),
		"addr", srv.Addr(),
		"store", cfg.Store.Backend,
		"id_policy", string(policy),
	)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// watchSecret re-reads auth.secretToken whenever the config file changes.
func watchSecret(v *viper.Viper, a *auth.BearerAuthenticator, log *slog.Logger) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(secretReloader(v, a, log))
	v.WatchConfig()
}

func secretReloader(v *viper.Viper, a *auth.BearerAuthenticator, log *slog.Logger) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		a.SetSecret(v.GetString("auth.secretToken"))
		log.Info("config reloaded", "file", e.Name, "op", e.Op.String(), "auth_enabled", a.Enabled())
	}
}
