package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/duquediazn/tabulae-client/internal/broadcast"
	"github.com/duquediazn/tabulae-client/internal/config"
	"github.com/duquediazn/tabulae-client/internal/export"
	"github.com/duquediazn/tabulae-client/internal/service/dashboard"
	sessionpkg "github.com/duquediazn/tabulae-client/internal/session"
	"github.com/duquediazn/tabulae-client/pkg/clients/tabulae"
	"github.com/duquediazn/tabulae-client/pkg/logger"
)

var Version = "dev"

// app bundles the wired client components shared by every command.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	api      *tabulae.Client
	sessions *sessionpkg.Manager
	notifier *broadcast.Notifier

	email    string
	password string
}

func newApp() (*app, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}

	baseLogger := logger.Must(logger.New())
	zap.ReplaceGlobals(baseLogger)

	api := tabulae.New(cfg.API.BaseURL, cfg.API.Timeout)

	medium, err := broadcast.NewDirMedium(cfg.Signals.Dir, cfg.Signals.PollInterval, baseLogger.Named("broadcast"))
	if err != nil {
		return nil, err
	}

	notifier := broadcast.NewNotifier(medium, baseLogger.Named("notifier"))
	sessions := sessionpkg.NewManager(api.Auth, notifier, baseLogger.Named("session"))
	api.SetTokenSource(sessions)

	return &app{
		cfg:      cfg,
		logger:   baseLogger,
		api:      api,
		sessions: sessions,
		notifier: notifier,
	}, nil
}

func (a *app) close() {
	a.sessions.Close()
	_ = a.logger.Sync()
}

// ensureSession bootstraps from the ambient cookie and falls back to an
// explicit login when credentials were provided.
func (a *app) ensureSession(ctx context.Context) error {
	if sess := a.sessions.Bootstrap(ctx); sess.Authenticated {
		return nil
	}

	if a.email == "" || a.password == "" {
		return errors.New("not authenticated: pass --email and --password or set TABULAE_EMAIL/TABULAE_PASSWORD")
	}

	if _, err := a.sessions.Login(ctx, a.email, a.password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	return nil
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer a.close()

	rootCmd := &cobra.Command{
		Use:     "tabulae",
		Short:   "Tabulae - warehouse inventory client",
		Version: Version,
	}

	rootCmd.PersistentFlags().StringVar(&a.email, "email", os.Getenv("TABULAE_EMAIL"), "account email")
	rootCmd.PersistentFlags().StringVar(&a.password, "password", os.Getenv("TABULAE_PASSWORD"), "account password")

	rootCmd.AddCommand(loginCmd(a))
	rootCmd.AddCommand(logoutCmd(a))
	rootCmd.AddCommand(registerCmd(a))
	rootCmd.AddCommand(profileCmd(a))
	rootCmd.AddCommand(productsCmd(a))
	rootCmd.AddCommand(warehousesCmd(a))
	rootCmd.AddCommand(movementsCmd(a))
	rootCmd.AddCommand(usersCmd(a))
	rootCmd.AddCommand(exportCmd(a))
	rootCmd.AddCommand(dashboardCmd(a))
	rootCmd.AddCommand(watchCmd(a))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) exporter() *export.Exporter {
	return export.NewExporter(a.api, a.logger.Named("export"))
}

func (a *app) dashboard() *dashboard.Service {
	return dashboard.NewService(a.api, a.logger.Named("svc.dashboard"))
}
