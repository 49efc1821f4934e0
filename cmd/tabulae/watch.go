package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/duquediazn/tabulae-client/internal/scheduler"
)

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run as a long-lived session: auto-refresh, cross-process sync and periodic snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			stop, err := a.notifier.Start(a.sessions)
			if err != nil {
				return fmt.Errorf("start signal subscription: %w", err)
			}
			defer stop()

			sched := scheduler.NewScheduler(a.cfg.Snapshot, a.dashboard(), a.exporter(), a.logger.Named("scheduler"))
			sched.Start()
			defer sched.Stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			fmt.Println("Watching; press Ctrl+C to stop")
			<-ctx.Done()

			a.logger.Info("shutdown signal received")
			return nil
		},
	}
}
