package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/app"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		port   int
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("db") {
				cfg.DatabasePath = dbPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := app.NewLogger(cfg, os.Stdout)
			if _, err := maxprocs.Set(maxprocs.Logger(log.Infof)); err != nil {
				return fmt.Errorf("error setting GOMAXPROCS: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, log)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides CALENDAR_PORT)")
	cmd.Flags().StringVar(&dbPath, "db", "calendar.db", "Preference database (overrides CALENDAR_DB)")
	return cmd
}

func runServer(ctx context.Context, cfg *app.Config, log *logrus.Entry) error {
	store, err := app.OpenStore(ctx, cfg.DatabasePath, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("closing preference store")
		}
	}()

	srv, err := app.NewServer(cfg, log, store)
	if err != nil {
		return err
	}

	log.Info("starting fullbleed-calendar")
	return srv.ListenAndServe(ctx)
}
