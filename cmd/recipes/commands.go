package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Leopold1975/recipes/internal/pkg/config"
	"github.com/Leopold1975/recipes/internal/pkg/pgtools"
	"github.com/Leopold1975/recipes/internal/recipes/app"
	"github.com/Leopold1975/recipes/pkg/logger"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API (default)",
		Action: serve,
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.New(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("app error: %w", err)
	}

	a.Run(ctx)

	return nil
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations and exit",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "version",
				Usage: "migrate up to this version instead of the configured one (0 means latest)",
			},
			&cli.BoolFlag{
				Name:  "reload",
				Usage: "drop every migration before applying them again",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.New(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			lg, err := logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("can't get logger error: %w", err)
			}
			defer lg.Sync() //nolint:errcheck

			if cmd.IsSet("version") {
				cfg.PostgresDB.Version = cmd.Int("version")
			}

			if cmd.IsSet("reload") {
				cfg.PostgresDB.Reload = cmd.Bool("reload")
			}

			db, err := pgtools.New(ctx, cfg.PostgresDB)
			if err != nil {
				return fmt.Errorf("migrate error: %w", err)
			}
			db.Close()

			lg.Infof("migrations applied, version %d", cfg.PostgresDB.Version)

			return nil
		},
	}
}

func waitForDBCmd() *cli.Command {
	return &cli.Command{
		Name:  "wait-for-db",
		Usage: "Block until the database accepts connections",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: time.Minute,
				Usage: "give up after this long",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.New(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			lg, err := logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("can't get logger error: %w", err)
			}
			defer lg.Sync() //nolint:errcheck

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			lg.Info("Waiting for database...")

			db, err := pgtools.Connect(ctx, pgtools.ConnString(cfg.PostgresDB))
			if err != nil {
				return fmt.Errorf("database unavailable error: %w", err)
			}
			db.Close()

			lg.Info("Database available!")

			return nil
		},
	}
}
