package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	interruptSignals := []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

	ctx, cancel := signal.NotifyContext(context.Background(), interruptSignals...)
	defer cancel()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		log.Fatal(err) //nolint:gocritic
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:  "recipes",
		Usage: "Multi-tenant recipe management API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "path to configuration file",
				Sources:  cli.EnvVars("RECIPES_CONFIG"),
				Required: true,
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			waitForDBCmd(),
		},
		Action: serve,
	}
}
