package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/sauce/internal/logger"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "sauce",
		Usage: "Read, write and strip SAUCE metadata records",
		Flags: globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return ctx, err
			}
			applyGlobalConfig(cmd, cfg)
			settings = cfg

			log, err := logger.FromFlags(os.Stderr, logLevel, logFormat, debug)
			if err != nil {
				return ctx, cli.Exit(err.Error(), 2)
			}
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			infoCmd(),
			stripCmd(),
			writeCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}
