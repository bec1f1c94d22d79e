package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/sauce/internal/api"
	"github.com/samcharles93/sauce/internal/logger"
	"github.com/samcharles93/sauce/pkg/sauce"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		maxUpload   int64
		modeName    string
		reports     int64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the inspect and strip HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.Int64Flag{
				Name:        "max-upload",
				Usage:       "largest accepted request body in bytes",
				Value:       64 << 20,
				Destination: &maxUpload,
			},
			&cli.Int64Flag{
				Name:        "reports",
				Usage:       "number of inspection reports kept in memory",
				Value:       256,
				Destination: &reports,
			},
			stripModeFlag(&modeName),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyServeConfig(cmd, settings, &addr, &maxUpload, &modeName)
			mode, err := sauce.ParseStripMode(modeName)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			server, err := api.NewServer(api.Config{
				MaxUploadBytes:   maxUpload,
				DefaultStripMode: mode,
				Codepage:         codepage,
				StoreCapacity:    int(reports),
				Logger:           log.WithGroup("api"),
			})
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)

			log.Info("starting server", "address", addr, "strip_mode", mode.String(), "codepage", codepage)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
