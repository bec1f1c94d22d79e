package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/sauce/internal/logger"
	"github.com/samcharles93/sauce/internal/render"
	"github.com/samcharles93/sauce/pkg/sauce"
)

func infoCmd() *cli.Command {
	var (
		showComments bool
		showRaw      bool
		asJSON       bool
	)

	return &cli.Command{
		Name:      "info",
		Aliases:   []string{"show"},
		Usage:     "Print the SAUCE record of one or more files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "comments",
				Aliases:     []string{"c"},
				Usage:       "print comment lines",
				Destination: &showComments,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print the undecoded capability fields",
				Destination: &showRaw,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print JSON instead of text",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return cli.Exit("info: at least one FILE is required", 2)
			}
			dec, err := render.DecoderFor(codepage)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			log := logger.FromContext(ctx)

			missing := 0
			for _, path := range cmd.Args().Slice() {
				v, err := inspectFile(path, render.Options{Decoder: dec, Raw: showRaw})
				if err != nil {
					return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
				}
				for _, w := range v.Warnings {
					log.Warn(w, "file", path)
				}
				if !v.Found {
					missing++
				}
				if asJSON {
					err = render.WriteJSON(os.Stdout, v)
				} else {
					err = render.WriteText(os.Stdout, path, v, render.TextOptions{Comments: showComments, Raw: showRaw})
				}
				if err != nil {
					return err
				}
			}
			if missing == cmd.NArg() {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func inspectFile(path string, opts render.Options) (*render.View, error) {
	f, err := sauce.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return render.Inspect(f.Data, opts)
}
