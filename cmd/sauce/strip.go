package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/sauce/internal/logger"
	"github.com/samcharles93/sauce/pkg/sauce"
)

func stripCmd() *cli.Command {
	var (
		modeName string
		output   string
		inPlace  bool
	)

	return &cli.Command{
		Name:      "strip",
		Usage:     "Remove trailing SAUCE records",
		ArgsUsage: "FILE",
		Flags:     append([]cli.Flag{stripModeFlag(&modeName)}, outputFlags(&output, &inPlace)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("strip: exactly one FILE is required", 2)
			}
			if inPlace && output != "" {
				return cli.Exit("strip: --in-place and --output are mutually exclusive", 2)
			}
			applyStripConfig(cmd, settings, &modeName)
			mode, err := sauce.ParseStripMode(modeName)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			path := cmd.Args().First()
			f, err := sauce.OpenFile(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			res := f.Content(mode)
			logger.FromContext(ctx).Debug("stripped",
				"file", path,
				"mode", mode.String(),
				"records", res.RecordsRemoved,
				"eof", res.EOFBytesRemoved,
			)
			if inPlace && res.RecordsRemoved == 0 {
				return nil
			}
			return emit(path, output, inPlace, res.Data)
		},
	}
}

// emit writes data to stdout, to output, or over src when inPlace is set.
func emit(src, output string, inPlace bool, data []byte) error {
	switch {
	case inPlace:
		return replaceFile(src, data)
	case output != "":
		return os.WriteFile(output, data, 0o644)
	}
	_, err := os.Stdout.Write(data)
	return err
}

// replaceFile writes data next to path and renames it into place so a
// failed write never leaves a truncated file.
func replaceFile(path string, data []byte) error {
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("write %s: %w", name, err))
	}
	if err := tmp.Chmod(st.Mode().Perm()); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		return cleanup(err)
	}
	return os.Rename(name, path)
}
