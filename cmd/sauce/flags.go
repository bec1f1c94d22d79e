package main

import "github.com/urfave/cli/v3"

var (
	configFile string
	codepage   string
	logLevel   string
	logFormat  string
	debug      bool

	// settings is the loaded config file, consulted by subcommands for
	// their own defaults.
	settings Config
)

func globalFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml",
			Value:       configPath(),
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "codepage",
			Aliases:     []string{"cp"},
			Usage:       "codepage of text fields (cp437, latin1, utf8)",
			Value:       "cp437",
			Destination: &codepage,
		},
	}, loggingFlags()...)
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func stripModeFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "mode",
		Aliases:     []string{"m"},
		Usage:       "strip mode (last, last-eof, all, all-eof)",
		Value:       "all-eof",
		Destination: dst,
	}
}

func outputFlags(output *string, inPlace *bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "write the result to this file instead of stdout",
			Destination: output,
		},
		&cli.BoolFlag{
			Name:        "in-place",
			Aliases:     []string{"i"},
			Usage:       "replace the input file",
			Destination: inPlace,
		},
	}
}
