package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/sauce/internal/logger"
	"github.com/samcharles93/sauce/pkg/sauce"
)

func writeCmd() *cli.Command {
	var (
		title, author, group string
		date                 string
		comments             []string
		format               string
		columns, lines       int64
		ice                  bool
		font                 string
		spacing, aspect      string
		keep                 bool
		output               string
		inPlace              bool
	)

	return &cli.Command{
		Name:      "write",
		Aliases:   []string{"attach"},
		Usage:     "Attach a SAUCE record, replacing any existing one",
		ArgsUsage: "FILE",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "title (max 35 bytes)", Destination: &title},
			&cli.StringFlag{Name: "author", Aliases: []string{"a"}, Usage: "author (max 20 bytes)", Destination: &author},
			&cli.StringFlag{Name: "group", Aliases: []string{"g"}, Usage: "group (max 20 bytes)", Destination: &group},
			&cli.StringFlag{Name: "date", Usage: "creation date as YYYYMMDD (default today)", Destination: &date},
			&cli.StringSliceFlag{Name: "comment", Usage: "comment line, repeatable (max 64 bytes each)", Destination: &comments},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "content format: " + strings.Join(formatNames(), ", "), Destination: &format},
			&cli.Int64Flag{Name: "columns", Usage: "width in characters", Destination: &columns},
			&cli.Int64Flag{Name: "lines", Usage: "height in lines", Destination: &lines},
			&cli.BoolFlag{Name: "ice", Usage: "iCE colors (non-blink mode)", Destination: &ice},
			&cli.StringFlag{Name: "font", Usage: "font name, e.g. \"IBM VGA\"", Destination: &font},
			&cli.StringFlag{Name: "letter-spacing", Usage: "legacy, 8px or 9px", Destination: &spacing},
			&cli.StringFlag{Name: "aspect-ratio", Usage: "legacy, stretch or square", Destination: &aspect},
			&cli.BoolFlag{Name: "keep", Aliases: []string{"k"}, Usage: "start from the existing record instead of a blank one", Destination: &keep},
		}, outputFlags(&output, &inPlace)...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("write: exactly one FILE is required", 2)
			}
			if inPlace && output != "" {
				return cli.Exit("write: --in-place and --output are mutually exclusive", 2)
			}
			applyWriteConfig(cmd, settings, &author, &group)
			path := cmd.Args().First()
			log := logger.FromContext(ctx)

			f, err := sauce.OpenFile(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			b := sauce.NewBuilder()
			if keep {
				existing, err := f.Record()
				switch {
				case sauce.IsPartial(err):
					log.Warn("existing comment block is unreadable; comments dropped", "file", path)
				case err != nil:
					log.Debug("no existing record", "file", path, "error", err)
				}
				if existing != nil {
					b = sauce.FromRecord(existing)
					if d := existing.Date; !d.IsZero() && !d.Valid() && date == "" {
						log.Warn("existing date is not a calendar day; using today", "file", path, "date", d.String())
						b.Date(sauce.DateOf(time.Now()))
					}
				}
			}
			if cmd.IsSet("title") || !keep {
				b.Title(title)
			}
			if cmd.IsSet("author") || author != "" {
				b.Author(author)
			}
			if cmd.IsSet("group") || group != "" {
				b.Group(group)
			}
			if date != "" {
				d, err := sauce.ParseDate([]byte(date))
				if err != nil || !d.Valid() {
					return cli.Exit(fmt.Sprintf("write: invalid --date %q", date), 2)
				}
				b.Date(d)
			} else if !keep {
				b.Date(sauce.DateOf(time.Now()))
			}
			if len(comments) > 0 {
				b.ClearComments()
				for _, c := range comments {
					b.Comment(c)
				}
			}
			if format != "" {
				caps, err := capabilitiesFromFlags(format, capFlags{
					columns: columns, lines: lines, ice: ice, font: font, spacing: spacing, aspect: aspect,
				})
				if err != nil {
					return cli.Exit("write: "+err.Error(), 2)
				}
				b.Capabilities(caps)
			}

			rec, err := b.Build()
			if err != nil {
				return cli.Exit("write: "+err.Error(), 1)
			}
			out, err := sauce.Attach(f.Data, rec)
			if err != nil {
				return cli.Exit("write: "+err.Error(), 1)
			}
			log.Debug("attached record", "file", path, "size", len(out), "comments", len(rec.Comments))
			return emit(path, output, inPlace, out)
		},
	}
}

type capFlags struct {
	columns, lines  int64
	ice             bool
	font            string
	spacing, aspect string
}

var characterFormats = map[string]sauce.CharacterFormat{
	"ascii":      sauce.CharacterASCII,
	"ansi":       sauce.CharacterANSI,
	"ansimation": sauce.CharacterANSiMation,
	"rip":        sauce.CharacterRIPScript,
	"pcboard":    sauce.CharacterPCBoard,
	"avatar":     sauce.CharacterAvatar,
	"html":       sauce.CharacterHTML,
	"source":     sauce.CharacterSource,
	"tundra":     sauce.CharacterTundraDraw,
}

func formatNames() []string {
	return []string{"ascii", "ansi", "ansimation", "rip", "pcboard", "avatar", "html", "source", "tundra", "bin", "xbin", "exe"}
}

func capabilitiesFromFlags(format string, f capFlags) (sauce.Capabilities, error) {
	if f.columns < 0 || f.columns > 0xFFFF || f.lines < 0 || f.lines > 0xFFFF {
		return nil, fmt.Errorf("--columns and --lines must be within 0..65535")
	}
	flags, err := textFlags(f)
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(format)
	if cf, ok := characterFormats[name]; ok {
		cols, rows := uint16(f.columns), uint16(f.lines)
		if cols == 0 && cf.HasDimensions() {
			cols = 80
		}
		return sauce.Character{Format: cf, Columns: cols, Lines: rows, Flags: flags, FontName: f.font}, nil
	}
	switch name {
	case "bin", "binarytext":
		cols := uint16(f.columns)
		if cols == 0 {
			cols = 160
		}
		return sauce.Binary{Format: sauce.BinaryText, Columns: cols, Flags: flags, FontName: f.font}, nil
	case "xbin":
		return sauce.Binary{Format: sauce.XBin, Columns: uint16(f.columns), Lines: uint16(f.lines)}, nil
	case "exe", "executable":
		return sauce.Executable{}, nil
	}
	return nil, fmt.Errorf("unknown --format %q", format)
}

func textFlags(f capFlags) (sauce.TextFlags, error) {
	out := sauce.TextFlags{ICEColors: f.ice}
	switch strings.ToLower(f.spacing) {
	case "", "legacy":
	case "8", "8px":
		out.LetterSpacing = sauce.LetterSpacing8px
	case "9", "9px":
		out.LetterSpacing = sauce.LetterSpacing9px
	default:
		return out, fmt.Errorf("unknown --letter-spacing %q", f.spacing)
	}
	switch strings.ToLower(f.aspect) {
	case "", "legacy":
	case "stretch", "legacy-device":
		out.AspectRatio = sauce.AspectRatioLegacyDevice
	case "square":
		out.AspectRatio = sauce.AspectRatioSquare
	default:
		return out, fmt.Errorf("unknown --aspect-ratio %q", f.aspect)
	}
	return out, nil
}
