package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/internal/host"
	"github.com/hay-kot/colsize/internal/printer"
	"github.com/hay-kot/colsize/pkg/iojson"
)

type FindCmd struct {
	flags *Flags

	// flags
	patterns   []string
	jsonOutput bool
	unsized    bool
}

// NewFindCmd creates a new find command
func NewFindCmd(flags *Flags) *FindCmd {
	return &FindCmd{flags: flags}
}

// Register adds the find command to the application
func (cmd *FindCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "find",
		Usage:     "Find documents with table views",
		UsageText: "colsize find [--pattern GLOB]... [--unsized] [--json] [DIR]",
		Description: `Searches DIR (default: current directory) for documents matching the
discovery patterns from the config and lists each table view found.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "pattern",
				Aliases:     []string{"p"},
				Usage:       "doublestar pattern (overrides discovery.patterns)",
				Destination: &cmd.patterns,
			},
			&cli.BoolFlag{
				Name:        "unsized",
				Usage:       "only list table views without column sizes",
				Destination: &cmd.unsized,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// foundView is the JSON output format for colsize find --json.
type foundView struct {
	Path  string `json:"path"`
	View  string `json:"view"`
	Line  int    `json:"line"`
	Sized bool   `json:"sized"`
}

func (cmd *FindCmd) run(ctx context.Context, c *cli.Command) error {
	root := "."
	if c.Args().Len() > 0 {
		root = c.Args().First()
	}

	patterns := cmd.patterns
	if len(patterns) == 0 {
		patterns = cmd.flags.config().Discovery.Patterns
	}

	files, err := host.Discover(root, patterns)
	if err != nil {
		return err
	}

	fsHost := host.NewFS(host.FSOptions{})

	var found []foundView
	for _, path := range files {
		content, err := fsHost.Read(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping unreadable document")
			continue
		}

		for _, v := range viewdoc.TableViews(content) {
			if cmd.unsized && v.HasColumnSize {
				continue
			}
			found = append(found, foundView{Path: path, View: v.Name, Line: v.Line + 1, Sized: v.HasColumnSize})
		}
	}

	if len(found) == 0 {
		if !cmd.jsonOutput {
			printer.Ctx(ctx).Infof("No table views found under %s", root)
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, f := range found {
			if err := iojson.WriteLine(out, f); err != nil {
				return fmt.Errorf("encode view: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FILE\tLINE\tVIEW\tSIZED")
	for _, f := range found {
		sized := "no"
		if f.Sized {
			sized = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", f.Path, f.Line, f.View, sized)
	}
	return w.Flush()
}
