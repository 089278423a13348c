package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/internal/printer"
	"github.com/hay-kot/colsize/pkg/iojson"
)

type ShowCmd struct {
	flags *Flags
	doc   docFlags

	format string
	seed   bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print the column sizes of a view",
		UsageText: "colsize show [--view NAME] [--format text|json|markdown] FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "view",
				Usage:       "table view to read (defaults to the first table view)",
				Destination: &cmd.doc.view,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, markdown)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "seed",
				Usage:       "include ordered columns without a width as 0",
				Destination: &cmd.seed,
			},
		},
		Action: cmd.run,
	})

	return app
}

// showOutput is the JSON output format for colsize show.
type showOutput struct {
	Path    string        `json:"path"`
	View    string        `json:"view"`
	Sizes   viewdoc.Sizes `json:"sizes"`
	Columns []string      `json:"columns"`
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	path, err := docPath(c)
	if err != nil {
		return err
	}

	doc, err := cmd.doc.editor(c, cmd.flags, 0).Open(ctx, path)
	if err != nil {
		return err
	}

	sizes := doc.Sizes
	if cmd.seed {
		sizes = doc.Seed()
	}

	out := c.Root().Writer

	switch cmd.format {
	case "json":
		columns := doc.Columns
		if columns == nil {
			columns = []string{}
		}
		return iojson.WriteWith(out, os.Stderr, showOutput{
			Path:    doc.Path,
			View:    doc.View,
			Sizes:   sizes,
			Columns: columns,
		})
	case "markdown":
		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		rendered, err := printer.RenderMarkdown(printer.SizesMarkdown(doc.Path, doc.View, sizes), width)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	case "text":
		if sizes.Len() == 0 {
			printer.Ctx(ctx).Infof("View %q has no column sizes", doc.View)
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, e := range sizes {
			_, _ = fmt.Fprintf(w, "%s\t%d\n", e.Key, e.Width)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q (want text, json, or markdown)", cmd.format)
	}
}
