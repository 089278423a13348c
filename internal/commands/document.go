package commands

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/colsize/internal/colsize"
	"github.com/hay-kot/colsize/internal/core/logging"
	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/internal/host"
	"github.com/hay-kot/colsize/internal/printer"
	"github.com/hay-kot/colsize/pkg/iojson"
)

var errMissingFile = errors.New("missing FILE argument")

// docFlags are the flags shared by every command that edits a document.
type docFlags struct {
	view       string
	dryRun     bool
	jsonOutput bool
}

func (d *docFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "view",
			Usage:       "table view to edit (defaults to the first table view)",
			Destination: &d.view,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "print the patched document instead of writing it",
			Destination: &d.dryRun,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "print the result as JSON",
			Destination: &d.jsonOutput,
		},
	}
}

// editor builds an edit service over the filesystem. width overrides the
// display width used by the even behavior.
func (d *docFlags) editor(c *cli.Command, flags *Flags, width int) *colsize.Editor {
	cfg := flags.config()

	opts := host.FSOptions{
		View:      d.view,
		Width:     width,
		CharWidth: cfg.Widths.CharWidth,
		Backup:    cfg.Files.Backup,
	}
	if d.dryRun {
		opts.DryRun = c.Root().Writer
	}

	return colsize.NewEditor(host.NewFS(opts), logging.Component("editor"))
}

func docPath(c *cli.Command) (string, error) {
	if c.Args().Len() == 0 {
		return "", errMissingFile
	}
	return c.Args().First(), nil
}

// resultOutput is the JSON shape of a completed edit.
type resultOutput struct {
	Path    string        `json:"path"`
	View    string        `json:"view"`
	Changed bool          `json:"changed"`
	Sizes   viewdoc.Sizes `json:"sizes"`
}

// report prints the outcome of an edit. A dry run has already printed the
// document, so only the status line goes to the printer.
func (d *docFlags) report(ctx context.Context, c *cli.Command, res colsize.Result) error {
	if d.jsonOutput && !d.dryRun {
		return iojson.WriteWith(c.Root().Writer, os.Stderr, resultOutput{
			Path:    res.Path,
			View:    res.View,
			Changed: res.Changed,
			Sizes:   res.Sizes,
		})
	}

	p := printer.Ctx(ctx)
	switch {
	case !res.Changed:
		p.Infof("%s: view %q already up to date", res.Path, res.View)
	case d.dryRun:
		p.Infof("%s: dry run, view %q not written", res.Path, res.View)
	default:
		p.Successf("%s: updated view %q (%d columns)", res.Path, res.View, res.Sizes.Len())
	}
	return nil
}
