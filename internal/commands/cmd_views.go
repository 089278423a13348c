package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/internal/host"
	"github.com/hay-kot/colsize/internal/printer"
	"github.com/hay-kot/colsize/pkg/iojson"
)

type ViewsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	tablesOnly bool
}

// NewViewsCmd creates a new views command
func NewViewsCmd(flags *Flags) *ViewsCmd {
	return &ViewsCmd{flags: flags}
}

// Register adds the views command to the application
func (cmd *ViewsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "views",
		Usage:     "List the views of a document",
		UsageText: "colsize views [--json] [--tables] FILE",
		Description: `Lists every view block with its type, name, line, and whether it already
carries column sizes. Only table views can be edited.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "tables",
				Usage:       "only list table views",
				Destination: &cmd.tablesOnly,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ViewsCmd) run(ctx context.Context, c *cli.Command) error {
	path, err := docPath(c)
	if err != nil {
		return err
	}

	content, err := host.NewFS(host.FSOptions{}).Read(path)
	if err != nil {
		return err
	}

	views := viewdoc.Views(content)
	if cmd.tablesOnly {
		views = viewdoc.TableViews(content)
	}

	if len(views) == 0 {
		if !cmd.jsonOutput {
			printer.Ctx(ctx).Infof("No views found in %s", path)
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, v := range views {
			if err := iojson.WriteLine(out, v); err != nil {
				return fmt.Errorf("encode view: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "LINE\tTYPE\tNAME\tSIZED")
	for _, v := range views {
		sized := "no"
		if v.HasColumnSize {
			sized = "yes"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", v.Line+1, v.Kind, v.Name, sized)
	}
	return w.Flush()
}
