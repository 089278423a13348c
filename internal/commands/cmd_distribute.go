package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/colsize/internal/core/distribute"
)

// DistributeCmd registers the commands that derive every column width from
// a single number: even, uniform, and apply.
type DistributeCmd struct {
	flags *Flags
	doc   docFlags

	width    int
	behavior string
	noClamp  bool
}

// NewDistributeCmd creates the width distribution commands.
func NewDistributeCmd(flags *Flags) *DistributeCmd {
	return &DistributeCmd{flags: flags}
}

// Register adds the even, uniform, and apply commands to the application.
func (cmd *DistributeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "even",
			Usage:     "Split a total width evenly across the view's columns",
			UsageText: "colsize even [--width PIXELS] [--no-clamp] FILE",
			Description: `Divides the total width by the number of columns, rounding down, and
clamps the result to widths.min and widths.max unless --no-clamp is set.
Without --width the terminal width times widths.char_width is used.

Columns are taken from the view's order list, falling back to the columns
that already have a width.`,
			Flags: append(cmd.doc.flags(),
				&cli.IntFlag{
					Name:        "width",
					Usage:       "total width in pixels",
					Destination: &cmd.width,
				},
				&cli.BoolFlag{
					Name:        "no-clamp",
					Usage:       "write the exact split, ignoring widths.min and widths.max",
					Destination: &cmd.noClamp,
				},
			),
			Action: cmd.runEven,
		},
		&cli.Command{
			Name:      "uniform",
			Usage:     "Give every column of the view the same width",
			UsageText: "colsize uniform --width PIXELS FILE",
			Flags: append(cmd.doc.flags(),
				&cli.IntFlag{
					Name:        "width",
					Usage:       "width in pixels for every column",
					Required:    true,
					Destination: &cmd.width,
				},
			),
			Action: cmd.runUniform,
		},
		&cli.Command{
			Name:      "apply",
			Usage:     "Apply a width behavior to the view's columns",
			UsageText: "colsize apply [--behavior NAME] FILE",
			Description: fmt.Sprintf(`Computes widths with one of the behaviors %v using the numbers
from the widths section of the config. Without --behavior the configured
widths.behavior is used. The disabled behavior leaves the document alone.`, distribute.Behaviors()),
			Flags: append(cmd.doc.flags(),
				&cli.StringFlag{
					Name:        "behavior",
					Usage:       "width behavior (defaults to widths.behavior from the config)",
					Destination: &cmd.behavior,
				},
			),
			Action: cmd.runApply,
		},
	)

	return app
}

func (cmd *DistributeCmd) runEven(ctx context.Context, c *cli.Command) error {
	if cmd.width < 0 {
		return fmt.Errorf("--width cannot be negative")
	}
	return cmd.distribute(ctx, c, distribute.BehaviorEven, cmd.width, 0)
}

func (cmd *DistributeCmd) runUniform(ctx context.Context, c *cli.Command) error {
	if cmd.width <= 0 {
		return fmt.Errorf("--width must be greater than 0")
	}
	return cmd.distribute(ctx, c, distribute.BehaviorCustom, 0, cmd.width)
}

func (cmd *DistributeCmd) runApply(ctx context.Context, c *cli.Command) error {
	b := cmd.flags.config().Widths.Behavior
	if cmd.behavior != "" {
		parsed, err := distribute.ParseBehavior(cmd.behavior)
		if err != nil {
			return err
		}
		b = parsed
	}
	return cmd.distribute(ctx, c, b, 0, 0)
}

// distribute runs behavior b. total overrides the display width and a
// positive custom overrides widths.custom.
func (cmd *DistributeCmd) distribute(ctx context.Context, c *cli.Command, b distribute.Behavior, total, custom int) error {
	path, err := docPath(c)
	if err != nil {
		return err
	}

	params := cmd.flags.config().Params(0)
	if custom > 0 {
		params.Custom = custom
	}
	if cmd.noClamp {
		params.Min, params.Max = 0, 0
	}

	res, err := cmd.doc.editor(c, cmd.flags, total).Distribute(ctx, path, b, params)
	if err != nil {
		return err
	}
	return cmd.doc.report(ctx, c, res)
}
