package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type ResetCmd struct {
	flags *Flags
	doc   docFlags
}

// NewResetCmd creates a new reset command
func NewResetCmd(flags *Flags) *ResetCmd {
	return &ResetCmd{flags: flags}
}

// Register adds the reset command to the application
func (cmd *ResetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "reset",
		Usage:     "Remove the column widths of a view",
		UsageText: "colsize reset [--view NAME] FILE",
		Flags:     cmd.doc.flags(),
		Action:    cmd.run,
	})

	return app
}

func (cmd *ResetCmd) run(ctx context.Context, c *cli.Command) error {
	path, err := docPath(c)
	if err != nil {
		return err
	}

	res, err := cmd.doc.editor(c, cmd.flags, 0).Reset(ctx, path)
	if err != nil {
		return err
	}
	return cmd.doc.report(ctx, c, res)
}
