package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/colsize/internal/printer"
	"github.com/hay-kot/colsize/internal/tui/sizeform"
)

type EditCmd struct {
	flags *Flags
	doc   docFlags
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit column widths interactively",
		UsageText: "colsize edit [--view NAME] FILE",
		Description: `Opens a form with one field per column of the view, seeded with the
current widths. Columns listed in the view's order without a width start
blank. Submitting replaces the view's columnSize section with the widths
entered; blank fields are dropped.`,
		Flags:  cmd.doc.flags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	path, err := docPath(c)
	if err != nil {
		return err
	}

	editor := cmd.doc.editor(c, cmd.flags, 0)

	doc, err := editor.Open(ctx, path)
	if err != nil {
		return err
	}

	form := sizeform.New(doc.View, doc.Seed())
	if form.Len() == 0 {
		return fmt.Errorf("view %q has no columns to edit; add an order list or use 'colsize set'", doc.View)
	}

	if err := form.Run(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			printer.Ctx(ctx).Infof("Edit cancelled")
			return nil
		}
		return fmt.Errorf("run form: %w", err)
	}

	sizes, err := form.Result()
	if err != nil {
		return err
	}

	if sizes.Len() == 0 {
		res, err := editor.Reset(ctx, path)
		if err != nil {
			return err
		}
		return cmd.doc.report(ctx, c, res)
	}

	res, err := editor.Update(ctx, path, sizes, true)
	if err != nil {
		return err
	}
	return cmd.doc.report(ctx, c, res)
}
