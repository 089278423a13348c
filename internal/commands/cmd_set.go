package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/colsize/internal/core/validate"
	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/pkg/iojson"
)

type SetCmd struct {
	flags *Flags
	doc   docFlags
	fr    *iojson.FileReader[viewdoc.Sizes]

	replace bool
}

// NewSetCmd creates a new set command
func NewSetCmd(flags *Flags) *SetCmd {
	return &SetCmd{
		flags: flags,
		fr:    &iojson.FileReader[viewdoc.Sizes]{},
	}
}

// Register adds the set command to the application
func (cmd *SetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "set",
		Usage: "Set column widths of a view",
		UsageText: `colsize set [options] FILE COLUMN=WIDTH...

Set widths inline:
  colsize set Projects.base file.name=200 note.status=120

Read widths from JSON:
  echo '{"file.name": 200}' | colsize set -f - Projects.base`,
		Description: `Writes the given widths to the view's columnSize section. Widths are merged
over the ones already stored unless --replace is given, in which case the
section holds exactly the given widths. Every other line of the document is
left untouched.`,
		Flags: append(cmd.doc.flags(),
			cmd.fr.Flag(),
			&cli.BoolFlag{
				Name:        "replace",
				Usage:       "replace the whole section instead of merging",
				Destination: &cmd.replace,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *SetCmd) run(ctx context.Context, c *cli.Command) error {
	path, err := docPath(c)
	if err != nil {
		return err
	}

	sizes, err := parseAssignments(c.Args().Tail())
	if err != nil {
		return err
	}

	if cmd.fr.IsSet() {
		fromFile, err := cmd.fr.Read()
		if err != nil {
			return fmt.Errorf("read sizes: %w", err)
		}
		if err := validate.Sizes(fromFile); err != nil {
			return fmt.Errorf("read sizes: %w", err)
		}
		sizes = fromFile.Merge(sizes)
	}

	if sizes.Len() == 0 {
		return fmt.Errorf("no widths given; pass COLUMN=WIDTH arguments or -f")
	}

	res, err := cmd.doc.editor(c, cmd.flags, 0).Update(ctx, path, sizes, cmd.replace)
	if err != nil {
		return err
	}
	return cmd.doc.report(ctx, c, res)
}

// parseAssignments parses COLUMN=WIDTH arguments. The last "=" separates
// the width so column keys may contain "=".
func parseAssignments(args []string) (viewdoc.Sizes, error) {
	var (
		out  viewdoc.Sizes
		errs criterio.FieldErrorsBuilder
	)

	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			errs = errs.Append(arg, fmt.Errorf("expected COLUMN=WIDTH"))
			continue
		}

		key := strings.TrimSpace(arg[:i])
		if err := validate.ColumnKey(key); err != nil {
			errs = errs.Append(arg, err)
			continue
		}
		width, err := validate.ParseWidth(arg[i+1:])
		if err != nil {
			errs = errs.Append(arg, err)
			continue
		}
		out.Set(key, width)
	}

	if err := errs.ToError(); err != nil {
		return nil, err
	}
	return out, nil
}
