// Package sizeform is an interactive editor for a view's column widths.
package sizeform

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hay-kot/colsize/internal/core/styles"
	"github.com/hay-kot/colsize/internal/core/validate"
	"github.com/hay-kot/colsize/internal/core/viewdoc"
)

// Form asks for one width per column. Columns left blank are omitted from
// the result.
type Form struct {
	view   string
	keys   []string
	values []string
}

// New creates a Form seeded with sizes. Zero widths start blank.
func New(view string, seed viewdoc.Sizes) *Form {
	f := &Form{
		view:   view,
		keys:   seed.Keys(),
		values: make([]string, seed.Len()),
	}
	for i, e := range seed {
		if e.Width > 0 {
			f.values[i] = strconv.Itoa(e.Width)
		}
	}
	return f
}

// Len returns the number of columns in the form.
func (f *Form) Len() int { return len(f.keys) }

// Run shows the form on stderr until it is submitted or aborted. An
// aborted form returns huh.ErrUserAborted.
func (f *Form) Run(ctx context.Context) error {
	return f.build().
		WithProgramOptions(tea.WithOutput(os.Stderr)).
		RunWithContext(ctx)
}

func (f *Form) build() *huh.Form {
	fields := make([]huh.Field, 0, len(f.keys)+1)
	fields = append(fields, huh.NewNote().
		Title(fmt.Sprintf("Column widths for %q", f.view)).
		Description("Widths are in pixels. Leave a column blank to drop its width."))

	for i, k := range f.keys {
		fields = append(fields, huh.NewInput().
			Title(k).
			Placeholder("auto").
			CharLimit(6).
			Validate(validateWidth).
			Value(&f.values[i]))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(theme()).
		WithKeyMap(keyMap()).
		WithShowHelp(true)
}

// Result returns the widths entered, in column order.
func (f *Form) Result() (viewdoc.Sizes, error) {
	out := make(viewdoc.Sizes, 0, len(f.keys))
	for i, k := range f.keys {
		raw := strings.TrimSpace(f.values[i])
		if raw == "" {
			continue
		}
		w, err := validate.ParseWidth(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out.Set(k, w)
	}
	return out, nil
}

func validateWidth(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := validate.ParseWidth(s)
	return err
}

func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	)
	return km
}

func theme() *huh.Theme {
	p := styles.CurrentPalette
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Blurred.Title = t.Blurred.Title.Foreground(p.Foreground)

	return t
}
