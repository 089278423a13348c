// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hay-kot/colsize/internal/core/styles"
)

const (
	iconSuccess = "✔"
	iconInfo    = "•"
	iconWarn    = "!"
	iconError   = "✘"
)

// Printer writes human-oriented output. Machine-readable output goes
// through iojson instead.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(icon string, style func(...string) string, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", style(icon), fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(iconSuccess, styles.TextSuccessStyle.Render, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(iconInfo, styles.TextPrimaryBoldStyle.Render, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(iconWarn, styles.TextWarningStyle.Render, format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(iconError, styles.TextErrorStyle.Render, format, args...)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

// Section writes a bold heading followed by a divider as wide as the title.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, styles.TextForegroundBoldStyle.Render(title))
	_, _ = fmt.Fprintln(p.w, styles.DividerStyle.Render(strings.Repeat("─", len([]rune(title)))))
}

// CheckItem writes an indented success line with an optional muted detail.
func (p *Printer) CheckItem(label, detail string) {
	p.item(styles.TextSuccessStyle.Render(iconSuccess), label, detail)
}

// Write writes raw text.
func (p *Printer) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

// WarnItem writes an indented warning line with an optional muted detail.
func (p *Printer) WarnItem(label, detail string) {
	p.item(styles.TextWarningStyle.Render(iconWarn), label, detail)
}

// FailItem writes an indented failure line with an optional muted detail.
func (p *Printer) FailItem(label, detail string) {
	p.item(styles.TextErrorStyle.Render(iconError), label, detail)
}

func (p *Printer) item(icon, label, detail string) {
	if detail == "" {
		p.Printf("  %s %s", icon, label)
		return
	}
	p.Printf("  %s %s %s", icon, label, styles.TextMutedStyle.Render(detail))
}
