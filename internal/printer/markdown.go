package printer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hay-kot/colsize/internal/core/styles"
	"github.com/hay-kot/colsize/internal/core/viewdoc"
)

// SizesMarkdown builds a markdown report of a view's column sizes.
func SizesMarkdown(path, view string, sizes viewdoc.Sizes) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", view)
	fmt.Fprintf(&b, "`%s`\n\n", path)

	if sizes.Len() == 0 {
		b.WriteString("_No column sizes set._\n")
		return b.String()
	}

	b.WriteString("| Column | Width |\n")
	b.WriteString("| --- | ---: |\n")
	for _, e := range sizes {
		fmt.Fprintf(&b, "| %s | %d |\n", escapeCell(e.Key), e.Width)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderMarkdown renders md for a terminal using the active theme. A width
// of zero or less disables word wrapping.
func RenderMarkdown(md string, width int) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStyles(styles.GlamourStyle()),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
