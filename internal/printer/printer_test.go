package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/pkg/tuitest"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("updated %s", "Main")
	p.Infof("%d columns", 2)
	p.Warnf("no order list")
	p.Errorf("view %q not found", "Other")
	p.Printf("")
	p.Section("Main")
	p.CheckItem("file.name", "200")
	p.CheckItem("note.status", "")
	p.WarnItem("theme", "unknown")
	p.FailItem("widths.min", "")

	want := []string{
		"✔ updated Main",
		"• 2 columns",
		"! no order list",
		`✘ view "Other" not found`,
		"Main",
		"────",
		"✔ file.name 200",
		"✔ note.status",
		"! theme unknown",
		"✘ widths.min",
	}
	assert.Equal(t, want, tuitest.Lines(buf.String()))
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))

	assert.NotNil(t, Ctx(context.Background()))
}

func TestSizesMarkdown(t *testing.T) {
	sizes := viewdoc.Sizes{{Key: "file.name", Width: 200}, {Key: "a|b", Width: 90}}

	got := SizesMarkdown("Projects.base", "Main", sizes)
	want := "## Main\n\n`Projects.base`\n\n" +
		"| Column | Width |\n" +
		"| --- | ---: |\n" +
		"| file.name | 200 |\n" +
		"| a\\|b | 90 |\n"
	assert.Equal(t, want, got)

	empty := SizesMarkdown("Projects.base", "Main", viewdoc.Sizes{})
	assert.Contains(t, empty, "_No column sizes set._")
}

func TestRenderMarkdown(t *testing.T) {
	md := SizesMarkdown("Projects.base", "Main", viewdoc.Sizes{{Key: "file.name", Width: 200}})

	out, err := RenderMarkdown(md, 80)
	require.NoError(t, err)

	plain := tuitest.StripANSI(out)
	assert.Contains(t, plain, "Main")
	assert.Contains(t, plain, "file.name")
	assert.Contains(t, plain, "200")
}
