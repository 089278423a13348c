package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/colsize/internal/core/config"
	"github.com/hay-kot/colsize/internal/core/viewdoc"
	"github.com/hay-kot/colsize/pkg/tuitest"
)

const testDoc = `filters:
  and:
    - file.ext == "md"
views:
  - type: table
    name: Main
    order:
      - file.name
      - note.status
    rowHeight: medium
  - type: cards
    name: Gallery
  - type: table
    name: Sized
    columnSize:
      file.name: 300
`

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

func testFlags() *Flags {
	cfg := config.DefaultConfig()
	return &Flags{Config: &cfg}
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Projects.base")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func run(t *testing.T, cmd registrar, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "colsize",
		Writer: &buf,
	}
	cmd.Register(app)

	err := app.Run(context.Background(), append([]string{"colsize"}, args...))
	return buf.String(), err
}

func TestViewsCmd(t *testing.T) {
	path := writeDoc(t, testDoc)

	out, err := run(t, NewViewsCmd(testFlags()), "views", path)
	require.NoError(t, err)

	lines := tuitest.Lines(out)
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"LINE", "TYPE", "NAME", "SIZED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"5", "table", "Main", "no"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"11", "cards", "Gallery", "no"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"13", "table", "Sized", "yes"}, strings.Fields(lines[3]))
}

func TestViewsCmd_JSONTables(t *testing.T) {
	path := writeDoc(t, testDoc)

	out, err := run(t, NewViewsCmd(testFlags()), "views", "--json", "--tables", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var v viewdoc.View
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &v))
	assert.Equal(t, viewdoc.View{Kind: "table", Name: "Sized", Line: 12, HasColumnSize: true}, v)
}

func TestViewsCmd_MissingFile(t *testing.T) {
	_, err := run(t, NewViewsCmd(testFlags()), "views")
	assert.ErrorIs(t, err, errMissingFile)
}

func TestShowCmd(t *testing.T) {
	path := writeDoc(t, testDoc)

	t.Run("text", func(t *testing.T) {
		out, err := run(t, NewShowCmd(testFlags()), "show", "--view", "Sized", path)
		require.NoError(t, err)
		assert.Equal(t, []string{"file.name", "300"}, strings.Fields(out))
	})

	t.Run("json with seed", func(t *testing.T) {
		out, err := run(t, NewShowCmd(testFlags()), "show", "--format", "json", "--seed", path)
		require.NoError(t, err)

		var got showOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Main", got.View)
		assert.Equal(t, []string{"file.name", "note.status"}, got.Columns)
		assert.Equal(t, viewdoc.Sizes{{Key: "file.name"}, {Key: "note.status"}}, got.Sizes)
	})

	t.Run("markdown", func(t *testing.T) {
		out, err := run(t, NewShowCmd(testFlags()), "show", "--view", "Sized", "--format", "markdown", path)
		require.NoError(t, err)

		plain := tuitest.StripANSI(out)
		assert.Contains(t, plain, "Sized")
		assert.Contains(t, plain, "file.name")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, NewShowCmd(testFlags()), "show", "--format", "xml", path)
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := run(t, NewShowCmd(testFlags()), "show", "--view", "Gallery", path)
		assert.ErrorContains(t, err, "view not found")
	})
}

func TestSetCmd(t *testing.T) {
	t.Run("inserts before rowHeight", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		_, err := run(t, NewSetCmd(testFlags()), "set", path, "file.name=200", "note.status=120")
		require.NoError(t, err)

		want := strings.Replace(testDoc, "    rowHeight: medium\n",
			"    columnSize:\n      file.name: 200\n      note.status: 120\n    rowHeight: medium\n", 1)
		assert.Equal(t, want, readDoc(t, path))
	})

	t.Run("merges", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		out, err := run(t, NewSetCmd(testFlags()), "set", "--view", "Sized", "--json", path, "note.status=90")
		require.NoError(t, err)

		var got resultOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.True(t, got.Changed)
		assert.Equal(t, viewdoc.Sizes{{Key: "file.name", Width: 300}, {Key: "note.status", Width: 90}}, got.Sizes)
	})

	t.Run("replace from file", func(t *testing.T) {
		path := writeDoc(t, testDoc)
		sizesPath := filepath.Join(t.TempDir(), "sizes.json")
		require.NoError(t, os.WriteFile(sizesPath, []byte(`{"note.due": 80}`), 0o644))

		_, err := run(t, NewSetCmd(testFlags()), "set", "--view", "Sized", "--replace", "-f", sizesPath, path)
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(readDoc(t, path), "    columnSize:\n      note.due: 80\n"))
	})

	t.Run("dry run", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		out, err := run(t, NewSetCmd(testFlags()), "set", "--view", "Sized", "--dry-run", path, "file.name=250")
		require.NoError(t, err)

		assert.Equal(t, strings.Replace(testDoc, "file.name: 300", "file.name: 250", 1), out)
		assert.Equal(t, testDoc, readDoc(t, path))
	})

	t.Run("no widths", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		_, err := run(t, NewSetCmd(testFlags()), "set", path)
		assert.ErrorContains(t, err, "no widths given")
	})
}

func TestSetCmd_KeepsCRLF(t *testing.T) {
	crlf := strings.ReplaceAll(testDoc, "\n", "\r\n")
	path := writeDoc(t, crlf)

	_, err := run(t, NewSetCmd(testFlags()), "set", "--view", "Sized", path, "file.name=250")
	require.NoError(t, err)

	assert.Equal(t, strings.Replace(crlf, "file.name: 300", "file.name: 250", 1), readDoc(t, path))
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"file.name=200", " note.status = 90 ", "a=b=10"})
	require.NoError(t, err)
	assert.Equal(t, viewdoc.Sizes{
		{Key: "file.name", Width: 200},
		{Key: "note.status", Width: 90},
		{Key: "a=b", Width: 10},
	}, got)

	_, err = parseAssignments([]string{"file.name", "=5", "x=wide", "y=0"})
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 4)
	assert.Equal(t, "file.name", fieldErrs[0].Field)
}

func TestDistributeCmd(t *testing.T) {
	t.Run("even", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		out, err := run(t, NewDistributeCmd(testFlags()), "even", "--width", "500", "--json", path)
		require.NoError(t, err)

		var got resultOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, viewdoc.Sizes{{Key: "file.name", Width: 250}, {Key: "note.status", Width: 250}}, got.Sizes)
	})

	t.Run("even clamps to max", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		out, err := run(t, NewDistributeCmd(testFlags()), "even", "--width", "2000", "--json", path)
		require.NoError(t, err)

		var got resultOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, viewdoc.Sizes{{Key: "file.name", Width: 300}, {Key: "note.status", Width: 300}}, got.Sizes)
	})

	t.Run("even without clamping", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		out, err := run(t, NewDistributeCmd(testFlags()), "even", "--width", "1000", "--no-clamp", "--json", path)
		require.NoError(t, err)

		var got resultOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, viewdoc.Sizes{{Key: "file.name", Width: 500}, {Key: "note.status", Width: 500}}, got.Sizes)
		assert.Contains(t, readDoc(t, path), "      file.name: 500\n      note.status: 500\n")
	})

	t.Run("uniform", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		_, err := run(t, NewDistributeCmd(testFlags()), "uniform", "--width", "180", "--view", "Sized", path)
		require.NoError(t, err)
		assert.Contains(t, readDoc(t, path), "    columnSize:\n      file.name: 180\n")
	})

	t.Run("apply config behavior", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		out, err := run(t, NewDistributeCmd(testFlags()), "apply", "--json", path)
		require.NoError(t, err)

		var got resultOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, viewdoc.Sizes{{Key: "file.name", Width: 100}, {Key: "note.status", Width: 100}}, got.Sizes)
	})

	t.Run("apply fit-content", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		out, err := run(t, NewDistributeCmd(testFlags()), "apply", "--behavior", "fit-content", "--json", path)
		require.NoError(t, err)

		var got resultOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		// file.name: 9*8+24 = 96 -> clamped to 100; note.status: 11*8+24 = 112
		assert.Equal(t, viewdoc.Sizes{{Key: "file.name", Width: 100}, {Key: "note.status", Width: 112}}, got.Sizes)
	})

	t.Run("apply unknown behavior", func(t *testing.T) {
		path := writeDoc(t, testDoc)

		_, err := run(t, NewDistributeCmd(testFlags()), "apply", "--behavior", "wide", path)
		assert.ErrorContains(t, err, "unknown behavior")
	})
}

func TestResetCmd(t *testing.T) {
	path := writeDoc(t, testDoc)

	_, err := run(t, NewResetCmd(testFlags()), "reset", "--view", "Sized", path)
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSuffix(testDoc, "    columnSize:\n      file.name: 300\n"), readDoc(t, path))
}

func TestFindCmd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Projects.base"), []byte(testDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes", "Empty.base"), []byte("views:\n  - type: cards\n    name: G\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes", "readme.md"), []byte(testDoc), 0o644))

	t.Run("json", func(t *testing.T) {
		out, err := run(t, NewFindCmd(testFlags()), "find", "--json", dir)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)

		var first foundView
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
		assert.Equal(t, foundView{Path: filepath.Join(dir, "Projects.base"), View: "Main", Line: 5}, first)
	})

	t.Run("unsized", func(t *testing.T) {
		out, err := run(t, NewFindCmd(testFlags()), "find", "--unsized", dir)
		require.NoError(t, err)

		lines := tuitest.Lines(out)
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], "Main")
	})

	t.Run("pattern override", func(t *testing.T) {
		out, err := run(t, NewFindCmd(testFlags()), "find", "--json", "--pattern", "**/*.md", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "readme.md")
		assert.NotContains(t, out, "Projects.base")
	})
}

func TestConfigValidateCmd_Valid(t *testing.T) {
	flags := testFlags()
	flags.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")

	out, err := run(t, NewConfigValidateCmd(flags), "config", "validate", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Valid)
}

func TestCollectIssues(t *testing.T) {
	assert.Nil(t, collectIssues(nil))

	cfg := config.DefaultConfig()
	cfg.Theme = "neon"
	issues := collectIssues(cfg.ValidateDeep(""))
	require.Len(t, issues, 1)
	assert.Equal(t, "theme", issues[0].Field)

	cfg = config.DefaultConfig()
	cfg.Widths.Min = 400
	issues = collectIssues(cfg.ValidateDeep(""))
	require.Len(t, issues, 1)
	assert.Equal(t, "config", issues[0].Field)
}
