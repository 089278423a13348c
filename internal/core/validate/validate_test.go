package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
)

func TestColumnKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"property", "note.status", false},
		{"with spaces", "file name", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"line break", "a\nb", true},
		{"carriage return", "a\rb", true},
		{"colon", "a: b", true},
		{"comment", "#x", true},
		{"view marker", "- type: table", true},
		{"dash", "-", true},
		{"row height", "rowHeight", true},
		{"row height prefix", "rowHeightish", false},
		{"quoted", `"a"`, true},
		{"flow mapping", "{a}", true},
		{"leading space", " a", true},
		{"inline comment", "a #b", true},
		{"hash inside", "a#b", false},
		{"unicode", "名前", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ColumnKey(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "ColumnKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"plain", "200", 200, false},
		{"padded", " 42 ", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
		{"fraction", "1.5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWidth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWidthField(t *testing.T) {
	assert.NoError(t, WidthField("widths.custom", 150))

	err := WidthField("widths.custom", 0)
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "widths.custom", fieldErrs[0].Field)
}

func TestSizes(t *testing.T) {
	assert.NoError(t, Sizes(viewdoc.Sizes{{Key: "file.name", Width: 200}}))
	assert.NoError(t, Sizes(nil))

	err := Sizes(viewdoc.Sizes{
		{Key: "file.name", Width: 200},
		{Key: "note.status", Width: 0},
		{Key: " ", Width: 10},
	})

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "note.status", fieldErrs[0].Field)
	assert.Equal(t, " ", fieldErrs[1].Field)
}
