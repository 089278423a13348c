package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]int{"file.name": 200})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"file.name\": 200\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})
	require.NoError(t, err)

	assert.Empty(t, out.String())

	var e Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &e))
	assert.Equal(t, "error marshaling in iojson.Write", e.Message)
	assert.Contains(t, e.Data, "json_error")
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer

	err := WriteError(&out, "view not found", map[string]any{"view": "Main"})
	require.NoError(t, err)

	var e Error
	require.NoError(t, json.Unmarshal(out.Bytes(), &e))
	assert.Equal(t, "view not found", e.Message)
	assert.Equal(t, "Main", e.Data["view"])
}

func TestDecode(t *testing.T) {
	got, err := Decode[map[string]int](strings.NewReader(`{"file.name": 180}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"file.name": 180}, got)

	_, err = Decode[map[string]int](strings.NewReader(`[1, 2]`))
	assert.Error(t, err)
}

func TestFileReader(t *testing.T) {
	path := t.TempDir() + "/sizes.json"
	require.NoError(t, writeFile(path, `{"a": 1}`))

	fr := &FileReader[map[string]int]{fileFlagValue: path}
	assert.True(t, fr.IsSet())

	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1}, got)

	fr = &FileReader[map[string]int]{fileFlagValue: path + ".missing"}
	_, err = fr.Read()
	assert.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteLine(&out, map[string]string{"name": "Main"}))
	require.NoError(t, WriteLine(&out, map[string]string{"name": "Other"}))

	assert.Equal(t, "{\"name\":\"Main\"}\n{\"name\":\"Other\"}\n", out.String())
	assert.Error(t, WriteLine(&out, make(chan int)))
}
