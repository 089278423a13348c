// Package viewdoc edits the columnSize section of a single view inside a
// view definition document without parsing the document as YAML.
//
// The document is treated as a list of lines. Structure is recovered from
// indentation and a handful of line prefixes, and every line outside the
// edited section is copied through byte for byte. Nothing here round trips
// through a YAML encoder, which would reorder keys and drop comments.
//
// Documents are split on "\n" only. Callers holding "\r\n" text must
// normalize it before calling into this package.
package viewdoc

import "strings"

const (
	viewMarker  = "- type:"
	tableKind   = "table"
	nameField   = "name:"
	sizeHeader  = "columnSize:"
	siblingKey  = "rowHeight:"
	orderHeader = "order:"

	// indentUnit is one nesting level in generated lines.
	indentUnit = "  "
)

// SplitLines splits a document into lines on "\n".
func SplitLines(doc string) []string {
	return strings.Split(doc, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func leading(line string) string {
	return line[:indentOf(line)]
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#")
}

// viewKind reports the kind of a view marker line such as "- type: table".
func viewKind(trimmed string) (string, bool) {
	rest, ok := strings.CutPrefix(trimmed, viewMarker)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(stripComment(rest)), true
}

func fieldValue(trimmed, field string) (string, bool) {
	rest, ok := strings.CutPrefix(trimmed, field)
	if !ok {
		return "", false
	}
	return unquote(strings.TrimSpace(rest)), true
}

func stripComment(v string) string {
	if i := strings.Index(v, " #"); i >= 0 {
		return v[:i]
	}
	return v
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
