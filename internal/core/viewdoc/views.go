package viewdoc

import "strings"

// View is a summary of one view block.
type View struct {
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Line          int    `json:"line"`
	HasColumnSize bool   `json:"has_column_size"`
}

// IsTable reports whether the view is a table view.
func (v View) IsTable() bool { return v.Kind == tableKind }

// Views lists every view block in doc in document order. A view's name is
// read from the first field of its block, the same rule Patch and Extract
// use to match a view.
func Views(doc string) []View {
	var (
		views       []View
		cur         = -1
		blockIndent int
		fieldIndent = -1
	)

	for i, line := range SplitLines(doc) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isComment(trimmed) {
			continue
		}
		indent := indentOf(line)

		if kind, ok := viewKind(trimmed); ok {
			views = append(views, View{Kind: kind, Line: i})
			cur = len(views) - 1
			blockIndent = indent
			fieldIndent = -1
			continue
		}
		if cur < 0 {
			continue
		}
		if indent <= blockIndent {
			cur = -1
			continue
		}

		if fieldIndent < 0 {
			fieldIndent = indent
			if name, ok := fieldValue(trimmed, nameField); ok {
				views[cur].Name = name
			}
		}
		if indent == fieldIndent && trimmed == sizeHeader {
			views[cur].HasColumnSize = true
		}
	}

	return views
}

// TableViews returns the table views of doc.
func TableViews(doc string) []View {
	var out []View
	for _, v := range Views(doc) {
		if v.IsTable() {
			out = append(out, v)
		}
	}
	return out
}

// Columns returns the entries of the "order:" list of the table view
// named view, which is the set of columns the view displays. It returns
// nil when the view or the list is missing.
func Columns(doc, view string) []string {
	lines := SplitLines(doc)
	loc := Locate(lines, view)
	if !loc.Found() {
		return nil
	}

	var (
		columns     []string
		orderIndent = -1
	)

	for _, line := range lines[loc.Name+1 : loc.End] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isComment(trimmed) {
			continue
		}
		indent := indentOf(line)

		if orderIndent < 0 {
			if indent == len(loc.FieldIndent) && trimmed == orderHeader {
				orderIndent = indent
			}
			continue
		}

		item, ok := strings.CutPrefix(trimmed, "- ")
		if !ok || indent < orderIndent {
			break
		}
		if col := unquote(strings.TrimSpace(stripComment(item))); col != "" {
			columns = append(columns, col)
		}
	}

	return columns
}
