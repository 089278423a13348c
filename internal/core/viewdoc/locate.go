package viewdoc

import "strings"

// Location describes where a view and its size section sit in a document.
// Line numbers are 0-based indexes into the split document; -1 marks a
// part that is absent.
type Location struct {
	View       int // "- type: table" line of the view
	Name       int // "name:" line of the view
	End        int // exclusive end of the view block
	Header     int // "columnSize:" line
	EntriesEnd int // exclusive end of the header's entry lines
	Sibling    int // first "rowHeight:" line of the view

	FieldIndent string // indentation of the view's fields
	EntryIndent string // indentation of the first existing entry
}

// Found reports whether the view exists.
func (l Location) Found() bool { return l.Name >= 0 }

// HasSection reports whether the view has a columnSize section.
func (l Location) HasSection() bool { return l.Header >= 0 }

// InsertAt returns the line index a new size section is inserted before
// when the view has none: the first rowHeight field, otherwise right after
// the last non-blank line of the view.
func (l Location) InsertAt(lines []string) int {
	if l.Sibling >= 0 {
		return l.Sibling
	}
	i := l.End
	for i > l.Name+1 && strings.TrimSpace(lines[i-1]) == "" {
		i--
	}
	return i
}

// Locate finds the first table view named view in lines.
func Locate(lines []string, view string) Location {
	loc := Location{
		View:       -1,
		Name:       -1,
		End:        len(lines),
		Header:     -1,
		EntriesEnd: -1,
		Sibling:    -1,
	}

	var (
		scanner     = NewScanner(view)
		marker      = -1
		sectionDone bool
	)

	for i, line := range lines {
		tag := scanner.Step(line)

		if tag.Role == RoleViewStart {
			marker = i
		}
		if tag.Entered() {
			loc.View = marker
			loc.Name = i
			loc.FieldIndent = leading(line)
			continue
		}
		if !loc.Found() {
			continue
		}
		if tag.LeftView() {
			loc.End = i
			break
		}
		if tag.LeftSection() && loc.HasSection() {
			sectionDone = true
		}

		switch tag.Role {
		case RoleSizeHeader:
			if loc.HasSection() {
				// A repeated header is left alone; only the first is edited.
				sectionDone = true
				continue
			}
			loc.Header = i
			loc.EntriesEnd = i + 1
		case RoleSizeEntry:
			if sectionDone {
				continue
			}
			if loc.EntryIndent == "" && !isComment(strings.TrimSpace(line)) {
				loc.EntryIndent = leading(line)
			}
			loc.EntriesEnd = i + 1
		case RoleSibling:
			if loc.Sibling < 0 {
				loc.Sibling = i
			}
		}
	}

	return loc
}
