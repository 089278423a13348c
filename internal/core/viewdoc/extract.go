package viewdoc

import (
	"strconv"
	"strings"
)

// Extract returns the columnSize entries of the table view named view.
// A missing view or section yields empty Sizes. Entries whose value is not
// an integer are skipped.
func Extract(doc, view string) Sizes {
	lines := SplitLines(doc)
	loc := Locate(lines, view)
	if !loc.HasSection() {
		return Sizes{}
	}

	sizes := Sizes{}
	for _, line := range lines[loc.Header+1 : loc.EntriesEnd] {
		key, width, ok := parseEntry(line)
		if !ok {
			continue
		}
		sizes.Set(key, width)
	}
	return sizes
}

func parseEntry(line string) (string, int, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || isComment(trimmed) {
		return "", 0, false
	}

	key, value, ok := strings.Cut(trimmed, ":")
	if !ok {
		return "", 0, false
	}

	key = unquote(strings.TrimSpace(key))
	if key == "" {
		return "", 0, false
	}

	width, err := strconv.Atoi(strings.TrimSpace(stripComment(value)))
	if err != nil {
		return "", 0, false
	}
	return key, width, true
}
