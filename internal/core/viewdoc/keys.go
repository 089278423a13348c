package viewdoc

import (
	"errors"
	"strings"
)

// yamlIndicators are characters that change the meaning of a plain YAML
// scalar when they start it.
const yamlIndicators = "#-?:,[]{}&*!|>'\"%@`"

// CheckKey reports why key cannot be written as a columnSize entry line.
// A writable key reads back unchanged through Extract and cannot be
// mistaken for a comment, a view marker or the rowHeight field.
func CheckKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "":
		return errors.New("column is required")
	case strings.ContainsAny(key, "\r\n"):
		return errors.New("column cannot contain a line break")
	case strings.TrimSpace(key) != key:
		return errors.New("column cannot start or end with whitespace")
	case strings.Contains(key, ":"):
		return errors.New("column cannot contain ':'")
	case strings.Contains(key, " #"):
		return errors.New("column cannot contain ' #'")
	case strings.ContainsRune(yamlIndicators, rune(key[0])):
		return errors.New("column cannot start with " + key[:1])
	case key+":" == siblingKey:
		return errors.New("column cannot be named " + key)
	}
	return nil
}

// writable returns the entries of s whose keys pass CheckKey.
func (s Sizes) writable() Sizes {
	out := make(Sizes, 0, len(s))
	for _, e := range s {
		if CheckKey(e.Key) == nil {
			out = append(out, e)
		}
	}
	return out
}
