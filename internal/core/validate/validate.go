// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
)

// ColumnKey validates a column key can be written to a columnSize section
// and read back unchanged.
func ColumnKey(key string) error {
	return viewdoc.CheckKey(key)
}

// Width validates a pixel width is greater than zero.
func Width(w int) error {
	if w <= 0 {
		return fmt.Errorf("width must be greater than 0, got %d", w)
	}
	return nil
}

// ParseWidth parses and validates a pixel width.
func ParseWidth(s string) (int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("width %q is not a whole number", s)
	}
	if err := Width(w); err != nil {
		return 0, err
	}
	return w, nil
}

// WidthField returns a criterio validator for a width.
func WidthField(field string, w int) error {
	if err := Width(w); err != nil {
		return criterio.NewFieldErrors(field, err)
	}
	return nil
}

// Sizes validates every entry of s, reporting errors by column key.
func Sizes(s viewdoc.Sizes) error {
	var errs criterio.FieldErrorsBuilder
	for _, e := range s {
		if err := ColumnKey(e.Key); err != nil {
			errs = errs.Append(e.Key, err)
			continue
		}
		if err := Width(e.Width); err != nil {
			errs = errs.Append(e.Key, err)
		}
	}
	return errs.ToError()
}
