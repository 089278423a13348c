// Package distribute computes column width mappings from a single number:
// an even split of a total width, one width for every column, or a width
// derived from each column's label.
package distribute

import (
	"github.com/mattn/go-runewidth"

	"github.com/hay-kot/colsize/internal/core/viewdoc"
)

// Even splits total evenly across keys, rounding down. The remainder is
// not distributed. No keys yields empty sizes.
func Even(total int, keys []string) viewdoc.Sizes {
	if len(keys) == 0 {
		return viewdoc.Sizes{}
	}
	return Uniform(keys, max(total, 0)/len(keys))
}

// Uniform assigns width to every key.
func Uniform(keys []string, width int) viewdoc.Sizes {
	out := make(viewdoc.Sizes, 0, len(keys))
	for _, k := range keys {
		out.Set(k, width)
	}
	return out
}

// Metrics converts text cells to pixels for FitContent.
type Metrics struct {
	CharWidth int // pixels per terminal cell
	Padding   int // pixels added to every column
}

// FitContent sizes each column to the display width of its key.
func FitContent(keys []string, m Metrics) viewdoc.Sizes {
	out := make(viewdoc.Sizes, 0, len(keys))
	for _, k := range keys {
		out.Set(k, runewidth.StringWidth(k)*m.CharWidth+m.Padding)
	}
	return out
}

// Clamp limits every width to [lo, hi]. A bound of zero or less is ignored.
func Clamp(sizes viewdoc.Sizes, lo, hi int) viewdoc.Sizes {
	out := sizes.Clone()
	for i := range out {
		if lo > 0 && out[i].Width < lo {
			out[i].Width = lo
		}
		if hi > 0 && out[i].Width > hi {
			out[i].Width = hi
		}
	}
	return out
}
