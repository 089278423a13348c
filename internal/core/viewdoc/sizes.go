package viewdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Entry is a single column width.
type Entry struct {
	Key   string
	Width int
}

// Sizes maps column keys to pixel widths. Keys are unique and the slice
// order is the order entries are written back to a document, which keeps
// Patch deterministic.
type Sizes []Entry

// FromMap builds Sizes from a map with keys in sorted order.
func FromMap(m map[string]int) Sizes {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Sizes, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Width: m[k]})
	}
	return out
}

// Len returns the number of entries.
func (s Sizes) Len() int { return len(s) }

// Get returns the width for key.
func (s Sizes) Get(key string) (int, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Width, true
		}
	}
	return 0, false
}

// Set replaces the width for an existing key in place or appends a new entry.
func (s *Sizes) Set(key string, width int) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Width = width
			return
		}
	}
	*s = append(*s, Entry{Key: key, Width: width})
}

// Keys returns the column keys in order.
func (s Sizes) Keys() []string {
	keys := make([]string, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

// Clone returns a copy that shares no memory with s.
func (s Sizes) Clone() Sizes {
	if s == nil {
		return nil
	}
	out := make(Sizes, len(s))
	copy(out, s)
	return out
}

// Merge returns a copy of s with every entry of o applied on top.
func (s Sizes) Merge(o Sizes) Sizes {
	out := s.Clone()
	for _, e := range o {
		out.Set(e.Key, e.Width)
	}
	return out
}

// Map converts s to a plain map.
func (s Sizes) Map() map[string]int {
	m := make(map[string]int, len(s))
	for _, e := range s {
		m[e.Key] = e.Width
	}
	return m
}

// Equal reports whether s and o hold the same key/width pairs, ignoring order.
func (s Sizes) Equal(o Sizes) bool {
	if len(s) != len(o) {
		return false
	}
	for _, e := range s {
		w, ok := o.Get(e.Key)
		if !ok || w != e.Width {
			return false
		}
	}
	return true
}

func (s Sizes) lines(indent string) []string {
	out := make([]string, 0, len(s))
	for _, e := range s {
		out = append(out, indent+e.Key+": "+strconv.Itoa(e.Width))
	}
	return out
}

// MarshalJSON encodes s as a JSON object, keeping entry order.
func (s Sizes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(e.Width))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of integer widths, keeping key order.
func (s *Sizes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("column sizes must be a JSON object")
	}

	var out Sizes
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var width int
		if err := dec.Decode(&width); err != nil {
			return fmt.Errorf("width for %q: %w", key, err)
		}
		out.Set(key, width)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	if out == nil {
		out = Sizes{}
	}
	*s = out
	return nil
}
