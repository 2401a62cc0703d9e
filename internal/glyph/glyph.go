// Package glyph maps ASCII letters to stylized Unicode look-alikes.
//
// Tables are built once at package init and never mutated afterwards, so a
// *Table can be shared freely between goroutines.
package glyph

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Style names one of the supported glyph sets.
type Style string

const (
	// StyleFraktur - 𝔣𝔯𝔞𝔨𝔱𝔲𝔯.
	StyleFraktur Style = "fraktur"
	// StyleThick - bold fraktur, 𝖙𝖍𝖎𝖈𝖐.
	StyleThick Style = "thick"
	// StyleBold - bold sans-serif, 𝗯𝗼𝗹𝗱.
	StyleBold Style = "bold"
)

// ErrUnknownStyle is returned for style names outside Styles().
var ErrUnknownStyle = errors.New("unknown glyph style")

var tables = map[Style]*Table{
	StyleFraktur: mustTable(Letters, frakturGlyphs[:]),
	StyleThick:   mustTable(Letters, thickGlyphs[:]),
	StyleBold:    mustTable(Letters, boldGlyphs[:]),
}

// Styles returns all supported styles in display order.
func Styles() []Style {
	return []Style{StyleFraktur, StyleThick, StyleBold}
}

// ParseStyle resolves a style name, case-insensitively.
func ParseStyle(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := tables[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// TableFor returns the prebuilt table for a style.
func TableFor(s Style) (*Table, error) {
	t, ok := tables[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, string(s))
	}
	return t, nil
}

// Table is an immutable one-rune-to-one-rune substitution table.
type Table struct {
	m map[rune]rune
}

// NewTable builds a table from parallel source and target sequences.
func NewTable(src, dst []rune) (*Table, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("glyph: %d source runes but %d targets", len(src), len(dst))
	}
	m := make(map[rune]rune, len(src))
	for i, r := range src {
		if _, dup := m[r]; dup {
			return nil, fmt.Errorf("glyph: duplicate source rune %q", r)
		}
		m[r] = dst[i]
	}
	return &Table{m: m}, nil
}

func mustTable(src, dst []rune) *Table {
	t, err := NewTable(src, dst)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the size of the table's domain.
func (t *Table) Len() int {
	return len(t.m)
}

// Lookup returns the replacement for r and whether r is in the domain.
func (t *Table) Lookup(r rune) (rune, bool) {
	out, ok := t.m[r]
	return out, ok
}

// Map replaces every rune of s found in the table and copies the rest
// unchanged. The result has the same number of runes as s.
func (t *Table) Map(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) * 4)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// invalid UTF-8 is copied through byte by byte
			b.WriteByte(s[i])
			i++
			continue
		}
		if out, ok := t.m[r]; ok {
			r = out
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}
