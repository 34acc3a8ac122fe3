// Package font holds the glyph table used to render text on a MAX7219 chain.
//
// A glyph is a sequence of column bytes. Bit 0 of a column is the top LED and
// bit 7 the bottom one, the same encoding the MAX7219 digit registers use when
// decode mode is off.
package font

import (
	"errors"
	"fmt"
)

// MaxWidth is the widest glyph a Table accepts. Scrolling feeds glyphs
// through the 8-column tail margin of the frame buffer, so a glyph may not be
// wider than one module.
const MaxWidth = 8

var (
	// ErrDuplicate is returned by Add when the rune is already registered.
	ErrDuplicate = errors.New("font: duplicate glyph")
	// ErrEmpty is returned by Add for a glyph without columns.
	ErrEmpty = errors.New("font: empty glyph")
	// ErrTooWide is returned by Add for a glyph wider than MaxWidth.
	ErrTooWide = errors.New("font: glyph too wide")
)

// Table is an append-only, ordered mapping from a rune to its glyph.
//
// The zero value is an empty table ready to use.
type Table struct {
	order  []rune
	glyphs map[rune][]byte
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Default returns a new table holding the built-in ASCII font.
//
// Each call returns an independent copy, glyphs added to one table are not
// visible in others.
func Default() *Table {
	t := &Table{
		order:  make([]rune, 0, len(ascii)),
		glyphs: make(map[rune][]byte, len(ascii)),
	}
	for _, g := range ascii {
		if err := t.Add(g.r, g.cols); err != nil {
			panic(err)
		}
	}
	return t
}

// Add registers the glyph for r. The columns are copied.
func (t *Table) Add(r rune, cols []byte) error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: %q", ErrEmpty, r)
	}
	if len(cols) > MaxWidth {
		return fmt.Errorf("%w: %q is %d columns", ErrTooWide, r, len(cols))
	}
	if _, ok := t.glyphs[r]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, r)
	}
	if t.glyphs == nil {
		t.glyphs = map[rune][]byte{}
	}
	t.glyphs[r] = append([]byte(nil), cols...)
	t.order = append(t.order, r)
	return nil
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	c := &Table{
		order:  append([]rune(nil), t.order...),
		glyphs: make(map[rune][]byte, len(t.glyphs)),
	}
	for r, g := range t.glyphs {
		c.glyphs[r] = g
	}
	return c
}

// Lookup returns the glyph registered for r.
//
// The returned slice must not be modified.
func (t *Table) Lookup(r rune) ([]byte, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

// Glyphs returns the glyphs for every rune of s that has one, in order.
// Runes without a glyph are skipped.
func (t *Table) Glyphs(s string) [][]byte {
	var out [][]byte
	for _, r := range s {
		if g, ok := t.glyphs[r]; ok {
			out = append(out, g)
		}
	}
	return out
}

// Width returns the total number of columns needed to render s.
func (t *Table) Width(s string) int {
	w := 0
	for _, r := range s {
		w += len(t.glyphs[r])
	}
	return w
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Runes returns the registered runes in insertion order.
func (t *Table) Runes() []rune {
	return append([]rune(nil), t.order...)
}
