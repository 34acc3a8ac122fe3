// Package framebuf provides the column frame buffer of a MAX7219 chain.
//
// The buffer holds (N+2)*8 column bytes for a chain of N modules: an 8-column
// margin on each side and the N*8 visible columns in between. Bit 0 of a
// column is the top LED.
package framebuf

import (
	"image"
	"image/color"
)

// Margin is the number of off-screen columns on each side of the visible
// window.
const Margin = 8

// Bit is a 1-bit color: an LED is either on or off.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA converts the Bit to standard RGBA.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luma weights as color.GrayModel, thresholded at mid scale.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Buffer is the frame buffer of a chain.
//
// Buffer implements draw.Image over the visible window only; the margins are
// reachable through the column methods.
type Buffer struct {
	cols    []byte
	modules int
}

// New returns a zeroed buffer for a chain of modules modules.
//
// modules must be at least 1.
func New(modules int) *Buffer {
	if modules < 1 {
		panic("framebuf: chain needs at least one module")
	}
	return &Buffer{
		cols:    make([]byte, (modules+2)*Margin),
		modules: modules,
	}
}

// Len returns the total number of columns, margins included.
func (b *Buffer) Len() int {
	return len(b.cols)
}

// Modules returns the number of modules the buffer covers.
func (b *Buffer) Modules() int {
	return b.modules
}

// Columns returns the whole buffer. The slice must not be modified.
func (b *Buffer) Columns() []byte {
	return b.cols
}

// Reset turns every column off.
func (b *Buffer) Reset() {
	clear(b.cols)
}

// Shift moves every column one position to the left. The first column is
// dropped and the last one is cleared.
func (b *Buffer) Shift() {
	copy(b.cols, b.cols[1:])
	b.cols[len(b.cols)-1] = 0
}

// Paste copies cols into the buffer starting at pos, stopping at the right
// margin. Columns that would land before the start of the buffer are
// skipped. It returns the position following the last column consumed, which
// is where the next glyph goes.
func (b *Buffer) Paste(pos int, cols []byte) int {
	end := len(b.cols) - Margin
	for _, c := range cols {
		if pos >= end {
			break
		}
		if pos >= 0 {
			b.cols[pos] = c
		}
		pos++
	}
	return pos
}

// PasteTail copies cols starting at pos without stopping at the right margin.
// It is used to feed glyphs into the off-screen tail before they scroll in.
// Columns past the end of the buffer are dropped.
func (b *Buffer) PasteTail(pos int, cols []byte) {
	for i, c := range cols {
		if p := pos + i; p >= 0 && p < len(b.cols) {
			b.cols[p] = c
		}
	}
}

// Band returns the 8 columns of the k-th visible module band, counted from
// the left of the visible window.
func (b *Buffer) Band(k int) [Margin]byte {
	var band [Margin]byte
	start := Margin + k*Margin
	copy(band[:], b.cols[start:start+Margin])
	return band
}

// ColorModel returns the color model of the buffer.
func (b *Buffer) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the visible window: N*8 columns by 8 rows.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.modules*Margin, 8)
}

// At returns the color of the LED at (x, y).
// It implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.BitAt(x, y)
}

// BitAt returns the state of the LED at (x, y) of the visible window.
func (b *Buffer) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return Off
	}
	return Bit(b.cols[Margin+x]>>y&1 != 0)
}

// Set sets the LED at (x, y).
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the LED at (x, y) of the visible window.
// This is faster than Set() as it doesn't require color conversion.
func (b *Buffer) SetBit(x, y int, v Bit) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	mask := byte(1) << y
	if v {
		b.cols[Margin+x] |= mask
	} else {
		b.cols[Margin+x] &^= mask
	}
}
