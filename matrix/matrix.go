// Package matrix provides the 8×8 LED grid used by a single MAX7219 module.
//
// A Matrix is indexed [x][y]: x is the column (digit register) and y the row,
// row 0 being bit 0 of the column byte. The package converts between this
// grid and the 8-byte column encoding of the chip, and rotates grids for
// modules mounted in a rotated orientation.
package matrix

import (
	"errors"
	"strings"
)

// Size is the width and height of a module, in LEDs.
const Size = 8

// Matrix is an 8×8 grid of LEDs. Cells hold 0 (off) or 1 (on).
type Matrix [Size][Size]uint8

// Empty returns a grid with every LED off.
func Empty() Matrix {
	return Matrix{}
}

// Full returns a grid with every LED on.
func Full() Matrix {
	var m Matrix
	for x := range m {
		for y := range m[x] {
			m[x][y] = 1
		}
	}
	return m
}

// FromColumns converts the column encoding of a module into a grid.
func FromColumns(cols [Size]byte) Matrix {
	var m Matrix
	for x, c := range cols {
		for y := 0; y < Size; y++ {
			m[x][y] = (c >> y) & 1
		}
	}
	return m
}

// Columns returns the column encoding of m: columns[x] = Σ bit(x,y)·2^y.
func (m Matrix) Columns() [Size]byte {
	var cols [Size]byte
	for x := range m {
		for y := 0; y < Size; y++ {
			if m[x][y] != 0 {
				cols[x] |= 1 << y
			}
		}
	}
	return cols
}

// Get returns the cell at (x, y). x and y must be in [0, 8).
func (m Matrix) Get(x, y int) uint8 {
	return m[x][y]
}

// Set turns the cell at (x, y) on when v is non-zero, off otherwise.
func (m *Matrix) Set(x, y int, v uint8) {
	if v != 0 {
		v = 1
	}
	m[x][y] = v
}

// Toggle flips the cell at (x, y) between 0 and 1.
func (m *Matrix) Toggle(x, y int) {
	switch m[x][y] {
	case 0:
		m[x][y] = 1
	case 1:
		m[x][y] = 0
	}
}

// Rotate returns a copy of m rotated by r.
func (m Matrix) Rotate(r Rotation) Matrix {
	rows := make([][]uint8, Size)
	for x := range m {
		rows[x] = m[x][:]
	}
	RotateSquare(rows, r)
	return m
}

// Rotation is the mounting orientation of the modules of a chain.
type Rotation uint8

const (
	None             Rotation = 0
	Clockwise        Rotation = 1
	CounterClockwise Rotation = 2
	OneEighty        Rotation = 3
)

// Valid reports whether r is one of the defined rotations.
func (r Rotation) Valid() bool {
	return r <= OneEighty
}

func (r Rotation) String() string {
	switch r {
	case None:
		return "none"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	case OneEighty:
		return "180"
	default:
		return "Rotation(invalid)"
	}
}

// ParseRotation is the inverse of Rotation.String. It also accepts "cw",
// "ccw" and "one_eighty".
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "clockwise", "cw":
		return Clockwise, nil
	case "counterclockwise", "ccw":
		return CounterClockwise, nil
	case "180", "one_eighty":
		return OneEighty, nil
	}
	return None, errors.New("matrix: unknown rotation " + s)
}

// RotateSquare rotates the n×n grid g in place, one concentric ring at a
// time starting from the outermost one.
//
// g must be square.
func RotateSquare(g [][]uint8, r Rotation) {
	n := len(g)
	for _, row := range g {
		if len(row) != n {
			panic("matrix: grid must be square")
		}
	}
	for ring := 0; ring < n/2; ring++ {
		rotateRing(g, ring, r)
	}
}

// rotateRing moves every cell of ring i by one quarter turn (or two for
// OneEighty). Each iteration handles one 4-way symmetric quadruple
// a=(i,j) b=(j,last-i) c=(last-i,last-j) d=(last-j,i).
func rotateRing(g [][]uint8, i int, r Rotation) {
	last := len(g) - 1
	for j := i; j < last-i; j++ {
		a, b := &g[i][j], &g[j][last-i]
		c, d := &g[last-i][last-j], &g[last-j][i]
		switch r {
		case Clockwise:
			*a, *b, *c, *d = *b, *c, *d, *a
		case CounterClockwise:
			*a, *b, *c, *d = *d, *a, *b, *c
		case OneEighty:
			*a, *c = *c, *a
			*b, *d = *d, *b
		}
	}
}

// ParseColumns converts a list of binary byte literals such as
// "B00100000,B01000000,B10000110" into column bytes.
//
// Literals are read on a fixed 10-character stride: one prefix character,
// eight bits (most significant first) and a separator. Characters other than
// '1' count as 0.
func ParseColumns(s string) []byte {
	var cols []byte
	for i := 0; i < len(s); i += 10 {
		start := min(i+1, len(s))
		end := min(start+8, len(s))
		var v byte
		for k := start; k < end; k++ {
			v <<= 1
			if s[k] == '1' {
				v |= 1
			}
		}
		cols = append(cols, v)
	}
	return cols
}
