// Package framebuf provides the column frame buffer of a MAX7219 chain.
//
// Every module of the chain shows 8 columns of 8 LEDs. A column is one byte,
// bit 0 being the top LED, which is what the digit registers of the chip
// expect when decode mode is off.
//
// Memory layout for a chain of 2 modules:
//
//	Column: 0 .. 7   8 .. 15   16 .. 23   24 .. 31
//	        margin   band 0    band 1     margin
//
// The margins are never shown. Scrolling pastes glyphs into the right margin
// and shifts the whole buffer left one column per step, so glyphs slide in
// from the right and leave through the left margin.
//
// Example usage:
//
//	// Frame buffer for a 4-module chain.
//	fb := framebuf.New(4)
//
//	// Light the top-left LED of the visible window.
//	fb.SetBit(0, 0, framebuf.On)
//
//	// Use with standard Go image operations.
//	draw.Draw(fb, fb.Bounds(), image.NewUniform(framebuf.On), image.Point{}, draw.Src)
//
//	// Read the columns of the second module.
//	band := fb.Band(1)
package framebuf
