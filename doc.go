// Package max7219 controls a daisy chain of MAX7219 8×8 LED matrix modules.
//
// The MAX7219 is a serial LED driver holding 8 digit registers of 8 bits each.
// Wired to an 8×8 matrix, every digit register is one column of the module.
// Modules are chained by connecting DOUT of one chip to DIN of the next, so a
// chain of N modules behaves like a 16×N bit shift register.
//
// # Display Characteristics
//
// - Monochrome, 8×8 LEDs per module
// - Any number of modules in a single chain
// - Adjustable intensity per module (0-15)
// - Low power shutdown mode with register contents kept
// - Modules can be mounted rotated by 90°, 180° or 270°
//
// # Hardware Connection
//
// Connect the first module of the chain to your system via SPI:
//
//	Module Pin → System Pin
//	GND        → GND
//	VCC        → 5V
//	DIN        → SPI Data (MOSI)
//	CLK        → SPI Clock (SCLK)
//	CS/LOAD    → GPIO (any available pin)
//
// The remaining modules take DIN from DOUT of the previous one and share CLK
// and LOAD. LOAD must stay low while the whole chain is being shifted, which
// is why it is driven as a plain GPIO rather than as the SPI chip select.
//
// # Basic Usage
//
// Example of creating a chain of 4 modules and showing a message:
//
//	package main
//
//	import (
//		"time"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/max7219"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get LOAD GPIO pin
//		loadPin := gpioreg.ByName("GPIO8")
//
//		// Create device
//		dev, _ := max7219.NewSPI(spiBus, loadPin, &max7219.Opts{
//			Modules: 4,
//		})
//		defer dev.Halt()
//
//		dev.Scroll("Hello world!", 50*time.Millisecond, time.Second)
//		dev.DisplayTextRight("42", true)
//	}
//
// # Module Order
//
// The chip wired to the controller is the last one to receive a pair, so it
// is module N-1 and the farthest one is module 0. Text flows from the leftmost
// module, N-1 by default. When the chain is physically laid out the other way
// around set Reversed:
//
//	dev, _ := max7219.NewSPI(spiBus, loadPin, &max7219.Opts{
//		Modules:  4,
//		Reversed: true,
//	})
//
// # Rendering Modes
//
// ## Text
//
// DisplayText and DisplayTextRight place text at a column offset, Scroll moves
// it across the whole chain from right to left. Glyphs come from a font.Table;
// runes missing from it are skipped. New copies the table it is given, and
// custom glyphs can be added at runtime:
//
//	dev.AddGlyph('°', []byte{0x06, 0x09, 0x09, 0x06, 0x00})
//
// ## Images
//
// Dev implements display.Drawer, any image can be drawn on the chain. Colors
// are reduced to on or off by luminance:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// ## Raw Patterns
//
// DrawMatrix and DisplayColumns bypass the font. FillOne, ClearOne and
// RandomizeOne address a single module.
//
// # Rotation
//
// Many modules are sold with the matrix mounted so that the digit registers
// drive rows instead of columns. Set Rotation to the orientation of the
// modules; every write is rotated before it is sent:
//
//	&max7219.Opts{Modules: 4, Rotation: matrix.CounterClockwise}
//
// # Testing
//
// New accepts any Bus. max7219test.Chain emulates a chain of chips and
// records every LOAD cycle, so drivers can be tested without hardware.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package max7219
