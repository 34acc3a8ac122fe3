package max7219

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// spiBus shifts pairs over an SPI connection and drives LOAD from a GPIO.
//
// The chip select of the SPI port, if any, is left to the port; the MAX7219
// needs LOAD to stay low for the whole chain so it is driven separately.
type spiBus struct {
	c    conn.Conn
	load gpio.PinOut
	w    [2]byte
}

func (b *spiBus) Load(l gpio.Level) error {
	return b.load.Out(l)
}

func (b *spiBus) Tx(cmd, data byte) error {
	b.w[0], b.w[1] = cmd, data
	return b.c.Tx(b.w[:], nil)
}

// NewSPI creates a new MAX7219 chain connected via SPI.
//
// The SPI port is configured for opts.Hz (1MHz by default, the chip accepts
// up to 10MHz), Mode0 (CPOL=0, CPHA=0), 8-bit transfers. load is the LOAD/CS
// pin of the first chip and must be configured as an output.
//
// opts can be nil to use defaults (a single module).
func NewSPI(p spi.Port, load gpio.PinOut, opts *Opts) (*Dev, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}

	hz := opts.Hz
	if hz == 0 {
		hz = physic.MegaHertz
	}
	if hz > 10*physic.MegaHertz {
		return nil, fmt.Errorf("max7219: clock %s above 10MHz", hz)
	}

	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	// LOAD idles high; the first falling edge starts a frame.
	if err := load.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("max7219: failed to pull LOAD high: %w", err)
	}

	return newDev(&spiBus{c: c, load: load}, opts)
}
