// Package max7219test is meant to be used to test drivers over a fake chain
// of MAX7219 chips.
//
// Chain behaves like the real hardware: every pair shifted in pushes the pair
// held by each chip one chip further along the chain, and a rising edge on
// LOAD makes every chip execute the pair it currently holds.
package max7219test

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// Register addresses, duplicated here so the emulator does not depend on the
// driver it is testing.
const (
	regNoOp        = 0x00
	regDigit0      = 0x01
	regDigit7      = 0x08
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// Pair is one 16-bit word as shifted on the wire.
type Pair struct {
	Cmd  byte
	Data byte
}

// Registers is the register file of one chip.
type Registers struct {
	Digits      [8]byte
	DecodeMode  byte
	Intensity   byte
	ScanLimit   byte
	Shutdown    byte // 0 = shut down, 1 = normal operation
	DisplayTest byte
}

// Lit reports whether the LED at column x, row y is visibly on.
func (r *Registers) Lit(x, y int) bool {
	if r.DisplayTest != 0 {
		return true
	}
	if r.Shutdown == 0 || x > int(r.ScanLimit) {
		return false
	}
	return r.Digits[x]>>y&1 != 0
}

// Chain emulates n chips sharing one serial bus. Index 0 is the chip
// farthest from the controller.
//
// Grab the Mutex before accessing the exported members.
type Chain struct {
	sync.Mutex
	// Modules holds the latched registers of every chip.
	Modules []Registers
	// Frames holds the pairs shifted during every completed LOAD cycle.
	Frames [][]Pair
	// Err, when set, is returned by Load and Tx to simulate a bus failure.
	Err error

	shift   []Pair
	pending []Pair
	load    gpio.Level
}

// New returns a chain of n powered-down chips with LOAD idle high.
func New(n int) *Chain {
	if n < 1 {
		panic("max7219test: chain needs at least one module")
	}
	return &Chain{
		Modules: make([]Registers, n),
		shift:   make([]Pair, n),
		load:    gpio.High,
	}
}

func (c *Chain) String() string {
	return fmt.Sprintf("max7219test.Chain{%d}", len(c.Modules))
}

// Load drives the LOAD line. A low to high transition latches the pairs held
// by the shift registers.
func (c *Chain) Load(l gpio.Level) error {
	c.Lock()
	defer c.Unlock()
	if c.Err != nil {
		return c.Err
	}
	switch {
	case c.load == gpio.High && l == gpio.Low:
		c.pending = nil
	case c.load == gpio.Low && l == gpio.High:
		for i, p := range c.shift {
			c.Modules[i].apply(p)
		}
		c.Frames = append(c.Frames, c.pending)
		c.pending = nil
	}
	c.load = l
	return nil
}

// Tx shifts one pair into the chip nearest to the controller.
func (c *Chain) Tx(cmd, data byte) error {
	c.Lock()
	defer c.Unlock()
	if c.Err != nil {
		return c.Err
	}
	if c.load != gpio.Low {
		return errors.New("max7219test: Tx while LOAD is high")
	}
	p := Pair{Cmd: cmd, Data: data}
	copy(c.shift, c.shift[1:])
	c.shift[len(c.shift)-1] = p
	c.pending = append(c.pending, p)
	return nil
}

// Columns returns the digit registers of chip i.
func (c *Chain) Columns(i int) [8]byte {
	c.Lock()
	defer c.Unlock()
	return c.Modules[i].Digits
}

// Reset forgets the recorded frames. Chip registers are kept.
func (c *Chain) Reset() {
	c.Lock()
	defer c.Unlock()
	c.Frames = nil
}

func (r *Registers) apply(p Pair) {
	switch {
	case p.Cmd == regNoOp:
	case p.Cmd >= regDigit0 && p.Cmd <= regDigit7:
		r.Digits[p.Cmd-regDigit0] = p.Data
	case p.Cmd == regDecodeMode:
		r.DecodeMode = p.Data
	case p.Cmd == regIntensity:
		r.Intensity = p.Data & 0x0F
	case p.Cmd == regScanLimit:
		r.ScanLimit = p.Data & 0x07
	case p.Cmd == regShutdown:
		r.Shutdown = p.Data & 0x01
	case p.Cmd == regDisplayTest:
		r.DisplayTest = p.Data & 0x01
	}
}
