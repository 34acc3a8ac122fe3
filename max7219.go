package max7219

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/max7219/font"
	"periph.io/x/devices/v3/max7219/framebuf"
	"periph.io/x/devices/v3/max7219/matrix"
)

// Sleeper blocks the calling goroutine for a duration.
//
// clockwork.Clock implements it.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Opts is the configuration for a MAX7219 chain.
type Opts struct {
	// Chain geometry
	Modules  int             // Number of chained modules (must be ≥1)
	Rotation matrix.Rotation // Mounting orientation of every module
	Reversed bool            // Map the leftmost band to module 0 instead of N-1

	// Optional collaborators
	Font  *font.Table // Glyph table, copied by New (default: font.Default())
	Clock Sleeper     // Delay source for scrolling (default: real clock)

	// SPI clock, NewSPI only (default: 1MHz, must be ≤10MHz)
	Hz physic.Frequency
}

// validate applies defaults and checks opts. It never modifies the caller's
// struct.
func (o *Opts) validate() (*Opts, error) {
	if o == nil {
		o = &Opts{Modules: 1}
	}
	if o.Modules < 1 {
		return nil, errors.New("max7219: chain needs at least one module")
	}
	if !o.Rotation.Valid() {
		return nil, fmt.Errorf("max7219: invalid rotation %d", o.Rotation)
	}
	v := *o
	if v.Font == nil {
		v.Font = font.Default()
	}
	if v.Clock == nil {
		v.Clock = clockwork.NewRealClock()
	}
	return &v, nil
}

var errHalted = errors.New("max7219: halted")

// Dev is the device handle for a chain of MAX7219 modules.
//
// All methods are serialized: a Scroll blocks concurrent callers until it
// completes.
type Dev struct {
	mu sync.Mutex

	// Communication
	chain chain

	// Rendering
	fb       *framebuf.Buffer
	font     *font.Table
	rotation matrix.Rotation
	reversed bool
	clock    Sleeper
	rnd      func() byte

	// State
	halted bool
}

// New creates a new MAX7219 chain on an arbitrary Bus and runs the chip
// setup sequence.
//
// opts can be nil to use defaults (a single module).
func New(bus Bus, opts *Opts) (*Dev, error) {
	if bus == nil {
		return nil, errors.New("max7219: bus is required")
	}
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return newDev(bus, opts)
}

func newDev(bus Bus, opts *Opts) (*Dev, error) {
	d := &Dev{
		chain:    chain{bus: bus, n: opts.Modules},
		fb:       framebuf.New(opts.Modules),
		font:     opts.Font.Clone(),
		rotation: opts.Rotation,
		reversed: opts.Reversed,
		clock:    opts.Clock,
		rnd:      func() byte { return byte(rand.UintN(256)) },
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the initialization sequence to every module.
func (d *Dev) init() error {
	setup := []Op{
		{Shutdown, 0},    // Shut down while configuring
		{DisplayTest, 0}, // Normal operation
		{DecodeMode, 0},  // Raw columns, no BCD decoding
		{ScanLimit, 7},   // Scan all 8 digits
		{Intensity, 15},  // Maximum brightness
		{Shutdown, 1},    // Wake up
	}
	for _, op := range setup {
		if err := d.chain.broadcast(op.Cmd, op.Data); err != nil {
			return err
		}
	}
	return d.clearAll()
}

// Modules returns the number of modules in the chain.
func (d *Dev) Modules() int {
	return d.chain.n
}

// AddGlyph adds a glyph to the font used to render text. It fails on a rune
// already in the font and on glyphs that are empty or wider than a module.
func (d *Dev) AddGlyph(r rune, cols []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.font.Add(r, cols)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return framebuf.BitModel
}

// Bounds returns the visible area of the chain: 8 pixels per module by 8.
func (d *Dev) Bounds() image.Rectangle {
	return d.fb.Bounds()
}

// Draw draws an image onto the visible window of the chain and pushes every
// module.
//
// Text and column placement share the same frame buffer, so Draw can be
// combined with DisplayText called with clear set to false.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}

	dst = dst.Intersect(d.fb.Bounds())
	if dst.Empty() {
		return nil
	}
	draw.Draw(d.fb, dst, src, sp, draw.Src)
	return d.flush()
}

// Scroll scrolls text once across the whole chain, from right to left.
//
// The display is cleared first. Each step shifts the content one column and
// then waits step; once the text has left the chain Scroll waits end. Runes
// missing from the font are skipped. Scroll blocks for the whole animation.
func (d *Dev) Scroll(text string, step, end time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}

	d.fb.Reset()
	if err := d.clearAll(); err != nil {
		return err
	}

	glyphs := d.font.Glyphs(text)
	steps := d.font.Width(text) + d.chain.n*framebuf.Margin
	tail := d.fb.Len() - framebuf.Margin
	next, countdown := 0, 1
	for i := 0; i < steps; i++ {
		// A glyph is fed into the tail margin once the previous one has fully
		// scrolled out of it.
		countdown--
		if next < len(glyphs) && countdown == 0 {
			d.fb.PasteTail(tail, glyphs[next])
			countdown = len(glyphs[next])
			next++
		}
		d.fb.Shift()
		if err := d.flush(); err != nil {
			return err
		}
		d.clock.Sleep(step)
	}
	d.clock.Sleep(end)
	return nil
}

// DisplayText prints text left aligned, its first column at offset.
//
// offset ranges from -8 (first 8 columns hidden) to the last column of the
// chain; values outside are clamped. Glyphs that do not fit are dropped. When
// clear is false the text is drawn over the current content.
func (d *Dev) DisplayText(text string, offset int, clear bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.place(d.font.Glyphs(text), offset, clear)
}

// DisplayTextRight prints text so that its last column lands on the last
// column of the chain. Text wider than the chain is clipped.
func (d *Dev) DisplayTextRight(text string, clear bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	offset := d.chain.n*framebuf.Margin - d.font.Width(text)
	return d.place(d.font.Glyphs(text), offset, clear)
}

// DisplayColumns prints raw column bytes at offset, like DisplayText.
//
// Bit 0 of a column is the top LED. An empty cols is a no-op: nothing is
// cleared.
func (d *Dev) DisplayColumns(cols []byte, offset int, clear bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}
	if len(cols) == 0 {
		return nil
	}
	return d.place([][]byte{cols}, offset, clear)
}

// FontDemo shows the glyphs of the font, one module at a time, waiting delay
// between glyphs. The first glyph, the space of the built-in font, is
// skipped.
func (d *Dev) FontDemo(delay time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}

	if err := d.clearAll(); err != nil {
		return err
	}
	blank := [][]byte{make([]byte, framebuf.Margin)}
	module := 0
	runes := d.font.Runes()
	if len(runes) > 0 {
		runes = runes[1:]
	}
	for _, r := range runes {
		g, _ := d.font.Lookup(r)
		offset := module * framebuf.Margin
		if err := d.place(blank, offset, false); err != nil {
			return err
		}
		if err := d.place([][]byte{g}, offset, false); err != nil {
			return err
		}
		module = (module + 1) % d.chain.n
		d.clock.Sleep(delay)
	}
	d.clock.Sleep(delay)
	return d.clearAll()
}

// place pastes glyphs one after the other from offset and pushes every
// module.
func (d *Dev) place(glyphs [][]byte, offset int, clear bool) error {
	if d.halted {
		return errHalted
	}
	if clear {
		d.fb.Reset()
		if err := d.clearAll(); err != nil {
			return err
		}
	}

	end := d.fb.Len() - framebuf.Margin
	pos := min(max(offset, -framebuf.Margin), end-1) + framebuf.Margin
	for _, g := range glyphs {
		if pos >= end {
			break
		}
		pos = d.fb.Paste(pos, g)
	}
	return d.flush()
}

// flush pushes every visible band of the frame buffer to its module.
//
// Bands are numbered from the left; band k is shown by module N-1-k, or by
// module k when the chain is reversed.
func (d *Dev) flush() error {
	n := d.chain.n
	for k := 0; k < n; k++ {
		slot := n - 1 - k
		i := slot
		if d.reversed {
			i = n - 1 - slot
		}
		if err := d.writeModule(d.fb.Band(k), i); err != nil {
			return err
		}
	}
	return nil
}

// writeModule writes 8 columns to module i, rotating them first when the
// modules are not mounted upright.
func (d *Dev) writeModule(cols [8]byte, i int) error {
	if d.rotation != matrix.None {
		cols = matrix.FromColumns(cols).Rotate(d.rotation).Columns()
	}
	for x, c := range cols {
		if err := d.chain.targeted(Digit0+byte(x), c, i); err != nil {
			return err
		}
	}
	return nil
}

// DrawMatrix shows m on module i. An index outside the chain is ignored.
func (d *Dev) DrawMatrix(m matrix.Matrix, i int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}
	return d.writeModule(m.Columns(), i)
}

// DrawMatrixAll shows m on every module.
func (d *Dev) DrawMatrixAll(m matrix.Matrix) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}
	cols := m.Rotate(d.rotation).Columns()
	for x, c := range cols {
		if err := d.chain.broadcast(Digit0+byte(x), c); err != nil {
			return err
		}
	}
	return nil
}

// Power turns every module on or off. Register contents are kept while off.
func (d *Dev) Power(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}
	var v byte
	if on {
		v = 1
	}
	return d.chain.broadcast(Shutdown, v)
}

// SetIntensity sets the brightness (0-15) of every module.
func (d *Dev) SetIntensity(level uint8) error {
	return d.setIntensity(level, d.chain.broadcast)
}

// SetIntensityOf sets the brightness (0-15) of module i. An index outside the
// chain is ignored.
func (d *Dev) SetIntensityOf(level uint8, i int) error {
	return d.setIntensity(level, d.only(i))
}

// only returns a register writer for module i alone.
func (d *Dev) only(i int) func(cmd, data byte) error {
	return func(cmd, data byte) error {
		return d.chain.targeted(cmd, data, i)
	}
}

func (d *Dev) setIntensity(level uint8, write func(cmd, data byte) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}
	if level > 15 {
		return errors.New("max7219: intensity must be between 0 and 15")
	}
	return write(Intensity, level)
}

// Fill turns on every LED of every module.
func (d *Dev) Fill() error {
	return d.digits(d.chain.broadcast, func() byte { return 0xFF })
}

// FillOne turns on every LED of module i. An index outside the chain is
// ignored, as for every *One method.
func (d *Dev) FillOne(i int) error {
	return d.digits(d.only(i), func() byte { return 0xFF })
}

// Clear turns off every LED of every module. The frame buffer is left alone.
func (d *Dev) Clear() error {
	return d.digits(d.chain.broadcast, func() byte { return 0 })
}

// ClearOne turns off every LED of module i.
func (d *Dev) ClearOne(i int) error {
	return d.digits(d.only(i), func() byte { return 0 })
}

// Randomize lights a random pattern on every module.
func (d *Dev) Randomize() error {
	return d.digits(d.chain.broadcast, d.rnd)
}

// RandomizeOne lights a random pattern on module i.
func (d *Dev) RandomizeOne(i int) error {
	return d.digits(d.only(i), d.rnd)
}

// digits writes the 8 digit registers through write with values from v,
// bypassing the frame buffer.
func (d *Dev) digits(write func(cmd, data byte) error, v func() byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return errHalted
	}
	for x := byte(0); x < 8; x++ {
		if err := write(Digit0+x, v()); err != nil {
			return err
		}
	}
	return nil
}

// clearAll zeroes the digit registers of every module.
func (d *Dev) clearAll() error {
	for x := byte(0); x < 8; x++ {
		if err := d.chain.broadcast(Digit0+x, 0); err != nil {
			return err
		}
	}
	return nil
}

// Halt shuts every module down.
// After calling Halt, the chain will not respond to further commands until
// the device is re-initialized.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.halted = true
	return d.chain.broadcast(Shutdown, 0)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%dx8}", d.chain.n*framebuf.Margin)
}

var _ display.Drawer = &Dev{}
