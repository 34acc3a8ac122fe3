package max7219

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Register addresses of the MAX7219.
const (
	NoOp        byte = 0x00
	Digit0      byte = 0x01 // Digit0..Digit7 hold one column each.
	Digit7      byte = 0x08
	DecodeMode  byte = 0x09
	Intensity   byte = 0x0A // 0-15
	ScanLimit   byte = 0x0B
	Shutdown    byte = 0x0C // 0 = shut down, 1 = normal operation
	DisplayTest byte = 0x0F
)

// Broadcast is the Plan target addressing every module.
const Broadcast = -1

// Bus is the raw transport to the first chip of the chain.
//
// Each pair is clocked MSB first while LOAD is low; raising LOAD latches the
// pairs held by every chip at once.
type Bus interface {
	// Load drives the LOAD (CS) line.
	Load(l gpio.Level) error
	// Tx shifts one command/data pair into the chain.
	Tx(cmd, data byte) error
}

// Op is one register write as shifted on the wire.
type Op struct {
	Cmd  byte
	Data byte
}

// Plan returns the pairs to shift, in wire order, so that a chain of n
// modules executes cmd/data on module target only. Position i of the plan
// ends up in module i once latched, because every pair shifted in pushes the
// previous ones one module further.
//
// With target == Broadcast every module receives cmd/data. Any other target
// outside [0, n) yields an empty plan.
func Plan(n, target int, cmd, data byte) []Op {
	if target != Broadcast && (target < 0 || target >= n) {
		return nil
	}
	ops := make([]Op, n)
	for i := range ops {
		if target == Broadcast || i == target {
			ops[i] = Op{Cmd: cmd, Data: data}
		} else {
			ops[i] = Op{Cmd: NoOp}
		}
	}
	return ops
}

// chain addresses the modules of a daisy chain over a Bus.
type chain struct {
	bus Bus
	n   int
}

// broadcast writes cmd/data to every module.
func (c *chain) broadcast(cmd, data byte) error {
	return c.write(Plan(c.n, Broadcast, cmd, data))
}

// targeted writes cmd/data to module i only. An index outside the chain,
// negative ones included, is ignored.
func (c *chain) targeted(cmd, data byte, i int) error {
	if i < 0 {
		return nil
	}
	return c.write(Plan(c.n, i, cmd, data))
}

// write shifts ops within a single LOAD cycle.
func (c *chain) write(ops []Op) error {
	if len(ops) == 0 {
		return nil
	}
	if err := c.bus.Load(gpio.Low); err != nil {
		return fmt.Errorf("max7219: failed to pull LOAD low: %w", err)
	}
	for _, op := range ops {
		if err := c.bus.Tx(op.Cmd, op.Data); err != nil {
			return fmt.Errorf("max7219: failed to write register %#02x: %w", op.Cmd, err)
		}
	}
	if err := c.bus.Load(gpio.High); err != nil {
		return fmt.Errorf("max7219: failed to pull LOAD high: %w", err)
	}
	return nil
}
