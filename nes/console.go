package nes

import (
	"context"
	"fmt"
)

const (
	programROMSize  = 32 * 1024
	characterROMSize = 8 * 1024
)

// Game supplies the two fixed-size ROM images a console is built from.
// The ines package is the canonical producer of a Game; the core only
// consumes it.
type Game interface {
	ProgramROM() []byte
	CharacterROM() []byte
}

// Console owns the bus, CPU and PPU for one cartridge and drives the
// fetch-decode-execute loop. There is no teardown path short of process
// exit: a Console's lifetime is the lifetime of the emulated machine.
type Console struct {
	bus *Bus
	cpu *CPU
	ppu *PPU
}

// NewConsole builds a console around game's ROM images. ProgramROM must
// be exactly 32 KiB and CharacterROM exactly 8 KiB; NewConsole pads or
// truncates silently, matching the ines loader's contract rather than
// re-validating it.
func NewConsole(game Game) *Console {
	prog := fitSlice(game.ProgramROM(), programROMSize)
	chr := fitSlice(game.CharacterROM(), characterROMSize)

	ppu := NewPPU(chr)
	bus := &Bus{
		PPU:        ppu,
		ProgramROM: prog,
	}

	return &Console{
		bus: bus,
		cpu: NewCPU(bus),
		ppu: ppu,
	}
}

func fitSlice(src []byte, size int) []byte {
	out := make([]byte, size)
	copy(out, src)
	return out
}

// Step executes exactly one CPU instruction.
func (c *Console) Step() error {
	return c.cpu.Step()
}

// RunSteps executes n instructions in sequence, stopping early and
// returning the first decode error encountered.
func (c *Console) RunSteps(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunContinuous executes instructions until ctx is cancelled, checking
// ctx.Err() once per completed step. It is the only concurrency-flavored
// entry point on Console; everything else is synchronous and
// single-threaded.
func (c *Console) RunContinuous(ctx context.Context) error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// State returns a human-readable CPU register snapshot: A, X, Y, P in
// binary, PC and SP in hex.
func (c *Console) State() string {
	return c.cpu.State()
}

func (c *Console) String() string {
	return c.State()
}

// Disassemble decodes the instruction at addr without executing it,
// returning a single Nintendulator-style trace line.
func (c *Console) Disassemble(addr uint16) string {
	return disassemble(c.bus, addr)
}

// Read and Write expose the bus directly, for tests and diagnostic
// front-ends that need to poke memory without stepping the CPU.
func (c *Console) Read(addr uint16) byte      { return c.bus.Read(addr) }
func (c *Console) Write(addr uint16, v byte)  { c.bus.Write(addr, v) }

// CPU exposes the register file for tests that assert on exact values.
func (c *Console) CPU() *CPU { return c.cpu }

// PPU exposes the register-level PPU model for tests.
func (c *Console) PPU() *PPU { return c.ppu }

var _ fmt.Stringer = (*Console)(nil)
