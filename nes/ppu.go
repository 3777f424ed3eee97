package nes

// Register identifies one of the eight CPU-visible PPU register
// addresses, already mod-8-mirrored by the bus.
type Register uint16

const (
	PPUCTRL   Register = 0x2000
	PPUMASK   Register = 0x2001
	PPUSTATUS Register = 0x2002
	OAMADDR   Register = 0x2003
	OAMDATA   Register = 0x2004
	PPUSCROLL Register = 0x2005
	PPUADDR   Register = 0x2006
	PPUDATA   Register = 0x2007
)

const (
	oamSize      = 256
	paletteSize  = 32
	patternSize  = 8192
	vramAddrMask = 0x3FFF
)

// PPU is a register-level model of the picture processing unit: the
// eight architectural registers, the shared address latch, a flat VRAM
// address accumulator, OAM, pattern ROM and palette RAM. It does not
// render; PPUDATA/OAMDATA access and the PPUADDR latch protocol are
// implemented, everything downstream of them is not. PPUSCROLL writes are
// accepted and ignored: they neither store a value nor toggle the latch.
type PPU struct {
	Ctrl   byte
	Mask   byte
	Status byte
	OAMAddr byte

	w          bool
	vramAddr   uint16

	OAM         [oamSize]byte
	PatternROM  [patternSize]byte
	PaletteRAM  [paletteSize]byte
}

// NewPPU constructs a PPU backed by the cartridge's pattern ROM. pattern
// must be exactly 8 KiB; a shorter or longer slice is copied into (or
// truncated to) the fixed-size array.
func NewPPU(pattern []byte) *PPU {
	p := &PPU{}
	copy(p.PatternROM[:], pattern)
	return p
}

// ReadRegister implements the CPU-visible register read protocol. Only
// PPUSTATUS, OAMDATA and PPUDATA are readable; every other register
// returns 0 without side effects.
func (p *PPU) ReadRegister(reg Register) byte {
	switch reg {
	case PPUSTATUS:
		status := p.Status
		p.w = false
		return status

	case OAMDATA:
		return p.OAM[p.OAMAddr]

	case PPUDATA:
		return p.readMemory(p.vramAddr)

	default:
		return 0
	}
}

// WriteRegister implements the CPU-visible register write protocol.
func (p *PPU) WriteRegister(reg Register, v byte) {
	switch reg {
	case PPUCTRL:
		p.Ctrl = v

	case PPUMASK:
		p.Mask = v

	case OAMADDR:
		p.OAMAddr = v

	case OAMDATA:
		p.OAM[p.OAMAddr] = v
		p.OAMAddr++

	case PPUSCROLL:
		// Reserved: scroll latch not exercised by this core.

	case PPUADDR:
		if !p.w {
			p.vramAddr = uint16(v) << 8
		} else {
			p.vramAddr |= uint16(v)
			if p.vramAddr > vramAddrMask {
				p.vramAddr = vramAddrMask
			}
		}
		p.w = !p.w

	case PPUDATA:
		p.writeMemory(p.vramAddr, v)
	}
}

// readMemory and writeMemory implement the two ranges the spec requires
// to round-trip: pattern ROM (read-only) and palette RAM. Every other
// address, including the nametables and their mirrors, is deliberately
// unimplemented: reads return 0 and writes are ignored rather than
// guessing at a mirroring policy the spec withholds.
func (p *PPU) readMemory(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return p.PatternROM[addr]
	case addr >= 0x3F00 && addr <= 0x3F1F:
		return p.PaletteRAM[addr-0x3F00]
	default:
		return 0
	}
}

func (p *PPU) writeMemory(addr uint16, v byte) {
	switch {
	case addr < 0x2000:
		// pattern ROM, writes ignored
	case addr >= 0x3F00 && addr <= 0x3F1F:
		p.PaletteRAM[addr-0x3F00] = v
	}
}
