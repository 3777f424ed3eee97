package nes

// ╔═════════════════╤═══════╤══════════════════════════╤═══════════╗
// ║ Address Range   │ Size  │ Purpose                  │ Kind      ║
// ╠═════════════════╪═══════╪══════════════════════════╪═══════════╣
// ║ 0x8000 - 0xFFFF │ 32768 │ PRG-ROM                  │  PRG ROM  ║
// ╠═════════════════╪═══════╪══════════════════════════╪═══════════╣
// ║ 0x6000 - 0x7FFF │ 8192  │ CARTRIDGE RAM (stub)     │    SRAM   ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤           ║
// ║ 0x4020 - 0x5FFF │ 8160  │ EXPANSION ROM (stub)     │  EXP ROM  ║
// ╠═════════════════╪═══════╪══════════════════════════╪═══════════╣
// ║ 0x4000 - 0x401F │ 32    │ APU / I/O REGISTERS (stub) │ I/O REG ║
// ╠═════════════════╪═══════╪══════════════════════════╪═══════════╣
// ║ 0x2008 - 0x3FFF │ 8184  │ MIRRORS 0x2000 - 0x2007  │  PPU REG  ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤           ║
// ║ 0x2000 - 0x2007 │ 8     │ PPU REGISTERS            │           ║
// ╠═════════════════╪═══════╪══════════════════════════╪═══════════╣
// ║ 0x0800 - 0x1FFF │ 6144  │ MIRRORS 0x0000 - 0x07FF  │    RAM    ║
// ╟╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌┼╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌╌┤           ║
// ║ 0x0000 - 0x07FF │ 2048  │ INTERNAL RAM             │           ║
// ╚═════════════════╧═══════╧══════════════════════════╧═══════════╝
//
const ramSize = 2048

// Bus decodes a 16-bit address and dispatches a read or write to exactly
// one backing store. Every region is total: no address falls through
// without a match.
type Bus struct {
	RAM        [ramSize]byte
	PPU        *PPU
	ProgramROM []byte
}

func (b *Bus) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.RAM[address%ramSize]

	case address < 0x4000:
		return b.PPU.ReadRegister(Register(0x2000 + address%8))

	case address < 0x4020:
		return 0 // APU/IO, not modeled by this core

	case address < 0x8000:
		return 0 // cartridge expansion/SRAM, not modeled by this core

	default:
		return b.ProgramROM[address-0x8000]
	}
}

func (b *Bus) Write(address uint16, v byte) {
	switch {
	case address < 0x2000:
		b.RAM[address%ramSize] = v

	case address < 0x4000:
		b.PPU.WriteRegister(Register(0x2000+address%8), v)

	case address < 0x4020:
		// APU/IO, ignored

	case address < 0x8000:
		// cartridge expansion/SRAM, ignored

	default:
		// ROM, writes discarded
	}
}

// ReadAddress reads a little-endian 16-bit value from address and address+1.
func (b *Bus) ReadAddress(address uint16) uint16 {
	lo := b.Read(address)
	hi := b.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}
