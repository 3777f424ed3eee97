package nes

// AddressingMode identifies how an instruction's operand is located.
//
// See http://www.obelisk.me.uk/6502/addressing.html for the canonical
// description of each mode; the names here follow that reference.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
)

// Instruction is one row of the dense opcode table: everything the
// execution loop needs to decode and account for a single opcode byte
// without branching on the mnemonic until dispatch time.
type Instruction struct {
	Mnemonic string
	Mode     AddressingMode

	// Size is the total instruction length in bytes, including the opcode.
	Size uint8

	// Cycles is the base cycle count for this opcode.
	Cycles uint8

	// PageCycles is 1 if crossing a page boundary while resolving the
	// operand address adds one extra cycle, 0 otherwise. Relative-mode
	// (branch) instructions reuse it to mean "this opcode is a branch";
	// Step skips the page-cross bonus for them, and the taken/page-crossing
	// penalty for branches is computed in CPU.branch.
	PageCycles uint8
}

// instructions is the 256-entry dense opcode table. Slots for opcode
// bytes with no documented 6502 instruction are left at the zero value;
// a zero-value Instruction has an empty Mnemonic, which Step treats as
// a decode error.
var instructions = [256]Instruction{
	0x00: {Mnemonic: "BRK", Mode: Implied, Size: 2, Cycles: 7, PageCycles: 0},
	0x01: {Mnemonic: "ORA", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0x05: {Mnemonic: "ORA", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x06: {Mnemonic: "ASL", Mode: ZeroPage, Size: 2, Cycles: 5, PageCycles: 0},
	0x08: {Mnemonic: "PHP", Mode: Implied, Size: 1, Cycles: 3, PageCycles: 0},
	0x09: {Mnemonic: "ORA", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0x0A: {Mnemonic: "ASL", Mode: Accumulator, Size: 1, Cycles: 2, PageCycles: 0},
	0x0D: {Mnemonic: "ORA", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x0E: {Mnemonic: "ASL", Mode: Absolute, Size: 3, Cycles: 6, PageCycles: 0},
	0x10: {Mnemonic: "BPL", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x11: {Mnemonic: "ORA", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0x15: {Mnemonic: "ORA", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0x16: {Mnemonic: "ASL", Mode: ZeroPageX, Size: 2, Cycles: 6, PageCycles: 0},
	0x18: {Mnemonic: "CLC", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x19: {Mnemonic: "ORA", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0x1D: {Mnemonic: "ORA", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x1E: {Mnemonic: "ASL", Mode: AbsoluteX, Size: 3, Cycles: 7, PageCycles: 0},
	0x20: {Mnemonic: "JSR", Mode: Absolute, Size: 3, Cycles: 6, PageCycles: 0},
	0x21: {Mnemonic: "AND", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0x24: {Mnemonic: "BIT", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x25: {Mnemonic: "AND", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x26: {Mnemonic: "ROL", Mode: ZeroPage, Size: 2, Cycles: 5, PageCycles: 0},
	0x28: {Mnemonic: "PLP", Mode: Implied, Size: 1, Cycles: 4, PageCycles: 0},
	0x29: {Mnemonic: "AND", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0x2A: {Mnemonic: "ROL", Mode: Accumulator, Size: 1, Cycles: 2, PageCycles: 0},
	0x2C: {Mnemonic: "BIT", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x2D: {Mnemonic: "AND", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x2E: {Mnemonic: "ROL", Mode: Absolute, Size: 3, Cycles: 6, PageCycles: 0},
	0x30: {Mnemonic: "BMI", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x31: {Mnemonic: "AND", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0x35: {Mnemonic: "AND", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0x36: {Mnemonic: "ROL", Mode: ZeroPageX, Size: 2, Cycles: 6, PageCycles: 0},
	0x38: {Mnemonic: "SEC", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x39: {Mnemonic: "AND", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0x3D: {Mnemonic: "AND", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x3E: {Mnemonic: "ROL", Mode: AbsoluteX, Size: 3, Cycles: 7, PageCycles: 0},
	0x40: {Mnemonic: "RTI", Mode: Implied, Size: 1, Cycles: 6, PageCycles: 0},
	0x41: {Mnemonic: "EOR", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0x45: {Mnemonic: "EOR", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x46: {Mnemonic: "LSR", Mode: ZeroPage, Size: 2, Cycles: 5, PageCycles: 0},
	0x48: {Mnemonic: "PHA", Mode: Implied, Size: 1, Cycles: 3, PageCycles: 0},
	0x49: {Mnemonic: "EOR", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0x4A: {Mnemonic: "LSR", Mode: Accumulator, Size: 1, Cycles: 2, PageCycles: 0},
	0x4C: {Mnemonic: "JMP", Mode: Absolute, Size: 3, Cycles: 3, PageCycles: 0},
	0x4D: {Mnemonic: "EOR", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x4E: {Mnemonic: "LSR", Mode: Absolute, Size: 3, Cycles: 6, PageCycles: 0},
	0x50: {Mnemonic: "BVC", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x51: {Mnemonic: "EOR", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0x55: {Mnemonic: "EOR", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0x56: {Mnemonic: "LSR", Mode: ZeroPageX, Size: 2, Cycles: 6, PageCycles: 0},
	0x58: {Mnemonic: "CLI", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x59: {Mnemonic: "EOR", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0x5D: {Mnemonic: "EOR", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x5E: {Mnemonic: "LSR", Mode: AbsoluteX, Size: 3, Cycles: 7, PageCycles: 0},
	0x60: {Mnemonic: "RTS", Mode: Implied, Size: 1, Cycles: 6, PageCycles: 0},
	0x61: {Mnemonic: "ADC", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0x65: {Mnemonic: "ADC", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x66: {Mnemonic: "ROR", Mode: ZeroPage, Size: 2, Cycles: 5, PageCycles: 0},
	0x68: {Mnemonic: "PLA", Mode: Implied, Size: 1, Cycles: 4, PageCycles: 0},
	0x69: {Mnemonic: "ADC", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0x6A: {Mnemonic: "ROR", Mode: Accumulator, Size: 1, Cycles: 2, PageCycles: 0},
	0x6C: {Mnemonic: "JMP", Mode: Indirect, Size: 3, Cycles: 5, PageCycles: 0},
	0x6D: {Mnemonic: "ADC", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x6E: {Mnemonic: "ROR", Mode: Absolute, Size: 3, Cycles: 6, PageCycles: 0},
	0x70: {Mnemonic: "BVS", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x71: {Mnemonic: "ADC", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0x75: {Mnemonic: "ADC", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0x76: {Mnemonic: "ROR", Mode: ZeroPageX, Size: 2, Cycles: 6, PageCycles: 0},
	0x78: {Mnemonic: "SEI", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x79: {Mnemonic: "ADC", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0x7D: {Mnemonic: "ADC", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0x7E: {Mnemonic: "ROR", Mode: AbsoluteX, Size: 3, Cycles: 7, PageCycles: 0},
	0x81: {Mnemonic: "STA", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0x84: {Mnemonic: "STY", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x85: {Mnemonic: "STA", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x86: {Mnemonic: "STX", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0x88: {Mnemonic: "DEY", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x8A: {Mnemonic: "TXA", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x8C: {Mnemonic: "STY", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x8D: {Mnemonic: "STA", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x8E: {Mnemonic: "STX", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0x90: {Mnemonic: "BCC", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x91: {Mnemonic: "STA", Mode: IndirectY, Size: 2, Cycles: 6, PageCycles: 0},
	0x94: {Mnemonic: "STY", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0x95: {Mnemonic: "STA", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0x96: {Mnemonic: "STX", Mode: ZeroPageY, Size: 2, Cycles: 4, PageCycles: 0},
	0x98: {Mnemonic: "TYA", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x99: {Mnemonic: "STA", Mode: AbsoluteY, Size: 3, Cycles: 5, PageCycles: 0},
	0x9A: {Mnemonic: "TXS", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0x9D: {Mnemonic: "STA", Mode: AbsoluteX, Size: 3, Cycles: 5, PageCycles: 0},
	0xA0: {Mnemonic: "LDY", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0xA1: {Mnemonic: "LDA", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0xA2: {Mnemonic: "LDX", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0xA4: {Mnemonic: "LDY", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0xA5: {Mnemonic: "LDA", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0xA6: {Mnemonic: "LDX", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0xA8: {Mnemonic: "TAY", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xA9: {Mnemonic: "LDA", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0xAA: {Mnemonic: "TAX", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xAC: {Mnemonic: "LDY", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0xAD: {Mnemonic: "LDA", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0xAE: {Mnemonic: "LDX", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0xB0: {Mnemonic: "BCS", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xB1: {Mnemonic: "LDA", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0xB4: {Mnemonic: "LDY", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0xB5: {Mnemonic: "LDA", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0xB6: {Mnemonic: "LDX", Mode: ZeroPageY, Size: 2, Cycles: 4, PageCycles: 0},
	0xB8: {Mnemonic: "CLV", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xB9: {Mnemonic: "LDA", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0xBA: {Mnemonic: "TSX", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xBC: {Mnemonic: "LDY", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0xBD: {Mnemonic: "LDA", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0xBE: {Mnemonic: "LDX", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0xC0: {Mnemonic: "CPY", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0xC1: {Mnemonic: "CMP", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0xC4: {Mnemonic: "CPY", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0xC5: {Mnemonic: "CMP", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0xC6: {Mnemonic: "DEC", Mode: ZeroPage, Size: 2, Cycles: 5, PageCycles: 0},
	0xC8: {Mnemonic: "INY", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xC9: {Mnemonic: "CMP", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0xCA: {Mnemonic: "DEX", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xCC: {Mnemonic: "CPY", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0xCD: {Mnemonic: "CMP", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0xCE: {Mnemonic: "DEC", Mode: Absolute, Size: 3, Cycles: 6, PageCycles: 0},
	0xD0: {Mnemonic: "BNE", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xD1: {Mnemonic: "CMP", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0xD5: {Mnemonic: "CMP", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0xD6: {Mnemonic: "DEC", Mode: ZeroPageX, Size: 2, Cycles: 6, PageCycles: 0},
	0xD8: {Mnemonic: "CLD", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xD9: {Mnemonic: "CMP", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0xDD: {Mnemonic: "CMP", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0xDE: {Mnemonic: "DEC", Mode: AbsoluteX, Size: 3, Cycles: 7, PageCycles: 0},
	0xE0: {Mnemonic: "CPX", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0xE1: {Mnemonic: "SBC", Mode: IndirectX, Size: 2, Cycles: 6, PageCycles: 0},
	0xE4: {Mnemonic: "CPX", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0xE5: {Mnemonic: "SBC", Mode: ZeroPage, Size: 2, Cycles: 3, PageCycles: 0},
	0xE6: {Mnemonic: "INC", Mode: ZeroPage, Size: 2, Cycles: 5, PageCycles: 0},
	0xE8: {Mnemonic: "INX", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xE9: {Mnemonic: "SBC", Mode: Immediate, Size: 2, Cycles: 2, PageCycles: 0},
	0xEA: {Mnemonic: "NOP", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xEC: {Mnemonic: "CPX", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0xED: {Mnemonic: "SBC", Mode: Absolute, Size: 3, Cycles: 4, PageCycles: 0},
	0xEE: {Mnemonic: "INC", Mode: Absolute, Size: 3, Cycles: 6, PageCycles: 0},
	0xF0: {Mnemonic: "BEQ", Mode: Relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xF1: {Mnemonic: "SBC", Mode: IndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	0xF5: {Mnemonic: "SBC", Mode: ZeroPageX, Size: 2, Cycles: 4, PageCycles: 0},
	0xF6: {Mnemonic: "INC", Mode: ZeroPageX, Size: 2, Cycles: 6, PageCycles: 0},
	0xF8: {Mnemonic: "SED", Mode: Implied, Size: 1, Cycles: 2, PageCycles: 0},
	0xF9: {Mnemonic: "SBC", Mode: AbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	0xFD: {Mnemonic: "SBC", Mode: AbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	0xFE: {Mnemonic: "INC", Mode: AbsoluteX, Size: 3, Cycles: 7, PageCycles: 0},
}

// addressingFormats renders an operand for the human-readable disassembly
// trace, mirroring the asm6-style operand syntax.
var addressingFormats = map[AddressingMode]string{
	Immediate:   "#$%02X",
	Absolute:    "$%04X",
	ZeroPage:    "$%02X",
	Implied:     "",
	Indirect:    "($%04X)",
	AbsoluteX:   "$%04X,X",
	AbsoluteY:   "$%04X,Y",
	ZeroPageX:   "$%02X,X",
	ZeroPageY:   "$%02X,Y",
	IndirectX:   "($%02X,X)",
	IndirectY:   "($%02X),Y",
	Relative:    "$%04X",
	Accumulator: "A",
}
