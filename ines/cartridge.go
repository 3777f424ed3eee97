// Package ines parses the iNES cartridge file format into the program
// and character ROM images the nes core consumes. It is external to the
// core: the core accepts anything satisfying nes.Game, and never reads a
// file itself.
package ines

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

const (
	trainerLen = 512
	prgBankLen = 16 * 1024
	chrBankLen = 8 * 1024

	programROMSize   = 32 * 1024
	characterROMSize = 8 * 1024
)

const (
	rc1MirrorVertical = 1 << iota
	rc1SaveRAM
	rc1Trainer
	rc1FourScreen
)

var magic = [4]byte{'N', 'E', 'S', 0x1A}

// MirrorMode describes the cartridge's nametable mirroring wiring. The
// core does not consult it; it is surfaced for diagnostic front-ends.
type MirrorMode int

const (
	Horizontal MirrorMode = iota
	Vertical
	FourScreen
)

// Cartridge is a parsed iNES ROM image. It implements nes.Game.
type Cartridge struct {
	Mapper     byte
	Mirror     MirrorMode
	BatteryRAM bool

	prg []byte
	chr []byte
}

// ProgramROM returns the cartridge's PRG-ROM, zero-padded or truncated by
// Load to the 32 KiB the core requires.
func (c *Cartridge) ProgramROM() []byte { return c.prg }

// CharacterROM returns the cartridge's CHR-ROM, zero-padded or truncated
// by Load to the 8 KiB the core requires.
func (c *Cartridge) CharacterROM() []byte { return c.chr }

type header struct {
	Magic      [4]byte
	PRGBanks   byte
	CHRBanks   byte
	Control1   byte
	Control2   byte
	PRGRAMSize byte
	_          [7]byte
}

// Load parses an iNES image from r. It rejects files whose header magic
// is not "NES\x1A", then reads PRG-ROM and (if present) CHR-ROM verbatim;
// a cartridge with no CHR banks gets a zeroed 8 KiB CHR-RAM image instead.
// Both images are then zero-padded or truncated to the fixed 32 KiB and
// 8 KiB sizes the core maps.
func Load(r io.Reader) (*Cartridge, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "ines: reading header")
	}

	if !bytes.Equal(h.Magic[:], magic[:]) {
		return nil, errors.Errorf("ines: invalid magic %v, want %v", h.Magic, magic)
	}

	if h.Control1&rc1Trainer != 0 {
		if _, err := io.CopyN(ioutil.Discard, r, trainerLen); err != nil {
			return nil, errors.Wrap(err, "ines: reading trainer")
		}
	}

	prg := make([]byte, int(h.PRGBanks)*prgBankLen)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, errors.Wrap(err, "ines: reading PRG-ROM")
	}

	var chr []byte
	if h.CHRBanks == 0 {
		chr = make([]byte, chrBankLen)
	} else {
		chr = make([]byte, int(h.CHRBanks)*chrBankLen)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, errors.Wrap(err, "ines: reading CHR-ROM")
		}
	}

	if len(prg) != programROMSize {
		fitted := make([]byte, programROMSize)
		copy(fitted, prg)
		prg = fitted
	}
	if len(chr) != characterROMSize {
		fitted := make([]byte, characterROMSize)
		copy(fitted, chr)
		chr = fitted
	}

	mirror := Horizontal
	if h.Control1&rc1MirrorVertical != 0 {
		mirror = Vertical
	}
	if h.Control1&rc1FourScreen != 0 {
		mirror = FourScreen
	}

	return &Cartridge{
		Mapper:     h.Control1>>4 | h.Control2&0xF0,
		Mirror:     mirror,
		BatteryRAM: h.Control1&rc1SaveRAM != 0,
		prg:        prg,
		chr:        chr,
	}, nil
}

// LoadFile opens path and parses it as an iNES image.
func LoadFile(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ines: opening %s", path)
	}
	defer f.Close()

	cart, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "ines: parsing %s", path)
	}

	return cart, nil
}
