// Command nes8patterndump decodes a cartridge's CHR-ROM pattern tables into
// a PNG tile sheet, for inspecting tile data without a running PPU rasterizer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/duskline/nes8/ines"
)

const (
	tileSize     = 8
	tileBytes    = 16 // two 8-byte bitplanes per tile
	tilesPerRow  = 16
	defaultScale = 4
)

// grayRamp maps a tile's 2-bit pixel value to a visible shade; pattern ROM
// carries indices into palette RAM, not color, so this is a debug rendering
// only.
var grayRamp = [4]color.Gray{
	{Y: 0x00},
	{Y: 0x55},
	{Y: 0xAA},
	{Y: 0xFF},
}

func decodeTile(chr []byte, tileIdx int) [tileSize][tileSize]byte {
	var px [tileSize][tileSize]byte
	base := tileIdx * tileBytes
	for row := 0; row < tileSize; row++ {
		lo := chr[base+row]
		hi := chr[base+row+tileSize]
		for col := 0; col < tileSize; col++ {
			bit := uint(7 - col)
			loBit := (lo >> bit) & 1
			hiBit := (hi >> bit) & 1
			px[row][col] = loBit | hiBit<<1
		}
	}
	return px
}

// sheet renders every tile in chr into a single grayscale image, tilesPerRow
// tiles wide.
func sheet(chr []byte) *image.Gray {
	tileCount := len(chr) / tileBytes
	rows := (tileCount + tilesPerRow - 1) / tilesPerRow

	img := image.NewGray(image.Rect(0, 0, tilesPerRow*tileSize, rows*tileSize))
	for t := 0; t < tileCount; t++ {
		px := decodeTile(chr, t)
		ox := (t % tilesPerRow) * tileSize
		oy := (t / tilesPerRow) * tileSize
		for row := 0; row < tileSize; row++ {
			for col := 0; col < tileSize; col++ {
				img.SetGray(ox+col, oy+row, grayRamp[px[row][col]])
			}
		}
	}
	return img
}

func run(romPath, outPath string, scale int) error {
	f, err := os.Open(romPath)
	if err != nil {
		return fmt.Errorf("unable to open rom: %s", err)
	}
	defer f.Close()

	cart, err := ines.Load(f)
	if err != nil {
		return fmt.Errorf("unable to load rom: %s", err)
	}

	src := sheet(cart.CharacterROM())

	dstBounds := image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale)
	dst := image.NewGray(dstBounds)
	draw.NearestNeighbor.Scale(dst, dstBounds, src, src.Bounds(), draw.Over, nil)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("unable to create output file: %s", err)
	}
	defer out.Close()

	return png.Encode(out, dst)
}

func main() {
	out := flag.String("o", "patterns.png", "output PNG path")
	scale := flag.Int("scale", defaultScale, "nearest-neighbor upscale factor")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nes8patterndump [-o path] [-scale N] <rom.nes>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *out, *scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
