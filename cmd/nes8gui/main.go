// Command nes8gui opens an SDL2 window and steps a console against it.
//
// It does not implement the PPU's pixel rasterizer: every step batch paints
// the window black. Its job is to prove that Step/RunSteps can run behind a
// real display surface and event loop, not to render a picture.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/duskline/nes8/ines"
	"github.com/duskline/nes8/nes"
)

const (
	screenWidth  = 256
	screenHeight = 240
	zoom         = 3

	stepsPerFrame = 1000
)

func init() {
	runtime.LockOSThread()
}

type game struct {
	cart *ines.Cartridge
}

func (g *game) ProgramROM() []byte   { return g.cart.ProgramROM() }
func (g *game) CharacterROM() []byte { return g.cart.CharacterROM() }

func run(console *nes.Console) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"nes8gui",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		screenWidth*zoom, screenHeight*zoom,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("unable to create window: %s", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("unable to create renderer: %s", err)
	}
	defer renderer.Destroy()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			}
		}
		if !running {
			break
		}

		if err := console.RunSteps(stepsPerFrame); err != nil {
			return fmt.Errorf("console halted: %s", err)
		}

		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.Clear()
		renderer.Present()

		<-ticker.C
	}

	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: nes8gui <rom.nes>")
		os.Exit(2)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open rom: %s\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cart, err := ines.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load rom: %s\n", err)
		os.Exit(1)
	}

	console := nes.NewConsole(&game{cart: cart})

	if err := run(console); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
