// Command nes8bench runs a console for a fixed instruction budget under the
// CPU profiler and prints a summary of the resulting profile.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/google/pprof/profile"

	"github.com/duskline/nes8/ines"
	"github.com/duskline/nes8/nes"
)

type game struct {
	cart *ines.Cartridge
}

func (g *game) ProgramROM() []byte   { return g.cart.ProgramROM() }
func (g *game) CharacterROM() []byte { return g.cart.CharacterROM() }

func loadRom(path string) (*ines.Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open rom: %s", err)
	}
	defer f.Close()

	return ines.Load(f)
}

func run(romPath string, steps int, profilePath string) error {
	cart, err := loadRom(romPath)
	if err != nil {
		return err
	}
	console := nes.NewConsole(&game{cart: cart})

	profFile, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("could not create cpu profile: %s", err)
	}
	defer profFile.Close()

	if err := pprof.StartCPUProfile(profFile); err != nil {
		return fmt.Errorf("could not start cpu profile: %s", err)
	}

	runErr := console.RunSteps(steps)
	pprof.StopCPUProfile()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "console halted after %s\n", runErr)
	}

	return summarize(profilePath)
}

// summarize reopens the profile nes8bench just wrote and prints its
// sample/duration totals, exercising google/pprof's profile decoder rather
// than taking runtime/pprof's output on faith.
func summarize(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not reopen cpu profile: %s", err)
	}
	defer f.Close()

	p, err := profile.Parse(f)
	if err != nil {
		return fmt.Errorf("could not parse cpu profile: %s", err)
	}

	var totalSamples int64
	for _, s := range p.Sample {
		if len(s.Value) > 0 {
			totalSamples += s.Value[0]
		}
	}

	fmt.Printf("profile: %d samples across %d locations, duration %s\n",
		totalSamples, len(p.Location), time.Duration(p.DurationNanos))
	return nil
}

func main() {
	steps := flag.Int("steps", 1_000_000, "number of CPU steps to run")
	cpuprofile := flag.String("cpuprofile", "nes8.prof", "write cpu profile to file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nes8bench [-steps N] [-cpuprofile path] <rom.nes>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *steps, *cpuprofile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
