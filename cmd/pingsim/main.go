// Command pingsim steps an arena without a display and prints periodic
// conservation samples as yaml.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/milk9111/ping/system"
	"gopkg.in/yaml.v3"
)

// Sample is one line of simulation output.
type Sample struct {
	Frame           uint64  `yaml:"frame"`
	Time            float64 `yaml:"time"`
	Bounces         int     `yaml:"bounces"`
	KineticEnergy   float64 `yaml:"kinetic_energy"`
	MomentumX       float64 `yaml:"momentum_x"`
	MomentumY       float64 `yaml:"momentum_y"`
	AngularMomentum float64 `yaml:"angular_momentum"`
}

// Report is the whole yaml document pingsim writes.
type Report struct {
	Arena   string   `yaml:"arena"`
	Seed    uint64   `yaml:"seed"`
	Bodies  int      `yaml:"bodies"`
	Step    float64  `yaml:"step"`
	Samples []Sample `yaml:"samples"`
}

type options struct {
	world      system.Options
	frames     int
	every      int
	cpuProfile string
}

func main() {
	configFile := flag.String("config", "", "arena prefab in prefabs/ (default arena.yaml)")
	scenario := flag.String("scenario", "", "scenario script in prefabs/scripts/ (basename, .tengo optional)")
	seed := flag.Uint64("seed", 0, "random seed; 0 uses the config seed, then the clock")
	frames := flag.Int("frames", 6000, "number of steps to run")
	every := flag.Int("every", 600, "steps between samples")
	cpuProfile := flag.String("cpuprofile", "", "write a cpu profile to this file")
	quiet := flag.Bool("quiet", false, "suppress log output")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	err := run(os.Stdout, options{
		world: system.Options{
			ConfigFile: *configFile,
			Scenario:   *scenario,
			Seed:       *seed,
		},
		frames:     *frames,
		every:      *every,
		cpuProfile: *cpuProfile,
	})
	if err != nil {
		log.Fatal(err)
	}
}

// run builds the world, steps it and writes the report to out. The cpu
// profile, if any, is stopped and closed before run returns.
func run(out io.Writer, opts options) error {
	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	world, err := system.NewWorld(opts.world)
	if err != nil {
		return err
	}
	log.Printf("running %q for %d frames (seed %d)", world.Spec.Name, opts.frames, world.Seed)

	report := Run(world, opts.frames, opts.every)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

// Run steps the world frames times and samples it every n steps, plus once
// before the first step.
func Run(w *system.World, frames, n int) Report {
	if n < 1 {
		n = 1
	}
	report := Report{
		Arena:  w.Spec.Name,
		Seed:   w.Seed,
		Bodies: w.Arena.Len(),
		Step:   w.Arena.StepSize(),
	}
	physics := system.NewPhysicsSystem()

	report.Samples = append(report.Samples, sample(w))
	for i := 1; i <= frames; i++ {
		physics.Update(w)
		if i%n == 0 {
			report.Samples = append(report.Samples, sample(w))
		}
	}
	return report
}

func sample(w *system.World) Sample {
	stats := w.Arena.Stats()
	return Sample{
		Frame:           w.Frame,
		Time:            float64(w.Frame) * w.Arena.StepSize(),
		Bounces:         w.Bounces,
		KineticEnergy:   stats.KineticEnergy,
		MomentumX:       stats.Momentum.X,
		MomentumY:       stats.Momentum.Y,
		AngularMomentum: stats.AngularMomentum,
	}
}
