package system

import (
	"fmt"
	"time"

	"github.com/milk9111/ping/physics"
	"github.com/milk9111/ping/prefabs"
)

// Options names where a world loads its arena from.
type Options struct {
	// ConfigFile is a prefab yaml name; empty means the default arena.
	ConfigFile string
	// Scenario is a tengo script applied on top of the config.
	Scenario string
	// Seed fixes the random source; zero defers to the config, then the clock.
	Seed uint64
	// Images replaces the image files listed by the config.
	Images []string
}

// World holds the active arena and the spec it was built from.
type World struct {
	Arena *physics.Arena
	Spec  *prefabs.ArenaSpec
	Seed  uint64

	Paused bool
	Frame  uint64
	// Bounces counts pair bounces since the arena was built.
	Bounces int
	// Generation increases every time the arena is replaced.
	Generation int

	opts Options
	// NextSeed picks the seed for Reseed.
	NextSeed func() uint64
}

// NewWorld loads the spec named by opts and builds its arena.
func NewWorld(opts Options) (*World, error) {
	w := &World{opts: opts, NextSeed: clockSeed}
	spec, err := LoadSpec(opts)
	if err != nil {
		return nil, err
	}
	seed := pickSeed(opts.Seed, spec.Seed)
	if err := w.build(spec, seed); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadSpec reads the arena spec and applies the scenario, if any.
func LoadSpec(opts Options) (*prefabs.ArenaSpec, error) {
	spec, err := prefabs.LoadArenaSpec(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.Scenario != "" {
		spec, err = prefabs.LoadScenario(opts.Scenario, spec)
		if err != nil {
			return nil, err
		}
	}
	if len(opts.Images) > 0 {
		spec.Images = opts.Images
	}
	return spec, nil
}

// Reload reads the spec again and rebuilds with the current seed. On error
// the previous arena stays active.
func (w *World) Reload() error {
	spec, err := LoadSpec(w.opts)
	if err != nil {
		return err
	}
	return w.build(spec, w.Seed)
}

// Reseed rebuilds the current spec with a fresh seed.
func (w *World) Reseed() error {
	return w.build(w.Spec, w.NextSeed())
}

func (w *World) build(spec *prefabs.ArenaSpec, seed uint64) error {
	if spec == nil {
		return fmt.Errorf("system: no arena spec")
	}
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	arena, err := physics.NewArena(cfg, physics.NewRand(seed))
	if err != nil {
		return fmt.Errorf("system: build arena %q with seed %d: %w", spec.Name, seed, err)
	}
	w.Arena = arena
	w.Spec = spec
	w.Seed = seed
	w.Frame = 0
	w.Bounces = 0
	w.Generation++
	return nil
}

func pickSeed(flagSeed, specSeed uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if specSeed != 0 {
		return specSeed
	}
	return clockSeed()
}

func clockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
