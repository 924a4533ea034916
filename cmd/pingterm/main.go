// Command pingterm runs the arena in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/milk9111/ping/prefabs"
	"github.com/milk9111/ping/system"
)

func main() {
	configFile := flag.String("config", "", "arena prefab in prefabs/ (default arena.yaml)")
	scenario := flag.String("scenario", "", "scenario script in prefabs/scripts/ (basename, .tengo optional)")
	seed := flag.Uint64("seed", 0, "random seed; 0 uses the config seed, then the clock")
	watch := flag.Bool("watch", false, "rebuild the arena when prefab files change")
	mute := flag.Bool("mute", false, "disable bounce tones")
	logFile := flag.String("log", "", "write log output to this file")
	flag.Parse()

	world, err := system.NewWorld(system.Options{
		ConfigFile: *configFile,
		Scenario:   *scenario,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	// The screen owns the terminal, so logs go to a file or nowhere.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.WatchPrefabs()
		if err != nil {
			log.Printf("watch prefabs: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	var cue system.Cue
	if !*mute {
		tone, err := NewTone(880)
		if err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer tone.Close()
			cue = tone
		}
	}

	term, err := NewTerminal(world, system.NewScheduler(
		system.NewReloadSystem(watcher),
		system.NewPhysicsSystem(),
		system.NewAudioSystem(cue),
	))
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	term.Run()
	term.Close()
}
