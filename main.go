package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ping/common"
	"github.com/milk9111/ping/prefabs"
	"github.com/milk9111/ping/system"
)

func main() {
	configFile := flag.String("config", "", "arena prefab in prefabs/ (default arena.yaml)")
	scenario := flag.String("scenario", "", "scenario script in prefabs/scripts/ (basename, .tengo optional)")
	seed := flag.Uint64("seed", 0, "random seed; 0 uses the config seed, then the clock")
	images := flag.String("images", "", "comma separated png or bmp files drawn for the bodies")
	debug := flag.Bool("debug", false, "start with the debug overlay")
	watch := flag.Bool("watch", false, "rebuild the arena when prefab files change")
	list := flag.Bool("list", false, "list the embedded scenarios and exit")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *list {
		for _, name := range prefabs.Scenarios() {
			fmt.Println(name)
		}
		return
	}

	world, err := system.NewWorld(system.Options{
		ConfigFile: *configFile,
		Scenario:   *scenario,
		Seed:       *seed,
		Images:     splitList(*images),
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("arena %q: %d bodies, seed %d", world.Spec.Name, world.Arena.Len(), world.Seed)

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.WatchPrefabs()
		if err != nil {
			log.Printf("watch prefabs: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(world.Arena.Width(), world.Arena.Height())
	ebiten.SetWindowTitle("ping")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(world, watcher, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
