package system

import (
	"log"

	"github.com/milk9111/ping/prefabs"
)

// ReloadSystem rebuilds the world when a prefab changes on disk.
type ReloadSystem struct {
	changes <-chan prefabs.Change
	errs    <-chan error
}

func NewReloadSystem(w *prefabs.Watcher) *ReloadSystem {
	if w == nil {
		return nil
	}
	return &ReloadSystem{changes: w.Events, errs: w.Errors}
}

func (rs *ReloadSystem) Update(w *World) {
	if rs == nil || w == nil {
		return
	}

	changed := ""
drain:
	for {
		select {
		case c, ok := <-rs.changes:
			if !ok {
				rs.changes = nil
				continue
			}
			changed = c.Path
		case err, ok := <-rs.errs:
			if !ok {
				rs.errs = nil
				continue
			}
			log.Printf("prefab watcher: %v", err)
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}

	if err := w.Reload(); err != nil {
		log.Printf("reload after %s failed, keeping the current arena: %v", changed, err)
		return
	}
	log.Printf("reloaded %q after %s (seed %d, %d bodies)", w.Spec.Name, changed, w.Seed, w.Arena.Len())
}
