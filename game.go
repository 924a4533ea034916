package main

import (
	"image/color"
	"log"
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/ping/common"
	"github.com/milk9111/ping/prefabs"
	"github.com/milk9111/ping/render"
	"github.com/milk9111/ping/system"
	"golang.design/x/clipboard"
)

const sampleRate = 44100

type Game struct {
	world     *system.World
	scheduler *system.Scheduler
	input     *Input
	pauseUI   *ebitenui.UI
	overlay   *DebugOverlay

	images     *render.ImageSet
	background color.Color
	generation int

	debug     bool
	clipboard bool
	quit      bool
}

func NewGame(world *system.World, watcher *prefabs.Watcher, debug bool) (*Game, error) {
	g := &Game{
		world:   world,
		input:   NewInput(),
		overlay: NewDebugOverlay(),
		debug:   debug,
	}
	if err := g.syncImages(); err != nil {
		return nil, err
	}

	cue := system.NewClickCue(audio.NewContext(sampleRate), 880, 0.4)
	g.scheduler = system.NewScheduler(
		system.NewReloadSystem(watcher),
		system.NewPhysicsSystem(),
		system.NewAudioSystem(cue),
	)
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}
	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.QuitPressed || g.quit {
		return ebiten.Termination
	}
	if g.input.PausePressed {
		g.world.Paused = !g.world.Paused
	}
	if g.input.ReseedPressed {
		g.reseed()
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.CopySeedPressed {
		g.copySeed()
	}

	if g.world.Paused {
		g.pauseUI.Update()
	}
	g.scheduler.Update(g.world)

	if g.generation != g.world.Generation {
		if err := g.syncImages(); err != nil {
			log.Printf("images for %q: %v", g.world.Spec.Name, err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	for _, v := range g.world.Arena.Views() {
		img := g.images.Image(v.Image)
		if img == nil || v.Diameter == 0 {
			continue
		}
		b := img.Bounds()
		w, h := float64(b.Dx()), float64(b.Dy())
		d := float64(v.Diameter)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(d/w, d/h)
		op.GeoM.Rotate(common.Radians(v.Angle))
		op.GeoM.Translate(float64(v.X)+d/2, float64(v.Y)+d/2)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	if g.debug {
		g.overlay.Draw(screen, g.world)
	}
	if g.world.Paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Arena.Width(), g.world.Arena.Height()
}

func (g *Game) reseed() {
	if err := g.world.Reseed(); err != nil {
		log.Printf("reseed: %v", err)
		return
	}
	log.Printf("reseeded %q with %d", g.world.Spec.Name, g.world.Seed)
}

func (g *Game) copySeed() {
	if !g.clipboard {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(strconv.FormatUint(g.world.Seed, 10)))
	log.Printf("copied seed %d", g.world.Seed)
}

// syncImages rebuilds the image set after the arena spec changed. The old
// set stays when the new one cannot be built, padded with discs for any
// index it lacks.
func (g *Game) syncImages() error {
	spec := g.world.Spec
	g.generation = g.world.Generation

	palette := make([]color.Color, 0, len(spec.Palette))
	for _, c := range spec.Palette {
		palette = append(palette, c.Color)
	}
	g.background = color.White
	if spec.Background != nil {
		g.background = spec.Background.Color
	}

	render.ForgetImages()
	images, err := render.NewImageSet(spec.Images, spec.ImageTotal(), palette)
	if err != nil {
		if g.images == nil {
			return err
		}
		if added := g.images.Pad(spec.ImageTotal(), palette); added > 0 {
			log.Printf("images for %q: kept %d old images, drawing discs for indices %d to %d",
				spec.Name, g.images.Len()-added, g.images.Len()-added, g.images.Len()-1)
		}
		return err
	}
	g.images = images
	return nil
}
