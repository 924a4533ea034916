package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/ping/common"
	"github.com/milk9111/ping/physics"
	"github.com/milk9111/ping/system"
)

var bodyColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorPurple,
	tcell.ColorTeal,
}

// Terminal draws the world into a tcell screen, one rune per body.
type Terminal struct {
	screen    tcell.Screen
	world     *system.World
	scheduler *system.Scheduler
}

func NewTerminal(world *system.World, scheduler *system.Scheduler) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return &Terminal{screen: screen, world: world, scheduler: scheduler}, nil
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run steps and draws at the tick rate until the user quits.
func (t *Terminal) Run() {
	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.scheduler.Update(t.world)
			t.draw()
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'c':
				if ev.Modifiers()&tcell.ModCtrl != 0 {
					return false
				}
			case 'r':
				if err := t.world.Reseed(); err != nil {
					log.Printf("reseed: %v", err)
				}
			case ' ':
				t.world.Paused = !t.world.Paused
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	field := rows - 1
	if cols < 1 || field < 1 {
		t.screen.Show()
		return
	}

	a := t.world.Arena
	for _, v := range a.Views() {
		x, y := cellFor(v, a.Width(), a.Height(), cols, field)
		t.screen.SetContent(x, y, bodyRune(v), nil, bodyStyle(v))
	}

	status := fmt.Sprintf(" %s  seed %d  frame %d  bounces %d ", t.world.Spec.Name, t.world.Seed, t.world.Frame, t.world.Bounces)
	if t.world.Paused {
		status += "[paused] "
	}
	status += " q quit  r reseed  space pause"
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(status) {
		if i >= cols {
			break
		}
		t.screen.SetContent(i, rows-1, r, nil, style)
	}
	t.screen.Show()
}

// cellFor maps a body center in a width x height arena onto a cols x rows grid.
func cellFor(v physics.BodyView, width, height, cols, rows int) (int, int) {
	x := int(v.CenterX / float64(width) * float64(cols))
	y := int(v.CenterY / float64(height) * float64(rows))
	return clampCell(x, cols), clampCell(y, rows)
}

func clampCell(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func bodyRune(v physics.BodyView) rune {
	switch v.Motion {
	case physics.MotionPatrol:
		return '@'
	case physics.MotionSpinner:
		return '*'
	}
	if v.Diameter >= 40 {
		return 'O'
	}
	return 'o'
}

func bodyStyle(v physics.BodyView) tcell.Style {
	c := bodyColors[v.Image%len(bodyColors)]
	style := tcell.StyleDefault.Foreground(c)
	if v.Bounced {
		style = style.Bold(true).Reverse(true)
	}
	return style
}
