package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ping/common"
	"github.com/milk9111/ping/physics"
	"github.com/milk9111/ping/system"
)

// velocityScale turns a velocity into an arrow length in pixels.
const velocityScale = 0.1

// DebugOverlay mirrors the arena into a chipmunk space so cp.DrawSpace can
// outline every body. The space is only drawn, never stepped.
type DebugOverlay struct {
	space      *cp.Space
	bodies     []*cp.Body
	shapes     map[*cp.Shape]physics.Handle
	views      []physics.BodyView
	generation int
}

func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{generation: -1}
}

func (o *DebugOverlay) Draw(screen *ebiten.Image, w *system.World) {
	if o == nil || w == nil || w.Arena == nil || screen == nil {
		return
	}
	o.sync(w)

	drawer := &debugDrawer{screen: screen, overlay: o}
	cp.DrawSpace(o.space, drawer)

	for _, v := range o.views {
		if v.Motion != physics.MotionFree {
			continue
		}
		speed := math.Hypot(v.VX, v.VY)
		t := math.Min(speed/physics.MaxInitialSpeed, 1)
		c := color.NRGBA{R: uint8(common.Lerp(60, 255, t)), G: uint8(common.Lerp(200, 60, t)), B: 60, A: 255}
		vector.StrokeLine(screen,
			float32(v.CenterX), float32(v.CenterY),
			float32(v.CenterX+v.VX*velocityScale), float32(v.CenterY+v.VY*velocityScale),
			1, c, true)
	}

	stats := w.Arena.Stats()
	hud := fmt.Sprintf("%s  seed %d  frame %d  TPS %.1f\nbodies %d  bounces %d (%d this step)\nenergy %.4g  momentum (%.4g, %.4g)  angular %.4g",
		w.Spec.Name, w.Seed, w.Frame, ebiten.ActualTPS(),
		w.Arena.Len(), w.Bounces, w.Arena.LastBounces(),
		stats.KineticEnergy, stats.Momentum.X, stats.Momentum.Y, stats.AngularMomentum)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)
}

// sync rebuilds the space for a new arena, then moves each mirror body to
// its current view.
func (o *DebugOverlay) sync(w *system.World) {
	if o.generation != w.Generation || o.space == nil {
		o.space = cp.NewSpace()
		o.bodies = o.bodies[:0]
		o.shapes = make(map[*cp.Shape]physics.Handle, w.Arena.Len())
		for i, v := range w.Arena.Views() {
			body := o.space.AddBody(cp.NewKinematicBody())
			shape := o.space.AddShape(cp.NewCircle(body, v.Radius, cp.Vector{}))
			o.bodies = append(o.bodies, body)
			o.shapes[shape] = physics.Handle(i)
		}
		o.generation = w.Generation
	}

	o.views = w.Arena.Views()
	for i, v := range o.views {
		o.bodies[i].SetPosition(cp.Vector{X: v.CenterX, Y: v.CenterY})
		o.bodies[i].SetAngle(common.Radians(v.Angle))
		o.space.ReindexShapesForBody(o.bodies[i])
	}
}

func (o *DebugOverlay) view(shape *cp.Shape) (physics.BodyView, bool) {
	h, ok := o.shapes[shape]
	if !ok || int(h) >= len(o.views) {
		return physics.BodyView{}, false
	}
	return o.views[h], true
}

type debugDrawer struct {
	screen  *ebiten.Image
	overlay *DebugOverlay
}

func (d *debugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	vector.StrokeCircle(d.screen, float32(pos.X), float32(pos.Y), float32(radius), 1, c, true)
	ax := pos.X + math.Cos(angle)*radius
	ay := pos.Y + math.Sin(angle)*radius
	vector.StrokeLine(d.screen, float32(pos.X), float32(pos.Y), float32(ax), float32(ay), 1, c, true)
}

func (d *debugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, fcolorToRGBA(fill))
}

func (d *debugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, fcolorToRGBA(outline))
}

func (d *debugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		a, b := verts[i], verts[(i+1)%count]
		ebitenutil.DrawLine(d.screen, a.X, a.Y, b.X, b.Y, c)
	}
}

func (d *debugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	vector.DrawFilledCircle(d.screen, float32(pos.X), float32(pos.Y), float32(size/2), fcolorToRGBA(fill), true)
}

func (d *debugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *debugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

// ShapeColor marks bodies that bounced this step red and kinematic fixtures
// blue.
func (d *debugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	v, ok := d.overlay.view(shape)
	switch {
	case !ok:
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	case v.Bounced:
		return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
	case v.Motion != physics.MotionFree:
		return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	}
	return cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
}

func (d *debugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *debugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *debugDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
