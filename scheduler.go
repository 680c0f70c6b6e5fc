package galaxia

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameScheduler is the real-time loop. It implements [ebiten.Game]: each
// Update advances every galaxy instance by one fixed tick, compacts out
// disposed instances, and applies camera damping; each Draw issues one
// render call.
//
// Time inside the simulation is a float64 seconds clock accumulated from
// fixed ticks, never wall-clock time, so the state machine behaves the
// same under test as in the loop.
type FrameScheduler struct {
	universe *Universe
	camera   *OrbitCamera
	renderer *Renderer
	now      float64
}

// NewFrameScheduler wires a universe, its camera, and a renderer into a
// runnable game loop.
func NewFrameScheduler(universe *Universe, camera *OrbitCamera, renderer *Renderer) *FrameScheduler {
	return &FrameScheduler{
		universe: universe,
		camera:   camera,
		renderer: renderer,
	}
}

// Now returns the accumulated simulation time in seconds.
func (s *FrameScheduler) Now() float64 {
	return s.now
}

// Universe returns the scheduled universe.
func (s *FrameScheduler) Universe() *Universe {
	return s.universe
}

// Tick advances the simulation to time now by dt seconds: every instance
// updates (rotation then disintegration, no skips, no reordering), the
// collection is compacted, then camera damping advances. Exposed so tests
// and headless callers can drive the loop without ebiten.
func (s *FrameScheduler) Tick(now, dt float64) {
	s.now = now
	s.universe.Advance(now, dt, s.camera.Position())
	s.camera.Update(dt)
}

// Update implements ebiten.Game with a fixed dt of one tick.
func (s *FrameScheduler) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.Tick(s.now+dt, dt)
	return nil
}

// Draw implements ebiten.Game.
func (s *FrameScheduler) Draw(screen *ebiten.Image) {
	s.renderer.Render(s.universe.Scene(), s.camera, screen)
}

// Layout implements ebiten.Game; it doubles as the resize notification and
// keeps the camera projection in step with the viewport.
func (s *FrameScheduler) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideHeight > 0 {
		s.camera.SetAspect(float64(outsideWidth) / float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
