package galaxia

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// elevationLimit keeps the camera off the poles so LookAtV never degenerates.
const elevationLimit = math.Pi/2 - 0.05

// OrbitCamera orbits a target point at a spherical offset given by azimuth,
// elevation, and distance. Orbit and zoom input accumulate as velocities
// that decay each tick, giving the damped glide feel of typical
// orbit-control libraries.
type OrbitCamera struct {
	// Target is the world point the camera looks at.
	Target mgl64.Vec3
	// Azimuth is the horizontal orbit angle in radians.
	Azimuth float64
	// Elevation is the vertical orbit angle in radians, clamped short of
	// the poles.
	Elevation float64
	// Distance is the orbit radius, clamped to [MinDistance, MaxDistance].
	Distance float64

	// Fov is the vertical field of view in radians.
	Fov float64
	// Near and Far are the projection clip planes.
	Near, Far float64

	// MinDistance and MaxDistance bound Distance.
	MinDistance, MaxDistance float64

	// Damping is the per-second exponential decay rate of orbit and zoom
	// velocity. Higher stops faster.
	Damping float64

	aspect                float64
	azVel, elVel, distVel float64
	zoomTween             *gween.Tween
}

// NewOrbitCamera creates a camera with sensible defaults for a universe of
// the given spread: positioned at 1.5x spread, far plane past the starfield
// shell.
func NewOrbitCamera(spread float64) *OrbitCamera {
	c := &OrbitCamera{
		Azimuth:     0.6,
		Elevation:   0.35,
		Distance:    spread * 1.5,
		Fov:         60 * math.Pi / 180,
		Near:        0.1,
		MinDistance: 1,
		Damping:     6,
		aspect:      16.0 / 9.0,
	}
	c.SetFar(spread * starfieldShellMult * 2)
	c.SetMaxDistance(spread * 3)
	return c
}

// Position returns the camera's world position.
func (c *OrbitCamera) Position() mgl64.Vec3 {
	cosEl := math.Cos(c.Elevation)
	return c.Target.Add(mgl64.Vec3{
		c.Distance * cosEl * math.Cos(c.Azimuth),
		c.Distance * math.Sin(c.Elevation),
		c.Distance * cosEl * math.Sin(c.Azimuth),
	})
}

// SetAspect sets the viewport aspect ratio (width / height).
func (c *OrbitCamera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.aspect = aspect
	}
}

// SetFar sets the projection far plane.
func (c *OrbitCamera) SetFar(far float64) {
	c.Far = far
}

// SetMaxDistance sets the orbit distance ceiling and clamps the current
// distance to it.
func (c *OrbitCamera) SetMaxDistance(d float64) {
	c.MaxDistance = d
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// AddOrbitDelta feeds orbit input. The deltas are added to the damped
// orbit velocity, in radians per second.
func (c *OrbitCamera) AddOrbitDelta(dAzimuth, dElevation float64) {
	c.azVel += dAzimuth
	c.elVel += dElevation
}

// AddZoomDelta feeds zoom input, in world units per second. Positive moves
// the camera away from the target.
func (c *OrbitCamera) AddZoomDelta(d float64) {
	c.distVel += d
}

// ZoomTo animates Distance to the given value over duration seconds,
// cancelling any direct zoom velocity.
func (c *OrbitCamera) ZoomTo(distance float64, duration float32, fn ease.TweenFunc) {
	distance = clamp(distance, c.MinDistance, c.MaxDistance)
	c.distVel = 0
	c.zoomTween = gween.New(float32(c.Distance), float32(distance), duration, fn)
}

// Update advances damping and any active zoom tween by dt seconds. Called
// once per scheduler tick, after every instance update.
func (c *OrbitCamera) Update(dt float64) {
	c.Azimuth += c.azVel * dt
	c.Elevation = clamp(c.Elevation+c.elVel*dt, -elevationLimit, elevationLimit)

	if c.zoomTween != nil {
		v, done := c.zoomTween.Update(float32(dt))
		c.Distance = float64(v)
		if done {
			c.zoomTween = nil
		}
	} else {
		c.Distance = clamp(c.Distance+c.distVel*dt, c.MinDistance, c.MaxDistance)
	}

	decay := math.Exp(-c.Damping * dt)
	c.azVel *= decay
	c.elVel *= decay
	c.distVel *= decay
}

// View returns the camera's view matrix.
func (c *OrbitCamera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns the camera's perspective projection matrix.
func (c *OrbitCamera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.Fov, c.aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *OrbitCamera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}
