package galaxia

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// disintegrationPhase is the per-instance lifecycle state.
type disintegrationPhase uint8

const (
	phaseActive         disintegrationPhase = iota // only rotation applies
	phasePrimed                                    // waiting out the random delay
	phaseDisintegrating                            // flying to camera, scaling up, fading
	phaseDisposed                                  // terminal; never updated again
)

const (
	// nominalTPS is the tick rate the rotation constants are tuned for.
	nominalTPS = 60.0
	// speedScale converts the tiny per-tick base speeds into visible motion.
	speedScale = 100.0
)

var (
	primeDelayRange        = Range{0, 3.0}   // seconds before disintegration starts
	disintegrateDurRange   = Range{2.0, 4.5} // seconds of flight
	disintegrateScaleRange = Range{2.5, 7.0} // added scale factor at completion
	placementScaleRange    = Range{0.4, 1.2} // uniform instance scale at creation
)

// Instance is one galaxy in the universe: its generated geometry wrapped in
// cloud primitives, its transform, its two rotation rates, and its
// disintegration state machine.
type Instance struct {
	// ID uniquely identifies the instance across regenerations.
	ID uuid.UUID
	// Params is the immutable parameter set the geometry was built from.
	Params GalaxyParams

	// Position is the instance's world position. During disintegration it
	// is driven by the flight tweens.
	Position mgl64.Vec3
	// TiltX and TiltZ are the fixed random orientation of the disk plane.
	TiltX, TiltZ float64
	// Yaw is the accumulated whole-galaxy orbit rotation.
	Yaw float64
	// Scale is the instance's base uniform scale.
	Scale float64

	starSpin, dustSpin float64
	dustSpinFactor     float64 // ±10% jitter on the dust arm-spin rate

	star, dust      *Cloud
	baseStarOpacity float64
	baseDustOpacity float64

	rng *rand.Rand

	phase     disintegrationPhase
	triggerAt float64 // phasePrimed: when to begin disintegrating
	startAt   float64 // phaseDisintegrating: entry time
	duration  float64
	origin    mgl64.Vec3
	target    mgl64.Vec3

	posX, posY, posZ *gween.Tween
	scaleAnim        *gween.Tween
	fade             *gween.Tween
	animScale        float64 // disintegration scale multiplier, 1 at rest
	fadeValue        float64 // disintegration opacity multiplier, 1 at rest

	released bool
}

// newInstance builds one galaxy from params: geometry, cloud primitives,
// random orientation and base scale. The caller places it and adds its
// clouds to a scene.
func newInstance(rng *rand.Rand, params GalaxyParams, position mgl64.Vec3) *Instance {
	stars, dustCloud := BuildGalaxy(rng, params)

	in := &Instance{
		ID:              uuid.New(),
		Params:          params,
		Position:        position,
		TiltX:           (rng.Float64()*2 - 1) * 0.6,
		TiltZ:           (rng.Float64()*2 - 1) * 0.6,
		Yaw:             rng.Float64() * 2 * math.Pi,
		Scale:           placementScaleRange.Random(rng),
		dustSpinFactor:  1 + (rng.Float64()*2-1)*0.1,
		baseStarOpacity: 1,
		rng:             rng,
		animScale:       1,
		fadeValue:       1,
	}
	in.star = NewCloud("stars", stars, params.StarSize, in.baseStarOpacity, BlendAdd)
	if dustCloud != nil {
		in.baseDustOpacity = params.DustOpacity
		in.dust = NewCloud("dust", dustCloud, params.StarSize*params.DustSizeMult,
			in.baseDustOpacity, BlendNormal)
	}
	in.applyTransforms()
	return in
}

// Star returns the instance's star cloud primitive.
func (in *Instance) Star() *Cloud { return in.star }

// Dust returns the instance's dust cloud primitive, or nil when the rolled
// dust count was zero.
func (in *Instance) Dust() *Cloud { return in.dust }

// Prime schedules disintegration at now plus a random delay in [0, 3]
// seconds, decoupling visual timing across the population. Re-priming an
// instance that is already primed or disintegrating restarts the sequence
// from its current state; priming a disposed instance is a no-op.
func (in *Instance) Prime(now float64) {
	if in.phase == phaseDisposed {
		return
	}
	in.phase = phasePrimed
	in.triggerAt = now + primeDelayRange.Random(in.rng)
}

// beginDisintegration enters the disintegrating phase: opacity and scale
// reset to baseline, the origin snapshots the current (possibly mid-flight)
// position, and the flight/scale/fade tweens start. The fade uses InQuad
// from 1 to 0, which evaluates to 1-progress^2.
func (in *Instance) beginDisintegration(now float64, target mgl64.Vec3, duration, scaleFactor float64) {
	in.animScale = 1
	in.fadeValue = 1
	in.phase = phaseDisintegrating
	in.startAt = now
	in.duration = duration
	in.origin = in.Position
	in.target = target

	d := float32(duration)
	in.posX = gween.New(float32(in.origin.X()), float32(target.X()), d, ease.Linear)
	in.posY = gween.New(float32(in.origin.Y()), float32(target.Y()), d, ease.Linear)
	in.posZ = gween.New(float32(in.origin.Z()), float32(target.Z()), d, ease.Linear)
	in.scaleAnim = gween.New(1, float32(1+scaleFactor), d, ease.Linear)
	in.fade = gween.New(1, 0, d, ease.InQuad)
}

// Progress reports the disintegration progress in [0, 1] at time now.
// Zero unless the instance is disintegrating or disposed.
func (in *Instance) Progress(now float64) float64 {
	switch in.phase {
	case phaseDisintegrating:
		if in.duration <= 0 {
			return 1
		}
		return clamp01((now - in.startAt) / in.duration)
	case phaseDisposed:
		return 1
	default:
		return 0
	}
}

// Update advances the instance by one tick. The rotation substep always
// runs first, including on the final disintegrating frame. The return
// value reports that the instance finished disintegrating and must be
// released; a disposed instance reports true without touching anything.
func (in *Instance) Update(now, dt float64, cameraPos mgl64.Vec3, orbitMult, armMult float64) bool {
	if in.phase == phaseDisposed {
		return true
	}

	ticks := dt * nominalTPS
	in.Yaw += in.Params.OrbitSpeed * orbitMult * speedScale * ticks
	in.starSpin += in.Params.ArmSpeed * armMult * speedScale * ticks
	in.dustSpin += in.Params.ArmSpeed * armMult * speedScale * ticks * in.dustSpinFactor

	switch in.phase {
	case phasePrimed:
		if now >= in.triggerAt {
			in.beginDisintegration(now, cameraPos,
				disintegrateDurRange.Random(in.rng),
				disintegrateScaleRange.Random(in.rng))
		}
	case phaseDisintegrating:
		d := float32(dt)
		x, _ := in.posX.Update(d)
		y, _ := in.posY.Update(d)
		z, _ := in.posZ.Update(d)
		s, _ := in.scaleAnim.Update(d)
		f, done := in.fade.Update(d)
		in.Position = mgl64.Vec3{float64(x), float64(y), float64(z)}
		in.animScale = float64(s)
		in.fadeValue = float64(f)
		if done {
			in.phase = phaseDisposed
		}
	}

	in.applyOpacity()
	in.applyTransforms()
	return in.phase == phaseDisposed
}

// applyOpacity writes the current fade multiplier through to the clouds.
func (in *Instance) applyOpacity() {
	in.star.Opacity = in.baseStarOpacity * in.fadeValue
	if in.dust != nil {
		in.dust.Opacity = in.baseDustOpacity * in.fadeValue
	}
}

// applyTransforms recomputes both cloud model matrices from the instance
// transform and the per-cloud spin angles.
func (in *Instance) applyTransforms() {
	scale := in.Scale * in.animScale
	in.star.Model = composeModel(in.Position, in.TiltX, in.TiltZ, in.Yaw, in.starSpin, scale)
	if in.dust != nil {
		in.dust.Model = composeModel(in.Position, in.TiltX, in.TiltZ, in.Yaw, in.dustSpin, scale)
	}
}

// addTo adds the instance's clouds to the scene.
func (in *Instance) addTo(scene *Scene) {
	scene.Add(in.star)
	if in.dust != nil {
		scene.Add(in.dust)
	}
}
