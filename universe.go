package galaxia

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Options is the configuration surface exposed to the UI layer. Values
// outside the documented ranges are clamped, not rejected. Multiplier
// changes take effect on the next tick with no regeneration; a change in
// UniverseSpread or GalaxyCount triggers a full regeneration.
type Options struct {
	// OrbitSpeedMultiplier scales whole-galaxy rotation. Range [0, 0.1].
	OrbitSpeedMultiplier float64
	// ArmSpeedMultiplier scales internal arm spin. Range [0, 0.1].
	ArmSpeedMultiplier float64
	// UniverseSpread is the placement sphere radius. Range [50, 300].
	UniverseSpread float64
	// GalaxyCount is the number of galaxy instances. Range [5, 100].
	GalaxyCount int
}

// DefaultOptions returns the options a fresh universe starts with.
func DefaultOptions() Options {
	return Options{
		OrbitSpeedMultiplier: 0.02,
		ArmSpeedMultiplier:   0.03,
		UniverseSpread:       150,
		GalaxyCount:          30,
	}
}

// clamped returns the options with every field forced into its range.
func (o Options) clamped() Options {
	o.OrbitSpeedMultiplier = clamp(o.OrbitSpeedMultiplier, 0, 0.1)
	o.ArmSpeedMultiplier = clamp(o.ArmSpeedMultiplier, 0, 0.1)
	o.UniverseSpread = clamp(o.UniverseSpread, 50, 300)
	if o.GalaxyCount < 5 {
		o.GalaxyCount = 5
	} else if o.GalaxyCount > 100 {
		o.GalaxyCount = 100
	}
	return o
}

// placementRadiusRange is the instance placement radius as a fraction of
// the universe spread.
var placementRadiusRange = Range{0.05, 0.9}

// Universe owns the galaxy instance collection and the background
// starfield. All mutation happens on the scheduler goroutine; there is no
// locking anywhere in the package.
type Universe struct {
	rng    *rand.Rand
	scene  *Scene
	camera *OrbitCamera
	opts   Options

	instances []*Instance
	starfield *Cloud
	now       float64
}

// NewUniverse creates a universe over the given scene and camera and runs
// the first generation pass. The rng is the single random source for every
// generated value, so a seeded rng reproduces the universe exactly.
// The camera may be nil in headless use; far-plane and max-distance updates
// are then skipped.
func NewUniverse(rng *rand.Rand, scene *Scene, camera *OrbitCamera, opts Options) *Universe {
	u := &Universe{
		rng:    rng,
		scene:  scene,
		camera: camera,
		opts:   opts.clamped(),
	}
	u.Regenerate()
	return u
}

// Scene returns the scene the universe populates.
func (u *Universe) Scene() *Scene {
	return u.scene
}

// Options returns the current configuration.
func (u *Universe) Options() Options {
	return u.opts
}

// Instances returns the live instance collection.
// The returned slice MUST NOT be mutated by the caller.
func (u *Universe) Instances() []*Instance {
	return u.instances
}

// Starfield returns the background starfield cloud.
func (u *Universe) Starfield() *Cloud {
	return u.starfield
}

// Configure applies new options. Multipliers take effect immediately (they
// are read every tick); a change in spread or count regenerates the whole
// universe including the starfield.
func (u *Universe) Configure(opts Options) {
	opts = opts.clamped()
	regen := opts.UniverseSpread != u.opts.UniverseSpread ||
		opts.GalaxyCount != u.opts.GalaxyCount
	u.opts = opts
	if regen {
		u.Regenerate()
	}
}

// Regenerate disposes every current instance and the starfield, then
// builds GalaxyCount new instances scattered through a spherical volume of
// the current spread, and a fresh starfield shell at 5x spread. Any
// in-flight disintegration is cancelled by discarding its instance.
func (u *Universe) Regenerate() {
	for _, in := range u.instances {
		u.releaseInstance(in)
	}
	for i := range u.instances {
		u.instances[i] = nil
	}
	u.instances = u.instances[:0]

	if u.starfield != nil {
		u.scene.Remove(u.starfield)
		u.starfield.Release()
		u.starfield = nil
	}

	spread := u.opts.UniverseSpread
	for i := 0; i < u.opts.GalaxyCount; i++ {
		params := GenerateParams(u.rng, spread)
		dir := randomUnitVec3(u.rng)
		radius := placementRadiusRange.Random(u.rng) * spread
		in := newInstance(u.rng, params, dir.Mul(radius))
		in.addTo(u.scene)
		u.instances = append(u.instances, in)
	}

	sf := BuildStarfield(u.rng, spread, DefaultStarfieldCount)
	u.starfield = NewCloud("starfield", sf, spread*0.004, 1, BlendAdd)
	u.scene.Add(u.starfield)

	if u.camera != nil {
		u.camera.SetFar(spread * starfieldShellMult * 2)
		u.camera.SetMaxDistance(spread * 3)
	}
}

// DisintegrateAll primes every live instance with an individually random
// delay, overriding any prior disintegration state. Instances already
// mid-flight restart from their current position.
func (u *Universe) DisintegrateAll() {
	for _, in := range u.instances {
		in.Prime(u.now)
	}
}

// Advance runs one tick over the whole population: every instance updates
// (rotation first, then its disintegration phase), completed instances are
// released and compacted out in place.
func (u *Universe) Advance(now, dt float64, cameraPos mgl64.Vec3) {
	u.now = now

	kept := u.instances[:0]
	for _, in := range u.instances {
		if in.Update(now, dt, cameraPos, u.opts.OrbitSpeedMultiplier, u.opts.ArmSpeedMultiplier) {
			u.releaseInstance(in)
			continue
		}
		kept = append(kept, in)
	}
	// Nil out the tail so the backing array drops released instances.
	for i := len(kept); i < len(u.instances); i++ {
		u.instances[i] = nil
	}
	u.instances = kept
}

// releaseInstance removes the instance's clouds from the scene and frees
// their buffers, exactly once. Called from regeneration, disintegration
// completion, and teardown; any repeat call is a no-op.
func (u *Universe) releaseInstance(in *Instance) {
	if in.released {
		return
	}
	in.released = true
	in.phase = phaseDisposed
	u.scene.Remove(in.star)
	in.star.Release()
	if in.dust != nil {
		u.scene.Remove(in.dust)
		in.dust.Release()
	}
}

// Teardown releases every instance and the starfield. The universe must
// not be advanced afterwards.
func (u *Universe) Teardown() {
	for _, in := range u.instances {
		u.releaseInstance(in)
	}
	for i := range u.instances {
		u.instances[i] = nil
	}
	u.instances = u.instances[:0]
	if u.starfield != nil {
		u.scene.Remove(u.starfield)
		u.starfield.Release()
		u.starfield = nil
	}
}
