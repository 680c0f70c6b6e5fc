package galaxia

import (
	"math"
	"math/rand/v2"
)

// PointCloud holds parallel position and color buffers for N points.
// Positions and Colors are laid out [x0,y0,z0, x1,y1,z1, ...] and
// [r0,g0,b0, ...]; both have length exactly 3*Count. The buffers are
// immutable after construction. Per-cloud opacity, point size, and
// transform live on the Cloud primitive that wraps a PointCloud.
type PointCloud struct {
	Positions []float32
	Colors    []float32
	Count     int
}

// newPointCloud allocates an empty cloud for count points.
// A count of zero (or less) yields valid zero-length buffers.
func newPointCloud(count int) *PointCloud {
	if count < 0 {
		count = 0
	}
	return &PointCloud{
		Positions: make([]float32, 3*count),
		Colors:    make([]float32, 3*count),
		Count:     count,
	}
}

// set writes point i's position and color. The color is clamped to [0, 1];
// HSL jitter upstream can push channels slightly out of range otherwise.
func (pc *PointCloud) set(i int, x, y, z float64, c Color) {
	pc.Positions[3*i] = float32(x)
	pc.Positions[3*i+1] = float32(y)
	pc.Positions[3*i+2] = float32(z)
	c = c.Clamped()
	pc.Colors[3*i] = float32(c.R)
	pc.Colors[3*i+1] = float32(c.G)
	pc.Colors[3*i+2] = float32(c.B)
}

// cloudShape holds the per-population constants that differ between the
// star and dust passes; the point pipeline itself is shared.
type cloudShape struct {
	falloffExp    float64 // power-law exponent concentrating points inward
	edgeThreshold float64 // progress beyond which the outer edge is roughened
	thickness     float64 // vertical extent before tapering
	brightness    Range   // final per-point brightness factor
}

// BuildGalaxy generates the star cloud and, when the rolled dust count is
// nonzero, the dust cloud for the given parameters. The dust cloud is nil
// when params.StarCount divided by a random factor in [3, 6] rounds to 0.
// All coordinates are finite and all color channels lie in [0, 1].
func BuildGalaxy(rng *rand.Rand, params GalaxyParams) (stars, dust *PointCloud) {
	starShape := cloudShape{
		falloffExp:    1.6,
		edgeThreshold: 0.7,
		thickness:     params.Thickness,
		brightness:    Range{0.6, 1.0},
	}
	stars = buildCloud(rng, params, starShape, params.StarCount, starColor)

	dustCount := 0
	if params.StarCount > 0 {
		dustCount = int(math.Round(float64(params.StarCount) / Range{3, 6}.Random(rng)))
	}
	if dustCount == 0 {
		return stars, nil
	}
	dustShape := cloudShape{
		falloffExp:    1.3,
		edgeThreshold: 0.65,
		thickness:     params.Thickness * params.DustThicknessMult,
		brightness:    Range{0.1, 0.3},
	}
	dust = buildCloud(rng, params, dustShape, dustCount, dustColor)
	return stars, dust
}

// colorFunc assigns a point's color from its normalized radius in [0, 1].
type colorFunc func(rng *rand.Rand, params GalaxyParams, norm float64) Color

// buildCloud runs the shared per-point pipeline: power-law radial falloff,
// edge roughening, arm selection with spiral offset, sinusoidal wobble,
// isotropic core override, tapered disk thickness, and banded coloring.
func buildCloud(rng *rand.Rand, params GalaxyParams, shape cloudShape, count int, pick colorFunc) *PointCloud {
	pc := newPointCloud(count)
	radius := params.Radius

	for i := 0; i < pc.Count; i++ {
		// A degenerate radius still yields a valid cloud: every point at
		// the origin, colored as deep core.
		if radius <= 0 {
			c := pick(rng, params, 0).Scale(shape.brightness.Random(rng))
			pc.set(i, 0, 0, 0, c)
			continue
		}
		// Radial distance: progress^exp concentrates points toward the
		// center with a long sparse tail.
		progress := rng.Float64()
		dist := math.Pow(progress, shape.falloffExp) * radius

		// Roughen the outer edge so it doesn't end at a hard circle.
		if progress > shape.edgeThreshold {
			dist *= Range{0.6, 1.3}.Random(rng)
		}

		// Pick an arm and offset along its logarithmic-spiral spine.
		arm := rng.IntN(params.NumArms)
		angle := float64(arm) / float64(params.NumArms) * 2 * math.Pi
		norm := dist / radius
		angle += norm * params.ArmTightness
		angle += (rng.Float64()*2 - 1) * params.ArmWidth

		// Wobble breaks up perfectly smooth arms in the mid band only.
		if norm > params.CoreRatio*1.2 && dist < 0.9*radius {
			phase := float64(arm) * rng.Float64() * 2 * math.Pi
			angle += math.Sin(norm*params.WobbleFrequency*2*math.Pi+phase) *
				params.WobbleAmplitude * (1 - 0.5*norm)
		}

		// Inside the core the arm structure dissolves into an isotropic
		// nucleus: fully random angle, points pulled further inward.
		if dist < params.CoreRatio*radius {
			angle = rng.Float64() * 2 * math.Pi
			if rng.Float64() < 0.6 {
				dist *= rng.Float64()
			}
			norm = dist / radius
		}

		x := math.Cos(angle) * dist
		z := math.Sin(angle) * dist

		// Product of two uniforms gives a peaked, thin vertical profile.
		y := (rng.Float64()*2 - 1) * rng.Float64() * shape.thickness * taper(norm)

		c := pick(rng, params, norm)
		c = c.Scale(shape.brightness.Random(rng))
		pc.set(i, x, y, z, c)
	}
	return pc
}

// taper scales disk thickness down with radius and flattens harder past
// three quarters of the radius, modeling a thin edge-flattened disk.
func taper(norm float64) float64 {
	t := 1 - 0.55*norm
	if norm > 0.75 {
		t *= 1 - 0.6*(norm-0.75)/0.25
	}
	if t < 0 {
		return 0
	}
	return t
}

// starColor assigns a star point's color by radial band: nucleus blend,
// probabilistic mid-band nebula tint, or the sqrt-eased arm gradient.
func starColor(rng *rand.Rand, params GalaxyParams, norm float64) Color {
	coreEdge := params.CoreRatio * 1.2
	if norm < coreEdge {
		// Deep core through the core-to-arm transition: blend the bright
		// center color out to the arm base.
		t := 0.0
		if coreEdge > 0 {
			t = norm / coreEdge
		}
		return params.ColorCenter.Lerp(params.ColorArmBase, t).JitterHSL(rng, 4, 0.02)
	}

	// Nebula tint only shows in the mid-radius band.
	if norm > 0.25 && norm < 0.75 && rng.Float64() < params.NebulaProbability {
		return params.ColorNebula.JitterHSL(rng, 8, 0.04)
	}

	// Arm gradient, sqrt-eased so the base color holds on longer.
	span := 1 - coreEdge
	t := 0.0
	if span > 0 {
		t = math.Sqrt(clamp01((norm - coreEdge) / span))
	}
	return params.ColorArmBase.Lerp(params.ColorArmEdge, t).JitterHSL(rng, 12, 0.06)
}

// dustColor binary-chooses between the two dust tints.
func dustColor(rng *rand.Rand, params GalaxyParams, norm float64) Color {
	if rng.Float64() < params.DustNebulaProbability {
		return params.DustNebulaColor.JitterHSL(rng, 6, 0.03)
	}
	return params.DustColor.JitterHSL(rng, 6, 0.03)
}
