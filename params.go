package galaxia

import (
	"math/rand/v2"
)

// GalaxyParams is the full parameter set for one galaxy. Generated once by
// GenerateParams and treated as immutable afterwards: the geometry builder,
// the instance state machine, and the renderer all read from it but never
// write. All probability fields are in [0, 1].
type GalaxyParams struct {
	// Radius is the galaxy's geometric radius in world units.
	Radius float64
	// Thickness is the vertical extent of the disk before tapering.
	Thickness float64
	// NumArms is the spiral arm count, always >= 2.
	NumArms int
	// ArmTightness controls how far each arm winds over the full radius,
	// in radians of spiral sweep.
	ArmTightness float64
	// ArmWidth is the angular half-spread of points around an arm's spine.
	ArmWidth float64
	// CoreRatio is the fraction of Radius treated as the isotropic nucleus.
	CoreRatio float64

	// ColorCenter is the bright nucleus color.
	ColorCenter Color
	// ColorArmBase is the inner-arm color, blended outward to ColorArmEdge.
	ColorArmBase Color
	// ColorArmEdge is the outer-arm color.
	ColorArmEdge Color
	// ColorNebula tints mid-radius points selected by NebulaProbability.
	ColorNebula Color
	// NebulaProbability is the chance a mid-band star takes the nebula color.
	NebulaProbability float64

	// StarSize is the rendered point size for star points.
	StarSize float64
	// StarCount is the number of star points to generate.
	StarCount int

	// DustColor is the base tint for dust points.
	DustColor Color
	// DustNebulaColor is the alternative dust tint.
	DustNebulaColor Color
	// DustNebulaProbability is the chance a dust point takes DustNebulaColor.
	DustNebulaProbability float64
	// DustSizeMult scales StarSize for dust points.
	DustSizeMult float64
	// DustOpacity is the dust cloud's render opacity.
	DustOpacity float64
	// DustThicknessMult scales Thickness for the dust disk.
	DustThicknessMult float64

	// WobbleAmplitude is the angular amplitude of the arm perturbation.
	WobbleAmplitude float64
	// WobbleFrequency is the number of wobble periods across the radius.
	WobbleFrequency float64

	// OrbitSpeed is the whole-galaxy rotation rate, radians per nominal tick
	// before the x100 and global multiplier scaling.
	OrbitSpeed float64
	// ArmSpeed is the internal arm-spin rate, same units as OrbitSpeed.
	ArmSpeed float64
}

// palette is a coherent set of galaxy colors picked as a unit so that
// center, arm, and nebula tints never clash.
type palette struct {
	center, armBase, armEdge, nebula Color
	dust, dustNebula                 Color
}

var galaxyPalettes = []palette{
	{ // classic blue-white spiral with magenta nebulae
		center:     Color{1.0, 0.95, 0.85},
		armBase:    Color{0.75, 0.82, 1.0},
		armEdge:    Color{0.35, 0.45, 0.9},
		nebula:     Color{0.9, 0.4, 0.85},
		dust:       Color{0.45, 0.35, 0.55},
		dustNebula: Color{0.6, 0.25, 0.5},
	},
	{ // warm golden core, red outer arms
		center:     Color{1.0, 0.9, 0.7},
		armBase:    Color{0.95, 0.7, 0.45},
		armEdge:    Color{0.8, 0.3, 0.25},
		nebula:     Color{1.0, 0.55, 0.3},
		dust:       Color{0.5, 0.3, 0.25},
		dustNebula: Color{0.65, 0.4, 0.2},
	},
	{ // cold teal spiral with violet nebulae
		center:     Color{0.9, 1.0, 0.95},
		armBase:    Color{0.45, 0.85, 0.8},
		armEdge:    Color{0.2, 0.45, 0.6},
		nebula:     Color{0.55, 0.35, 0.9},
		dust:       Color{0.3, 0.4, 0.45},
		dustNebula: Color{0.4, 0.3, 0.55},
	},
	{ // pale rose core, indigo edges
		center:     Color{1.0, 0.9, 0.92},
		armBase:    Color{0.9, 0.6, 0.75},
		armEdge:    Color{0.4, 0.3, 0.75},
		nebula:     Color{0.95, 0.5, 0.6},
		dust:       Color{0.45, 0.3, 0.4},
		dustNebula: Color{0.55, 0.35, 0.55},
	},
}

// Generation ranges. Kept together so the visual tuning reads as one table.
var (
	radiusFraction    = Range{0.02, 0.08} // x universeRadius
	thicknessFraction = Range{0.08, 0.28} // x Radius
	armTightnessRange = Range{2.5, 6.0}
	armWidthRange     = Range{0.25, 0.8}
	coreRatioRange    = Range{0.12, 0.3}
	nebulaProbRange   = Range{0.05, 0.35}
	starCountRange    = Range{2500, 7000}
	starSizeRange     = Range{0.018, 0.04}
	dustNebulaRange   = Range{0.3, 0.8}
	dustSizeMultRange = Range{1.4, 2.2}
	dustOpacityRange  = Range{0.18, 0.45}
	dustThickRange    = Range{1.5, 2.5}
	wobbleAmpRange    = Range{0.05, 0.35}
	wobbleFreqRange   = Range{1.5, 5.0}
	orbitSpeedRange   = Range{0.00002, 0.00025}
	armSpeedRange     = Range{0.0001, 0.0009}
)

// GenerateParams draws a complete randomized GalaxyParams for one galaxy
// scaled to the given universe radius. Every field comes from rng, so the
// same seed always yields the same galaxy. GenerateParams has no other
// side effects.
func GenerateParams(rng *rand.Rand, universeRadius float64) GalaxyParams {
	pal := galaxyPalettes[rng.IntN(len(galaxyPalettes))]

	radius := radiusFraction.Random(rng) * universeRadius
	return GalaxyParams{
		Radius:       radius,
		Thickness:    thicknessFraction.Random(rng) * radius,
		NumArms:      2 + rng.IntN(4),
		ArmTightness: armTightnessRange.Random(rng),
		ArmWidth:     armWidthRange.Random(rng),
		CoreRatio:    coreRatioRange.Random(rng),

		ColorCenter:       pal.center.JitterHSL(rng, 10, 0.03),
		ColorArmBase:      pal.armBase.JitterHSL(rng, 14, 0.04),
		ColorArmEdge:      pal.armEdge.JitterHSL(rng, 14, 0.04),
		ColorNebula:       pal.nebula.JitterHSL(rng, 20, 0.05),
		NebulaProbability: nebulaProbRange.Random(rng),

		StarSize:  starSizeRange.Random(rng),
		StarCount: int(starCountRange.Random(rng)),

		DustColor:             pal.dust.JitterHSL(rng, 12, 0.04),
		DustNebulaColor:       pal.dustNebula.JitterHSL(rng, 16, 0.04),
		DustNebulaProbability: dustNebulaRange.Random(rng),
		DustSizeMult:          dustSizeMultRange.Random(rng),
		DustOpacity:           dustOpacityRange.Random(rng),
		DustThicknessMult:     dustThickRange.Random(rng),

		WobbleAmplitude: wobbleAmpRange.Random(rng),
		WobbleFrequency: wobbleFreqRange.Random(rng),

		OrbitSpeed: orbitSpeedRange.Random(rng),
		ArmSpeed:   armSpeedRange.Random(rng),
	}
}
