package galaxia

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// starfieldShellMult is the starfield shell radius as a multiple of the
// universe spread. The shell always sits well behind every galaxy.
const starfieldShellMult = 5.0

// DefaultStarfieldCount is the point count used when the caller passes 0.
const DefaultStarfieldCount = 3000

// starfield tints, weighted toward plain white.
var starfieldTints = []Color{
	{1, 1, 1},
	{1, 1, 1},
	{0.85, 0.9, 1.0},
	{1.0, 0.93, 0.8},
}

// BuildStarfield generates the static background starfield: a spherical
// shell of points at starfieldShellMult times the universe spread. The
// shell is not animated; it is rebuilt whole whenever the spread changes.
// Brightness is modulated by low-frequency Perlin noise over the shell so
// the sky shows faint clustering instead of a uniform glow.
func BuildStarfield(rng *rand.Rand, spread float64, count int) *PointCloud {
	if count <= 0 {
		count = DefaultStarfieldCount
	}
	pc := newPointCloud(count)
	shell := spread * starfieldShellMult
	noise := perlin.NewPerlin(2, 2, 2, rng.Int64())

	for i := 0; i < pc.Count; i++ {
		dir := randomUnitVec3(rng)
		r := shell * Range{0.4, 1.0}.Random(rng)
		p := dir.Mul(r)

		// Noise in [-~0.7, ~0.7]; shift into a brightness factor that
		// never fully extinguishes a star.
		n := noise.Noise3D(dir.X()*1.7, dir.Y()*1.7, dir.Z()*1.7)
		brightness := clamp(0.55+0.45*n+rng.Float64()*0.25, 0.15, 1)

		tint := starfieldTints[rng.IntN(len(starfieldTints))]
		pc.set(i, p.X(), p.Y(), p.Z(), tint.Scale(brightness))
	}
	return pc
}
