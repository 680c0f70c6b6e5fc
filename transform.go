package galaxia

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// composeModel builds a cloud's world transform from its instance state.
//
// Composition order (right to left): uniform scale, cloud spin about local
// Y, group tilt (X then Z), group yaw about Y, translation. Yaw is the
// whole-galaxy orbit rotation; spin is the per-cloud arm rotation, so the
// star and dust clouds of one instance share everything but spin.
func composeModel(position mgl64.Vec3, tiltX, tiltZ, yaw, spin, scale float64) mgl64.Mat4 {
	m := mgl64.Translate3D(position.X(), position.Y(), position.Z())
	m = m.Mul4(mgl64.HomogRotate3DY(yaw))
	m = m.Mul4(mgl64.HomogRotate3DX(tiltX))
	m = m.Mul4(mgl64.HomogRotate3DZ(tiltZ))
	m = m.Mul4(mgl64.HomogRotate3DY(spin))
	m = m.Mul4(mgl64.Scale3D(scale, scale, scale))
	return m
}

// randomUnitVec3 returns a direction uniformly distributed on the unit
// sphere via inverse-cosine sampling of the polar angle.
func randomUnitVec3(rng *rand.Rand) mgl64.Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(rng.Float64()*2 - 1)
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		sinPhi * math.Cos(theta),
		math.Cos(phi),
		sinPhi * math.Sin(theta),
	}
}
