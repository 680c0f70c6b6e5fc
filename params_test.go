package galaxia

import (
	"math/rand/v2"
	"testing"
)

func TestGenerateParamsRanges(t *testing.T) {
	rng := testRNG()
	const universeRadius = 150.0

	for i := 0; i < 300; i++ {
		p := GenerateParams(rng, universeRadius)

		if p.Radius <= 0 {
			t.Fatalf("Radius = %v, want > 0", p.Radius)
		}
		if p.Radius < 0.02*universeRadius || p.Radius > 0.08*universeRadius {
			t.Fatalf("Radius = %v, want in [%v, %v]", p.Radius, 0.02*universeRadius, 0.08*universeRadius)
		}
		if p.NumArms < 2 || p.NumArms > 5 {
			t.Fatalf("NumArms = %d, want in [2, 5]", p.NumArms)
		}
		if p.StarCount <= 0 {
			t.Fatalf("StarCount = %d, want > 0", p.StarCount)
		}
		if p.Thickness <= 0 {
			t.Fatalf("Thickness = %v, want > 0", p.Thickness)
		}

		probs := map[string]float64{
			"NebulaProbability":     p.NebulaProbability,
			"DustNebulaProbability": p.DustNebulaProbability,
			"DustOpacity":           p.DustOpacity,
		}
		for name, v := range probs {
			if v < 0 || v > 1 {
				t.Fatalf("%s = %v, want in [0, 1]", name, v)
			}
		}

		if p.OrbitSpeed < orbitSpeedRange.Min || p.OrbitSpeed > orbitSpeedRange.Max {
			t.Fatalf("OrbitSpeed = %v, want in [%v, %v]", p.OrbitSpeed, orbitSpeedRange.Min, orbitSpeedRange.Max)
		}
		if p.ArmSpeed < armSpeedRange.Min || p.ArmSpeed > armSpeedRange.Max {
			t.Fatalf("ArmSpeed = %v, want in [%v, %v]", p.ArmSpeed, armSpeedRange.Min, armSpeedRange.Max)
		}
	}
}

func TestGenerateParamsColorsValid(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 100; i++ {
		p := GenerateParams(rng, 100)
		for name, c := range map[string]Color{
			"ColorCenter":     p.ColorCenter,
			"ColorArmBase":    p.ColorArmBase,
			"ColorArmEdge":    p.ColorArmEdge,
			"ColorNebula":     p.ColorNebula,
			"DustColor":       p.DustColor,
			"DustNebulaColor": p.DustNebulaColor,
		} {
			if c != c.Clamped() {
				t.Fatalf("%s = %v, not in [0, 1]", name, c)
			}
		}
	}
}

func TestGenerateParamsDeterministic(t *testing.T) {
	a := GenerateParams(rand.New(rand.NewPCG(7, 7)), 200)
	b := GenerateParams(rand.New(rand.NewPCG(7, 7)), 200)
	if a != b {
		t.Errorf("same seed produced different params:\n%+v\n%+v", a, b)
	}
}

func TestGenerateParamsScalesWithUniverse(t *testing.T) {
	rng := testRNG()
	small := GenerateParams(rng, 50)
	if small.Radius > 0.08*50 {
		t.Errorf("Radius = %v exceeds 0.08 x universe radius", small.Radius)
	}
}
