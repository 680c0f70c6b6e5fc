package galaxia

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera(100)
	c.Target = mgl64.Vec3{}
	c.Azimuth = 0
	c.Elevation = 0
	c.Distance = 10

	p := c.Position()
	if !vecNear(p, mgl64.Vec3{10, 0, 0}, epsilon) {
		t.Errorf("position = %v, want {10 0 0}", p)
	}

	c.Elevation = math.Pi / 4
	p = c.Position()
	want := mgl64.Vec3{10 * math.Cos(math.Pi/4), 10 * math.Sin(math.Pi/4), 0}
	if !vecNear(p, want, epsilon) {
		t.Errorf("elevated position = %v, want %v", p, want)
	}
}

func TestOrbitCameraPositionFollowsTarget(t *testing.T) {
	c := NewOrbitCamera(100)
	c.Azimuth = 0
	c.Elevation = 0
	c.Distance = 5
	c.Target = mgl64.Vec3{1, 2, 3}
	p := c.Position()
	if !vecNear(p, mgl64.Vec3{6, 2, 3}, epsilon) {
		t.Errorf("position = %v, want {6 2 3}", p)
	}
}

func TestSetMaxDistanceClamps(t *testing.T) {
	c := NewOrbitCamera(100)
	c.Distance = 250
	c.SetMaxDistance(200)
	if c.Distance != 200 {
		t.Errorf("Distance = %v, want clamped to 200", c.Distance)
	}
}

func TestOrbitDampingDecays(t *testing.T) {
	c := NewOrbitCamera(100)
	az := c.Azimuth
	c.AddOrbitDelta(1.0, 0)

	c.Update(1.0 / 60.0)
	if c.Azimuth <= az {
		t.Error("orbit velocity should move azimuth")
	}
	v := c.azVel
	for i := 0; i < 120; i++ {
		c.Update(1.0 / 60.0)
	}
	if c.azVel >= v || c.azVel > 0.01 {
		t.Errorf("azimuth velocity = %v, want decayed well below %v", c.azVel, v)
	}
}

func TestElevationClampedAtPoles(t *testing.T) {
	c := NewOrbitCamera(100)
	c.AddOrbitDelta(0, 100)
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60.0)
	}
	if c.Elevation > elevationLimit || c.Elevation < -elevationLimit {
		t.Errorf("elevation = %v exceeded pole limit %v", c.Elevation, elevationLimit)
	}
}

func TestZoomToReachesTarget(t *testing.T) {
	c := NewOrbitCamera(100)
	c.Distance = 150
	c.ZoomTo(50, 1.0, ease.Linear)
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60.0)
	}
	if math.Abs(c.Distance-50) > 0.01 {
		t.Errorf("Distance = %v after zoom tween, want 50", c.Distance)
	}
	if c.zoomTween != nil {
		t.Error("finished zoom tween should be cleared")
	}
}

func TestViewProjectionFinite(t *testing.T) {
	c := NewOrbitCamera(150)
	c.SetAspect(16.0 / 9.0)
	vp := c.ViewProjection()
	for i := 0; i < 16; i++ {
		if math.IsNaN(vp[i]) || math.IsInf(vp[i], 0) {
			t.Fatalf("view-projection[%d] = %v, want finite", i, vp[i])
		}
	}
}
