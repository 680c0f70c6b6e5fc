package galaxia

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testScheduler() (*FrameScheduler, *Universe, *OrbitCamera) {
	opts := testOptions()
	scene := NewScene()
	cam := NewOrbitCamera(opts.UniverseSpread)
	u := NewUniverse(testRNG(), scene, cam, opts)
	return NewFrameScheduler(u, cam, NewRenderer()), u, cam
}

func TestTickAdvancesClockAndInstances(t *testing.T) {
	s, u, _ := testScheduler()
	yaw := u.Instances()[0].Yaw

	s.Tick(tick, tick)

	if s.Now() != tick {
		t.Errorf("Now = %v, want %v", s.Now(), tick)
	}
	if u.Instances()[0].Yaw == yaw {
		t.Error("tick must rotate instances")
	}
}

func TestTickAppliesCameraDamping(t *testing.T) {
	s, _, cam := testScheduler()
	cam.AddOrbitDelta(1, 0)
	az := cam.Azimuth

	s.Tick(tick, tick)

	if cam.Azimuth == az {
		t.Error("tick must advance camera damping")
	}
}

func TestTickUsesCameraPositionForTargets(t *testing.T) {
	s, u, cam := testScheduler()

	// Prime with zero delay odds are low; force the trigger directly.
	in := u.Instances()[0]
	in.phase = phasePrimed
	in.triggerAt = 0

	s.Tick(tick, tick)

	if in.phase != phaseDisintegrating {
		t.Fatalf("phase = %d, want disintegrating", in.phase)
	}
	if !vecNear(in.target, cam.Position(), 1e-9) {
		t.Errorf("target = %v, want camera position %v", in.target, cam.Position())
	}
}

func TestSchedulerDrainsDisposed(t *testing.T) {
	s, u, _ := testScheduler()
	u.DisintegrateAll()

	now := 0.0
	for now < 8.0 {
		now += tick
		s.Tick(now, tick)
	}
	if len(u.Instances()) != 0 {
		t.Errorf("%d instances remain after drain", len(u.Instances()))
	}
}

func TestLayoutSetsAspect(t *testing.T) {
	s, _, cam := testScheduler()
	w, h := s.Layout(1920, 1080)
	if w != 1920 || h != 1080 {
		t.Errorf("Layout = %dx%d, want passthrough", w, h)
	}
	if math.Abs(cam.aspect-1920.0/1080.0) > 1e-12 {
		t.Errorf("aspect = %v, want %v", cam.aspect, 1920.0/1080.0)
	}

	// A zero height (minimized window) must not divide by zero.
	s.Layout(100, 0)
	if math.IsNaN(cam.aspect) || math.IsInf(cam.aspect, 0) {
		t.Error("aspect corrupted by zero-height layout")
	}
}

func TestTickOrderRotationBeforeDisposal(t *testing.T) {
	s, u, _ := testScheduler()
	in := u.Instances()[0]
	in.beginDisintegration(0, mgl64.Vec3{}, 1.0, 2.0)

	yaw := in.Yaw
	s.Tick(2.0, 2.0) // completes disintegration in one tick

	if in.phase != phaseDisposed {
		t.Fatal("instance should have completed")
	}
	if in.Yaw == yaw {
		t.Error("rotation must apply before disposal on the final tick")
	}
}
