// Package galaxia procedurally generates and animates a universe of
// particle-based spiral galaxies for real-time display with [Ebitengine].
//
// Each galaxy is synthesized from a small randomized parameter set
// ([GenerateParams]) into star and dust point clouds with spiral-arm
// structure, color gradients, and thickness tapering ([BuildGalaxy]).
// A [Universe] scatters galaxy instances through a spherical volume,
// backed by a static starfield shell, and can disintegrate the whole
// population on command: each instance flies toward the camera, scales up
// explosively, fades out quadratically, and is disposed.
//
// # Quick start
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	scene := galaxia.NewScene()
//	camera := galaxia.NewOrbitCamera(150)
//	universe := galaxia.NewUniverse(rng, scene, camera, galaxia.DefaultOptions())
//
//	sched := galaxia.NewFrameScheduler(universe, camera, galaxia.NewRenderer())
//	ebiten.SetWindowSize(1280, 720)
//	if err := ebiten.RunGame(sched); err != nil {
//		log.Fatal(err)
//	}
//
// Reconfigure at any time with [Universe.Configure]; multiplier changes
// apply on the next tick, spread or count changes rebuild the universe.
// Trigger the disintegration sequence with [Universe.DisintegrateAll].
//
// # Determinism
//
// Every random draw flows through the *rand.Rand passed to [NewUniverse],
// [GenerateParams], and [BuildGalaxy]. A seeded source reproduces the same
// universe, geometry, and disintegration timing; the simulation clock is
// accumulated from fixed ticks, never wall time.
//
// # Threading
//
// galaxia is single-threaded by design: all state is owned and mutated by
// the scheduler tick. Drive [FrameScheduler] from ebiten's game loop, or
// call [FrameScheduler.Tick] directly for headless use.
//
// [Ebitengine]: https://ebitengine.org
package galaxia
