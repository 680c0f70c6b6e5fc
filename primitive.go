package galaxia

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Cloud is a renderable point-cloud primitive: one PointCloud plus the
// render state that may change per frame (model transform, opacity, point
// size, blending). A Cloud is created once, added to a Scene, and released
// exactly once when its owner disposes it.
type Cloud struct {
	// Name identifies the cloud in debug output.
	Name string

	// Model is the cloud's world transform, rewritten each tick by its
	// owning instance (or left at identity for static clouds).
	Model mgl64.Mat4

	// PointSize is the rendered size of each point in world units.
	PointSize float64
	// Opacity multiplies every point's color at render time.
	Opacity float64
	// Blend is the compositing operation for this cloud.
	Blend BlendMode

	cloud    *PointCloud
	released bool
}

// NewCloud wraps a PointCloud in a renderable primitive with the given
// render state. Panics if pc is nil.
func NewCloud(name string, pc *PointCloud, pointSize, opacity float64, blend BlendMode) *Cloud {
	if pc == nil {
		panic("galaxia: cannot create cloud from nil point cloud")
	}
	return &Cloud{
		Name:      name,
		Model:     mgl64.Ident4(),
		PointSize: pointSize,
		Opacity:   opacity,
		Blend:     blend,
		cloud:     pc,
	}
}

// Points returns the underlying point cloud, or nil once released.
func (c *Cloud) Points() *PointCloud {
	return c.cloud
}

// Release frees the cloud's buffers. Safe to call more than once; every
// call after the first is a no-op.
func (c *Cloud) Release() {
	if c.released {
		return
	}
	c.released = true
	c.cloud = nil
}

// IsReleased reports whether Release has been called.
func (c *Cloud) IsReleased() bool {
	return c.released
}

// Scene is a flat container of cloud primitives. It owns no simulation
// state: instances add and remove their clouds, the renderer iterates.
type Scene struct {
	clouds []*Cloud
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a cloud to the scene. Panics if cloud is nil or already
// released; adding the same cloud twice is a no-op.
func (s *Scene) Add(cloud *Cloud) {
	if cloud == nil {
		panic("galaxia: cannot add nil cloud to scene")
	}
	if cloud.released {
		panic("galaxia: cannot add released cloud to scene")
	}
	for _, c := range s.clouds {
		if c == cloud {
			return
		}
	}
	s.clouds = append(s.clouds, cloud)
}

// Remove detaches a cloud from the scene. No-op if the cloud is not present.
// Uses copy+nil so the backing array doesn't retain a dangling pointer.
func (s *Scene) Remove(cloud *Cloud) {
	for i, c := range s.clouds {
		if c == cloud {
			copy(s.clouds[i:], s.clouds[i+1:])
			s.clouds[len(s.clouds)-1] = nil
			s.clouds = s.clouds[:len(s.clouds)-1]
			return
		}
	}
}

// Clouds returns the scene's cloud list in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (s *Scene) Clouds() []*Cloud {
	return s.clouds
}

// NumClouds returns the number of clouds currently in the scene.
func (s *Scene) NumClouds() int {
	return len(s.clouds)
}
