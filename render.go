package galaxia

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// maxBatchVerts keeps a single DrawTriangles call under ebiten's uint16
// index limit. 4 vertices per point quad.
const maxBatchVerts = 65532

// Renderer projects every cloud in a scene through the camera and draws
// each point as a screen-aligned quad via DrawTriangles. Colors are
// premultiplied by the cloud opacity at submission time.
type Renderer struct {
	// ClearColor fills the target before drawing.
	ClearColor Color
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool

	verts []ebiten.Vertex
	inds  []uint16
}

// NewRenderer creates a renderer with a near-black clear color.
func NewRenderer() *Renderer {
	return &Renderer{
		ClearColor: Color{0.01, 0.01, 0.03},
	}
}

// Render draws the whole scene from the camera's point of view onto target.
func (r *Renderer) Render(scene *Scene, camera *OrbitCamera, target *ebiten.Image) {
	target.Fill(r.ClearColor.toRGBA())

	bounds := target.Bounds()
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2
	// Pixels per world unit at distance 1, from the vertical FOV.
	focal := halfH / math.Tan(camera.Fov/2)

	vp := camera.ViewProjection()
	for _, cloud := range scene.Clouds() {
		if cloud.IsReleased() || cloud.Opacity <= 0 {
			continue
		}
		r.submitCloud(cloud, camera, vp, halfW, halfH, focal, target)
	}

	if r.ShowFPS {
		ebitenutil.DebugPrint(target, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// submitCloud projects one cloud's points and batches them as quads.
func (r *Renderer) submitCloud(cloud *Cloud, camera *OrbitCamera, vp mgl64.Mat4, halfW, halfH, focal float64, target *ebiten.Image) {
	pc := cloud.Points()
	mvp := vp.Mul4(cloud.Model)
	alpha := float32(clamp01(cloud.Opacity))

	op := &ebiten.DrawTrianglesOptions{Blend: cloud.Blend.EbitenBlend()}

	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	for i := 0; i < pc.Count; i++ {
		clip := mvp.Mul4x1(mgl64.Vec4{
			float64(pc.Positions[3*i]),
			float64(pc.Positions[3*i+1]),
			float64(pc.Positions[3*i+2]),
			1,
		})
		w := clip.W()
		if w <= camera.Near {
			continue
		}
		ndcX := clip.X() / w
		ndcY := clip.Y() / w
		// Cull with a small margin so large near points don't pop at edges.
		if ndcX < -1.2 || ndcX > 1.2 || ndcY < -1.2 || ndcY > 1.2 {
			continue
		}

		sx := halfW + ndcX*halfW
		sy := halfH - ndcY*halfH
		size := cloud.PointSize * focal / w
		if size < 0.75 {
			size = 0.75
		} else if size > 96 {
			size = 96
		}
		half := float32(size / 2)

		vr := pc.Colors[3*i] * alpha
		vg := pc.Colors[3*i+1] * alpha
		vb := pc.Colors[3*i+2] * alpha

		base := uint16(len(r.verts))
		x0, y0 := float32(sx)-half, float32(sy)-half
		x1, y1 := float32(sx)+half, float32(sy)+half
		r.verts = append(r.verts,
			ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: vr, ColorG: vg, ColorB: vb, ColorA: alpha},
			ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 1, SrcY: 0, ColorR: vr, ColorG: vg, ColorB: vb, ColorA: alpha},
			ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: vr, ColorG: vg, ColorB: vb, ColorA: alpha},
			ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: 1, ColorR: vr, ColorG: vg, ColorB: vb, ColorA: alpha},
		)
		r.inds = append(r.inds, base, base+1, base+2, base, base+2, base+3)

		if len(r.verts) >= maxBatchVerts {
			target.DrawTriangles(r.verts, r.inds, WhitePixel, op)
			r.verts = r.verts[:0]
			r.inds = r.inds[:0]
		}
	}

	if len(r.verts) > 0 {
		target.DrawTriangles(r.verts, r.inds, WhitePixel, op)
	}
}
