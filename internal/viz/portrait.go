package viz

import (
	"math"
	"sort"

	"github.com/san-kum/butterfly/internal/lorenz"
	"github.com/san-kum/butterfly/internal/view"
)

// Camera projects phase-space points onto the canvas plane.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	// Tilted start so both attractor wings are visible immediately.
	return &Camera{Distance: 5, RotX: -0.4, RotY: 0.6, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p lorenz.State) lorenz.State {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// project converts a normalized phase-space point to sub-pixel screen
// coordinates; ok is false when the point sits behind the camera.
func (c *Camera) project(p lorenz.State, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, true
}

type segment struct {
	x1, y1, x2, y2 int
	depth          float64
}

// RenderPortrait draws the first prefix samples of every portrait series
// onto the canvas with a painter's depth sort. The panel bounds center and
// normalize the attractor so camera math stays scale-free.
func RenderPortrait(c *Canvas, p view.Panel, cam *Camera, prefix int) {
	if p.ZBounds == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4

	norm := func(v float64, b view.Bounds) float64 {
		r := b.Max - b.Min
		if r == 0 {
			return 0
		}
		return (v-b.Min)/r*2 - 1
	}

	segs := make([]segment, 0, prefix*len(p.Series))
	for _, s := range p.Series {
		n := prefix
		if n > len(s.X) {
			n = len(s.X)
		}
		var px, py int
		var pd float64
		have := false
		for i := 0; i < n; i++ {
			pt := lorenz.State{
				X: norm(s.X[i], p.XBounds),
				// Z is "up" in the Lorenz convention; map it to the
				// screen vertical.
				Y: norm(s.Z[i], *p.ZBounds),
				Z: norm(s.Y[i], p.YBounds),
			}
			sx, sy, d, ok := cam.project(pt, cw, ch)
			if !ok {
				have = false
				continue
			}
			if have {
				segs = append(segs, segment{px, py, sx, sy, (pd + d) / 2})
			}
			px, py, pd, have = sx, sy, d, true
		}
	}

	sort.Slice(segs, func(i, j int) bool { return segs[i].depth < segs[j].depth })
	for _, s := range segs {
		if s.x1 == s.x2 && s.y1 == s.y2 {
			c.Set(s.x1, s.y1)
		} else {
			c.DrawLine(s.x1, s.y1, s.x2, s.y2)
		}
	}
}
