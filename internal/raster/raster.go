// Package raster provides an in-memory RGBA canvas with scanline shape
// painters (filled circle, rounded rect, ellipse, stroked polyline) and
// "over" alpha compositing. Painters work in output pixel space; callers
// scale logical coordinates before invoking them.
package raster

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned by New for non-positive width or height.
var ErrInvalidDimension = errors.New("raster: invalid canvas dimension")

// Color is an 8-bit RGBA color. Values are not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Canvas is a mutable RGBA pixel buffer, 4 bytes per pixel, row-major,
// top-to-bottom. A fresh canvas is fully transparent black.
type Canvas struct {
	width  int
	height int
	pix    []byte
}

// New allocates a zero-filled canvas of width*height*4 bytes.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pix exposes the underlying buffer for encoding. The slice is live; it is
// not a copy.
func (c *Canvas) Pix() []byte { return c.pix }

// At returns the pixel at (x, y), or a zero Color out of bounds.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Color{}
	}
	i := (y*c.width + x) * 4
	return Color{c.pix[i], c.pix[i+1], c.pix[i+2], c.pix[i+3]}
}

// SetPixel composites col onto the pixel at (x, y) with the "over" operator.
// Out-of-bounds coordinates are a silent no-op: shape edges legitimately
// overshoot the canvas by a pixel.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4

	srcA := float64(col.A) / 255
	dstA := float64(c.pix[i+3]) / 255
	outA := srcA + dstA*(1-srcA)
	if outA == 0 {
		return
	}
	blend := func(src, dst uint8) byte {
		v := (float64(src)*srcA + float64(dst)*dstA*(1-srcA)) / outA
		return clamp255(v)
	}
	c.pix[i] = blend(col.R, c.pix[i])
	c.pix[i+1] = blend(col.G, c.pix[i+1])
	c.pix[i+2] = blend(col.B, c.pix[i+2])
	c.pix[i+3] = clamp255(outA * 255)
}

// FillCircle paints a filled disc with a 1-pixel linear anti-alias band at
// the edge: coverage is clamp01(r - dist), attenuating the requested alpha.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	x0 := int(math.Floor(cx - r - 1))
	x1 := int(math.Ceil(cx + r + 1))
	y0 := int(math.Floor(cy - r - 1))
	y1 := int(math.Ceil(cy + r + 1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			edge := r - math.Sqrt(dx*dx+dy*dy)
			if edge <= 0 {
				continue
			}
			a := clamp01(edge) * float64(col.A)
			c.SetPixel(x, y, Color{col.R, col.G, col.B, clamp255(a)})
		}
	}
}

// FillRoundedRect paints a filled rectangle with circular corners of radius
// r. A pixel is inside when it lies in the central horizontal or vertical
// band, or within r of one of the four corner-circle centers. No edge
// anti-aliasing; the corners are already round via the circle test.
func (c *Canvas) FillRoundedRect(x, y, w, h, r float64, col Color) {
	px0 := int(math.Floor(x))
	px1 := int(math.Ceil(x + w))
	py0 := int(math.Floor(y))
	py1 := int(math.Ceil(y + h))
	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			lx := float64(px) - x
			ly := float64(py) - y
			if lx < 0 || lx > w || ly < 0 || ly > h {
				continue
			}
			inside := (ly >= r && ly <= h-r) || (lx >= r && lx <= w-r)
			if !inside {
				// Corner zones: test against the nearest corner-circle center.
				ccx := r
				if lx > w/2 {
					ccx = w - r
				}
				ccy := r
				if ly > h/2 {
					ccy = h - r
				}
				dx := lx - ccx
				dy := ly - ccy
				inside = dx*dx+dy*dy <= r*r
			}
			if inside {
				c.SetPixel(px, py, col)
			}
		}
	}
}

// FillEllipse paints a filled axis-aligned ellipse at full requested alpha.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col Color) {
	c.fillEllipse(cx, cy, rx, ry, nil, col)
}

func (c *Canvas) fillEllipse(cx, cy, rx, ry float64, clip *Rect, col Color) {
	x0 := int(math.Floor(cx - rx - 1))
	x1 := int(math.Ceil(cx + rx + 1))
	y0 := int(math.Floor(cy - ry - 1))
	y1 := int(math.Ceil(cy + ry + 1))
	if clip != nil {
		x0 = max(x0, int(math.Floor(clip.MinX)))
		x1 = min(x1, int(math.Ceil(clip.MaxX)))
		y0 = max(y0, int(math.Floor(clip.MinY)))
		y1 = min(y1, int(math.Ceil(clip.MaxY)))
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if clip != nil && !clip.contains(float64(x), float64(y)) {
				continue
			}
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// StrokePolyline stamps discs of radius thickness along the path through
// pts, parametrized by arc length. The sample step is at most thickness/2 so
// successive stamps overlap and leave no gaps.
func (c *Canvas) StrokePolyline(pts []Point, thickness float64, col Color) {
	if len(pts) < 2 || thickness <= 0 {
		return
	}
	segLens := make([]float64, len(pts)-1)
	var total float64
	for i := 0; i < len(pts)-1; i++ {
		segLens[i] = math.Hypot(pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y)
		total += segLens[i]
	}
	if total == 0 {
		c.stampDisc(pts[0].X, pts[0].Y, thickness, col)
		return
	}
	n := int(math.Ceil(total/(thickness/2))) + 1
	if n < 2 {
		n = 2
	}
	for i := 0; i <= n; i++ {
		p := pointAt(pts, segLens, total*float64(i)/float64(n))
		c.stampDisc(p.X, p.Y, thickness, col)
	}
}

// pointAt walks the segments to the point at arc length d from the start.
func pointAt(pts []Point, segLens []float64, d float64) Point {
	for i, l := range segLens {
		if d <= l || i == len(segLens)-1 {
			t := 1.0
			if l > 0 {
				t = d / l
				if t > 1 {
					t = 1
				}
			}
			return Point{
				X: pts[i].X + (pts[i+1].X-pts[i].X)*t,
				Y: pts[i].Y + (pts[i+1].Y-pts[i].Y)*t,
			}
		}
		d -= l
	}
	return pts[len(pts)-1]
}

func (c *Canvas) stampDisc(cx, cy, r float64, col Color) {
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				c.SetPixel(x, y, col)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(math.Round(v))
}
