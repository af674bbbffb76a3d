// Package icon describes the invitee-app icon as a fixed set of shapes in a
// logical 32x32 coordinate space and renders it at any requested resolution:
// an indigo rounded-square background, a white person silhouette (circular
// head over the crown of an ellipse for the shoulders), and a green badge
// carrying a white checkmark.
package icon

import (
	"github.com/omar99elnemr/icongen/internal/raster"
)

// Logical canvas edge; every shape coordinate below lives in this space and
// is scaled by size/LogicalSize at render time.
const LogicalSize = 32

var (
	Indigo  = raster.Color{R: 79, G: 70, B: 229, A: 255}
	Emerald = raster.Color{R: 16, G: 185, B: 129, A: 255}
	White   = raster.Color{R: 255, G: 255, B: 255, A: 255}
)

// composition returns the icon's shapes in paint order; later shapes occlude
// earlier ones.
func composition() []raster.Shape {
	return append([]raster.Shape{
		raster.RoundedRect{
			Origin: raster.Point{X: 2, Y: 2}, Width: 28, Height: 28,
			CornerRadius: 6, Fill: Indigo,
		},
	}, artwork(identity)...)
}

// artwork is the foreground (head, shoulders, badge, checkmark), with every
// logical coordinate passed through the placement functions so the maskable
// variant can shrink it into a safe zone.
func artwork(place placement) []raster.Shape {
	return []raster.Shape{
		// Head.
		raster.Circle{
			Center: raster.Point{X: place.at(13), Y: place.at(10)},
			Radius: place.by(4), Fill: White,
		},
		// Shoulders: only the crown of the ellipse is visible.
		raster.Ellipse{
			Center:  raster.Point{X: place.at(13), Y: place.at(28)},
			RadiusX: place.by(7), RadiusY: place.by(12),
			Clip: &raster.Rect{
				MinX: place.at(6), MinY: place.at(16),
				MaxX: place.at(20), MaxY: place.at(22),
			},
			Fill: White,
		},
		// Badge.
		raster.Circle{
			Center: raster.Point{X: place.at(23), Y: place.at(22)},
			Radius: place.by(7), Fill: Emerald,
		},
		// Checkmark, drawn over the badge.
		raster.Polyline{
			Points: []raster.Point{
				{X: place.at(19.5), Y: place.at(22)},
				{X: place.at(22), Y: place.at(24.5)},
				{X: place.at(26), Y: place.at(20.5)},
			},
			Thickness: place.by(1.2),
			Stroke:    White,
		},
	}
}

// placement maps logical coordinates: at repositions a point, by scales a
// length (radius, thickness).
type placement struct {
	scale, offset float64
}

func (p placement) at(v float64) float64 { return v*p.scale + p.offset }
func (p placement) by(v float64) float64 { return v * p.scale }

var identity = placement{scale: 1}

// Render rasterizes the icon at size x size pixels. Pure and deterministic
// given size: two calls yield byte-identical buffers.
func Render(size int) (*raster.Canvas, error) {
	return render(size, composition())
}

// RenderMaskable rasterizes the maskable variant used for splash screens and
// adaptive icons: the indigo background bleeds to every edge with no rounding
// or transparency, and the artwork is shrunk to 70% so it sits inside the
// inner 80% safe zone that launchers may mask.
func RenderMaskable(size int) (*raster.Canvas, error) {
	safe := placement{scale: 0.70, offset: 0.15 * LogicalSize}
	shapes := append([]raster.Shape{
		raster.RoundedRect{Width: LogicalSize, Height: LogicalSize, Fill: Indigo},
	}, artwork(safe)...)
	return render(size, shapes)
}

func render(size int, shapes []raster.Shape) (*raster.Canvas, error) {
	c, err := raster.New(size, size)
	if err != nil {
		return nil, err
	}
	sc := float64(size) / LogicalSize
	for _, sh := range shapes {
		sh.Scaled(sc).Paint(c)
	}
	return c, nil
}
