package raster

// Shape is a pure value describing something to paint. Scaled returns a copy
// with every coordinate and radius multiplied by s, so compositions can be
// described once in logical units and rendered at any resolution.
type Shape interface {
	Paint(c *Canvas)
	Scaled(s float64) Shape
}

// Rect is an axis-aligned clip region, inclusive on all edges.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Circle is a filled disc with an anti-aliased edge.
type Circle struct {
	Center Point
	Radius float64
	Fill   Color
}

func (s Circle) Paint(c *Canvas) {
	c.FillCircle(s.Center.X, s.Center.Y, s.Radius, s.Fill)
}

func (s Circle) Scaled(f float64) Shape {
	s.Center.X *= f
	s.Center.Y *= f
	s.Radius *= f
	return s
}

// RoundedRect is a filled rectangle with circular corners.
type RoundedRect struct {
	Origin        Point
	Width, Height float64
	CornerRadius  float64
	Fill          Color
}

func (s RoundedRect) Paint(c *Canvas) {
	c.FillRoundedRect(s.Origin.X, s.Origin.Y, s.Width, s.Height, s.CornerRadius, s.Fill)
}

func (s RoundedRect) Scaled(f float64) Shape {
	s.Origin.X *= f
	s.Origin.Y *= f
	s.Width *= f
	s.Height *= f
	s.CornerRadius *= f
	return s
}

// Ellipse is a filled axis-aligned ellipse, optionally restricted to a clip
// rectangle so only part of it shows.
type Ellipse struct {
	Center           Point
	RadiusX, RadiusY float64
	Fill             Color
	Clip             *Rect
}

func (s Ellipse) Paint(c *Canvas) {
	c.fillEllipse(s.Center.X, s.Center.Y, s.RadiusX, s.RadiusY, s.Clip, s.Fill)
}

func (s Ellipse) Scaled(f float64) Shape {
	s.Center.X *= f
	s.Center.Y *= f
	s.RadiusX *= f
	s.RadiusY *= f
	if s.Clip != nil {
		clip := Rect{s.Clip.MinX * f, s.Clip.MinY * f, s.Clip.MaxX * f, s.Clip.MaxY * f}
		s.Clip = &clip
	}
	return s
}

// Polyline is an open path stroked with round joins and caps.
type Polyline struct {
	Points    []Point
	Thickness float64
	Stroke    Color
}

func (s Polyline) Paint(c *Canvas) {
	c.StrokePolyline(s.Points, s.Thickness, s.Stroke)
}

func (s Polyline) Scaled(f float64) Shape {
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Point{p.X * f, p.Y * f}
	}
	s.Points = pts
	s.Thickness *= f
	return s
}
