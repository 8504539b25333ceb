package render

import "image/color"

type ShapeKind uint8

const (
	Rect ShapeKind = iota
	Circle
	Polygon
	Line
	Text
)

type Align uint8

const (
	Left Align = iota
	Center
)

type Point struct {
	X, Y float64
}

// Shape is one draw call in logical coordinates. Which fields apply depends
// on Kind: rectangles use X, Y, W, H; circles the centre X, Y and radius R;
// lines X, Y to X2, Y2; polygons Points; text X, Y, Text and Align.
type Shape struct {
	Kind   ShapeKind
	Color  color.RGBA
	X, Y   float64
	W, H   float64
	R      float64
	X2, Y2 float64
	Points []Point
	Text   string
	Align  Align
	Size   float64 // text scale, 1 is the HUD font
	Fill   bool
}

// Model is an ordered list of shapes, painted first to last.
type Model struct {
	Background color.RGBA
	Shapes     []Shape
}

func (m *Model) Rect(x, y, w, h float64, c color.RGBA) {
	m.Shapes = append(m.Shapes, Shape{Kind: Rect, X: x, Y: y, W: w, H: h, Color: c, Fill: true})
}

func (m *Model) Circle(x, y, r float64, c color.RGBA, fill bool) {
	m.Shapes = append(m.Shapes, Shape{Kind: Circle, X: x, Y: y, R: r, Color: c, Fill: fill})
}

func (m *Model) Polygon(c color.RGBA, points ...Point) {
	m.Shapes = append(m.Shapes, Shape{Kind: Polygon, Points: points, Color: c, Fill: true})
}

func (m *Model) Line(x, y, x2, y2 float64, c color.RGBA) {
	m.Shapes = append(m.Shapes, Shape{Kind: Line, X: x, Y: y, X2: x2, Y2: y2, Color: c})
}

func (m *Model) Text(x, y float64, text string, c color.RGBA, align Align, size float64) {
	m.Shapes = append(m.Shapes, Shape{Kind: Text, X: x, Y: y, Text: text, Color: c, Align: align, Size: size})
}

// Texts returns every label in the model, mainly for inspection.
func (m *Model) Texts() []string {
	texts := []string{}
	for _, s := range m.Shapes {
		if s.Kind == Text {
			texts = append(texts, s.Text)
		}
	}
	return texts
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = uint8(uint16(c.A) * uint16(a) / 255)
	return c
}
