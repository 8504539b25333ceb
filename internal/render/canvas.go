package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"git.lost.host/meutraa/rhythm/internal/game"
)

// Cell is one terminal character.
type Cell struct {
	BG, FG color.RGBA
	Rune   rune
	Bold   bool
}

// Canvas rasterises a Model onto a grid of terminal cells.
type Canvas struct {
	vp    game.Viewport
	cells []Cell
}

func NewCanvas(vp game.Viewport) *Canvas {
	return &Canvas{
		vp:    vp,
		cells: make([]Cell, vp.Width*vp.Height),
	}
}

func (c *Canvas) Viewport() game.Viewport {
	return c.vp
}

func (c *Canvas) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.vp.Width || row >= c.vp.Height {
		return Cell{}
	}
	return c.cells[row*c.vp.Width+col]
}

// centre returns the logical coordinates of the middle of a cell.
func (c *Canvas) centre(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / c.vp.ScaleX, (float64(row) + 0.5) / c.vp.ScaleY
}

// Paint clears the canvas to the model background and draws every shape.
func (c *Canvas) Paint(m *Model) {
	for i := range c.cells {
		c.cells[i] = Cell{BG: m.Background, FG: m.Background, Rune: ' '}
	}
	for _, s := range m.Shapes {
		switch s.Kind {
		case Rect:
			c.rect(s)
		case Circle:
			// half a cell either side of the radius
			edge := 0.5 / math.Min(c.vp.ScaleX, c.vp.ScaleY)
			c.fill(s.Color, func(x, y float64) bool {
				d := math.Hypot(x-s.X, y-s.Y)
				if s.Fill {
					return d <= s.R
				}
				return math.Abs(d-s.R) <= edge
			})
		case Polygon:
			c.fill(s.Color, func(x, y float64) bool {
				return inside(s.Points, x, y)
			})
		case Line:
			c.line(s)
		case Text:
			c.text(s)
		}
	}
}

func (c *Canvas) fill(col color.RGBA, hit func(x, y float64) bool) {
	for row := 0; row < c.vp.Height; row++ {
		for cl := 0; cl < c.vp.Width; cl++ {
			if x, y := c.centre(cl, row); hit(x, y) {
				cell := &c.cells[row*c.vp.Width+cl]
				cell.BG = blend(cell.BG, col)
				cell.FG = blend(cell.FG, col)
			}
		}
	}
}

// rect fills every cell the rectangle overlaps, so shapes thinner than a
// cell still show up.
func (c *Canvas) rect(s Shape) {
	if s.W <= 0 || s.H <= 0 {
		return
	}
	cw, ch := 1/c.vp.ScaleX, 1/c.vp.ScaleY
	c.fill(s.Color, func(x, y float64) bool {
		x0, y0 := x-cw/2, y-ch/2
		return x0 < s.X+s.W && x0+cw > s.X && y0 < s.Y+s.H && y0+ch > s.Y
	})
}

func (c *Canvas) line(s Shape) {
	x0, y0 := c.vp.Project(s.X, s.Y)
	x1, y1 := c.vp.Project(s.X2, s.Y2)
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	last := -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cl := int(x0 + (x1-x0)*t)
		row := int(y0 + (y1-y0)*t)
		if cl < 0 || row < 0 || cl >= c.vp.Width || row >= c.vp.Height {
			continue
		}
		idx := row*c.vp.Width + cl
		if idx == last {
			continue
		}
		last = idx
		c.cells[idx].BG = blend(c.cells[idx].BG, s.Color)
	}
}

// textStyle maps a text scale onto what a terminal can show: bold from 1.5
// and up to two columns between letters from 2.
func textStyle(size float64) (gap int, bold bool) {
	gap = int(size) - 1
	if gap < 0 {
		gap = 0
	}
	if gap > 2 {
		gap = 2
	}
	return gap, size >= 1.5
}

func (c *Canvas) text(s Shape) {
	x, y := c.vp.Project(s.X, s.Y)
	col, row := int(x), int(y)
	gap, bold := textStyle(s.Size)
	if s.Align == Center {
		n := utf8.RuneCountInString(s.Text)
		col -= (n + (n-1)*gap) / 2
	}
	if row < 0 || row >= c.vp.Height {
		return
	}
	for _, r := range s.Text {
		if col >= 0 && col < c.vp.Width {
			cell := &c.cells[row*c.vp.Width+col]
			cell.Rune = r
			cell.FG = blend(cell.BG, s.Color)
			cell.Bold = bold
		}
		col += 1 + gap
	}
}

// inside is the even-odd rule.
func inside(pts []Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func blend(dst, src color.RGBA) color.RGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.RGBA{mix(dst.R, src.R), mix(dst.G, src.G), mix(dst.B, src.B), 255}
}

// Encode writes the whole canvas as truecolor escape sequences, only
// switching colours when they change.
func (c *Canvas) Encode(b *strings.Builder) {
	var bg, fg color.RGBA
	bold := false
	first := true
	for row := 0; row < c.vp.Height; row++ {
		b.WriteString("\033[")
		b.WriteString(strconv.Itoa(row + 1))
		b.WriteString(";1H")
		for cl := 0; cl < c.vp.Width; cl++ {
			cell := c.cells[row*c.vp.Width+cl]
			if first || cell.BG != bg {
				writeColor(b, 48, cell.BG)
				bg = cell.BG
			}
			if first || cell.FG != fg {
				writeColor(b, 38, cell.FG)
				fg = cell.FG
			}
			if cell.Bold != bold {
				if cell.Bold {
					b.WriteString("\033[1m")
				} else {
					b.WriteString("\033[22m")
				}
				bold = cell.Bold
			}
			first = false
			b.WriteRune(cell.Rune)
		}
	}
	b.WriteString("\033[0m")
}

func writeColor(b *strings.Builder, layer int, c color.RGBA) {
	b.WriteString("\033[")
	b.WriteString(strconv.Itoa(layer))
	b.WriteString(";2;")
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteString(";")
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteString(";")
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteString("m")
}
