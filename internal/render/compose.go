package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"git.lost.host/meutraa/rhythm/internal/fx"
	"git.lost.host/meutraa/rhythm/internal/game"
	"git.lost.host/meutraa/rhythm/internal/session"
	"git.lost.host/meutraa/rhythm/internal/theme"
)

const (
	fieldW = game.BaseWidth
	fieldH = game.BaseHeight

	buttonRadius = 35
)

var (
	white  = theme.White
	gray   = theme.Gray
	red    = theme.Red
	green  = theme.Green
	orange = theme.Orange
	yellow = theme.Yellow
	purple = theme.Purple
	shade  = color.RGBA{0, 0, 0, 128}
)

// Compose turns a session frame into draw calls.
func Compose(f session.Frame, th theme.Theme) *Model {
	m := &Model{Background: theme.Black}
	vp := f.Viewport

	composeField(m, vp, th)
	for _, n := range f.Notes {
		composeNote(m, vp, th, n)
	}
	for _, e := range f.Effects {
		composeEffect(m, th, e)
	}
	composeHUD(m, f, th)

	switch f.State {
	case session.Paused:
		composePause(m)
	case session.GameOver:
		composeGameOver(m, f, th)
	}
	return m
}

func composeField(m *Model, vp game.Viewport, th theme.Theme) {
	w := vp.LaneWidth()
	targetY := vp.TargetY()
	for i := 0; i < game.Lanes; i++ {
		x := float64(i+1) * w
		m.Line(x, 0, x, fieldH, gray)
	}
	m.Line(0, targetY, fieldW, targetY, white)

	for i := 0; i < game.Lanes; i++ {
		x := vp.LaneX(i)
		m.Circle(x, targetY, buttonRadius, withAlpha(th.Lane(i), 96), true)
		m.Circle(x, targetY, buttonRadius, th.Lane(i), false)
		m.Polygon(white, arrow(i, x, targetY)...)
	}
}

// arrow is the key glyph of a lane: up, down, right, left.
func arrow(lane int, x, y float64) []Point {
	switch lane {
	case 0:
		return []Point{{x, y - 15}, {x - 12, y + 5}, {x + 12, y + 5}}
	case 1:
		return []Point{{x, y + 15}, {x - 12, y - 5}, {x + 12, y - 5}}
	case 2:
		return []Point{{x + 15, y}, {x - 5, y - 12}, {x - 5, y + 12}}
	}
	return []Point{{x - 15, y}, {x + 5, y - 12}, {x + 5, y + 12}}
}

func composeNote(m *Model, vp game.Viewport, th theme.Theme, n game.Note) {
	x, y := vp.LaneX(n.Lane), n.Position
	c := th.Note(n.Type, n.Lane)
	switch n.Type {
	case game.Special:
		m.Rect(x-30, y-15, 60, 30, c)
		m.Polygon(white, Point{x, y - 10}, Point{x + 10, y}, Point{x, y + 10}, Point{x - 10, y})
	case game.Hold:
		m.Rect(x-25, y-30, 50, 60, c)
		m.Line(x, y-25, x, y+25, white)
	default:
		m.Rect(x-25, y-10, 50, 20, c)
	}
}

func composeEffect(m *Model, th theme.Theme, e fx.Effect) {
	a := e.Alpha()
	switch e.Kind {
	case fx.HitText:
		m.Text(e.X, e.Y, e.Text, withAlpha(th.Outcome(e.Outcome), a), Center, 1)
	case fx.ComboBanner:
		m.Text(e.X, e.Y, e.Text, withAlpha(th.Combo(e.Combo), a), Center, 1.5*e.Scale)
	case fx.LevelBanner:
		m.Rect(0, 0, fieldW, fieldH, shade)
		m.Text(e.X, e.Y, e.Text, orange, Center, 2*e.Scale)
		bonus := fmt.Sprintf("Score Multiplier: +%d%%", (e.To-1)*10)
		m.Text(e.X, e.Y+50, bonus, yellow, Center, 1)
	case fx.Celebration:
		composeAnimal(m, th, e)
	}
}

func composeAnimal(m *Model, th theme.Theme, e fx.Effect) {
	size := 30 * e.Scale
	c := withAlpha(th.Animal(e.Animal), e.Alpha())
	x, y := e.X, e.Y-e.Jump
	eye := withAlpha(white, e.Alpha())

	switch e.Animal {
	case fx.Bird:
		rot := e.Rotation * math.Pi / 180
		wings := []Point{{x - size, y}, {x, y - size/2}, {x + size, y}}
		for i, p := range wings {
			dx, dy := p.X-x, p.Y-y
			wings[i] = Point{
				X: x + dx*math.Cos(rot) - dy*math.Sin(rot),
				Y: y + dx*math.Sin(rot) + dy*math.Cos(rot),
			}
		}
		m.Polygon(c, wings...)
		m.Circle(x, y, size/2, c, true)
		m.Circle(x+size/4*math.Cos(rot), y-size/4*math.Sin(rot), size/6, eye, true)
	case fx.Frog:
		m.Circle(x, y, size/1.5, c, true)
		legX := size / 2
		if int(e.Frames)%10 < 5 {
			legX = size
		}
		m.Rect(x-legX, y+size/3, size/2, size/4, c)
		m.Rect(x+legX-size/2, y+size/3, size/2, size/4, c)
		m.Circle(x-size/4, y-size/4, size/5, eye, true)
		m.Circle(x+size/4, y-size/4, size/5, eye, true)
	case fx.Rabbit:
		m.Circle(x, y, size/2, c, true)
		ear := size * 1.2
		m.Rect(x-size/3, y-ear, size/3, ear-size/3, c)
		m.Rect(x+size/3-size/3, y-ear, size/3, ear-size/3, c)
		m.Circle(x-size/8, y-size/8, size/10, eye, true)
		m.Circle(x+size/8, y-size/8, size/10, eye, true)
	case fx.Cat:
		m.Circle(x, y-size/2, size/2, c, true)
		spacing := size / 1.5
		m.Polygon(c, Point{x - spacing/2, y - size/2}, Point{x - spacing, y - size}, Point{x, y - size})
		m.Polygon(c, Point{x + spacing/2, y - size/2}, Point{x + spacing, y - size}, Point{x, y - size})
		if int(e.Frames)%20 < 10 {
			m.Circle(x-size/4, y-size/2, size/8, eye, true)
			m.Circle(x+size/4, y-size/2, size/8, eye, true)
		} else {
			m.Line(x-size/3, y-size/2, x-size/6, y-size/2, eye)
			m.Line(x+size/6, y-size/2, x+size/3, y-size/2, eye)
		}
	}
}

func composeHUD(m *Model, f session.Frame, th theme.Theme) {
	s := f.Stats
	m.Text(10, 10, fmt.Sprintf("Score: %d", s.Score), white, Left, 1)
	m.Text(10, 50, fmt.Sprintf("Level: %d", s.Level), orange, Left, 1)

	// Level progress bar
	m.Rect(10, 75, 150, 8, gray)
	m.Rect(10, 75, 150*f.Progress, 8, orange)

	m.Text(10, 90, fmt.Sprintf("Combo: %d", s.Combo), white, Left, 1)
	m.Text(10, 130, fmt.Sprintf("Difficulty: %s", strings.ToUpper(f.Profile.Name)), th.Difficulty(f.Profile.Name), Left, 1)
	if s.PerfectStreak >= 3 {
		m.Text(10, 170, fmt.Sprintf("Perfect Streak: %d", s.PerfectStreak), purple, Left, 1)
	}

	// Health bar
	m.Rect(fieldW-210, 10, 200, 20, red)
	m.Rect(fieldW-210, 10, 200*float64(s.Health)/game.MaxHealth, 20, green)
	m.Text(fieldW-100, 40, fmt.Sprintf("Grade: %s", f.Grade), white, Left, 1)
}

func composePause(m *Model) {
	m.Rect(0, 0, fieldW, fieldH, shade)
	m.Text(fieldW/2, fieldH/2, "PAUSED", white, Center, 1)
	m.Text(fieldW/2, fieldH/2+40, "Press ESC to resume, 1-5 to change difficulty", white, Center, 1)
	m.Text(fieldW/2, fieldH/2+80, "Controls: ↑ ↓ → ←", white, Center, 1)
}

func composeGameOver(m *Model, f session.Frame, th theme.Theme) {
	p := f.Over
	pulse := 0.3 + 0.2*math.Sin(p*10)
	m.Rect(0, 0, fieldW, fieldH, color.RGBA{uint8(128 * pulse), 0, 0, 100})

	grow := 0.1 + 2.9*math.Min(1, p*2)
	m.Text(fieldW/2, fieldH/2-140, "GAME OVER", red, Center, grow)
	if p <= 0.5 {
		return
	}

	fade := uint8(255 * math.Min(1, (p-0.5)*2))
	s := f.Stats
	accuracy := "Accuracy: N/A"
	if s.TotalNotesSpawned > 0 {
		accuracy = fmt.Sprintf("Accuracy: %.1f%%", s.HitRate())
	}
	lines := []struct {
		text string
		c    color.RGBA
		y    float64
	}{
		{fmt.Sprintf("Final Score: %d", s.Score), white, -80},
		{fmt.Sprintf("Level Reached: %d", s.Level), orange, -40},
		{fmt.Sprintf("Max Combo: %d", s.MaxCombo), white, 0},
		{accuracy, white, 40},
		{fmt.Sprintf("Grade: %s", f.Grade), th.Grade(f.Grade), 100},
		{fmt.Sprintf("Perfect: %d | Good: %d | Miss: %d", s.PerfectHits, s.GoodHits, s.Misses), white, 160},
		{"Press R to restart or ESC to quit", white, 200},
	}
	for _, l := range lines {
		m.Text(fieldW/2, fieldH/2+l.y, l.text, withAlpha(l.c, fade), Center, 1)
	}
	if f.Grade == "S" || f.Grade == "A" {
		glow := withAlpha(th.Grade(f.Grade), fade/3)
		m.Rect(fieldW/2-80, fieldH/2+90, 160, 24, glow)
	}
	if f.Passed {
		cleared := fmt.Sprintf("%s CLEARED!", strings.ToUpper(f.Profile.Name))
		m.Text(fieldW/2, fieldH/2+130, cleared, withAlpha(th.Difficulty(f.Profile.Name), fade), Center, 1)
	}
}
