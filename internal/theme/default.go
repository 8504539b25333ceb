package theme

import (
	"image/color"

	"git.lost.host/meutraa/rhythm/internal/fx"
	"git.lost.host/meutraa/rhythm/internal/game"
)

type DefaultTheme struct {
}

var (
	White  = color.RGBA{255, 255, 255, 255}
	Black  = color.RGBA{0, 0, 0, 255}
	Gray   = color.RGBA{50, 50, 50, 255}
	Red    = color.RGBA{255, 0, 0, 255}
	Green  = color.RGBA{0, 255, 0, 255}
	Blue   = color.RGBA{0, 0, 255, 255}
	Yellow = color.RGBA{255, 255, 0, 255}
	Purple = color.RGBA{128, 0, 128, 255}
	Cyan   = color.RGBA{0, 255, 255, 255}
	Orange = color.RGBA{255, 165, 0, 255}
)

var (
	laneColors  = [...]color.RGBA{Red, Green, Blue, Yellow}
	comboColors = [...]color.RGBA{White, Yellow, Cyan, Orange, Purple}
	gradeColors = map[string]color.RGBA{
		"S": Purple,
		"A": Yellow,
		"B": Green,
		"C": Blue,
		"D": Orange,
	}
)

func (t *DefaultTheme) Lane(lane int) color.RGBA {
	if lane < 0 || lane >= len(laneColors) {
		return White
	}
	return laneColors[lane]
}

func (t *DefaultTheme) Note(nt game.NoteType, lane int) color.RGBA {
	switch nt {
	case game.Special:
		return Purple
	case game.Hold:
		return Cyan
	}
	return t.Lane(lane)
}

func (t *DefaultTheme) Outcome(o game.Outcome) color.RGBA {
	switch o {
	case game.Perfect:
		return Green
	case game.Good:
		return Blue
	case game.Miss:
		return Red
	}
	return White
}

func (t *DefaultTheme) Combo(combo int) color.RGBA {
	return comboColors[fx.Tier(combo)]
}

func (t *DefaultTheme) Grade(grade string) color.RGBA {
	col, ok := gradeColors[grade]
	if !ok {
		return White
	}
	return col
}

func (t *DefaultTheme) Difficulty(name string) color.RGBA {
	switch name {
	case "easy":
		return Green
	case "normal":
		return Yellow
	}
	return Red
}

func (t *DefaultTheme) Animal(a fx.Animal) color.RGBA {
	return t.Lane(int(a))
}
