package theme

import (
	"image/color"

	"git.lost.host/meutraa/rhythm/internal/fx"
	"git.lost.host/meutraa/rhythm/internal/game"
)

type Theme interface {
	Lane(lane int) color.RGBA
	Note(t game.NoteType, lane int) color.RGBA
	Outcome(o game.Outcome) color.RGBA
	Combo(combo int) color.RGBA
	Grade(grade string) color.RGBA
	Difficulty(name string) color.RGBA
	Animal(a fx.Animal) color.RGBA
}
