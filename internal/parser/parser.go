package parser

import "git.lost.host/meutraa/rhythm/internal/game"

type Parser interface {
	Parse(file string) ([]game.Profile, error)
}
