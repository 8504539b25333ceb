package input

import "git.lost.host/meutraa/rhythm/internal/game"

// Source yields the player actions that arrived since the last poll.
type Source interface {
	Poll() []game.Event
	Close() error
}

// Bindings maps runes to lanes, and the digit keys to difficulty names in
// order, "1" being the first.
type Bindings struct {
	Lanes        []rune
	Difficulties []string
}

func DefaultBindings(difficulties []string) Bindings {
	return Bindings{
		Lanes:        []rune("dfjk"),
		Difficulties: difficulties,
	}
}

// Lane returns the lane bound to a rune, or -1.
func (b Bindings) Lane(r rune) int {
	for i, c := range b.Lanes {
		if i >= game.Lanes {
			break
		}
		if r == c {
			return i
		}
	}
	return -1
}
