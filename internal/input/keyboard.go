package input

import (
	"fmt"

	"git.lost.host/meutraa/rhythm/internal/game"
	"git.lost.host/meutraa/rhythm/internal/log"
	"github.com/eiannone/keyboard"
)

const bufferSize = 128

type KeyboardSource struct {
	keys     <-chan keyboard.KeyEvent
	bindings Bindings
	log      *log.Logger
	close    func() error
}

// OpenKeyboard puts the terminal into key reading mode.
func OpenKeyboard(b Bindings, l *log.Logger) (*KeyboardSource, error) {
	keys, err := keyboard.GetKeys(bufferSize)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	s := NewKeyboardSource(keys, b, l)
	s.close = keyboard.Close
	return s, nil
}

// NewKeyboardSource reads from an existing key channel.
func NewKeyboardSource(keys <-chan keyboard.KeyEvent, b Bindings, l *log.Logger) *KeyboardSource {
	if nil == l {
		l = log.Discard()
	}
	return &KeyboardSource{keys: keys, bindings: b, log: l}
}

// Poll drains the key channel without blocking.
func (s *KeyboardSource) Poll() []game.Event {
	events := []game.Event{}
	for {
		select {
		case key, ok := <-s.keys:
			if !ok {
				return events
			}
			if nil != key.Err {
				s.log.Warnf("keyboard: %v", key.Err)
				continue
			}
			if ev, ok := Translate(key, s.bindings); ok {
				events = append(events, ev)
			}
		default:
			return events
		}
	}
}

func (s *KeyboardSource) Close() error {
	if nil == s.close {
		return nil
	}
	return s.close()
}

// Translate maps one key press to a game event. Unmapped keys report false.
func Translate(key keyboard.KeyEvent, b Bindings) (game.Event, bool) {
	switch key.Key {
	case keyboard.KeyArrowUp:
		return game.Event{Kind: game.LanePress, Lane: 0}, true
	case keyboard.KeyArrowDown:
		return game.Event{Kind: game.LanePress, Lane: 1}, true
	case keyboard.KeyArrowRight:
		return game.Event{Kind: game.LanePress, Lane: 2}, true
	case keyboard.KeyArrowLeft:
		return game.Event{Kind: game.LanePress, Lane: 3}, true
	case keyboard.KeyEsc:
		return game.Event{Kind: game.PauseToggle}, true
	case keyboard.KeyCtrlC:
		return game.Event{Kind: game.Quit}, true
	case keyboard.KeySpace, keyboard.KeyEnter:
		return game.Event{Kind: game.Skip}, true
	}
	if key.Key != 0 {
		return game.Event{}, false
	}

	if lane := b.Lane(key.Rune); lane >= 0 {
		return game.Event{Kind: game.LanePress, Lane: lane}, true
	}
	switch key.Rune {
	case 'p':
		return game.Event{Kind: game.PauseToggle}, true
	case 'r':
		return game.Event{Kind: game.Restart}, true
	case 'q':
		return game.Event{Kind: game.Quit}, true
	}
	if key.Rune >= '1' && key.Rune <= '9' {
		i := int(key.Rune - '1')
		if i < len(b.Difficulties) {
			return game.Event{Kind: game.DifficultySelect, Difficulty: b.Difficulties[i]}, true
		}
	}
	return game.Event{}, false
}
