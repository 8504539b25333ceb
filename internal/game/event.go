package game

type EventKind uint8

const (
	LanePress EventKind = iota
	PauseToggle
	DifficultySelect
	Quit
	Restart
	Skip
)

// Event is a debounced player action.
type Event struct {
	Kind       EventKind
	Lane       int
	Difficulty string
}
