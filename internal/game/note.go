package game

import "time"

// Lanes is the number of parallel input channels notes fall through.
const Lanes = 4

type NoteType uint8

const (
	Normal NoteType = iota
	Hold
	Special
)

func (t NoteType) String() string {
	switch t {
	case Hold:
		return "hold"
	case Special:
		return "special"
	}
	return "normal"
}

// Multiplier is the score weight of a note of this type.
func (t NoteType) Multiplier() float64 {
	switch t {
	case Hold:
		return 1.5
	case Special:
		return 2.0
	}
	return 1.0
}

type NoteState uint8

const (
	Falling NoteState = iota
	Hit
	Missed
)

type Note struct {
	Lane     int      // The lane, 0 to Lanes-1
	Type     NoteType // Scoring weight and look
	Position float64  // Logical units fallen since spawn
	Speed    float64  // Logical units per second

	// This is state
	State NoteState
}

// Advance moves a falling note along the fall axis.
func (n *Note) Advance(dt time.Duration) {
	if n.State != Falling {
		return
	}
	n.Position += n.Speed * dt.Seconds()
}

// PastWindow reports whether a falling note has scrolled beyond any hit window.
func (n *Note) PastWindow(targetY, goodWindow float64) bool {
	return n.State == Falling && n.Position > targetY+goodWindow
}

// Distance to the target line, always positive.
func (n *Note) Distance(targetY float64) float64 {
	d := n.Position - targetY
	if d < 0 {
		return -d
	}
	return d
}
