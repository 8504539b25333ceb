package game

import "math"

type Outcome uint8

const (
	None Outcome = iota
	Perfect
	Good
	Miss
)

func (o Outcome) String() string {
	switch o {
	case Perfect:
		return "perfect"
	case Good:
		return "good"
	case Miss:
		return "miss"
	}
	return "none"
}

const (
	perfectPoints = 100
	goodPoints    = 50
	comboStep     = 10
)

// Judgement is the result of a lane press.
type Judgement struct {
	Outcome  Outcome
	Points   int
	Lane     int
	NoteType NoteType
	Distance float64

	Combo          int
	Streak         int
	ComboMilestone bool // combo just reached a multiple of ten
}

// Closest returns the falling note of a lane nearest to the target line.
// The first note wins a tie.
func Closest(notes []*Note, lane int, targetY float64) (*Note, float64) {
	var closest *Note
	distance := math.Inf(1)
	for _, n := range notes {
		if n.State != Falling || n.Lane != lane {
			continue
		}
		d := n.Distance(targetY)
		if d < distance {
			distance = d
			closest = n
		}
	}
	return closest, distance
}

// Judge matches a press in lane against the notes and applies the result
// to the stats. A press with no note in the lane is ignored.
func Judge(lane int, notes []*Note, p Profile, targetY float64, s *Stats) Judgement {
	note, d := Closest(notes, lane, targetY)
	if note == nil {
		return Judgement{Outcome: None, Lane: lane}
	}

	j := Judgement{Lane: lane, NoteType: note.Type, Distance: d}
	multiplier := ScoreMultiplier(s.Level) * note.Type.Multiplier()

	switch {
	case d <= p.PerfectWindow:
		j.Outcome = Perfect
		j.Points = int(math.Floor(perfectPoints * multiplier))
		s.PerfectStreak++
		s.PerfectHits++
		s.Heal(2)
	case d <= p.GoodWindow:
		j.Outcome = Good
		j.Points = int(math.Floor(goodPoints * multiplier))
		s.PerfectStreak = 0
		s.GoodHits++
		s.Heal(1)
	default:
		// Pressed too early or too late, the note keeps falling
		j.Outcome = Miss
		s.Break()
		s.Heal(-5)
		s.Misses++
	}

	if j.Outcome != Miss {
		note.State = Hit
		s.NotesHit++
		s.Score += j.Points
		s.Combo++
		if s.Combo > s.MaxCombo {
			s.MaxCombo = s.Combo
		}
		j.ComboMilestone = s.Combo%comboStep == 0
	}

	j.Combo = s.Combo
	j.Streak = s.PerfectStreak
	return j
}
