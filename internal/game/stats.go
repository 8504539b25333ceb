package game

const MaxHealth = 100

// Stats accumulated over one session.
type Stats struct {
	Score         int
	Combo         int
	MaxCombo      int
	PerfectStreak int
	Health        int
	Level         int

	TotalNotesSpawned int
	NotesHit          int
	PerfectHits       int
	GoodHits          int
	Misses            int
}

func NewStats() Stats {
	return Stats{Health: MaxHealth, Level: 1}
}

// Heal adds or removes health, keeping it within [0, MaxHealth].
func (s *Stats) Heal(delta int) {
	s.Health += delta
	if s.Health > MaxHealth {
		s.Health = MaxHealth
	} else if s.Health < 0 {
		s.Health = 0
	}
}

// Break resets the combo and perfect streak.
func (s *Stats) Break() {
	s.Combo = 0
	s.PerfectStreak = 0
}

// MissNote applies the penalty for a note that scrolled past the target.
func (s *Stats) MissNote() {
	s.Break()
	s.Heal(-10)
	s.Misses++
}

// HitRate is the percentage of spawned notes that were hit.
func (s *Stats) HitRate() float64 {
	if s.TotalNotesSpawned == 0 {
		return 0
	}
	return float64(s.NotesHit) / float64(s.TotalNotesSpawned) * 100
}

func (s *Stats) Grade() string {
	return Grade(s.PerfectHits, s.GoodHits, s.TotalNotesSpawned, s.MaxCombo)
}

func (s *Stats) Dead() bool {
	return s.Health <= 0
}
