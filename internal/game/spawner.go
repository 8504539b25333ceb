package game

import (
	"math/rand"
	"time"
)

const firstSpawn = 1.0 // seconds before the first note

// Spawner emits notes on a randomized countdown.
type Spawner struct {
	countdown float64
}

func NewSpawner() *Spawner {
	return &Spawner{countdown: firstSpawn}
}

// TrySpawn counts down by dt and emits at most one note when the countdown
// runs out. Intervals owed by a long tick are not made up.
func (s *Spawner) TrySpawn(dt time.Duration, p Profile, rng *rand.Rand) (Note, bool) {
	s.countdown -= dt.Seconds()
	if s.countdown > 0 {
		return Note{}, false
	}

	note := Note{
		Lane:  rng.Intn(Lanes),
		Type:  RollType(rng.Float64()),
		Speed: p.NoteSpeed,
		State: Falling,
	}
	s.countdown = p.SpawnIntervalMin + rng.Float64()*(p.SpawnIntervalMax-p.SpawnIntervalMin)
	return note, true
}

// Countdown is the time left until the next spawn, in seconds.
func (s *Spawner) Countdown() float64 {
	return s.countdown
}

// RollType maps a uniform draw in [0, 1) to a note type.
func RollType(r float64) NoteType {
	switch {
	case r < 0.1:
		return Special
	case r < 0.2:
		return Hold
	}
	return Normal
}
