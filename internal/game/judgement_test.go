package game

import (
	"math/rand"
	"testing"
)

const targetY = BaseHeight - targetOffset

func normal(t *testing.T) Profile {
	p, err := Lookup(Presets, "normal")
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestJudgePerfect(t *testing.T) {
	p := normal(t)
	s := NewStats()
	field := Field{}
	note := field.Add(Note{Lane: 0, Position: targetY - 10, Speed: p.NoteSpeed})

	j := Judge(0, field.Notes, p, targetY, &s)
	if j.Outcome != Perfect || j.Points != 100 || s.Combo != 1 || s.Score != 100 {
		t.Fatalf("expected perfect for 100 with combo 1, got %+v stats %+v", j, s)
	}
	if note.State != Hit {
		t.Error("judged note was not marked hit")
	}
	if s.PerfectStreak != 1 || s.PerfectHits != 1 || s.NotesHit != 1 {
		t.Errorf("unexpected counters %+v", s)
	}
}

func TestJudgeGood(t *testing.T) {
	p := normal(t)
	s := NewStats()
	s.PerfectStreak = 4
	s.Health = 50
	field := Field{}
	field.Add(Note{Lane: 2, Position: targetY + 25, Speed: p.NoteSpeed})

	j := Judge(2, field.Notes, p, targetY, &s)
	if j.Outcome != Good || j.Points != 50 {
		t.Fatalf("expected good for 50, got %+v", j)
	}
	if s.PerfectStreak != 0 || s.Combo != 1 || s.Health != 51 || s.GoodHits != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestJudgeMissEarlyPress(t *testing.T) {
	p := normal(t)
	s := NewStats()
	s.Combo = 7
	s.PerfectStreak = 3
	field := Field{}
	note := field.Add(Note{Lane: 1, Position: 0, Speed: p.NoteSpeed})

	j := Judge(1, field.Notes, p, targetY, &s)
	if j.Outcome != Miss || j.Points != 0 {
		t.Fatalf("expected a miss, got %+v", j)
	}
	if s.Combo != 0 || s.PerfectStreak != 0 || s.Health != 95 || s.Misses != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
	if note.State != Falling {
		t.Error("a missed press must leave the note falling")
	}
}

func TestJudgeNoCandidate(t *testing.T) {
	p := normal(t)
	s := NewStats()
	field := Field{}
	field.Add(Note{Lane: 1, Position: targetY})
	j := Judge(3, field.Notes, p, targetY, &s)
	if j.Outcome != None {
		t.Fatalf("expected no-op, got %+v", j)
	}
	if s != NewStats() {
		t.Errorf("stats changed on a no-op press: %+v", s)
	}
}

func TestJudgeClosestAndTie(t *testing.T) {
	p := normal(t)
	s := NewStats()
	field := Field{}
	far := field.Add(Note{Lane: 0, Position: targetY - 100})
	first := field.Add(Note{Lane: 0, Position: targetY - 5})
	second := field.Add(Note{Lane: 0, Position: targetY + 5})

	Judge(0, field.Notes, p, targetY, &s)
	if first.State != Hit || second.State != Falling || far.State != Falling {
		t.Fatal("expected the first of two equally close notes to be hit")
	}
	Judge(0, field.Notes, p, targetY, &s)
	if second.State != Hit {
		t.Fatal("expected the remaining close note to be hit next")
	}
}

func TestJudgeMultiplier(t *testing.T) {
	p := normal(t)
	tests := []struct {
		Type     NoteType
		Level    int
		Expected int
	}{
		{Normal, 1, 100},
		{Hold, 1, 150},
		{Special, 1, 200},
		{Normal, 2, 110},
		{Hold, 3, 180},
		{Special, 10, 380},
	}
	for _, test := range tests {
		s := NewStats()
		s.Level = test.Level
		field := Field{}
		field.Add(Note{Lane: 0, Type: test.Type, Position: targetY})
		j := Judge(0, field.Notes, p, targetY, &s)
		if j.Points != test.Expected {
			t.Errorf("%v at level %v: expected %v points, got %v", test.Type, test.Level, test.Expected, j.Points)
		}
	}
}

func TestJudgeComboMilestones(t *testing.T) {
	p := normal(t)
	s := NewStats()
	milestones := 0
	for i := 0; i < 20; i++ {
		field := Field{}
		field.Add(Note{Lane: i % Lanes, Position: targetY})
		if j := Judge(i%Lanes, field.Notes, p, targetY, &s); j.ComboMilestone {
			milestones++
		}
	}
	if s.Combo != 20 || milestones != 2 {
		t.Fatalf("expected 2 milestones at combo 20, got %v at combo %v", milestones, s.Combo)
	}
}

func TestJudgeProperties(t *testing.T) {
	p := normal(t)
	rng := rand.New(rand.NewSource(42))
	s := NewStats()
	s.Health = MaxHealth
	for i := 0; i < 2000; i++ {
		field := Field{}
		field.Add(Note{Lane: 0, Position: targetY + (rng.Float64()-0.5)*120})
		before := s
		j := Judge(0, field.Notes, p, targetY, &s)
		if s.Score < before.Score {
			t.Fatalf("score decreased from %v to %v", before.Score, s.Score)
		}
		if s.Health < 0 || s.Health > MaxHealth {
			t.Fatalf("health %v out of bounds", s.Health)
		}
		switch j.Outcome {
		case Miss:
			if s.Combo != 0 || s.PerfectStreak != 0 {
				t.Fatalf("miss did not reset combo: %+v", s)
			}
		case Perfect, Good:
			if s.Combo != before.Combo+1 {
				t.Fatalf("hit moved combo from %v to %v", before.Combo, s.Combo)
			}
		}
		if s.Health == 0 {
			s.Health = MaxHealth
		}
	}
}
