package fx

import (
	"testing"
	"time"

	"git.lost.host/meutraa/rhythm/internal/game"
)

const frame = time.Second / 60

func TestHitText(t *testing.T) {
	tests := []struct {
		J        game.Judgement
		Expected string
	}{
		{game.Judgement{Outcome: game.Perfect, Streak: 1}, "PERFECT!"},
		{game.Judgement{Outcome: game.Perfect, Streak: 5}, "PERFECT x5!"},
		{game.Judgement{Outcome: game.Good}, "GOOD!"},
		{game.Judgement{Outcome: game.Miss}, "MISS!"},
	}
	for _, test := range tests {
		if e := NewHitText(0, 0, test.J); e.Text != test.Expected {
			t.Errorf("expected %q, got %q", test.Expected, e.Text)
		}
	}
}

func TestHitTextRisesAndExpires(t *testing.T) {
	e := NewHitText(100, 500, game.Judgement{Outcome: game.Good})
	frames := 0
	for e.Update(frame) {
		frames++
		if frames > 100 {
			t.Fatal("hit text never expired")
		}
	}
	// 0.02 of life per frame
	if frames < 48 || frames > 50 {
		t.Errorf("expected about 50 frames of life, got %v", frames)
	}
	if e.Y >= 500 {
		t.Error("hit text did not rise")
	}
}

func TestLevelBannerLasts(t *testing.T) {
	e := NewLevelBanner(1, 2)
	if e.Text != "LEVEL UP! 1 → 2" {
		t.Errorf("unexpected banner %q", e.Text)
	}
	if !e.Update(1900 * time.Millisecond) {
		t.Fatal("level banner expired early")
	}
	if e.Update(200 * time.Millisecond) {
		t.Fatal("level banner outlived two seconds")
	}
}

func TestCelebrationAnimals(t *testing.T) {
	for lane := 0; lane < game.Lanes; lane++ {
		e := NewCelebration(200, 400, lane, 1)
		if e.Animal != AnimalForLane(lane) {
			t.Fatalf("lane %v: unexpected animal %v", lane, e.Animal)
		}
		for i := 0; i < 20; i++ {
			e.Update(frame)
		}
		switch e.Animal {
		case Bird:
			if e.Y >= 400 {
				t.Error("bird did not fly up")
			}
		case Rabbit:
			if e.X <= 200 {
				t.Error("rabbit did not hop right")
			}
		case Cat:
			if e.X >= 200 {
				t.Error("cat did not pounce left")
			}
		case Frog:
			if e.Y >= 400 {
				t.Error("frog did not rise")
			}
		}
		if e.Scale >= 1 || e.Scale < 0.7 {
			t.Errorf("%v: scale %v outside [0.7, 1)", e.Animal, e.Scale)
		}
	}
	if AnimalForLane(0).String() != "bird" || AnimalForLane(3).String() != "cat" {
		t.Error("unexpected animal names")
	}
}

func TestTier(t *testing.T) {
	tests := map[int]int{0: 0, 9: 0, 10: 1, 20: 2, 29: 2, 30: 3, 50: 4, 120: 4}
	for combo, expected := range tests {
		if out := Tier(combo); out != expected {
			t.Errorf("combo %v: expected tier %v, got %v", combo, expected, out)
		}
	}
}

func TestAlpha(t *testing.T) {
	e := Effect{Life: 1}
	if e.Alpha() != 255 {
		t.Error("fresh effect should be opaque")
	}
	e.Life = 0.5
	if e.Alpha() != 127 {
		t.Errorf("expected 127, got %v", e.Alpha())
	}
	e.Life = -1
	if e.Alpha() != 0 {
		t.Error("dead effect should be transparent")
	}
}
