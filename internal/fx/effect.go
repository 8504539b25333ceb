package fx

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/rhythm/internal/game"
)

type Kind uint8

const (
	HitText Kind = iota
	ComboBanner
	Celebration
	LevelBanner
)

type Animal uint8

const (
	Bird Animal = iota
	Frog
	Rabbit
	Cat
)

var animalNames = [...]string{"bird", "frog", "rabbit", "cat"}

func (a Animal) String() string {
	return animalNames[a]
}

// AnimalForLane picks the celebrating animal of a lane.
func AnimalForLane(lane int) Animal {
	return Animal(((lane % len(animalNames)) + len(animalNames)) % len(animalNames))
}

const (
	decayRate       = 1.2 // life per second, 0.02 per frame at 60 Hz
	levelBannerTime = 2.0 // seconds
	frameRate       = 60.0
	hitTextRise     = 120.0 // logical units per second
)

// Effect is a short lived piece of visual feedback. Kind decides which of
// the parameters are meaningful.
type Effect struct {
	Kind Kind
	X, Y float64
	Life float64 // 1 when created, removed once it reaches 0

	// HitText
	Text    string
	Outcome game.Outcome

	// ComboBanner
	Combo int

	// LevelBanner
	From, To int

	// Celebration
	Animal    Animal
	BaseScale float64
	Rotation  float64 // degrees
	Jump      float64

	Scale  float64
	Frames float64 // animation frames elapsed, fractional
}

func NewHitText(x, y float64, j game.Judgement) Effect {
	text := "MISS!"
	switch j.Outcome {
	case game.Perfect:
		text = "PERFECT!"
		if j.Streak >= 5 {
			text = fmt.Sprintf("PERFECT x%d!", j.Streak)
		}
	case game.Good:
		text = "GOOD!"
	}
	return Effect{Kind: HitText, X: x, Y: y, Life: 1, Text: text, Outcome: j.Outcome, Scale: 1}
}

func NewComboBanner(x, y float64, combo int) Effect {
	return Effect{
		Kind:  ComboBanner,
		X:     x,
		Y:     y - 50,
		Life:  1,
		Combo: combo,
		Text:  fmt.Sprintf("%d COMBO!", combo),
		Scale: 1,
	}
}

func NewCelebration(x, y float64, lane int, baseScale float64) Effect {
	return Effect{
		Kind:      Celebration,
		X:         x,
		Y:         y,
		Life:      1,
		Animal:    AnimalForLane(lane),
		BaseScale: baseScale,
		Scale:     baseScale,
	}
}

func NewLevelBanner(from, to int) Effect {
	return Effect{
		Kind:  LevelBanner,
		X:     game.BaseWidth / 2,
		Y:     game.BaseHeight / 2,
		Life:  1,
		From:  from,
		To:    to,
		Text:  fmt.Sprintf("LEVEL UP! %d → %d", from, to),
		Scale: 1,
	}
}

// Update ages the effect and reports whether it is still alive.
func (e *Effect) Update(dt time.Duration) bool {
	s := dt.Seconds()
	steps := s * frameRate
	e.Frames += steps

	switch e.Kind {
	case HitText:
		e.Y -= hitTextRise * s
		e.Life -= decayRate * s
	case ComboBanner:
		e.Life -= decayRate * s
		e.Scale = 1 + 0.2*math.Sin(e.Life*10)
	case LevelBanner:
		e.Life -= s / levelBannerTime
		e.Scale = 1 + 0.2*math.Sin(e.Frames/frameRate*10)
	case Celebration:
		e.Life -= decayRate * s
		e.animate(steps)
		e.Scale = e.BaseScale * (1 - 0.3*(1-e.Life))
	}
	return e.Life > 0
}

func (e *Effect) animate(steps float64) {
	switch e.Animal {
	case Bird:
		// Flies up in an arc
		e.Y -= 3 * steps
		e.X += math.Sin(e.Frames/5) * 3 * steps
		e.Rotation = math.Sin(e.Frames/3) * 15
	case Frog:
		e.Jump = math.Sin(e.Frames/10) * 30
		if e.Frames > 10 {
			e.Y -= steps
		}
	case Rabbit:
		e.X += 2 * steps
		e.Jump = math.Abs(math.Sin(e.Frames/5) * 20)
	case Cat:
		e.X -= 2 * steps
		e.Jump = math.Abs(math.Sin(e.Frames/5) * 15)
	}
}

// Alpha is the opacity of the effect, fading with its life.
func (e *Effect) Alpha() uint8 {
	if e.Life <= 0 {
		return 0
	}
	if e.Life >= 1 {
		return 255
	}
	return uint8(e.Life * 255)
}

// Tier groups combo banners by milestone size, 0 below ten.
func Tier(combo int) int {
	switch {
	case combo >= 50:
		return 4
	case combo >= 30:
		return 3
	case combo >= 20:
		return 2
	case combo >= 10:
		return 1
	}
	return 0
}
