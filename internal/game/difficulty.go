package game

import (
	"errors"
	"fmt"
)

// Profile is a named difficulty bundle. Distances are in logical units,
// speeds in logical units per second and intervals in seconds.
type Profile struct {
	Name             string  `yaml:"name"`
	NoteSpeed        float64 `yaml:"note_speed"`
	SpawnIntervalMin float64 `yaml:"spawn_interval_min"`
	SpawnIntervalMax float64 `yaml:"spawn_interval_max"`
	PerfectWindow    float64 `yaml:"perfect_window"`
	GoodWindow       float64 `yaml:"good_window"`
	NotesToPass      int     `yaml:"notes_to_pass"`
	AccuracyToPass   float64 `yaml:"accuracy_to_pass"`
}

const DefaultProfile = "normal"

var (
	ErrUnknownProfile = errors.New("unknown difficulty")
	ErrWindowOrder    = errors.New("perfect window must be narrower than good window")
)

// Presets in progression order, easiest first.
var Presets = []Profile{
	{Name: "easy", NoteSpeed: 180, SpawnIntervalMin: 1.0, SpawnIntervalMax: 2.0, PerfectWindow: 20, GoodWindow: 40, NotesToPass: 50, AccuracyToPass: 70},
	{Name: "normal", NoteSpeed: 300, SpawnIntervalMin: 0.5, SpawnIntervalMax: 1.5, PerfectWindow: 15, GoodWindow: 30, NotesToPass: 100, AccuracyToPass: 75},
	{Name: "hard", NoteSpeed: 420, SpawnIntervalMin: 0.3, SpawnIntervalMax: 1.0, PerfectWindow: 10, GoodWindow: 20, NotesToPass: 150, AccuracyToPass: 80},
	{Name: "expert", NoteSpeed: 540, SpawnIntervalMin: 0.2, SpawnIntervalMax: 0.8, PerfectWindow: 8, GoodWindow: 15, NotesToPass: 200, AccuracyToPass: 85},
	{Name: "master", NoteSpeed: 720, SpawnIntervalMin: 0.1, SpawnIntervalMax: 0.5, PerfectWindow: 5, GoodWindow: 10, NotesToPass: 300, AccuracyToPass: 90},
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.New("difficulty has no name")
	}
	if p.NoteSpeed <= 0 {
		return fmt.Errorf("%s: note speed must be positive", p.Name)
	}
	if p.SpawnIntervalMin <= 0 || p.SpawnIntervalMax < p.SpawnIntervalMin {
		return fmt.Errorf("%s: invalid spawn interval [%v, %v]", p.Name, p.SpawnIntervalMin, p.SpawnIntervalMax)
	}
	if p.PerfectWindow <= 0 || p.PerfectWindow >= p.GoodWindow {
		return fmt.Errorf("%s: %w", p.Name, ErrWindowOrder)
	}
	return nil
}

// Passed reports whether a run on this profile cleared it.
func (p Profile) Passed(s *Stats) bool {
	return s.NotesHit >= p.NotesToPass && s.HitRate() >= p.AccuracyToPass
}

// Lookup finds a profile by name.
func Lookup(profiles []Profile, name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// NextProfile returns the profile after name in the progression, or name's
// own profile when it is the last one.
func NextProfile(profiles []Profile, name string) Profile {
	for i, p := range profiles {
		if p.Name != name {
			continue
		}
		if i+1 < len(profiles) {
			return profiles[i+1]
		}
		return p
	}
	return profiles[0]
}

// Merge overrides presets by name and appends new profiles after them.
func Merge(base, extra []Profile) []Profile {
	out := make([]Profile, len(base))
	copy(out, base)
	for _, e := range extra {
		replaced := false
		for i := range out {
			if out[i].Name == e.Name {
				out[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, e)
		}
	}
	return out
}
