package game

import (
	"errors"
	"testing"
)

func TestPresetsWindowOrder(t *testing.T) {
	for _, p := range Presets {
		if !(p.PerfectWindow < p.GoodWindow) {
			t.Errorf("%v: perfect window %v is not narrower than good window %v", p.Name, p.PerfectWindow, p.GoodWindow)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("%v: %v", p.Name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	p := Presets[1]
	p.PerfectWindow = p.GoodWindow
	if err := p.Validate(); !errors.Is(err, ErrWindowOrder) {
		t.Errorf("expected ErrWindowOrder, got %v", err)
	}

	p = Presets[1]
	p.SpawnIntervalMax = p.SpawnIntervalMin / 2
	if err := p.Validate(); err == nil {
		t.Error("expected an inverted spawn interval to be rejected")
	}

	p = Presets[1]
	p.Name = ""
	if err := p.Validate(); err == nil {
		t.Error("expected a nameless profile to be rejected")
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(Presets, DefaultProfile)
	if err != nil || p.Name != "normal" || p.PerfectWindow != 15 || p.GoodWindow != 30 {
		t.Fatalf("unexpected default profile %+v (%v)", p, err)
	}
	if _, err := Lookup(Presets, "impossible"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestNextProfile(t *testing.T) {
	order := []string{"easy", "normal", "hard", "expert", "master", "master"}
	for i := 0; i < len(order)-1; i++ {
		if next := NextProfile(Presets, order[i]); next.Name != order[i+1] {
			t.Errorf("after %v expected %v, got %v", order[i], order[i+1], next.Name)
		}
	}
}

func TestMerge(t *testing.T) {
	custom := Profile{Name: "hard", NoteSpeed: 1, SpawnIntervalMin: 1, SpawnIntervalMax: 1, PerfectWindow: 1, GoodWindow: 2}
	extra := Profile{Name: "zen", NoteSpeed: 60, SpawnIntervalMin: 2, SpawnIntervalMax: 3, PerfectWindow: 30, GoodWindow: 60}
	merged := Merge(Presets, []Profile{custom, extra})
	if len(merged) != len(Presets)+1 {
		t.Fatalf("expected %v profiles, got %v", len(Presets)+1, len(merged))
	}
	if merged[2].NoteSpeed != 1 {
		t.Error("hard was not overridden")
	}
	if merged[len(merged)-1].Name != "zen" {
		t.Error("zen was not appended")
	}
	if Presets[2].NoteSpeed != 420 {
		t.Error("presets were mutated by Merge")
	}
}

func TestPassed(t *testing.T) {
	p := Presets[0]
	s := NewStats()
	s.TotalNotesSpawned = 60
	s.NotesHit = 50
	if !p.Passed(&s) {
		t.Error("50 of 60 on easy should pass")
	}
	s.NotesHit = 40
	if p.Passed(&s) {
		t.Error("40 hits on easy should not pass")
	}
}
