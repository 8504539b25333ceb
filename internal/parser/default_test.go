package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/rhythm/internal/game"
	"git.lost.host/meutraa/rhythm/internal/testdata"
)

func TestParse(t *testing.T) {
	file, err := testdata.Write(t.TempDir(), "profiles.yaml", testdata.Profiles)
	if nil != err {
		t.Fatal(err)
	}

	psr := &DefaultParser{}
	profiles, err := psr.Parse(file)
	if nil != err {
		t.Fatal(err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %v", len(profiles))
	}
	insane := profiles[1]
	if insane.Name != "insane" || insane.NoteSpeed != 900 || insane.GoodWindow != 10 || insane.NotesToPass != 400 {
		t.Errorf("unexpected profile %+v", insane)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"empty":     "difficulties: []\n",
		"garbage":   "difficulties: [\n",
		"windows":   "difficulties:\n  - {name: a, note_speed: 1, spawn_interval_min: 1, spawn_interval_max: 1, perfect_window: 10, good_window: 5}\n",
		"duplicate": "difficulties:\n  - {name: a, note_speed: 1, spawn_interval_min: 1, spawn_interval_max: 1, perfect_window: 1, good_window: 5}\n  - {name: a, note_speed: 1, spawn_interval_min: 1, spawn_interval_max: 1, perfect_window: 1, good_window: 5}\n",
		"unnamed":   "difficulties:\n  - {note_speed: 1, spawn_interval_min: 1, spawn_interval_max: 1, perfect_window: 1, good_window: 5}\n",
	}
	psr := &DefaultParser{}
	for name, content := range tests {
		if _, err := psr.decode([]byte(content)); nil == err {
			t.Log(name, "should fail")
			t.Fail()
		}
	}

	_, err := psr.decode([]byte(tests["windows"]))
	if !errors.Is(err, game.ErrWindowOrder) {
		t.Errorf("expected a window order error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	psr := &DefaultParser{}

	profiles, err := Load(psr, "")
	if nil != err || len(profiles) != len(game.Presets) {
		t.Fatalf("empty file should give the presets, got %v %v", profiles, err)
	}

	file, _ := testdata.Write(t.TempDir(), "profiles.yaml", testdata.Profiles)
	profiles, err = Load(psr, file)
	if nil != err {
		t.Fatal(err)
	}
	if len(profiles) != len(game.Presets)+1 {
		t.Fatalf("expected one extra profile, got %v", len(profiles))
	}
	normal, _ := game.Lookup(profiles, "normal")
	if normal.NoteSpeed != 330 {
		t.Errorf("normal was not overridden: %+v", normal)
	}
	if profiles[len(profiles)-1].Name != "insane" {
		t.Error("new profiles go last")
	}

	profiles, err = Load(psr, filepath.Join(t.TempDir(), "missing.yaml"))
	if nil == err || len(profiles) != len(game.Presets) {
		t.Error("a missing file is an error and falls back to the presets")
	}
}
