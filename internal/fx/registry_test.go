package fx

import (
	"testing"
	"time"

	"git.lost.host/meutraa/rhythm/internal/game"
)

func TestRegistryLifecycle(t *testing.T) {
	r := Registry{}
	r.Add(NewHitText(0, 0, game.Judgement{Outcome: game.Perfect}))
	r.Add(NewComboBanner(400, 300, 10))
	r.Add(NewLevelBanner(1, 2))
	if r.Len() != 3 || r.Count(ComboBanner) != 1 {
		t.Fatalf("unexpected registry %v", r.Effects())
	}

	r.Update(time.Second)
	if r.Len() != 1 || r.Count(LevelBanner) != 1 {
		t.Fatalf("expected only the level banner to survive a second, got %v", r.Effects())
	}

	r.Update(2 * time.Second)
	if r.Len() != 0 {
		t.Fatalf("expected every effect to expire, got %v", r.Effects())
	}
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	r := Registry{}
	r.Add(NewComboBanner(400, 300, 20))
	snapshot := r.Effects()
	snapshot[0].Life = 0
	r.Update(0)
	if r.Len() != 1 {
		t.Fatal("mutating a snapshot changed the registry")
	}
	r.Clear()
	if r.Len() != 0 {
		t.Fatal("clear left effects behind")
	}
}
