package score

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/rhythm/internal/testdata"
)

func TestFileStoreMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "scores.yaml"), nil)
	if records := s.Load(); records == nil || len(records) != 0 {
		t.Errorf("missing file should be an empty table, got %v", records)
	}
}

func TestFileStoreLoad(t *testing.T) {
	path, err := testdata.Write(t.TempDir(), "scores.yaml", testdata.Scores)
	if nil != err {
		t.Fatal(err)
	}
	s := NewFileStore(path, nil)
	records := s.Load()
	if got := scores(records); !equal(got, []int{5400, 2500, 1200, 900, 300}) {
		t.Errorf("unexpected table %v", got)
	}
	if records[0].Name != "bob" || records[0].MaxCombo != 80 || records[0].Accuracy != 91.2 || records[0].Date != "2024-03-02 11:30" {
		t.Errorf("unexpected record %+v", records[0])
	}
}

func TestFileStoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	s := NewFileStore(path, nil)

	for _, score := range []int{10, 20, 30, 40, 50, 60} {
		s.Save(Record{Name: "p", Score: score, Difficulty: "normal", Date: "2024-01-01 00:00"})
	}
	records := NewFileStore(path, nil).Load()
	if got := scores(records); !equal(got, []int{60, 50, 40, 30, 20}) {
		t.Errorf("unexpected table %v", got)
	}

	data, err := os.ReadFile(path)
	if nil != err {
		t.Fatal(err)
	}
	for _, key := range []string{"name:", "score:", "difficulty:", "max_combo:", "accuracy:", "date:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("file is missing %v", key)
		}
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path, _ := testdata.Write(t.TempDir(), "scores.yaml", "{not: [a, list")
	s := NewFileStore(path, nil)
	if len(s.Load()) != 0 {
		t.Error("corrupt file should be an empty table")
	}
}

func TestFileStoreWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scores.yaml")
	s := NewFileStore(path, nil)
	if records := s.Save(Record{Score: 10}); len(records) != 0 {
		t.Errorf("failed save should return the previous table, got %v", records)
	}
}
