package score

import (
	"errors"
	"fmt"
	"os"

	"git.lost.host/meutraa/rhythm/internal/log"
	"gopkg.in/yaml.v3"
)

// FileStore keeps the table as a YAML list in a single file.
type FileStore struct {
	path string
	log  *log.Logger
}

func NewFileStore(path string, l *log.Logger) *FileStore {
	if nil == l {
		l = log.Discard()
	}
	return &FileStore{path: path, log: l}
}

func (s *FileStore) read() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Record{}, nil
	}
	if nil != err {
		return nil, fmt.Errorf("unable to read scores: %w", err)
	}
	return decode(data)
}

func (s *FileStore) Load() []Record {
	records, err := s.read()
	if nil != err {
		s.log.Warnf("%v", err)
		return []Record{}
	}
	return records
}

func (s *FileStore) Save(r Record) []Record {
	previous := s.Load()
	records := insert(previous, r)
	data, err := yaml.Marshal(records)
	if nil != err {
		s.log.Errorf("unable to marshal scores: %v", err)
		return previous
	}
	if err := os.WriteFile(s.path, data, 0644); nil != err {
		s.log.Errorf("unable to write scores: %v", err)
		return previous
	}
	return records
}

func (s *FileStore) Close() error {
	return nil
}

func decode(data []byte) ([]Record, error) {
	records := []Record{}
	if err := yaml.Unmarshal(data, &records); nil != err {
		return nil, fmt.Errorf("unable to parse scores: %w", err)
	}
	// files edited by hand may be unsorted or too long
	sorted := []Record{}
	for _, r := range records {
		sorted = insert(sorted, r)
	}
	return sorted, nil
}
