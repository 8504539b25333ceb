package score

import (
	"fmt"

	"git.lost.host/meutraa/rhythm/internal/log"
)

const (
	KindYAML   = "yaml"
	KindSQLite = "sqlite"
	KindData   = "gdata"

	AppName = "rhythm"
)

// Open picks a store by kind. path is the file for yaml and sqlite and is
// unused by gdata.
func Open(kind, path string, l *log.Logger) (Store, error) {
	switch kind {
	case KindYAML:
		return NewFileStore(path, l), nil
	case KindSQLite:
		return OpenSQLite(path, l)
	case KindData:
		return OpenData(AppName, l)
	}
	return nil, fmt.Errorf("unknown score store %q", kind)
}

// Memory is used when no store can be opened, so the table lasts for the
// process only.
type Memory struct {
	records []Record
}

func (m *Memory) Load() []Record {
	return append([]Record{}, m.records...)
}

func (m *Memory) Save(r Record) []Record {
	m.records = insert(m.records, r)
	return m.Load()
}

func (m *Memory) Close() error {
	return nil
}
