package score

import (
	"fmt"

	"git.lost.host/meutraa/rhythm/internal/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	dataObject   = "scores"
	dataProperty = "top"
)

// DataStore keeps the table in the per user application data directory.
type DataStore struct {
	manager *gdata.Manager
	log     *log.Logger
}

func OpenData(appName string, l *log.Logger) (*DataStore, error) {
	if nil == l {
		l = log.Discard()
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if nil != err {
		return nil, fmt.Errorf("unable to open app data: %w", err)
	}
	return &DataStore{manager: manager, log: l}, nil
}

func (s *DataStore) Load() []Record {
	if !s.manager.ObjectPropExists(dataObject, dataProperty) {
		return []Record{}
	}
	data, err := s.manager.LoadObjectProp(dataObject, dataProperty)
	if nil != err {
		s.log.Warnf("unable to load scores: %v", err)
		return []Record{}
	}
	records, err := decode(data)
	if nil != err {
		s.log.Warnf("%v", err)
		return []Record{}
	}
	return records
}

func (s *DataStore) Save(r Record) []Record {
	previous := s.Load()
	records := insert(previous, r)
	data, err := yaml.Marshal(records)
	if nil != err {
		s.log.Errorf("unable to marshal scores: %v", err)
		return previous
	}
	if err := s.manager.SaveObjectProp(dataObject, dataProperty, data); nil != err {
		s.log.Errorf("unable to save scores: %v", err)
		return previous
	}
	return records
}

func (s *DataStore) Close() error {
	return nil
}
