package score

import (
	"database/sql"
	"fmt"

	"git.lost.host/meutraa/rhythm/internal/log"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db  *sql.DB
	log *log.Logger
}

func OpenSQLite(path string, l *log.Logger) (*SQLiteStore, error) {
	if nil == l {
		l = log.Discard()
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists scores
	  (
		  id integer not null primary key,
		  name text,
		  score integer,
		  difficulty text,
		  max_combo integer,
		  accuracy real,
		  date text
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create score table: %w", err)
	}

	return &SQLiteStore{db: db, log: l}, nil
}

func (s *SQLiteStore) Load() []Record {
	records := []Record{}
	rows, err := s.db.Query("select name, score, difficulty, max_combo, accuracy, date from scores order by score desc, id asc limit ?", MaxRecords)
	if nil != err {
		s.log.Warnf("unable to load scores: %v", err)
		return records
	}
	defer rows.Close()
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.Score, &r.Difficulty, &r.MaxCombo, &r.Accuracy, &r.Date); nil != err {
			s.log.Warnf("unable to scan score: %v", err)
			continue
		}
		records = append(records, r)
	}
	return records
}

func (s *SQLiteStore) Save(r Record) []Record {
	previous := s.Load()
	tx, err := s.db.Begin()
	if nil != err {
		s.log.Errorf("unable to save score: %v", err)
		return previous
	}
	_, err = tx.Exec(
		"insert into scores(name, score, difficulty, max_combo, accuracy, date) values(?, ?, ?, ?, ?, ?)",
		r.Name, r.Score, r.Difficulty, r.MaxCombo, r.Accuracy, r.Date,
	)
	if nil == err {
		_, err = tx.Exec("delete from scores where id not in (select id from scores order by score desc, id asc limit ?)", MaxRecords)
	}
	if nil != err {
		tx.Rollback()
		s.log.Errorf("unable to save score: %v", err)
		return previous
	}
	if err := tx.Commit(); nil != err {
		s.log.Errorf("unable to commit score: %v", err)
		return previous
	}
	return s.Load()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
