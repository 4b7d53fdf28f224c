package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/selectdb/observer/pkg/xerror"
)

// sqlDB implements DB over database/sql; backends differ in dialect only.
type sqlDB struct {
	db      *sql.DB
	name    string
	table   string
	dollars bool // postgresql style $n placeholders
}

func (s *sqlDB) query(q string) string {
	q = fmt.Sprintf(q, s.table)
	if !s.dollars {
		return q
	}

	var b strings.Builder
	n := 0
	for _, c := range q {
		if c == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (s *sqlDB) AddRecord(record *Record) error {
	// check record id exists, if exists, return error
	var count int
	if err := s.db.QueryRow(s.query("SELECT COUNT(*) FROM %s WHERE id = ?"), record.ID).Scan(&count); err != nil {
		return xerror.Wrapf(err, xerror.DB, "%s: query record %s failed", s.name, record.ID)
	}
	if count > 0 {
		return ErrRecordExists
	}

	insertSql := s.query("INSERT INTO %s (id, subject, payload, created_at) VALUES (?, ?, ?, ?)")
	if _, err := s.db.Exec(insertSql, record.ID, record.Subject, record.Payload, record.CreatedAt); err != nil {
		return xerror.Wrapf(err, xerror.DB, "%s: insert record %s failed", s.name, record.ID)
	}
	return nil
}

func (s *sqlDB) GetRecords(subject string) ([]*Record, error) {
	rows, err := s.db.Query(s.query("SELECT id, subject, payload, created_at FROM %s WHERE subject = ? ORDER BY seq"), subject)
	if err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "%s: query records of %s failed", s.name, subject)
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.Subject, &record.Payload, &record.CreatedAt); err != nil {
			return nil, xerror.Wrapf(err, xerror.DB, "%s: scan record of %s failed", s.name, subject)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "%s: iterate records of %s failed", s.name, subject)
	}
	return records, nil
}

func (s *sqlDB) CountRecords(subject string) (int, error) {
	var count int
	if err := s.db.QueryRow(s.query("SELECT COUNT(*) FROM %s WHERE subject = ?"), subject).Scan(&count); err != nil {
		return 0, xerror.Wrapf(err, xerror.DB, "%s: count records of %s failed", s.name, subject)
	}
	return count, nil
}

func (s *sqlDB) RemoveRecords(subject string) error {
	if _, err := s.db.Exec(s.query("DELETE FROM %s WHERE subject = ?"), subject); err != nil {
		return xerror.Wrapf(err, xerror.DB, "%s: remove records of %s failed", s.name, subject)
	}
	return nil
}

func (s *sqlDB) GetSubjects() ([]string, error) {
	rows, err := s.db.Query(s.query("SELECT DISTINCT subject FROM %s ORDER BY subject"))
	if err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "%s: query subjects failed", s.name)
	}
	defer rows.Close()

	subjects := make([]string, 0)
	for rows.Next() {
		var subject string
		if err := rows.Scan(&subject); err != nil {
			return nil, xerror.Wrapf(err, xerror.DB, "%s: scan subject failed", s.name)
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "%s: iterate subjects failed", s.name)
	}
	return subjects, nil
}

func (s *sqlDB) Close() error {
	if err := s.db.Close(); err != nil {
		return xerror.Wrapf(err, xerror.DB, "%s: close failed", s.name)
	}
	return nil
}
