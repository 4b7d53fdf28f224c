package storage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/selectdb/observer/pkg/xerror"
)

type SQLiteDB struct {
	sqlDB
}

func NewSQLiteDB(dbPath string) (DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "sqlite3: open %s failed", dbPath)
	}

	// create table records, if not exists
	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS records (seq INTEGER PRIMARY KEY AUTOINCREMENT, id TEXT UNIQUE, subject TEXT, payload TEXT, created_at BIGINT)"); err != nil {
		db.Close()
		return nil, xerror.Wrap(err, xerror.DB, "sqlite3: create table records failed")
	}

	return &SQLiteDB{sqlDB{db: db, name: "sqlite3", table: "records"}}, nil
}
