package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/selectdb/observer/pkg/xerror"
)

type PostgresqlDB struct {
	sqlDB
}

func NewPostgresqlDB(host string, port int, user string, password string) (DB, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", user, password, host, port, "postgres")
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "postgresql: open %s:%d failed", host, port)
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", remoteDBName)); err != nil {
		db.Close()
		return nil, xerror.Wrapf(err, xerror.DB, "postgresql: create schema %s failed", remoteDBName)
	}

	if _, err = db.Exec(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.records (seq BIGSERIAL PRIMARY KEY, id VARCHAR(64) UNIQUE, subject VARCHAR(512), payload TEXT, created_at BIGINT)", remoteDBName)); err != nil {
		db.Close()
		return nil, xerror.Wrap(err, xerror.DB, "postgresql: create table records failed")
	}

	table := fmt.Sprintf("%s.records", remoteDBName)
	return &PostgresqlDB{sqlDB{db: db, name: "postgresql", table: table, dollars: true}}, nil
}
