package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/selectdb/observer/pkg/xerror"
)

type MysqlDB struct {
	sqlDB
}

func NewMysqlDB(host string, port int, user string, password string) (DB, error) {
	dbForDDL, err := sql.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%d)/", user, password, host, port))
	if err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "mysql: open %s@tcp(%s:%d) failed", user, host, port)
	}

	if _, err := dbForDDL.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", remoteDBName)); err != nil {
		dbForDDL.Close()
		return nil, xerror.Wrapf(err, xerror.DB, "mysql: create database %s failed", remoteDBName)
	}
	dbForDDL.Close()

	db, err := sql.Open("mysql", fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", user, password, host, port, remoteDBName))
	if err != nil {
		return nil, xerror.Wrapf(err, xerror.DB, "mysql: open in db %s@tcp(%s:%d)/%s failed", user, host, port, remoteDBName)
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS records (`seq` BIGINT AUTO_INCREMENT PRIMARY KEY, `id` VARCHAR(64) UNIQUE, `subject` VARCHAR(512), `payload` TEXT, `created_at` BIGINT)"); err != nil {
		db.Close()
		return nil, xerror.Wrap(err, xerror.DB, "mysql: create table records failed")
	}

	return &MysqlDB{sqlDB{db: db, name: "mysql", table: "records"}}, nil
}
