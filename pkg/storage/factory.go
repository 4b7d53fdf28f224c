package storage

import (
	"github.com/selectdb/observer/pkg/xerror"
)

const (
	TypeNone       = "none"
	TypeSQLite     = "sqlite3"
	TypeMysql      = "mysql"
	TypePostgresql = "postgresql"
)

// NewDB opens the backend named by conf.Type; TypeNone yields a nil DB.
func NewDB(conf Config) (DB, error) {
	switch conf.Type {
	case TypeNone, "":
		return nil, nil
	case TypeSQLite:
		if conf.Path == "" {
			return nil, xerror.Errorf(xerror.DB, "sqlite3 db path is empty")
		}
		return NewSQLiteDB(conf.Path)
	case TypeMysql:
		return NewMysqlDB(conf.Host, conf.Port, conf.User, conf.Password)
	case TypePostgresql:
		return NewPostgresqlDB(conf.Host, conf.Port, conf.User, conf.Password)
	default:
		return nil, xerror.Errorf(xerror.DB, "unknown db type: %s", conf.Type)
	}
}
