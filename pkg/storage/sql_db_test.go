package storage

import (
	"io"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

func newTestSQLiteDB(t *testing.T) DB {
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "observer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteDB_Records(t *testing.T) {
	db := newTestSQLiteDB(t)

	require.NoError(t, db.AddRecord(&Record{ID: "1", Subject: "sensor", Payload: "11", CreatedAt: 100}))
	require.NoError(t, db.AddRecord(&Record{ID: "2", Subject: "sensor", Payload: "17", CreatedAt: 100}))
	require.NoError(t, db.AddRecord(&Record{ID: "3", Subject: "processor", Payload: `{"action":"add"}`, CreatedAt: 101}))

	records, err := db.GetRecords("sensor")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, &Record{ID: "1", Subject: "sensor", Payload: "11", CreatedAt: 100}, records[0])
	assert.Equal(t, "17", records[1].Payload)

	count, err := db.CountRecords("processor")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	subjects, err := db.GetSubjects()
	require.NoError(t, err)
	assert.Equal(t, []string{"processor", "sensor"}, subjects)

	require.NoError(t, db.RemoveRecords("sensor"))
	count, err = db.CountRecords("sensor")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	records, err = db.GetRecords("sensor")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteDB_AddRecordExists(t *testing.T) {
	db := newTestSQLiteDB(t)

	record := &Record{ID: "dup", Subject: "sensor", Payload: "1", CreatedAt: 1}
	require.NoError(t, db.AddRecord(record))
	assert.ErrorIs(t, db.AddRecord(record), ErrRecordExists)
}

func TestSqlDB_Query(t *testing.T) {
	s := &sqlDB{table: "observer.records", dollars: true}
	assert.Equal(t, "INSERT INTO observer.records (a, b) VALUES ($1, $2)", s.query("INSERT INTO %s (a, b) VALUES (?, ?)"))

	s = &sqlDB{table: "records"}
	assert.Equal(t, "DELETE FROM records WHERE subject = ?", s.query("DELETE FROM %s WHERE subject = ?"))
}

func TestNewDB(t *testing.T) {
	db, err := NewDB(Config{Type: TypeNone})
	assert.NoError(t, err)
	assert.Nil(t, db)

	_, err = NewDB(Config{Type: "oracle"})
	assert.Error(t, err)

	_, err = NewDB(Config{Type: TypeSQLite})
	assert.Error(t, err)

	db, err = NewDB(Config{Type: TypeSQLite, Path: filepath.Join(t.TempDir(), "observer.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteDB{}, db)
	assert.NoError(t, db.Close())
}
