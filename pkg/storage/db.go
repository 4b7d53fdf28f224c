package storage

import "errors"

var (
	ErrRecordExists = errors.New("record exists")
)

const (
	remoteDBName string = "observer"
)

// Record is one delivered notification as seen by a recording observer.
type Record struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Payload   string `json:"payload"`
	CreatedAt int64  `json:"created_at"`
}

type DB interface {
	// Add notification record
	AddRecord(record *Record) error
	// Get records of subject, in insertion order
	GetRecords(subject string) ([]*Record, error)
	// Count records of subject
	CountRecords(subject string) (int, error)
	// Remove all records of subject
	RemoveRecords(subject string) error
	// GetSubjects returns every subject with at least one record
	GetSubjects() ([]string, error)

	Close() error
}

type Config struct {
	Type     string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
}
