package observer

import (
	"time"

	"github.com/google/uuid"
	"github.com/selectdb/observer/pkg/storage"
	"github.com/selectdb/observer/pkg/utils"
	"github.com/selectdb/observer/pkg/xerror"
)

// Recorder stores every update it receives as a storage.Record.
type Recorder[T any] struct {
	db  storage.DB
	now func() time.Time
}

func NewRecorder[T any](db storage.DB) *Recorder[T] {
	return &Recorder[T]{db: db, now: time.Now}
}

func (r *Recorder[T]) Update(source utils.Source, data T) error {
	payload, err := json.MarshalToString(data)
	if err != nil {
		return xerror.Wrapf(err, xerror.Normal, "marshal update from %s failed", source.Name())
	}

	record := &storage.Record{
		ID:        uuid.NewString(),
		Subject:   source.Name(),
		Payload:   payload,
		CreatedAt: r.now().UnixMilli(),
	}
	return r.db.AddRecord(record)
}
