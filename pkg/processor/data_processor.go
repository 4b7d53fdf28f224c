package processor

import (
	"github.com/selectdb/observer/pkg/notifier"
	"github.com/selectdb/observer/pkg/utils"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
)

const degree = 32

// DataProcessor keeps key/value data points and notifies its observers with a
// DataChange on every add and on every remove of an existing key.
type DataProcessor struct {
	name     string
	data     *btree.Map[string, any]
	notifier *notifier.Notifier[DataChange]
}

var _ utils.Subject[DataChange] = (*DataProcessor)(nil)

func NewDataProcessor(name string) *DataProcessor {
	if name == "" {
		name = "DefaultProcessor"
	}

	p := &DataProcessor{
		name: name,
		data: btree.NewMap[string, any](degree),
	}
	p.notifier = notifier.New[DataChange](p)
	return p
}

func (p *DataProcessor) Name() string {
	return p.name
}

func (p *DataProcessor) String() string {
	return p.name
}

func (p *DataProcessor) Attach(observer utils.Observer[DataChange]) error {
	return p.notifier.Attach(observer)
}

func (p *DataProcessor) Detach(observer utils.Observer[DataChange]) {
	p.notifier.Detach(observer)
}

func (p *DataProcessor) Notify(change DataChange) error {
	return p.notifier.Notify(change)
}

func (p *DataProcessor) Observers() []utils.Observer[DataChange] {
	return p.notifier.Observers()
}

// AddDataPoint stores value under key and notifies observers once.
func (p *DataProcessor) AddDataPoint(key string, value any) error {
	log.Infof("[%s] Adding new data: %s=%v", p.name, key, value)

	oldValue, _ := p.data.Set(key, value)
	return p.Notify(DataChange{
		Action:   ActionAdd,
		Key:      key,
		OldValue: oldValue,
		NewValue: value,
	})
}

// RemoveDataPoint deletes key and notifies observers once. Removing an absent key
// notifies nobody and returns nil.
func (p *DataProcessor) RemoveDataPoint(key string) error {
	value, ok := p.data.Delete(key)
	if !ok {
		log.Infof("[%s] Key '%s' not found, nothing to remove.", p.name, key)
		return nil
	}

	log.Infof("[%s] Removing data point: %s", p.name, key)
	return p.Notify(DataChange{
		Action:       ActionRemove,
		Key:          key,
		RemovedValue: value,
	})
}

func (p *DataProcessor) Get(key string) (any, bool) {
	return p.data.Get(key)
}

func (p *DataProcessor) Len() int {
	return p.data.Len()
}

// Keys returns the stored keys in ascending order.
func (p *DataProcessor) Keys() []string {
	keys := make([]string, 0, p.data.Len())
	p.data.Scan(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Snapshot returns a copy of the current data; values are not deep copied.
func (p *DataProcessor) Snapshot() map[string]any {
	snapshot := make(map[string]any, p.data.Len())
	p.data.Scan(func(key string, value any) bool {
		snapshot[key] = value
		return true
	})
	return snapshot
}
