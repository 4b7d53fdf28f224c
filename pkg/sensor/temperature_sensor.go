package sensor

import (
	"github.com/selectdb/observer/pkg/notifier"
	"github.com/selectdb/observer/pkg/utils"

	log "github.com/sirupsen/logrus"
)

// TemperatureSensor holds the last reading and notifies its observers with every new one.
type TemperatureSensor struct {
	name        string
	temperature float64
	measured    bool
	notifier    *notifier.Notifier[float64]
}

var _ utils.Subject[float64] = (*TemperatureSensor)(nil)

func NewTemperatureSensor(name string) *TemperatureSensor {
	if name == "" {
		name = "TemperatureSensor"
	}

	s := &TemperatureSensor{name: name}
	s.notifier = notifier.New[float64](s)
	return s
}

func (s *TemperatureSensor) Name() string {
	return s.name
}

func (s *TemperatureSensor) Attach(observer utils.Observer[float64]) error {
	return s.notifier.Attach(observer)
}

func (s *TemperatureSensor) Detach(observer utils.Observer[float64]) {
	s.notifier.Detach(observer)
}

func (s *TemperatureSensor) Notify(temperature float64) error {
	return s.notifier.Notify(temperature)
}

// SetTemperature records a reading and notifies observers once, also when the value is unchanged.
func (s *TemperatureSensor) SetTemperature(temperature float64) error {
	log.Debugf("[%s] temperature %v -> %v", s.name, s.temperature, temperature)

	s.temperature = temperature
	s.measured = true
	return s.Notify(temperature)
}

// Temperature returns the last reading; ok is false before the first one.
func (s *TemperatureSensor) Temperature() (temperature float64, ok bool) {
	return s.temperature, s.measured
}
