package observer

import (
	"fmt"
	"io"

	"github.com/selectdb/observer/pkg/utils"
	"github.com/selectdb/observer/pkg/xerror"

	"github.com/sirupsen/logrus"
)

// Display shows the latest temperature on out.
type Display struct {
	out io.Writer
}

func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (d *Display) Update(_ utils.Source, temperature float64) error {
	if _, err := fmt.Fprintf(d.out, "Temperature: %v\n", temperature); err != nil {
		return xerror.Wrap(err, xerror.Sink, "display write failed")
	}
	return nil
}

// TemperatureLogger writes one "Temperature: <value>" entry per update to logger,
// see utils.NewFileLogger for a file backed one.
type TemperatureLogger struct {
	logger *logrus.Logger
}

func NewTemperatureLogger(logger *logrus.Logger) *TemperatureLogger {
	return &TemperatureLogger{logger: logger}
}

func (l *TemperatureLogger) Update(_ utils.Source, temperature float64) error {
	l.logger.Infof("Temperature: %v", temperature)
	return nil
}
