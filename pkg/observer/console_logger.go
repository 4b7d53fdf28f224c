package observer

import (
	"fmt"
	"io"

	"github.com/selectdb/observer/pkg/utils"
	"github.com/selectdb/observer/pkg/xerror"
)

// ConsoleLogger prints every update it receives to out.
type ConsoleLogger[T any] struct {
	name string
	out  io.Writer
}

func NewConsoleLogger[T any](name string, out io.Writer) *ConsoleLogger[T] {
	if name == "" {
		name = "Logger"
	}
	return &ConsoleLogger[T]{name: name, out: out}
}

func (l *ConsoleLogger[T]) Name() string {
	return l.name
}

func (l *ConsoleLogger[T]) Update(source utils.Source, data T) error {
	if _, err := fmt.Fprintf(l.out, "[%s] received update from %s: %v\n", l.name, source.Name(), data); err != nil {
		return xerror.Wrapf(err, xerror.Sink, "console logger %s write failed", l.name)
	}
	return nil
}
