package utils

import (
	"github.com/modern-go/gls"
	"github.com/sirupsen/logrus"
)

// SubjectField is the gls key and the log field carrying the name of the subject being notified.
const SubjectField = "subject"

type Hook struct {
	Field  string
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	subjectName := gls.Get(hook.Field)
	if subjectName != nil {
		entry.Data[hook.Field] = subjectName
	}
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  SubjectField,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// WithSubject runs fn with the subject name stored in goroutine local storage, so every
// log line written by fn (observers included) carries it. The previous value is restored.
func WithSubject(name string, fn func()) {
	goID := gls.GoID()
	prev := gls.Get(SubjectField)
	gls.ResetGls(goID, map[interface{}]interface{}{SubjectField: name})
	defer func() {
		if prev != nil {
			gls.ResetGls(goID, map[interface{}]interface{}{SubjectField: prev})
		} else {
			gls.DeleteGls(goID)
		}
	}()

	fn()
}
