package observer

import (
	"fmt"
	"io"

	"github.com/selectdb/observer/pkg/utils"
	"github.com/selectdb/observer/pkg/xerror"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EmailSender is a stub: it renders the mail it would send to out.
type EmailSender[T any] struct {
	recipient string
	out       io.Writer
}

func NewEmailSender[T any](recipient string, out io.Writer) *EmailSender[T] {
	return &EmailSender[T]{recipient: recipient, out: out}
}

func (e *EmailSender[T]) Recipient() string {
	return e.recipient
}

func (e *EmailSender[T]) Update(source utils.Source, data T) error {
	if e.recipient == "" {
		return xerror.Errorf(xerror.Sink, "email sender has no recipient, drop update from %s", source.Name())
	}

	body, err := json.MarshalToString(data)
	if err != nil {
		return xerror.Wrapf(err, xerror.Sink, "marshal mail body for %s failed", e.recipient)
	}

	if _, err := fmt.Fprintf(e.out, "[EmailSender] Sending email to %s about %s update: %s\n", e.recipient, source.Name(), body); err != nil {
		return xerror.Wrapf(err, xerror.Sink, "send mail to %s failed", e.recipient)
	}
	return nil
}
