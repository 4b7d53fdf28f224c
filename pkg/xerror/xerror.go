package xerror

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

type ErrorCategory interface {
	Name() string
}

var (
	Normal   = newErrorCategory("normal")
	Observer = newErrorCategory("observer") // The error comes from an observer or from registering one.
	DB       = newErrorCategory("db")
	Sink     = newErrorCategory("sink") // Console, file and other output sinks.
)

type xErrorCategory struct {
	name string
}

func (e xErrorCategory) Name() string {
	return e.name
}

func newErrorCategory(name string) ErrorCategory {
	return &xErrorCategory{
		name: name,
	}
}

type errType int

const (
	xrecoverable errType = iota
	xpanic
)

func (e errType) String() string {
	switch e {
	case xrecoverable:
		return "Recoverable"
	case xpanic:
		return "Panic"
	default:
		panic("unknown error level")
	}
}

// a wrapped error with error type
type XError struct {
	category ErrorCategory
	errType  errType
	err      error
}

func (e *XError) Category() ErrorCategory {
	return e.category
}

func (e *XError) Type() string {
	return e.errType.String()
}

// return the innerest xerror message
func (e *XError) Error() string {
	var xerr *XError
	if stderrors.As(e.err, &xerr) {
		return xerr.Error()
	}

	return fmt.Sprintf("[%s] %s", e.category.Name(), e.err.Error())
}

func (e *XError) Unwrap() error {
	return e.err
}

func (e *XError) IsRecoverable() bool {
	return e.errType == xrecoverable
}

func (e *XError) IsPanic() bool {
	return e.errType == xpanic
}

func NewWithoutStack(errCategory ErrorCategory, message string) *XError {
	err := &XError{
		category: errCategory,
		errType:  xrecoverable,
		err:      stderrors.New(message),
	}
	return err
}

func New(errCategory ErrorCategory, message string) error {
	err := NewWithoutStack(errCategory, message)
	return errors.WithStack(err)
}

func PanicWithoutStack(errCategory ErrorCategory, message string) error {
	err := &XError{
		category: errCategory,
		errType:  xpanic,
		err:      stderrors.New(message),
	}
	return err
}

func Panic(errCategory ErrorCategory, message string) error {
	err := PanicWithoutStack(errCategory, message)
	return errors.WithStack(err)
}

func errorf(errCategory ErrorCategory, errtype errType, format string, args ...interface{}) *XError {
	err := &XError{
		category: errCategory,
		errType:  errtype,
		err:      fmt.Errorf(format, args...),
	}
	return err
}

func Errorf(errCategory ErrorCategory, format string, args ...interface{}) error {
	err := errorf(errCategory, xrecoverable, format, args...)
	return errors.WithStack(err)
}

func Panicf(errCategory ErrorCategory, format string, args ...interface{}) error {
	err := errorf(errCategory, xpanic, format, args...)
	return errors.WithStack(err)
}

func wrap(err error, errCategory ErrorCategory, errLevel errType, message string) error {
	if err == nil {
		return nil
	}

	err = &XError{
		category: errCategory,
		errType:  errLevel,
		err:      err,
	}
	return errors.WithStack(errors.WithMessage(err, message))
}

func Wrap(err error, errCategory ErrorCategory, message string) error {
	return wrap(err, errCategory, xrecoverable, message)
}

func PanicWrap(err error, errCategory ErrorCategory, message string) error {
	return wrap(err, errCategory, xpanic, message)
}

func wrapf(err error, errCategory ErrorCategory, errLevel errType, format string, args ...interface{}) error {
	return wrap(err, errCategory, errLevel, fmt.Sprintf(format, args...))
}

func Wrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	return wrapf(err, errCategory, xrecoverable, format, args...)
}

func XWrapf(xerr *XError, format string, args ...interface{}) error {
	return wrapf(xerr, xerr.category, xrecoverable, format, args...)
}

func PanicWrapf(err error, errCategory ErrorCategory, format string, args ...interface{}) error {
	return wrapf(err, errCategory, xpanic, format, args...)
}

func XPanicWrapf(xerr *XError, format string, args ...interface{}) error {
	return wrapf(xerr, xerr.category, xpanic, format, args...)
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}

	err = &XError{
		category: Normal,
		errType:  xrecoverable,
		err:      err,
	}

	return errors.WithStack(err)
}

// FromRecover converts a recovered panic value into a panic-type error.
func FromRecover(errCategory ErrorCategory, r interface{}) error {
	if err, ok := r.(error); ok {
		return PanicWrap(err, errCategory, "recovered from panic")
	}
	return Panicf(errCategory, "recovered from panic: %v", r)
}
