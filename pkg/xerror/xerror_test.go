package xerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// UnitTest for xCategory
func TestXCategory(t *testing.T) {
	assert.Equal(t, Normal.Name(), "normal")
	assert.Equal(t, Observer.Name(), "observer")
	assert.Equal(t, DB.Name(), "db")
	assert.Equal(t, Sink.Name(), "sink")
}

func TestXError_Error(t *testing.T) {
	errMsg := "test error"
	err := Errorf(Normal, errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))

	err = Wrap(err, DB, "wrapped error")
	assert.NotNil(t, err)
	assert.Equal(t, "wrapped error: [normal] test error", err.Error())

	assert.True(t, errors.As(err, &xerr))
	assert.Equal(t, xerr.Error(), fmt.Sprintf("[%s] %s", Normal.Name(), errMsg))
}

// UnitTest for XError
func TestErrorf(t *testing.T) {
	errMsg := "test error"
	err := Errorf(Normal, errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Normal)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestWrap(t *testing.T) {
	errMsg := "db open error"
	err := errors.New(errMsg)
	wrappedErr := Wrap(err, DB, "wrapped error")
	assert.NotNil(t, wrappedErr)

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), DB)
	assert.Equal(t, xerr.err.Error(), errMsg)
	assert.True(t, errors.Is(wrappedErr, err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, DB, "nothing"))
	assert.Nil(t, Wrapf(nil, Sink, "nothing %d", 1))
	assert.Nil(t, WithStack(nil))
}

func TestWrapf(t *testing.T) {
	errMsg := "sink test error"
	err := errors.New(errMsg)
	wrappedErr := Wrapf(err, Sink, "wrapped error: %s", "foo")
	assert.NotNil(t, wrappedErr)

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Sink)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestIs(t *testing.T) {
	errInvalid := NewWithoutStack(Observer, "invalid observer")
	wrappedErr := XWrapf(errInvalid, "observer type: %s", "*main.foo")
	assert.NotNil(t, wrappedErr)

	assert.True(t, errors.Is(wrappedErr, errInvalid))

	var xerr *XError
	assert.True(t, errors.As(wrappedErr, &xerr))
	assert.True(t, xerr.IsRecoverable())
	assert.Equal(t, xerr.Category(), Observer)
	assert.Equal(t, "[observer] invalid observer", xerr.Error())
}

func TestPanic(t *testing.T) {
	errMsg := "test panic"
	err := Panic(Normal, errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, xerr.Category(), Normal)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestPanicf(t *testing.T) {
	errMsg := "test panicf"
	err := Panicf(Normal, errMsg)
	assert.NotNil(t, err)

	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, xerr.Category(), Normal)
	assert.Equal(t, xerr.err.Error(), errMsg)
}

func TestFromRecover(t *testing.T) {
	err := FromRecover(Observer, "boom")
	var xerr *XError
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
	assert.Equal(t, Observer, xerr.Category())
	assert.Contains(t, err.Error(), "boom")

	cause := errors.New("bad state")
	err = FromRecover(Observer, cause)
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.As(err, &xerr))
	assert.True(t, xerr.IsPanic())
}
