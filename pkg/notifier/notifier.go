package notifier

import (
	"reflect"
	"sync"

	"github.com/selectdb/observer/pkg/utils"
	"github.com/selectdb/observer/pkg/xerror"
	"github.com/selectdb/observer/pkg/xmetrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

var ErrInvalidObserver = xerror.NewWithoutStack(xerror.Observer, "invalid observer")

// Notifier is the registry a subject owns and delegates attach, detach and notify to.
// Observers are notified synchronously in attach order.
type Notifier[T any] struct {
	source utils.Source

	mu        sync.RWMutex
	observers []utils.Observer[T]
}

func New[T any](source utils.Source) *Notifier[T] {
	xmetrics.AddSubject(source.Name())

	return &Notifier[T]{
		source:    source,
		observers: make([]utils.Observer[T], 0),
	}
}

func validate[T any](observer utils.Observer[T]) error {
	if observer == nil {
		return xerror.XWrapf(ErrInvalidObserver, "observer is nil")
	}

	v := reflect.ValueOf(observer)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return xerror.XWrapf(ErrInvalidObserver, "observer %T is a nil value", observer)
		}
	}

	// identity is checked with ==, which panics on uncomparable dynamic values,
	// including comparable structs whose interface fields hold a slice or map
	if !v.Comparable() {
		return xerror.XWrapf(ErrInvalidObserver, "observer %T is not comparable, attach a pointer instead", observer)
	}
	return nil
}

// Attach appends observer to the registry. Attaching an observer twice is a no-op.
func (n *Notifier[T]) Attach(observer utils.Observer[T]) error {
	if err := validate(observer); err != nil {
		xmetrics.AddError(err)
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if slices.Contains(n.observers, observer) {
		log.Debugf("observer %T already attached to %s", observer, n.source.Name())
		return nil
	}

	n.observers = append(n.observers, observer)
	xmetrics.SetObserverNum(n.source.Name(), len(n.observers))
	log.Infof("%T attached to %s.", observer, n.source.Name())
	return nil
}

// Detach removes observer if attached, otherwise it does nothing.
func (n *Notifier[T]) Detach(observer utils.Observer[T]) {
	if validate(observer) != nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	i := slices.Index(n.observers, observer)
	if i < 0 {
		log.Debugf("observer %T not attached to %s, skip detach", observer, n.source.Name())
		return
	}

	n.observers = slices.Delete(n.observers, i, i+1)
	xmetrics.SetObserverNum(n.source.Name(), len(n.observers))
	log.Infof("%T detached from %s.", observer, n.source.Name())
}

// Notify delivers data to every observer attached when the call starts. A failing or
// panicking observer does not stop delivery to the rest; all failures are combined
// into the returned error.
func (n *Notifier[T]) Notify(data T) error {
	observers := n.Observers()
	name := n.source.Name()

	log.Infof("[%s] Notifying %d observers with data: %v", name, len(observers), data)

	var errs error
	failed := 0
	utils.WithSubject(name, func() {
		for _, observer := range observers {
			if err := n.deliver(observer, data); err != nil {
				log.Warnf("observer %T failed on update from %s: %+v", observer, name, err)
				xmetrics.AddError(err)
				errs = multierr.Append(errs, err)
				failed++
			}
		}
	})

	xmetrics.Notify(name, len(observers)-failed, failed)
	return errs
}

func (n *Notifier[T]) deliver(observer utils.Observer[T], data T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = xerror.FromRecover(xerror.Observer, r)
		}
	}()

	if err := observer.Update(n.source, data); err != nil {
		return xerror.Wrapf(err, xerror.Observer, "observer %T update failed", observer)
	}
	return nil
}

// Observers returns a copy of the registry in attach order.
func (n *Notifier[T]) Observers() []utils.Observer[T] {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Clone(n.observers)
}

func (n *Notifier[T]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.observers)
}

func (n *Notifier[T]) IsAttached(observer utils.Observer[T]) bool {
	if validate(observer) != nil {
		return false
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	return slices.Contains(n.observers, observer)
}
