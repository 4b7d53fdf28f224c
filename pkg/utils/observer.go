package utils

// Source is the subject reference handed to observers on every update.
type Source interface {
	Name() string
}

// Observer receives the payload of every state change of the subject it is attached to.
type Observer[T any] interface {
	Update(source Source, data T) error
}

// Subject owns a registry of observers and notifies them in attach order.
type Subject[T any] interface {
	Source
	Attach(observer Observer[T]) error
	Detach(observer Observer[T])
	Notify(data T) error
}
