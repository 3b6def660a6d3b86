package adapter

// Mutable holds the optional callback of a facing value with writable fields. F is the facing
// type handed to the callback, normally the record itself.
type Mutable[F any] struct {
	callback func(F)
}

// SetCallback installs cb, replacing any earlier callback. A nil cb clears it.
func (m *Mutable[F]) SetCallback(cb func(F)) {
	m.callback = cb
}

// Notify invokes the callback once with self. Callers notify only after the owned native
// instance has been replaced, so the callback reads the updated state.
func (m *Mutable[F]) Notify(self F) {
	if m.callback != nil {
		m.callback(self)
	}
}

// Notifier is implemented by facing values that accept a mutation callback.
type Notifier[F any] interface {
	SetCallback(func(F))
}
