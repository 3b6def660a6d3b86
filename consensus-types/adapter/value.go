// Package adapter bridges native phase1 records and the protocol-facing interfaces written
// against them. A facing record owns exactly one native instance, reads through to it on every
// access and swaps in a freshly built instance on every write. Roots, equality and string
// conversion are always taken from the native instance.
package adapter

// Record is what the native library provides for every record type N.
type Record[N any] interface {
	HashTreeRoot() ([32]byte, error)
	Equal(N) bool
	String() string
}

// Wrapper exposes the native instance behind a facing value.
type Wrapper[N any] interface {
	Native() N
}

// Value owns the native instance of a facing record. It is not safe for concurrent use;
// callers confine a record to one goroutine or lock around mutation and notification.
type Value[N Record[N]] struct {
	native N
}

// NewValue takes ownership of n.
func NewValue[N Record[N]](n N) Value[N] {
	return Value[N]{native: n}
}

// Native borrows the currently owned instance. The borrow must not outlive a later Replace.
func (v *Value[N]) Native() N {
	return v.native
}

// Replace swaps in a rebuilt native instance. Only the owning record's setters call it.
func (v *Value[N]) Replace(next N) {
	v.native = next
	recordRebuilds.WithLabelValues(typeLabel(next)).Inc()
}

// HashTreeRoot delegates to the owned instance. Nothing is cached.
func (v *Value[N]) HashTreeRoot() ([32]byte, error) {
	return v.native.HashTreeRoot()
}

// Equals reports whether other is backed by an equal native instance.
func (v *Value[N]) Equals(other interface{}) bool {
	w, ok := other.(Wrapper[N])
	if !ok {
		return false
	}
	return v.native.Equal(w.Native())
}

func (v *Value[N]) String() string {
	return v.native.String()
}
