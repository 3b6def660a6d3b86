package adapter

import (
	"github.com/pkg/errors"
)

// Vector is a read-only view over a fixed length native vector.
type Vector[F, N any] struct {
	pair  TypePair[F, N]
	items []N
}

// NewVector wraps items. The vector length is len(items) for its whole life.
func NewVector[F, N any](pair TypePair[F, N], items []N) *Vector[F, N] {
	return &Vector[F, N]{pair: pair, items: items}
}

// Len is the fixed length.
func (v *Vector[F, N]) Len() uint64 {
	return uint64(len(v.items))
}

// At returns element i.
func (v *Vector[F, N]) At(i uint64) (F, error) {
	if i >= v.Len() {
		var zero F
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.Len())
	}
	return v.pair.Wrap(v.items[i]), nil
}

// Items converts every element.
func (v *Vector[F, N]) Items() []F {
	out := make([]F, len(v.items))
	for i, n := range v.items {
		out[i] = v.pair.Wrap(n)
	}
	return out
}

// Native returns the native elements in a fresh slice.
func (v *Vector[F, N]) Native() []N {
	return append(make([]N, 0, len(v.items)), v.items...)
}

// MutableVector is a fixed length vector whose element writes rebuild the native slice and notify.
type MutableVector[F, N any] struct {
	Vector[F, N]
	Mutable[*MutableVector[F, N]]
}

// NewMutableVector wraps items.
func NewMutableVector[F, N any](pair TypePair[F, N], items []N) *MutableVector[F, N] {
	return &MutableVector[F, N]{Vector: Vector[F, N]{pair: pair, items: items}}
}

// At returns element i. Mutable elements write themselves back into slot i when changed.
func (v *MutableVector[F, N]) At(i uint64) (F, error) {
	if i >= v.Len() {
		var zero F
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.Len())
	}
	return wrapElement(v.pair, v.items[i], func(f F) {
		if err := v.Set(i, f); err != nil {
			log.WithError(err).WithField("index", i).Error("Could not write back vector element")
		}
	}), nil
}

// Set replaces element i.
func (v *MutableVector[F, N]) Set(i uint64, f F) error {
	if i >= v.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, v.Len())
	}
	n, err := v.pair.Unwrap(f)
	if err != nil {
		return err
	}
	next := append(make([]N, 0, len(v.items)), v.items...)
	next[i] = n
	v.items = next
	recordRebuilds.WithLabelValues("vector").Inc()
	v.Notify(v)
	return nil
}
