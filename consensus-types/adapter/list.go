package adapter

import (
	"github.com/pkg/errors"
)

// List is a read-only view over a bounded native list. Elements are converted through the pair
// on every access.
type List[F, N any] struct {
	pair  TypePair[F, N]
	items []N
	limit uint64
}

// NewList wraps items, which must not exceed limit.
func NewList[F, N any](pair TypePair[F, N], items []N, limit uint64) (*List[F, N], error) {
	if uint64(len(items)) > limit {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d items, limit %d", len(items), limit)
	}
	return &List[F, N]{pair: pair, items: items, limit: limit}, nil
}

// Len is the number of elements.
func (l *List[F, N]) Len() uint64 {
	return uint64(len(l.items))
}

// Limit is the maximum number of elements.
func (l *List[F, N]) Limit() uint64 {
	return l.limit
}

// At returns element i.
func (l *List[F, N]) At(i uint64) (F, error) {
	if i >= l.Len() {
		var zero F
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, l.Len())
	}
	return l.pair.Wrap(l.items[i]), nil
}

// Items converts every element.
func (l *List[F, N]) Items() []F {
	out := make([]F, len(l.items))
	for i, n := range l.items {
		out[i] = l.pair.Wrap(n)
	}
	return out
}

// Native returns the native elements in a fresh slice.
func (l *List[F, N]) Native() []N {
	return append(make([]N, 0, len(l.items)), l.items...)
}

// MutableList is a bounded list whose structural writes rebuild the native slice and notify.
type MutableList[F, N any] struct {
	List[F, N]
	Mutable[*MutableList[F, N]]
}

// NewMutableList wraps items, which must not exceed limit.
func NewMutableList[F, N any](pair TypePair[F, N], items []N, limit uint64) (*MutableList[F, N], error) {
	l, err := NewList(pair, items, limit)
	if err != nil {
		return nil, err
	}
	return &MutableList[F, N]{List: *l}, nil
}

// EmptyMutableList returns an empty list bounded by limit.
func EmptyMutableList[F, N any](pair TypePair[F, N], limit uint64) *MutableList[F, N] {
	return &MutableList[F, N]{List: List[F, N]{pair: pair, items: []N{}, limit: limit}}
}

// At returns element i. Mutable elements write themselves back into slot i when changed.
func (l *MutableList[F, N]) At(i uint64) (F, error) {
	if i >= l.Len() {
		var zero F
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, l.Len())
	}
	return wrapElement(l.pair, l.items[i], func(f F) {
		if err := l.Set(i, f); err != nil {
			log.WithError(err).WithField("index", i).Error("Could not write back list element")
		}
	}), nil
}

// Set replaces element i.
func (l *MutableList[F, N]) Set(i uint64, v F) error {
	if i >= l.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, l.Len())
	}
	n, err := l.pair.Unwrap(v)
	if err != nil {
		return err
	}
	next := append(make([]N, 0, len(l.items)), l.items...)
	next[i] = n
	l.replace(next)
	return nil
}

// Append adds v at the end. A full list is left unchanged.
func (l *MutableList[F, N]) Append(v F) error {
	if l.Len() >= l.limit {
		return errors.Wrapf(ErrCapacityExceeded, "list at limit %d", l.limit)
	}
	n, err := l.pair.Unwrap(v)
	if err != nil {
		return err
	}
	next := append(make([]N, 0, len(l.items)+1), l.items...)
	next = append(next, n)
	l.replace(next)
	return nil
}

func (l *MutableList[F, N]) replace(next []N) {
	l.items = next
	recordRebuilds.WithLabelValues("list").Inc()
	l.Notify(l)
}

func wrapElement[F, N any](pair TypePair[F, N], n N, cb func(F)) F {
	if cp, ok := pair.(CallbackPair[F, N]); ok {
		return cp.WrapWithCallback(n, cb)
	}
	return pair.Wrap(n)
}
