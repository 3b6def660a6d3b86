package adapter

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TypePair converts between a facing type F and a native type N.
type TypePair[F, N any] interface {
	Wrap(n N) F
	Unwrap(f F) (N, error)
}

// CallbackPair is a TypePair that can attach a mutation callback to the values it wraps.
type CallbackPair[F, N any] interface {
	TypePair[F, N]
	WrapWithCallback(n N, cb func(F)) F
}

// WrappedTypePair pairs a facing record with the native record it wraps. The facing value is
// built by a typed constructor, so wrapping cannot fail.
type WrappedTypePair[F, N any] struct {
	construct func(N) F
}

// NewWrappedTypePair builds a pair from the facing type's from-native constructor.
func NewWrappedTypePair[F, N any](construct func(N) F) WrappedTypePair[F, N] {
	return WrappedTypePair[F, N]{construct: construct}
}

// Wrap builds the facing value around n.
func (p WrappedTypePair[F, N]) Wrap(n N) F {
	return p.construct(n)
}

// WrapWithCallback wraps n and, when the facing value is mutable, installs cb on it.
// Read-only facing values ignore cb.
func (p WrappedTypePair[F, N]) WrapWithCallback(n N, cb func(F)) F {
	f := p.construct(n)
	if m, ok := any(f).(Notifier[F]); ok {
		m.SetCallback(cb)
	}
	return f
}

// Unwrap returns the native instance backing f. Facing values from another implementation,
// or nil, fail with ErrInvalidFieldCombination.
func (p WrappedTypePair[F, N]) Unwrap(f F) (N, error) {
	var zero N
	w, ok := any(f).(Wrapper[N])
	if !ok || isNil(f) || isNil(w.Native()) {
		label := typeLabel(zero)
		unwrapFailures.WithLabelValues(label).Inc()
		log.WithFields(logrus.Fields{
			"want": label,
			"got":  typeLabel(f),
		}).Debug("Rejected facing value")
		return zero, errors.Wrapf(ErrInvalidFieldCombination, "%T is not backed by %s", f, label)
	}
	return w.Native(), nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
