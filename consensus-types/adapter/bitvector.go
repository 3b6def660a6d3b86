package adapter

import (
	"github.com/pkg/errors"
)

// Bits is the packed bitvector representation of the native library, e.g. bitfield.Bitvector128.
type Bits interface {
	~[]byte
	BitAt(idx uint64) bool
	SetBitAt(idx uint64, val bool)
	Len() uint64
}

// Bitvector is a read-only view over a fixed length packed bitvector.
type Bitvector[B Bits] struct {
	bits B
}

// NewBitvector wraps bits.
func NewBitvector[B Bits](bits B) *Bitvector[B] {
	return &Bitvector[B]{bits: bits}
}

// Len is the number of bits.
func (b *Bitvector[B]) Len() uint64 {
	return b.bits.Len()
}

// BitAt returns bit i.
func (b *Bitvector[B]) BitAt(i uint64) (bool, error) {
	if i >= b.Len() {
		return false, errors.Wrapf(ErrIndexOutOfRange, "bit %d, length %d", i, b.Len())
	}
	return b.bits.BitAt(i), nil
}

// Native returns a copy of the packed bits.
func (b *Bitvector[B]) Native() B {
	out := make(B, len(b.bits))
	copy(out, b.bits)
	return out
}

// MutableBitvector is a bitvector whose writes rebuild the packed bytes and notify.
type MutableBitvector[B Bits] struct {
	Bitvector[B]
	Mutable[*MutableBitvector[B]]
}

// NewMutableBitvector wraps bits.
func NewMutableBitvector[B Bits](bits B) *MutableBitvector[B] {
	return &MutableBitvector[B]{Bitvector: Bitvector[B]{bits: bits}}
}

// SetBitAt sets bit i to val.
func (b *MutableBitvector[B]) SetBitAt(i uint64, val bool) error {
	if i >= b.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "bit %d, length %d", i, b.Len())
	}
	next := b.Native()
	next.SetBitAt(i, val)
	b.bits = next
	recordRebuilds.WithLabelValues("bitvector").Inc()
	b.Notify(b)
	return nil
}
