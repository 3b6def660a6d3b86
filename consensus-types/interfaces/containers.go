package interfaces

// List is a read-only bounded sequence of facing values.
type List[F any] interface {
	Len() uint64
	Limit() uint64
	At(i uint64) (F, error)
	Items() []F
}

// MutableList is a bounded sequence that can be grown and overwritten.
type MutableList[F any] interface {
	List[F]
	Set(i uint64, v F) error
	Append(v F) error
}

// Vector is a read-only fixed length sequence of facing values.
type Vector[F any] interface {
	Len() uint64
	At(i uint64) (F, error)
	Items() []F
}

// MutableVector is a fixed length sequence that can be overwritten.
type MutableVector[F any] interface {
	Vector[F]
	Set(i uint64, v F) error
}

// Bitvector is a read-only fixed length sequence of bits.
type Bitvector interface {
	Len() uint64
	BitAt(i uint64) (bool, error)
}

// MutableBitvector is a fixed length sequence of bits that can be overwritten.
type MutableBitvector interface {
	Bitvector
	SetBitAt(i uint64, val bool) error
}
