package adapter

import (
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
)

// Uint64 converts between a facing integer type and the native uint64.
type Uint64[F ~uint64] struct{}

func (Uint64[F]) Wrap(n uint64) F { return F(n) }

func (Uint64[F]) Unwrap(f F) (uint64, error) { return uint64(f), nil }

// ToNative is Unwrap without the error, which a scalar conversion never produces.
func (Uint64[F]) ToNative(f F) uint64 { return uint64(f) }

// Bytes32 converts between a facing 32 byte array and the native byte slice.
type Bytes32[F ~[32]byte] struct{}

func (Bytes32[F]) Wrap(n []byte) F { return F(bytesutil.ToBytes32(n)) }

func (Bytes32[F]) Unwrap(f F) ([]byte, error) {
	return Bytes32[F]{}.ToNative(f), nil
}

// ToNative copies f into a fresh native byte slice.
func (Bytes32[F]) ToNative(f F) []byte {
	b := [32]byte(f)
	return b[:]
}

// Bytes48 converts between a facing 48 byte array and the native byte slice.
type Bytes48[F ~[48]byte] struct{}

func (Bytes48[F]) Wrap(n []byte) F { return F(bytesutil.ToBytes48(n)) }

func (Bytes48[F]) Unwrap(f F) ([]byte, error) {
	return Bytes48[F]{}.ToNative(f), nil
}

// ToNative copies f into a fresh native byte slice.
func (Bytes48[F]) ToNative(f F) []byte {
	b := [48]byte(f)
	return b[:]
}

// Bytes96 converts between a facing 96 byte array and the native byte slice.
type Bytes96[F ~[96]byte] struct{}

func (Bytes96[F]) Wrap(n []byte) F { return F(bytesutil.ToBytes96(n)) }

func (Bytes96[F]) Unwrap(f F) ([]byte, error) {
	return Bytes96[F]{}.ToNative(f), nil
}

// ToNative copies f into a fresh native byte slice.
func (Bytes96[F]) ToNative(f F) []byte {
	b := [96]byte(f)
	return b[:]
}

// Bitlist hands out copies of native bitlists so facing callers cannot write through to the
// owned record.
type Bitlist struct{}

func (Bitlist) Wrap(n bitfield.Bitlist) bitfield.Bitlist {
	return bitfield.Bitlist(bytesutil.SafeCopyBytes(n))
}

func (Bitlist) Unwrap(f bitfield.Bitlist) (bitfield.Bitlist, error) {
	return bitfield.Bitlist(bytesutil.SafeCopyBytes(f)), nil
}
