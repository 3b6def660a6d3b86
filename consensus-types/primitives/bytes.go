package primitives

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Root is a 32 byte merkle root.
type Root [32]byte

// Bytes32 is an opaque 32 byte value such as a block hash or graffiti.
type Bytes32 [32]byte

// BLSSignature is a compressed BLS12-381 signature.
type BLSSignature [96]byte

// BLSPubkey is a compressed BLS12-381 public key.
type BLSPubkey [48]byte

func (r Root) String() string { return hexutil.Encode(r[:]) }

// MarshalText renders the root as 0x-prefixed hex.
func (r Root) MarshalText() ([]byte, error) { return hexutil.Bytes(r[:]).MarshalText() }

// UnmarshalText parses a 0x-prefixed hex root.
func (r *Root) UnmarshalText(text []byte) error { return decodeFixed(text, r[:]) }

func (b Bytes32) String() string { return hexutil.Encode(b[:]) }

// MarshalText renders the value as 0x-prefixed hex.
func (b Bytes32) MarshalText() ([]byte, error) { return hexutil.Bytes(b[:]).MarshalText() }

// UnmarshalText parses a 0x-prefixed hex value.
func (b *Bytes32) UnmarshalText(text []byte) error { return decodeFixed(text, b[:]) }

func (s BLSSignature) String() string { return hexutil.Encode(s[:]) }

// MarshalText renders the signature as 0x-prefixed hex.
func (s BLSSignature) MarshalText() ([]byte, error) { return hexutil.Bytes(s[:]).MarshalText() }

// UnmarshalText parses a 0x-prefixed hex signature.
func (s *BLSSignature) UnmarshalText(text []byte) error { return decodeFixed(text, s[:]) }

func (p BLSPubkey) String() string { return hexutil.Encode(p[:]) }

// MarshalText renders the public key as 0x-prefixed hex.
func (p BLSPubkey) MarshalText() ([]byte, error) { return hexutil.Bytes(p[:]).MarshalText() }

// UnmarshalText parses a 0x-prefixed hex public key.
func (p *BLSPubkey) UnmarshalText(text []byte) error { return decodeFixed(text, p[:]) }

func decodeFixed(text []byte, dst []byte) error {
	var b hexutil.Bytes
	if err := b.UnmarshalText(text); err != nil {
		return err
	}
	if len(b) != len(dst) {
		return errors.Errorf("expected %d bytes, got %d", len(dst), len(b))
	}
	copy(dst, b)
	return nil
}
