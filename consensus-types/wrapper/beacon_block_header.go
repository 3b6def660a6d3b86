package wrapper

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

var (
	_ = interfaces.BeaconBlockHeader(&beaconBlockHeader{})
	_ = interfaces.SignedBeaconBlockHeader(&signedBeaconBlockHeader{})
)

// beaconBlockHeader is a convenience wrapper around a phase1 beacon block header. The state
// root is written by rebuilding the owned object.
type beaconBlockHeader struct {
	adapter.Value[*phase1.BeaconBlockHeader]
	adapter.Mutable[interfaces.BeaconBlockHeader]
}

func wrapBeaconBlockHeader(h *phase1.BeaconBlockHeader) interfaces.BeaconBlockHeader {
	return &beaconBlockHeader{Value: adapter.NewValue(h)}
}

// WrappedBeaconBlockHeader is a constructor which wraps a phase1 header record into an interface.
func WrappedBeaconBlockHeader(h *phase1.BeaconBlockHeader) (interfaces.BeaconBlockHeader, error) {
	if h == nil {
		return nil, ErrNilObjectWrapped
	}
	return wrapBeaconBlockHeader(h), nil
}

// NewBeaconBlockHeader builds a header from its facing field values.
func NewBeaconBlockHeader(
	slot primitives.Slot,
	proposerIndex primitives.ValidatorIndex,
	parentRoot, stateRoot, bodyRoot primitives.Root,
) interfaces.BeaconBlockHeader {
	return wrapBeaconBlockHeader(&phase1.BeaconBlockHeader{
		Slot:          slotPair.ToNative(slot),
		ProposerIndex: validatorIndexPair.ToNative(proposerIndex),
		ParentRoot:    rootPair.ToNative(parentRoot),
		StateRoot:     rootPair.ToNative(stateRoot),
		BodyRoot:      rootPair.ToNative(bodyRoot),
	})
}

// Slot of the header.
func (h *beaconBlockHeader) Slot() primitives.Slot {
	return slotPair.Wrap(h.Native().Slot)
}

// ProposerIndex of the header.
func (h *beaconBlockHeader) ProposerIndex() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(h.Native().ProposerIndex)
}

// ParentRoot of the header.
func (h *beaconBlockHeader) ParentRoot() primitives.Root {
	return rootPair.Wrap(h.Native().ParentRoot)
}

// StateRoot of the header.
func (h *beaconBlockHeader) StateRoot() primitives.Root {
	return rootPair.Wrap(h.Native().StateRoot)
}

// SetStateRoot swaps in a copy of the owned header carrying root, then notifies.
func (h *beaconBlockHeader) SetStateRoot(root primitives.Root) {
	cur := h.Native()
	h.Replace(&phase1.BeaconBlockHeader{
		Slot:          cur.Slot,
		ProposerIndex: cur.ProposerIndex,
		ParentRoot:    bytesutil.SafeCopyBytes(cur.ParentRoot),
		StateRoot:     rootPair.ToNative(root),
		BodyRoot:      bytesutil.SafeCopyBytes(cur.BodyRoot),
	})
	h.Notify(h)
}

// BodyRoot of the header.
func (h *beaconBlockHeader) BodyRoot() primitives.Root {
	return rootPair.Wrap(h.Native().BodyRoot)
}

// CopyWith derives a new header. The receiver and its callback are untouched.
func (h *beaconBlockHeader) CopyWith(
	slot primitives.Slot,
	proposerIndex primitives.ValidatorIndex,
	parentRoot, stateRoot, bodyRoot primitives.Root,
) interfaces.BeaconBlockHeader {
	return NewBeaconBlockHeader(slot, proposerIndex, parentRoot, stateRoot, bodyRoot)
}

// signedBeaconBlockHeader is a convenience wrapper around a phase1 signed beacon block header.
type signedBeaconBlockHeader struct {
	adapter.Value[*phase1.SignedBeaconBlockHeader]
}

func wrapSignedBeaconBlockHeader(h *phase1.SignedBeaconBlockHeader) interfaces.SignedBeaconBlockHeader {
	return &signedBeaconBlockHeader{Value: adapter.NewValue(h)}
}

// WrappedSignedBeaconBlockHeader is a constructor which wraps a phase1 signed header record into an
// interface.
func WrappedSignedBeaconBlockHeader(h *phase1.SignedBeaconBlockHeader) (interfaces.SignedBeaconBlockHeader, error) {
	if h == nil || h.Message == nil {
		return nil, ErrNilObjectWrapped
	}
	return wrapSignedBeaconBlockHeader(h), nil
}

// NewSignedBeaconBlockHeader pairs msg with sig. msg must be backed by a phase1 header.
func NewSignedBeaconBlockHeader(msg interfaces.BeaconBlockHeader, sig primitives.BLSSignature) (interfaces.SignedBeaconBlockHeader, error) {
	m, err := BeaconBlockHeaderType.Unwrap(msg)
	if err != nil {
		return nil, errors.Wrap(err, "could not unwrap header message")
	}
	return wrapSignedBeaconBlockHeader(&phase1.SignedBeaconBlockHeader{
		Message:   m,
		Signature: signaturePair.ToNative(sig),
	}), nil
}

// Message is the signed header. Setting its state root does not touch this record.
func (h *signedBeaconBlockHeader) Message() interfaces.BeaconBlockHeader {
	return BeaconBlockHeaderType.Wrap(h.Native().Message)
}

// Signature of the proposer.
func (h *signedBeaconBlockHeader) Signature() primitives.BLSSignature {
	return signaturePair.Wrap(h.Native().Signature)
}
