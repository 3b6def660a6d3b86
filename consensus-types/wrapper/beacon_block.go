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
	_ = interfaces.SignedBeaconBlock(&signedBeaconBlock{})
	_ = interfaces.BeaconBlock(&beaconBlock{})
)

// signedBeaconBlock is a convenience wrapper around a phase1 signed beacon block.
type signedBeaconBlock struct {
	adapter.Value[*phase1.SignedBeaconBlock]
}

func wrapSignedBeaconBlock(b *phase1.SignedBeaconBlock) interfaces.SignedBeaconBlock {
	return &signedBeaconBlock{Value: adapter.NewValue(b)}
}

// WrappedSignedBeaconBlock is a constructor which wraps a phase1 signed block record into an
// interface. The nested block and body are checked the same way WrappedBeaconBlock does.
func WrappedSignedBeaconBlock(b *phase1.SignedBeaconBlock) (interfaces.SignedBeaconBlock, error) {
	if b == nil {
		return nil, ErrNilObjectWrapped
	}
	if _, err := WrappedBeaconBlock(b.Message); err != nil {
		return nil, err
	}
	return wrapSignedBeaconBlock(b), nil
}

// NewSignedBeaconBlock pairs msg with sig. msg must be backed by a phase1 block.
func NewSignedBeaconBlock(msg interfaces.BeaconBlock, sig primitives.BLSSignature) (interfaces.SignedBeaconBlock, error) {
	m, err := BeaconBlockType.Unwrap(msg)
	if err != nil {
		return nil, errors.Wrap(err, "could not unwrap block message")
	}
	return wrapSignedBeaconBlock(&phase1.SignedBeaconBlock{
		Message:   m,
		Signature: signaturePair.ToNative(sig),
	}), nil
}

// Message returns the underlying block object.
func (w *signedBeaconBlock) Message() interfaces.BeaconBlock {
	return BeaconBlockType.Wrap(w.Native().Message)
}

// Signature returns the respective block signature.
func (w *signedBeaconBlock) Signature() primitives.BLSSignature {
	return signaturePair.Wrap(w.Native().Signature)
}

// Header converts the underlying block into a signed header whose body root is the root of
// the block body.
func (w *signedBeaconBlock) Header() (interfaces.SignedBeaconBlockHeader, error) {
	blk := w.Native().Message
	if blk == nil {
		return nil, ErrNilBeaconBlock
	}
	if blk.Body == nil {
		return nil, ErrNilBeaconBlockBody
	}
	root, err := blk.Body.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrapf(err, "could not hash block")
	}
	return wrapSignedBeaconBlockHeader(&phase1.SignedBeaconBlockHeader{
		Message: &phase1.BeaconBlockHeader{
			Slot:          blk.Slot,
			ProposerIndex: blk.ProposerIndex,
			ParentRoot:    bytesutil.SafeCopyBytes(blk.ParentRoot),
			StateRoot:     bytesutil.SafeCopyBytes(blk.StateRoot),
			BodyRoot:      root[:],
		},
		Signature: bytesutil.SafeCopyBytes(w.Native().Signature),
	}), nil
}

// beaconBlock is the wrapper for the actual block.
type beaconBlock struct {
	adapter.Value[*phase1.BeaconBlock]
}

func wrapBeaconBlock(b *phase1.BeaconBlock) interfaces.BeaconBlock {
	return &beaconBlock{Value: adapter.NewValue(b)}
}

// WrappedBeaconBlock is a constructor which wraps a phase1 block record into an interface.
func WrappedBeaconBlock(b *phase1.BeaconBlock) (interfaces.BeaconBlock, error) {
	if b == nil {
		return nil, ErrNilObjectWrapped
	}
	if _, err := WrappedBeaconBlockBody(b.Body); err != nil {
		return nil, errors.Wrap(err, "could not wrap block body")
	}
	return wrapBeaconBlock(b), nil
}

// NewBeaconBlock builds a block from its facing field values. body must be backed by a phase1
// block body.
func NewBeaconBlock(
	slot primitives.Slot,
	proposerIndex primitives.ValidatorIndex,
	parentRoot, stateRoot primitives.Root,
	body interfaces.BeaconBlockBody,
) (interfaces.BeaconBlock, error) {
	b, err := BeaconBlockBodyType.Unwrap(body)
	if err != nil {
		return nil, errors.Wrap(err, "could not unwrap block body")
	}
	return wrapBeaconBlock(&phase1.BeaconBlock{
		Slot:          slotPair.ToNative(slot),
		ProposerIndex: validatorIndexPair.ToNative(proposerIndex),
		ParentRoot:    rootPair.ToNative(parentRoot),
		StateRoot:     rootPair.ToNative(stateRoot),
		Body:          b,
	}), nil
}

// Slot returns the respective slot of the block.
func (w *beaconBlock) Slot() primitives.Slot {
	return slotPair.Wrap(w.Native().Slot)
}

// ProposerIndex returns proposer index of the beacon block.
func (w *beaconBlock) ProposerIndex() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(w.Native().ProposerIndex)
}

// ParentRoot returns the parent root of beacon block.
func (w *beaconBlock) ParentRoot() primitives.Root {
	return rootPair.Wrap(w.Native().ParentRoot)
}

// StateRoot returns the state root of the beacon block.
func (w *beaconBlock) StateRoot() primitives.Root {
	return rootPair.Wrap(w.Native().StateRoot)
}

// Body returns the underlying block body.
func (w *beaconBlock) Body() interfaces.BeaconBlockBody {
	return BeaconBlockBodyType.Wrap(w.Native().Body)
}
