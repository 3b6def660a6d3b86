package wrapper_test

import (
	"testing"

	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/wrapper"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/assert"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/require"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/util"
)

type foreignBlock struct {
	interfaces.BeaconBlock
}

func TestWrappedSignedBeaconBlock(t *testing.T) {
	t.Run("nil block", func(t *testing.T) {
		_, err := wrapper.WrappedSignedBeaconBlock(nil)
		require.ErrorIs(t, err, wrapper.ErrNilObjectWrapped)
	})
	t.Run("nil message", func(t *testing.T) {
		_, err := wrapper.WrappedSignedBeaconBlock(&phase1.SignedBeaconBlock{})
		require.ErrorIs(t, err, wrapper.ErrNilObjectWrapped)
	})
	t.Run("nil body", func(t *testing.T) {
		_, err := wrapper.WrappedSignedBeaconBlock(&phase1.SignedBeaconBlock{Message: &phase1.BeaconBlock{}})
		require.ErrorIs(t, err, wrapper.ErrNilObjectWrapped)
	})
	t.Run("ok", func(t *testing.T) {
		native := util.NewBeaconBlock()
		native.Message.Slot = 9
		native.Message.ProposerIndex = 4
		blk, err := wrapper.WrappedSignedBeaconBlock(native)
		require.NoError(t, err)
		assert.Equal(t, primitives.Slot(9), blk.Message().Slot())
		assert.Equal(t, primitives.ValidatorIndex(4), blk.Message().ProposerIndex())
		assert.Equal(t, primitives.BLSSignature{}, blk.Signature())

		want, err := native.HashTreeRoot()
		require.NoError(t, err)
		got, err := blk.HashTreeRoot()
		require.NoError(t, err)
		assert.Equal(t, want, got)

		unwrapped, err := wrapper.SignedBeaconBlockType.Unwrap(blk)
		require.NoError(t, err)
		assert.Equal(t, native, unwrapped)
	})
}

func TestSignedBeaconBlock_Header(t *testing.T) {
	native := util.NewBeaconBlock()
	native.Message.Slot = 5
	native.Message.ProposerIndex = 8
	native.Message.ParentRoot = util.Root(1)
	native.Message.StateRoot = util.Root(2)
	native.Signature[0] = 0xaa
	blk, err := wrapper.WrappedSignedBeaconBlock(native)
	require.NoError(t, err)

	header, err := blk.Header()
	require.NoError(t, err)
	bodyRoot, err := blk.Message().Body().HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, primitives.Root(bodyRoot), header.Message().BodyRoot())
	assert.Equal(t, primitives.Slot(5), header.Message().Slot())
	assert.Equal(t, primitives.ValidatorIndex(8), header.Message().ProposerIndex())
	assert.Equal(t, primitives.Root(bytes32(1)), header.Message().ParentRoot())
	assert.Equal(t, primitives.Root(bytes32(2)), header.Message().StateRoot())
	assert.Equal(t, blk.Signature(), header.Signature())

	// A block and its header share the same root.
	blockRoot, err := blk.Message().HashTreeRoot()
	require.NoError(t, err)
	headerRoot, err := header.Message().HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, blockRoot, headerRoot)

	_, err = wrapper.SignedBeaconBlockType.Wrap(&phase1.SignedBeaconBlock{}).Header()
	assert.ErrorIs(t, err, wrapper.ErrNilBeaconBlock)
	_, err = wrapper.SignedBeaconBlockType.Wrap(&phase1.SignedBeaconBlock{Message: &phase1.BeaconBlock{}}).Header()
	assert.ErrorIs(t, err, wrapper.ErrNilBeaconBlockBody)
}

func TestNewSignedBeaconBlock(t *testing.T) {
	body, err := wrapper.NewBeaconBlockBody(bodyFields())
	require.NoError(t, err)
	blk, err := wrapper.NewBeaconBlock(3, 1, bytes32(1), bytes32(2), body)
	require.NoError(t, err)
	assert.Equal(t, true, blk.Body().Equals(body))
	assert.Equal(t, primitives.Root(bytes32(2)), blk.StateRoot())

	signed, err := wrapper.NewSignedBeaconBlock(blk, primitives.BLSSignature{7})
	require.NoError(t, err)
	assert.Equal(t, true, signed.Message().Equals(blk))
	assert.Equal(t, primitives.BLSSignature{7}, signed.Signature())

	want := util.HydrateSignedBeaconBlock(&phase1.SignedBeaconBlock{
		Message: &phase1.BeaconBlock{
			Slot:          3,
			ProposerIndex: 1,
			ParentRoot:    util.Root(1),
			StateRoot:     util.Root(2),
		},
		Signature: append([]byte{7}, make([]byte, 95)...),
	})
	assert.Equal(t, true, signed.Equals(wrapper.SignedBeaconBlockType.Wrap(want)))

	_, err = wrapper.NewSignedBeaconBlock(foreignBlock{}, primitives.BLSSignature{})
	assert.ErrorIs(t, err, adapter.ErrInvalidFieldCombination)
	_, err = wrapper.NewBeaconBlock(0, 0, primitives.Root{}, primitives.Root{}, nil)
	assert.ErrorIs(t, err, adapter.ErrInvalidFieldCombination)
}
