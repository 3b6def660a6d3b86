package wrapper_test

import (
	"testing"

	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/wrapper"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/assert"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/require"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/util"
)

// foreignEth1Data satisfies the facing interface without being backed by a phase1 record.
type foreignEth1Data struct {
	interfaces.Eth1Data
}

func TestWrappedEth1Data(t *testing.T) {
	_, err := wrapper.WrappedEth1Data(nil)
	require.ErrorIs(t, err, wrapper.ErrNilObjectWrapped)

	native := &phase1.Eth1Data{DepositRoot: util.Root(1), DepositCount: 7, BlockHash: util.Root(2)}
	e, err := wrapper.WrappedEth1Data(native)
	require.NoError(t, err)
	assert.Equal(t, primitives.Root(bytesutil.ToBytes32(util.Root(1))), e.DepositRoot())
	assert.Equal(t, uint64(7), e.DepositCount())
	assert.Equal(t, primitives.Bytes32(bytesutil.ToBytes32(util.Root(2))), e.BlockHash())
	assert.Equal(t, native.String(), e.String())

	want, err := native.HashTreeRoot()
	require.NoError(t, err)
	got, err := e.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEth1Data_SetDepositRoot(t *testing.T) {
	r0 := primitives.Root(bytesutil.ToBytes32(util.Root(0xa0)))
	r1 := primitives.Root(bytesutil.ToBytes32(util.Root(0xa1)))
	h0 := primitives.Bytes32(bytesutil.ToBytes32(util.Root(0xb0)))

	e := wrapper.NewEth1Data(r0, 5, h0)
	before, err := e.HashTreeRoot()
	require.NoError(t, err)
	unwrapped, err := wrapper.Eth1DataType.Unwrap(e)
	require.NoError(t, err)

	calls := 0
	var seen interfaces.Eth1Data
	e.SetCallback(func(updated interfaces.Eth1Data) {
		calls++
		seen = updated
		assert.Equal(t, r1, updated.DepositRoot(), "callback ran before the rebuild")
	})
	e.SetDepositRoot(r1)

	require.Equal(t, 1, calls)
	assert.Equal(t, e, seen)
	assert.Equal(t, r1, e.DepositRoot())
	assert.Equal(t, uint64(5), e.DepositCount())
	assert.Equal(t, h0, e.BlockHash())

	// The instance owned before the write is left as it was.
	assert.DeepEqual(t, util.Root(0xa0), unwrapped.DepositRoot)

	want, err := (&phase1.Eth1Data{DepositRoot: util.Root(0xa1), DepositCount: 5, BlockHash: util.Root(0xb0)}).HashTreeRoot()
	require.NoError(t, err)
	after, err := e.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, want, after)
	assert.NotEqual(t, before, after)
}

func TestEth1Data_CallbackReplacedAndCleared(t *testing.T) {
	e := wrapper.NewEth1Data(primitives.Root{}, 0, primitives.Bytes32{})
	first, second := 0, 0
	e.SetCallback(func(interfaces.Eth1Data) { first++ })
	e.SetCallback(func(interfaces.Eth1Data) { second++ })
	e.SetDepositRoot(primitives.Root{1})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	e.SetCallback(nil)
	e.SetDepositRoot(primitives.Root{2})
	assert.Equal(t, 1, second)
	assert.Equal(t, primitives.Root{2}, e.DepositRoot())
}

func TestEth1Data_Equals(t *testing.T) {
	a := wrapper.NewEth1Data(primitives.Root{1}, 3, primitives.Bytes32{2})
	b := wrapper.NewEth1Data(primitives.Root{1}, 3, primitives.Bytes32{2})
	assert.Equal(t, true, a.Equals(b))
	assert.Equal(t, false, a.Equals(foreignEth1Data{}))
	assert.Equal(t, false, a.Equals(nil))

	b.SetDepositRoot(primitives.Root{9})
	assert.Equal(t, false, a.Equals(b))
}

func TestEth1DataType_Unwrap(t *testing.T) {
	native := util.NewEth1Data()
	got, err := wrapper.Eth1DataType.Unwrap(wrapper.Eth1DataType.Wrap(native))
	require.NoError(t, err)
	assert.Equal(t, native, got)

	_, err = wrapper.Eth1DataType.Unwrap(foreignEth1Data{})
	assert.ErrorIs(t, err, adapter.ErrInvalidFieldCombination)
	_, err = wrapper.Eth1DataType.Unwrap(nil)
	assert.ErrorIs(t, err, adapter.ErrInvalidFieldCombination)
}

func TestEth1DataType_WrapWithCallback(t *testing.T) {
	calls := 0
	e := wrapper.Eth1DataType.WrapWithCallback(util.NewEth1Data(), func(interfaces.Eth1Data) { calls++ })
	e.SetDepositRoot(primitives.Root{4})
	assert.Equal(t, 1, calls)
}
