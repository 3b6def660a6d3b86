package adapter

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/assert"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/require"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/util"
)

func exits(epochs ...uint64) []*phase1.VoluntaryExit {
	out := make([]*phase1.VoluntaryExit, len(epochs))
	for i, e := range epochs {
		out[i] = &phase1.VoluntaryExit{Epoch: e}
	}
	return out
}

func TestNewList(t *testing.T) {
	l, err := NewList[*exitRecord, *phase1.VoluntaryExit](exitPair, exits(1, 2, 3), 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), l.Len())
	assert.Equal(t, uint64(3), l.Limit())

	e, err := l.At(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), e.Epoch())
	_, err = l.At(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	items := l.Items()
	require.Equal(t, 3, len(items))
	assert.Equal(t, uint64(1), items[0].Epoch())

	_, err = NewList[*exitRecord, *phase1.VoluntaryExit](exitPair, exits(1, 2, 3), 2)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestList_NativeIsACopy(t *testing.T) {
	items := exits(1, 2)
	l, err := NewList[*exitRecord, *phase1.VoluntaryExit](exitPair, items, 4)
	require.NoError(t, err)
	out := l.Native()
	out[0] = &phase1.VoluntaryExit{Epoch: 8}
	e, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), e.Epoch())
}

func TestMutableList_AppendAtLimit(t *testing.T) {
	l := EmptyMutableList[*exitRecord, *phase1.VoluntaryExit](exitPair, 4)
	notified := 0
	l.SetCallback(func(*MutableList[*exitRecord, *phase1.VoluntaryExit]) { notified++ })

	for i := uint64(0); i < 4; i++ {
		require.NoError(t, l.Append(exitPair.Wrap(&phase1.VoluntaryExit{Epoch: i})))
	}
	err := l.Append(exitPair.Wrap(&phase1.VoluntaryExit{Epoch: 4}))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, uint64(4), l.Len())
	assert.Equal(t, 4, notified)

	last, err := l.At(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), last.Epoch())
}

func TestMutableList_Set(t *testing.T) {
	items := exits(1, 2)
	l, err := NewMutableList[*exitRecord, *phase1.VoluntaryExit](exitPair, items, 2)
	require.NoError(t, err)

	require.NoError(t, l.Set(1, exitPair.Wrap(&phase1.VoluntaryExit{Epoch: 7})))
	e, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), e.Epoch())
	assert.Equal(t, uint64(2), items[1].Epoch, "the slice handed in must not be written")

	assert.ErrorIs(t, l.Set(2, exitPair.Wrap(&phase1.VoluntaryExit{})), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Set(0, &exitRecord{}), ErrInvalidFieldCombination)
	assert.ErrorIs(t, l.Append(nil), ErrCapacityExceeded)
}

func TestMutableList_ElementWriteBack(t *testing.T) {
	l, err := NewMutableList[*exitRecord, *phase1.VoluntaryExit](exitPair, exits(1, 2), 4)
	require.NoError(t, err)
	notified := 0
	l.SetCallback(func(*MutableList[*exitRecord, *phase1.VoluntaryExit]) { notified++ })

	e, err := l.At(0)
	require.NoError(t, err)
	e.SetEpoch(10)

	again, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), again.Epoch())
	assert.Equal(t, 1, notified)

	assert.ErrorIs(t, l.Append(nil), ErrInvalidFieldCombination)
	assert.ErrorIs(t, l.Append(&exitRecord{}), ErrInvalidFieldCombination)
	assert.Equal(t, uint64(2), l.Len())
	assert.Equal(t, 1, notified)
}

func TestVector(t *testing.T) {
	v := NewMutableVector[*checkpointRecord, *phase1.Checkpoint](checkpointPair, []*phase1.Checkpoint{
		util.HydrateCheckpoint(nil), util.HydrateCheckpoint(&phase1.Checkpoint{Epoch: 2}),
	})
	assert.Equal(t, uint64(2), v.Len())
	c, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), c.Native().Epoch)
	_, err = v.At(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	notified := 0
	v.SetCallback(func(*MutableVector[*checkpointRecord, *phase1.Checkpoint]) { notified++ })
	require.NoError(t, v.Set(0, checkpointPair.Wrap(&phase1.Checkpoint{Epoch: 5, Root: util.Root(5)})))
	assert.Equal(t, 1, notified)
	assert.Equal(t, uint64(2), v.Len())
	assert.ErrorIs(t, v.Set(2, checkpointPair.Wrap(util.HydrateCheckpoint(nil))), ErrIndexOutOfRange)
	assert.Equal(t, 2, len(v.Items()))
}

func TestBitvector(t *testing.T) {
	native := bitfield.NewBitvector128()
	b := NewMutableBitvector(native)
	assert.Equal(t, uint64(128), b.Len())

	notified := 0
	b.SetCallback(func(*MutableBitvector[bitfield.Bitvector128]) { notified++ })
	require.NoError(t, b.SetBitAt(127, true))
	set, err := b.BitAt(127)
	require.NoError(t, err)
	assert.Equal(t, true, set)
	assert.Equal(t, false, native.BitAt(127), "the bits handed in must not be written")
	assert.Equal(t, 1, notified)

	assert.ErrorIs(t, b.SetBitAt(128, true), ErrIndexOutOfRange)
	_, err = b.BitAt(128)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 1, notified)
}
