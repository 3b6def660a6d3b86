package phase1_test

import (
	"testing"

	ssz "github.com/ferranbt/fastssz"
	dynssz "github.com/pk910/dynamic-ssz"
	"github.com/protolambda/zrnt/eth2/beacon/common"
	"github.com/protolambda/ztyp/tree"
	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/assert"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/require"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/util"
)

func TestEth1Data_HashTreeRoot_MatchesZrnt(t *testing.T) {
	e := &phase1.Eth1Data{DepositRoot: util.Root(0x0a), DepositCount: 5, BlockHash: util.Root(0x0b)}
	z := &common.Eth1Data{
		DepositRoot:  common.Root(bytesutil.ToBytes32(e.DepositRoot)),
		DepositCount: common.DepositIndex(e.DepositCount),
		BlockHash:    common.Root(bytesutil.ToBytes32(e.BlockHash)),
	}
	got, err := e.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, [32]byte(z.HashTreeRoot(tree.GetHashFn())), got)
}

func TestBeaconBlockHeader_HashTreeRoot_MatchesZrnt(t *testing.T) {
	h := &phase1.BeaconBlockHeader{
		Slot:          42,
		ProposerIndex: 7,
		ParentRoot:    util.Root(1),
		StateRoot:     util.Root(2),
		BodyRoot:      util.Root(3),
	}
	z := &common.BeaconBlockHeader{
		Slot:          common.Slot(h.Slot),
		ProposerIndex: common.ValidatorIndex(h.ProposerIndex),
		ParentRoot:    common.Root(bytesutil.ToBytes32(h.ParentRoot)),
		StateRoot:     common.Root(bytesutil.ToBytes32(h.StateRoot)),
		BodyRoot:      common.Root(bytesutil.ToBytes32(h.BodyRoot)),
	}
	got, err := h.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, [32]byte(z.HashTreeRoot(tree.GetHashFn())), got)
}

func TestCheckpoint_HashTreeRoot_MatchesZrnt(t *testing.T) {
	c := &phase1.Checkpoint{Epoch: 9, Root: util.Root(0xee)}
	z := &common.Checkpoint{Epoch: 9, Root: common.Root(bytesutil.ToBytes32(c.Root))}
	got, err := c.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, [32]byte(z.HashTreeRoot(tree.GetHashFn())), got)
}

func TestDepositData_HashTreeRoot_MatchesZrnt(t *testing.T) {
	d := util.HydrateDepositData(&phase1.DepositData{Amount: 32000000000})
	d.PublicKey[0] = 0xaa
	d.Signature[95] = 0xbb
	z := &common.DepositData{
		Pubkey:                common.BLSPubkey(bytesutil.ToBytes48(d.PublicKey)),
		WithdrawalCredentials: common.Root(bytesutil.ToBytes32(d.WithdrawalCredentials)),
		Amount:                common.Gwei(d.Amount),
		Signature:             common.BLSSignature(bytesutil.ToBytes96(d.Signature)),
	}
	got, err := d.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, [32]byte(z.HashTreeRoot(tree.GetHashFn())), got)
}

func TestHashTreeRoot_MatchesReflectionHasher(t *testing.T) {
	ds := dynssz.NewDynSsz(nil)
	ds.NoFastSsz = true

	transition := util.HydrateShardTransition(&phase1.ShardTransition{
		StartSlot:         3,
		ShardBlockLengths: []uint64{1, 2, 3},
		ShardDataRoots:    [][]byte{util.Root(4), util.Root(5)},
		ShardStates: []*phase1.ShardState{
			{Slot: 1, GasPrice: 10, LatestBlockRoot: util.Root(6)},
		},
	})

	tests := []struct {
		name string
		obj  interface {
			HashTreeRoot() ([32]byte, error)
		}
	}{
		{name: "header", obj: util.HydrateBeaconHeader(&phase1.BeaconBlockHeader{Slot: 1, ProposerIndex: 2})},
		{name: "signed header", obj: util.HydrateSignedBeaconHeader(&phase1.SignedBeaconBlockHeader{})},
		{name: "deposit", obj: util.NewDeposit(1)},
		{name: "voluntary exit", obj: util.NewSignedVoluntaryExit(4, 5)},
		{name: "shard transition", obj: transition},
		{name: "custody key reveal", obj: util.NewCustodyKeyReveal(11)},
		{name: "early derived secret reveal", obj: util.NewEarlyDerivedSecretReveal(1, 2)},
		{name: "proposer slashing", obj: util.NewProposerSlashing(8, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := ds.HashTreeRoot(tt.obj)
			require.NoError(t, err)
			got, err := tt.obj.HashTreeRoot()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestHashTreeRoot_WrongByteLength(t *testing.T) {
	e := &phase1.Eth1Data{DepositRoot: []byte{1, 2, 3}, BlockHash: util.Root(0)}
	_, err := e.HashTreeRoot()
	require.ErrorIs(t, err, ssz.ErrBytesLength)
	assert.ErrorContains(t, "Eth1Data.DepositRoot", err)
}

func TestHashTreeRoot_NilNested(t *testing.T) {
	_, err := (&phase1.SignedBeaconBlockHeader{Signature: make([]byte, 96)}).HashTreeRoot()
	require.ErrorIs(t, err, phase1.ErrNilField)
}

func TestHashTreeRoot_EmptyBitlist(t *testing.T) {
	a := util.NewAttestation()
	a.AggregationBits = nil
	_, err := a.HashTreeRoot()
	require.ErrorIs(t, err, phase1.ErrEmptyBitlist)
}

func TestBeaconBlockBody_HashTreeRoot_ListLimit(t *testing.T) {
	body := util.HydrateBeaconBlockBody(nil)
	for i := 0; i < fieldparams.MaxAttesterSlashings+1; i++ {
		body.AttesterSlashings = append(body.AttesterSlashings, util.NewAttesterSlashing())
	}
	_, err := body.HashTreeRoot()
	require.ErrorIs(t, err, ssz.ErrIncorrectListSize)
}

func TestBeaconBlockBody_HashTreeRoot_ShardVectorLength(t *testing.T) {
	body := util.HydrateBeaconBlockBody(nil)
	body.ShardTransitions = body.ShardTransitions[:1]
	_, err := body.HashTreeRoot()
	require.ErrorIs(t, err, phase1.ErrIncorrectVectorLength)
}

func TestBeaconBlockBody_HashTreeRoot_FieldSensitivity(t *testing.T) {
	body := util.HydrateBeaconBlockBody(nil)
	before, err := body.HashTreeRoot()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(b *phase1.BeaconBlockBody)
	}{
		{name: "graffiti", mutate: func(b *phase1.BeaconBlockBody) { b.Graffiti = util.Root(1) }},
		{name: "eth1 data", mutate: func(b *phase1.BeaconBlockBody) { b.Eth1Data.DepositCount = 1 }},
		{name: "attestation", mutate: func(b *phase1.BeaconBlockBody) { b.Attestations = append(b.Attestations, util.NewAttestation()) }},
		{name: "deposit", mutate: func(b *phase1.BeaconBlockBody) { b.Deposits = append(b.Deposits, util.NewDeposit(1)) }},
		{name: "custody slashing", mutate: func(b *phase1.BeaconBlockBody) {
			b.CustodySlashings = append(b.CustodySlashings, util.NewCustodySlashing(make([]byte, 100)))
		}},
		{name: "light client bit", mutate: func(b *phase1.BeaconBlockBody) { b.LightClientBits.SetBitAt(5, true) }},
		{name: "shard transition", mutate: func(b *phase1.BeaconBlockBody) { b.ShardTransitions[0].StartSlot = 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := body.Copy()
			tt.mutate(b)
			after, err := b.HashTreeRoot()
			require.NoError(t, err)
			assert.NotEqual(t, before, after)
		})
	}
	again, err := body.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, before, again, "copies must not alias the original")
}

func TestSignedBeaconBlock_GetTree(t *testing.T) {
	blk := util.NewBeaconBlock()
	root, err := blk.HashTreeRoot()
	require.NoError(t, err)
	node, err := blk.GetTree()
	require.NoError(t, err)
	assert.DeepEqual(t, root[:], node.Hash())
}

func TestGetTree_MatchesHashTreeRoot(t *testing.T) {
	transition := util.HydrateShardTransition(&phase1.ShardTransition{
		StartSlot:         3,
		ShardBlockLengths: []uint64{1, 2, 3},
		ShardDataRoots:    [][]byte{util.Root(1), util.Root(2)},
		ShardStates: []*phase1.ShardState{
			{Slot: 1, GasPrice: 2, LatestBlockRoot: util.Root(3)},
		},
	})
	att := util.NewAttestation()
	att.CustodyBitsBlocks = []bitfield.Bitlist{bitfield.NewBitlist(8), bitfield.NewBitlist(16)}

	tests := []struct {
		name string
		obj  interface {
			HashTreeRoot() ([32]byte, error)
			GetTree() (*ssz.Node, error)
		}
	}{
		{name: "empty shard transition", obj: util.HydrateShardTransition(nil)},
		{name: "shard transition", obj: transition},
		{name: "attestation with custody bits", obj: att},
		{name: "indexed attestation", obj: util.HydrateIndexedAttestation(&phase1.IndexedAttestation{Committee: []uint64{1, 2, 3}})},
		{name: "custody slashing", obj: util.NewCustodySlashing([]byte{1, 2, 3})},
		{name: "block body", obj: util.HydrateBeaconBlockBody(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := tt.obj.HashTreeRoot()
			require.NoError(t, err)
			node, err := tt.obj.GetTree()
			require.NoError(t, err)
			assert.DeepEqual(t, root[:], node.Hash())
		})
	}
}

func TestEqual(t *testing.T) {
	a := util.NewEth1Data()
	b := a.Copy()
	assert.Equal(t, true, a.Equal(b))
	b.DepositCount = 1
	assert.Equal(t, false, a.Equal(b))

	var nilData *phase1.Eth1Data
	assert.Equal(t, false, a.Equal(nilData))
	assert.Equal(t, true, nilData.Equal(nil))

	empty := &phase1.ShardTransition{ShardBlockLengths: []uint64{}}
	assert.Equal(t, true, empty.Equal(&phase1.ShardTransition{}), "nil and empty lists are equal")

	blk1 := util.NewBeaconBlock()
	blk2 := util.NewBeaconBlock()
	assert.Equal(t, true, blk1.Equal(blk2))
	blk2.Message.Body.Eth1Data.DepositRoot = util.Root(9)
	assert.Equal(t, false, blk1.Equal(blk2))
}

func TestCopy_IsDeep(t *testing.T) {
	h := util.HydrateSignedBeaconHeader(&phase1.SignedBeaconBlockHeader{})
	c := h.Copy()
	c.Message.StateRoot[0] = 0xff
	assert.Equal(t, byte(0), h.Message.StateRoot[0])
	assert.Equal(t, (*phase1.Eth1Data)(nil), (*phase1.Eth1Data)(nil).Copy())
}

func TestString(t *testing.T) {
	e := &phase1.Eth1Data{DepositCount: 5}
	assert.Equal(t, true, len(e.String()) > 0)
	assert.StringContains(t, "DepositCount", e.String())
}
