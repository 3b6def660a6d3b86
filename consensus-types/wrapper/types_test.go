package wrapper_test

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/wrapper"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/assert"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/require"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/util"
)

func assertRoundTrip[F interfaces.Record, N adapter.Record[N]](t *testing.T, pair adapter.WrappedTypePair[F, N], n N) {
	t.Helper()
	f := pair.Wrap(n)
	got, err := pair.Unwrap(f)
	require.NoError(t, err)
	assert.Equal(t, any(n), any(got))

	want, err := n.HashTreeRoot()
	require.NoError(t, err)
	root, err := f.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, want, root)
	assert.Equal(t, n.String(), f.String())
	assert.Equal(t, true, f.Equals(pair.Wrap(n)))
}

func TestTypePairs_RoundTrip(t *testing.T) {
	att := util.NewAttestation()
	t.Run("eth1 data", func(t *testing.T) { assertRoundTrip(t, wrapper.Eth1DataType, util.NewEth1Data()) })
	t.Run("header", func(t *testing.T) { assertRoundTrip(t, wrapper.BeaconBlockHeaderType, util.HydrateBeaconHeader(nil)) })
	t.Run("signed header", func(t *testing.T) {
		assertRoundTrip(t, wrapper.SignedBeaconBlockHeaderType, util.HydrateSignedBeaconHeader(&phase1.SignedBeaconBlockHeader{}))
	})
	t.Run("body", func(t *testing.T) { assertRoundTrip(t, wrapper.BeaconBlockBodyType, util.HydrateBeaconBlockBody(nil)) })
	t.Run("block", func(t *testing.T) { assertRoundTrip(t, wrapper.BeaconBlockType, util.HydrateBeaconBlock(nil)) })
	t.Run("signed block", func(t *testing.T) { assertRoundTrip(t, wrapper.SignedBeaconBlockType, util.NewBeaconBlock()) })
	t.Run("checkpoint", func(t *testing.T) { assertRoundTrip(t, wrapper.CheckpointType, util.HydrateCheckpoint(nil)) })
	t.Run("attestation data", func(t *testing.T) { assertRoundTrip(t, wrapper.AttestationDataType, att.Data) })
	t.Run("attestation", func(t *testing.T) { assertRoundTrip(t, wrapper.AttestationType, att) })
	t.Run("indexed attestation", func(t *testing.T) {
		assertRoundTrip(t, wrapper.IndexedAttestationType, util.HydrateIndexedAttestation(nil))
	})
	t.Run("attester slashing", func(t *testing.T) { assertRoundTrip(t, wrapper.AttesterSlashingType, util.NewAttesterSlashing()) })
	t.Run("proposer slashing", func(t *testing.T) { assertRoundTrip(t, wrapper.ProposerSlashingType, util.NewProposerSlashing(1, 2)) })
	t.Run("deposit data", func(t *testing.T) { assertRoundTrip(t, wrapper.DepositDataType, util.HydrateDepositData(nil)) })
	t.Run("deposit", func(t *testing.T) { assertRoundTrip(t, wrapper.DepositType, util.NewDeposit(32)) })
	t.Run("voluntary exit", func(t *testing.T) {
		assertRoundTrip(t, wrapper.VoluntaryExitType, &phase1.VoluntaryExit{Epoch: 1, ValidatorIndex: 2})
	})
	t.Run("signed voluntary exit", func(t *testing.T) {
		assertRoundTrip(t, wrapper.SignedVoluntaryExitType, util.NewSignedVoluntaryExit(1, 2))
	})
	t.Run("shard state", func(t *testing.T) {
		assertRoundTrip(t, wrapper.ShardStateType, &phase1.ShardState{Slot: 1, GasPrice: 2, LatestBlockRoot: util.Root(3)})
	})
	t.Run("shard transition", func(t *testing.T) { assertRoundTrip(t, wrapper.ShardTransitionType, util.HydrateShardTransition(nil)) })
	t.Run("custody slashing", func(t *testing.T) {
		assertRoundTrip(t, wrapper.CustodySlashingType, util.NewCustodySlashing([]byte{1}).Message)
	})
	t.Run("signed custody slashing", func(t *testing.T) {
		assertRoundTrip(t, wrapper.SignedCustodySlashingType, util.NewCustodySlashing([]byte{1}))
	})
	t.Run("custody key reveal", func(t *testing.T) { assertRoundTrip(t, wrapper.CustodyKeyRevealType, util.NewCustodyKeyReveal(3)) })
	t.Run("early derived secret reveal", func(t *testing.T) {
		assertRoundTrip(t, wrapper.EarlyDerivedSecretRevealType, util.NewEarlyDerivedSecretReveal(1, 2))
	})
}

func TestAttestation_ReadThrough(t *testing.T) {
	native := util.HydrateAttestation(&phase1.Attestation{
		Data: &phase1.AttestationData{
			Slot:   6,
			Index:  2,
			Source: &phase1.Checkpoint{Epoch: 1, Root: util.Root(1)},
			Target: &phase1.Checkpoint{Epoch: 2, Root: util.Root(2)},
		},
		CustodyBitsBlocks: []bitfield.Bitlist{bitfield.NewBitlist(4), bitfield.NewBitlist(8)},
	})
	native.AggregationBits.SetBitAt(1, true)
	a := wrapper.AttestationType.Wrap(native)

	assert.Equal(t, primitives.Slot(6), a.Data().Slot())
	assert.Equal(t, primitives.CommitteeIndex(2), a.Data().Index())
	assert.Equal(t, primitives.Epoch(1), a.Data().Source().Epoch())
	assert.Equal(t, primitives.Root(bytes32(2)), a.Data().Target().Root())
	assert.Equal(t, primitives.Root{}, a.Data().ShardHeadRoot())
	assert.Equal(t, uint64(2), a.CustodyBitsBlocks().Len())
	bits, err := a.CustodyBitsBlocks().At(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), bits.Len())

	agg := a.AggregationBits()
	assert.Equal(t, true, agg.BitAt(1))
	agg.SetBitAt(1, false)
	assert.Equal(t, true, native.AggregationBits.BitAt(1), "aggregation bits must be handed out as a copy")
}

func TestIndexedAttestation_Committee(t *testing.T) {
	native := util.HydrateIndexedAttestation(&phase1.IndexedAttestation{Committee: []uint64{4, 9, 11}})
	a := wrapper.IndexedAttestationType.Wrap(native)
	committee := a.Committee()
	assert.Equal(t, uint64(3), committee.Len())
	assert.DeepEqual(t, []primitives.ValidatorIndex{4, 9, 11}, committee.Items())
	_, err := committee.At(3)
	assert.ErrorIs(t, err, adapter.ErrIndexOutOfRange)
}

func TestProposerSlashing_ReadThrough(t *testing.T) {
	s, err := wrapper.WrappedProposerSlashing(util.NewProposerSlashing(7, 3))
	require.NoError(t, err)
	assert.Equal(t, primitives.Slot(7), s.SignedHeader1().Message().Slot())
	assert.Equal(t, primitives.ValidatorIndex(3), s.SignedHeader2().Message().ProposerIndex())

	_, err = wrapper.WrappedProposerSlashing(&phase1.ProposerSlashing{})
	assert.ErrorIs(t, err, wrapper.ErrNilObjectWrapped)
}

func TestDeposit_ReadThrough(t *testing.T) {
	native := util.NewDeposit(32_000_000_000)
	native.Proof[2] = util.Root(5)
	d, err := wrapper.WrappedDeposit(native)
	require.NoError(t, err)

	assert.Equal(t, uint64(fieldparams.DepositProofLength), d.Proof().Len())
	node, err := d.Proof().At(2)
	require.NoError(t, err)
	assert.Equal(t, primitives.Bytes32(bytes32(5)), node)
	_, err = d.Proof().At(fieldparams.DepositProofLength)
	assert.ErrorIs(t, err, adapter.ErrIndexOutOfRange)
	assert.Equal(t, primitives.Gwei(32_000_000_000), d.Data().Amount())
	assert.Equal(t, primitives.BLSPubkey{}, d.Data().PublicKey())

	_, err = wrapper.WrappedDeposit(&phase1.Deposit{})
	assert.ErrorIs(t, err, wrapper.ErrNilObjectWrapped)
}

func TestSignedVoluntaryExit_ReadThrough(t *testing.T) {
	e, err := wrapper.WrappedSignedVoluntaryExit(util.NewSignedVoluntaryExit(10, 20))
	require.NoError(t, err)
	assert.Equal(t, primitives.Epoch(10), e.Message().Epoch())
	assert.Equal(t, primitives.ValidatorIndex(20), e.Message().ValidatorIndex())

	_, err = wrapper.WrappedSignedVoluntaryExit(&phase1.SignedVoluntaryExit{})
	assert.ErrorIs(t, err, wrapper.ErrNilObjectWrapped)
}

func TestShardTransition_ReadThrough(t *testing.T) {
	native := util.HydrateShardTransition(&phase1.ShardTransition{
		StartSlot:         3,
		ShardBlockLengths: []uint64{100, 200},
		ShardDataRoots:    [][]byte{util.Root(1), util.Root(2)},
		ShardStates: []*phase1.ShardState{
			{Slot: 3, GasPrice: 10, LatestBlockRoot: util.Root(3)},
			{Slot: 4, GasPrice: 11, LatestBlockRoot: util.Root(4)},
		},
	})
	s := wrapper.ShardTransitionType.Wrap(native)
	assert.Equal(t, primitives.Slot(3), s.StartSlot())
	assert.DeepEqual(t, []uint64{100, 200}, s.ShardBlockLengths().Items())
	root, err := s.ShardDataRoots().At(1)
	require.NoError(t, err)
	assert.Equal(t, primitives.Bytes32(bytes32(2)), root)
	state, err := s.ShardStates().At(1)
	require.NoError(t, err)
	assert.Equal(t, primitives.Gwei(11), state.GasPrice())
	assert.Equal(t, primitives.Root(bytes32(4)), state.LatestBlockRoot())
}

func TestCustodyOperations_ReadThrough(t *testing.T) {
	signed := util.NewCustodySlashing([]byte{1, 2, 3})
	signed.Message.DataIndex = 2
	signed.Message.MaliciousValidatorIndex = 5
	signed.Message.Whistleblower = 6
	s := wrapper.SignedCustodySlashingType.Wrap(signed)
	msg := s.Message()
	assert.Equal(t, uint64(2), msg.DataIndex())
	assert.Equal(t, primitives.ValidatorIndex(5), msg.MaliciousValidatorIndex())
	assert.Equal(t, primitives.ValidatorIndex(6), msg.Whistleblower())
	assert.Equal(t, uint64(0), msg.ShardTransition().ShardStates().Len())
	assert.Equal(t, true, msg.Attestation().Equals(wrapper.AttestationType.Wrap(util.NewAttestation())))

	data := msg.Data()
	assert.DeepEqual(t, []byte{1, 2, 3}, data)
	data[0] = 9
	assert.DeepEqual(t, []byte{1, 2, 3}, signed.Message.Data)

	r := wrapper.CustodyKeyRevealType.Wrap(util.NewCustodyKeyReveal(8))
	assert.Equal(t, primitives.ValidatorIndex(8), r.RevealerIndex())
	assert.Equal(t, primitives.BLSSignature{}, r.Reveal())

	edsr := wrapper.EarlyDerivedSecretRevealType.Wrap(&phase1.EarlyDerivedSecretReveal{
		RevealedIndex: 1,
		Epoch:         2,
		Reveal:        make([]byte, fieldparams.BLSSignatureLength),
		MaskerIndex:   3,
		Mask:          util.Root(4),
	})
	assert.Equal(t, primitives.ValidatorIndex(1), edsr.RevealedIndex())
	assert.Equal(t, primitives.Epoch(2), edsr.Epoch())
	assert.Equal(t, primitives.ValidatorIndex(3), edsr.MaskerIndex())
	assert.Equal(t, primitives.Bytes32(bytes32(4)), edsr.Mask())
}
