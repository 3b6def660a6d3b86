package wrapper

import (
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/prysm-phase1-bridge/config/params"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

var (
	_ = interfaces.Checkpoint(&checkpoint{})
	_ = interfaces.AttestationData(&attestationData{})
	_ = interfaces.Attestation(&attestation{})
	_ = interfaces.IndexedAttestation(&indexedAttestation{})
	_ = interfaces.AttesterSlashing(&attesterSlashing{})
	_ = interfaces.ProposerSlashing(&proposerSlashing{})
)

type checkpoint struct {
	adapter.Value[*phase1.Checkpoint]
}

func wrapCheckpoint(c *phase1.Checkpoint) interfaces.Checkpoint {
	return &checkpoint{Value: adapter.NewValue(c)}
}

func (c *checkpoint) Epoch() primitives.Epoch {
	return epochPair.Wrap(c.Native().Epoch)
}

func (c *checkpoint) Root() primitives.Root {
	return rootPair.Wrap(c.Native().Root)
}

type attestationData struct {
	adapter.Value[*phase1.AttestationData]
}

func wrapAttestationData(d *phase1.AttestationData) interfaces.AttestationData {
	return &attestationData{Value: adapter.NewValue(d)}
}

func (d *attestationData) Slot() primitives.Slot {
	return slotPair.Wrap(d.Native().Slot)
}

func (d *attestationData) Index() primitives.CommitteeIndex {
	return committeeIndexPair.Wrap(d.Native().Index)
}

func (d *attestationData) BeaconBlockRoot() primitives.Root {
	return rootPair.Wrap(d.Native().BeaconBlockRoot)
}

func (d *attestationData) Source() interfaces.Checkpoint {
	return CheckpointType.Wrap(d.Native().Source)
}

func (d *attestationData) Target() interfaces.Checkpoint {
	return CheckpointType.Wrap(d.Native().Target)
}

// ShardHeadRoot is the root of the latest shard block the attesters saw.
func (d *attestationData) ShardHeadRoot() primitives.Root {
	return rootPair.Wrap(d.Native().ShardHeadRoot)
}

func (d *attestationData) ShardTransitionRoot() primitives.Root {
	return rootPair.Wrap(d.Native().ShardTransitionRoot)
}

type attestation struct {
	adapter.Value[*phase1.Attestation]
}

func wrapAttestation(a *phase1.Attestation) interfaces.Attestation {
	return &attestation{Value: adapter.NewValue(a)}
}

// AggregationBits returns a copy of the participation bits.
func (a *attestation) AggregationBits() bitfield.Bitlist {
	return bitlistPair.Wrap(a.Native().AggregationBits)
}

func (a *attestation) Data() interfaces.AttestationData {
	return AttestationDataType.Wrap(a.Native().Data)
}

// CustodyBitsBlocks holds one custody bitlist per shard block in the transition.
func (a *attestation) CustodyBitsBlocks() interfaces.List[bitfield.Bitlist] {
	return readOnlyList[bitfield.Bitlist, bitfield.Bitlist]("custody bits blocks", bitlistPair, a.Native().CustodyBitsBlocks, params.BeaconConfig().MaxShardBlocksPerAttestation)
}

func (a *attestation) Signature() primitives.BLSSignature {
	return signaturePair.Wrap(a.Native().Signature)
}

type indexedAttestation struct {
	adapter.Value[*phase1.IndexedAttestation]
}

func wrapIndexedAttestation(a *phase1.IndexedAttestation) interfaces.IndexedAttestation {
	return &indexedAttestation{Value: adapter.NewValue(a)}
}

func (a *indexedAttestation) Committee() interfaces.List[primitives.ValidatorIndex] {
	return readOnlyList[primitives.ValidatorIndex, uint64]("committee", validatorIndexPair, a.Native().Committee, params.BeaconConfig().MaxValidatorsPerCommittee)
}

func (a *indexedAttestation) Attestation() interfaces.Attestation {
	return AttestationType.Wrap(a.Native().Attestation)
}

type attesterSlashing struct {
	adapter.Value[*phase1.AttesterSlashing]
}

func wrapAttesterSlashing(s *phase1.AttesterSlashing) interfaces.AttesterSlashing {
	return &attesterSlashing{Value: adapter.NewValue(s)}
}

func (s *attesterSlashing) Attestation1() interfaces.IndexedAttestation {
	return IndexedAttestationType.Wrap(s.Native().Attestation1)
}

func (s *attesterSlashing) Attestation2() interfaces.IndexedAttestation {
	return IndexedAttestationType.Wrap(s.Native().Attestation2)
}

type proposerSlashing struct {
	adapter.Value[*phase1.ProposerSlashing]
}

func wrapProposerSlashing(s *phase1.ProposerSlashing) interfaces.ProposerSlashing {
	return &proposerSlashing{Value: adapter.NewValue(s)}
}

// WrappedProposerSlashing wraps a proposer slashing whose two signed headers are both present.
func WrappedProposerSlashing(s *phase1.ProposerSlashing) (interfaces.ProposerSlashing, error) {
	if s == nil || s.SignedHeader1 == nil || s.SignedHeader2 == nil {
		return nil, ErrNilObjectWrapped
	}
	return wrapProposerSlashing(s), nil
}

func (s *proposerSlashing) SignedHeader1() interfaces.SignedBeaconBlockHeader {
	return SignedBeaconBlockHeaderType.Wrap(s.Native().SignedHeader1)
}

func (s *proposerSlashing) SignedHeader2() interfaces.SignedBeaconBlockHeader {
	return SignedBeaconBlockHeaderType.Wrap(s.Native().SignedHeader2)
}
