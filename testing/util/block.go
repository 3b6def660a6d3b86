package util

import (
	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

// NewEth1Data creates an eth1 data record with zeroed roots.
func NewEth1Data() *phase1.Eth1Data {
	return HydrateEth1Data(&phase1.Eth1Data{})
}

// HydrateEth1Data hydrates an eth1 data record with correct field length sizes
// to comply with fssz merkleization rules.
func HydrateEth1Data(e *phase1.Eth1Data) *phase1.Eth1Data {
	if e == nil {
		e = &phase1.Eth1Data{}
	}
	if e.DepositRoot == nil {
		e.DepositRoot = make([]byte, fieldparams.RootLength)
	}
	if e.BlockHash == nil {
		e.BlockHash = make([]byte, 32)
	}
	return e
}

// HydrateBeaconHeader hydrates a beacon block header with correct field length sizes
// to comply with fssz merkleization rules.
func HydrateBeaconHeader(h *phase1.BeaconBlockHeader) *phase1.BeaconBlockHeader {
	if h == nil {
		h = &phase1.BeaconBlockHeader{}
	}
	if h.BodyRoot == nil {
		h.BodyRoot = make([]byte, fieldparams.RootLength)
	}
	if h.StateRoot == nil {
		h.StateRoot = make([]byte, fieldparams.RootLength)
	}
	if h.ParentRoot == nil {
		h.ParentRoot = make([]byte, fieldparams.RootLength)
	}
	return h
}

// HydrateSignedBeaconHeader hydrates a signed beacon block header with correct field length sizes
// to comply with fssz merkleization rules.
func HydrateSignedBeaconHeader(h *phase1.SignedBeaconBlockHeader) *phase1.SignedBeaconBlockHeader {
	if h.Signature == nil {
		h.Signature = make([]byte, fieldparams.BLSSignatureLength)
	}
	h.Message = HydrateBeaconHeader(h.Message)
	return h
}

// HydrateCheckpoint fills in a zero root.
func HydrateCheckpoint(c *phase1.Checkpoint) *phase1.Checkpoint {
	if c == nil {
		c = &phase1.Checkpoint{}
	}
	if c.Root == nil {
		c.Root = make([]byte, fieldparams.RootLength)
	}
	return c
}

// HydrateAttestationData hydrates attestation data with correct field length sizes.
func HydrateAttestationData(d *phase1.AttestationData) *phase1.AttestationData {
	if d == nil {
		d = &phase1.AttestationData{}
	}
	if d.BeaconBlockRoot == nil {
		d.BeaconBlockRoot = make([]byte, fieldparams.RootLength)
	}
	if d.ShardHeadRoot == nil {
		d.ShardHeadRoot = make([]byte, fieldparams.RootLength)
	}
	if d.ShardTransitionRoot == nil {
		d.ShardTransitionRoot = make([]byte, fieldparams.RootLength)
	}
	d.Source = HydrateCheckpoint(d.Source)
	d.Target = HydrateCheckpoint(d.Target)
	return d
}

// HydrateAttestation hydrates an attestation with correct field length sizes. The aggregation
// bits default to a committee of eight with no participants.
func HydrateAttestation(a *phase1.Attestation) *phase1.Attestation {
	if a == nil {
		a = &phase1.Attestation{}
	}
	if a.AggregationBits == nil {
		a.AggregationBits = bitfield.NewBitlist(8)
	}
	if a.Signature == nil {
		a.Signature = make([]byte, fieldparams.BLSSignatureLength)
	}
	a.Data = HydrateAttestationData(a.Data)
	return a
}

// NewAttestation creates an attestation block with minimum marshalable fields.
func NewAttestation() *phase1.Attestation {
	return HydrateAttestation(&phase1.Attestation{})
}

// HydrateIndexedAttestation hydrates an indexed attestation with correct field length sizes.
func HydrateIndexedAttestation(a *phase1.IndexedAttestation) *phase1.IndexedAttestation {
	if a == nil {
		a = &phase1.IndexedAttestation{}
	}
	a.Attestation = HydrateAttestation(a.Attestation)
	return a
}

// NewProposerSlashing creates a proposer slashing over two headers of the same slot.
func NewProposerSlashing(slot, proposer uint64) *phase1.ProposerSlashing {
	h1 := HydrateSignedBeaconHeader(&phase1.SignedBeaconBlockHeader{
		Message: &phase1.BeaconBlockHeader{Slot: slot, ProposerIndex: proposer},
	})
	h2 := HydrateSignedBeaconHeader(&phase1.SignedBeaconBlockHeader{
		Message: &phase1.BeaconBlockHeader{Slot: slot, ProposerIndex: proposer, StateRoot: filledBytes(32, 0x01)},
	})
	return &phase1.ProposerSlashing{SignedHeader1: h1, SignedHeader2: h2}
}

// NewAttesterSlashing creates an attester slashing over two default indexed attestations.
func NewAttesterSlashing() *phase1.AttesterSlashing {
	return &phase1.AttesterSlashing{
		Attestation1: HydrateIndexedAttestation(&phase1.IndexedAttestation{Committee: []uint64{1, 2}}),
		Attestation2: HydrateIndexedAttestation(&phase1.IndexedAttestation{Committee: []uint64{1, 2}}),
	}
}

// HydrateDepositData hydrates deposit data with correct field length sizes.
func HydrateDepositData(d *phase1.DepositData) *phase1.DepositData {
	if d == nil {
		d = &phase1.DepositData{}
	}
	if d.PublicKey == nil {
		d.PublicKey = make([]byte, fieldparams.BLSPubkeyLength)
	}
	if d.WithdrawalCredentials == nil {
		d.WithdrawalCredentials = make([]byte, 32)
	}
	if d.Signature == nil {
		d.Signature = make([]byte, fieldparams.BLSSignatureLength)
	}
	return d
}

// NewDeposit creates a deposit with an all-zero proof branch.
func NewDeposit(amount uint64) *phase1.Deposit {
	proof := make([][]byte, fieldparams.DepositProofLength)
	for i := range proof {
		proof[i] = make([]byte, 32)
	}
	return &phase1.Deposit{
		Proof: proof,
		Data:  HydrateDepositData(&phase1.DepositData{Amount: amount}),
	}
}

// NewSignedVoluntaryExit creates a signed exit for the validator at the given epoch.
func NewSignedVoluntaryExit(epoch, validator uint64) *phase1.SignedVoluntaryExit {
	return &phase1.SignedVoluntaryExit{
		Message:   &phase1.VoluntaryExit{Epoch: epoch, ValidatorIndex: validator},
		Signature: make([]byte, fieldparams.BLSSignatureLength),
	}
}

// HydrateShardTransition hydrates a shard transition with correct field length sizes.
func HydrateShardTransition(s *phase1.ShardTransition) *phase1.ShardTransition {
	if s == nil {
		s = &phase1.ShardTransition{}
	}
	if s.ShardBlockLengths == nil {
		s.ShardBlockLengths = []uint64{}
	}
	if s.ShardDataRoots == nil {
		s.ShardDataRoots = [][]byte{}
	}
	if s.ShardStates == nil {
		s.ShardStates = []*phase1.ShardState{}
	}
	if s.ProposerSignatureAggregate == nil {
		s.ProposerSignatureAggregate = make([]byte, fieldparams.BLSSignatureLength)
	}
	return s
}

// NewShardTransitions returns the full vector of empty shard transitions a block body carries.
func NewShardTransitions() []*phase1.ShardTransition {
	st := make([]*phase1.ShardTransition, fieldparams.MaxShards)
	for i := range st {
		st[i] = HydrateShardTransition(nil)
	}
	return st
}

// NewCustodySlashing creates a signed custody slashing carrying the given shard data.
func NewCustodySlashing(data []byte) *phase1.SignedCustodySlashing {
	return &phase1.SignedCustodySlashing{
		Message: &phase1.CustodySlashing{
			Attestation:     NewAttestation(),
			ShardTransition: HydrateShardTransition(nil),
			CustodySecret:   make([]byte, fieldparams.BLSSignatureLength),
			Data:            data,
		},
		Signature: make([]byte, fieldparams.BLSSignatureLength),
	}
}

// NewCustodyKeyReveal creates a custody key reveal for the revealer.
func NewCustodyKeyReveal(revealer uint64) *phase1.CustodyKeyReveal {
	return &phase1.CustodyKeyReveal{RevealerIndex: revealer, Reveal: make([]byte, fieldparams.BLSSignatureLength)}
}

// NewEarlyDerivedSecretReveal creates an early derived secret reveal.
func NewEarlyDerivedSecretReveal(revealed, masker uint64) *phase1.EarlyDerivedSecretReveal {
	return &phase1.EarlyDerivedSecretReveal{
		RevealedIndex: revealed,
		MaskerIndex:   masker,
		Reveal:        make([]byte, fieldparams.BLSSignatureLength),
		Mask:          make([]byte, 32),
	}
}

// HydrateBeaconBlockBody hydrates a beacon block body with correct field length sizes
// to comply with fssz merkleization rules.
func HydrateBeaconBlockBody(b *phase1.BeaconBlockBody) *phase1.BeaconBlockBody {
	if b == nil {
		b = &phase1.BeaconBlockBody{}
	}
	if b.RandaoReveal == nil {
		b.RandaoReveal = make([]byte, fieldparams.BLSSignatureLength)
	}
	if b.Graffiti == nil {
		b.Graffiti = make([]byte, 32)
	}
	b.Eth1Data = HydrateEth1Data(b.Eth1Data)
	if b.ShardTransitions == nil {
		b.ShardTransitions = NewShardTransitions()
	}
	if b.LightClientBits == nil {
		b.LightClientBits = bitfield.NewBitvector128()
	}
	if b.LightClientSignature == nil {
		b.LightClientSignature = make([]byte, fieldparams.BLSSignatureLength)
	}
	return b
}

// HydrateBeaconBlock hydrates a beacon block with correct field length sizes
// to comply with fssz merkleization rules.
func HydrateBeaconBlock(b *phase1.BeaconBlock) *phase1.BeaconBlock {
	if b == nil {
		b = &phase1.BeaconBlock{}
	}
	if b.ParentRoot == nil {
		b.ParentRoot = make([]byte, fieldparams.RootLength)
	}
	if b.StateRoot == nil {
		b.StateRoot = make([]byte, fieldparams.RootLength)
	}
	b.Body = HydrateBeaconBlockBody(b.Body)
	return b
}

// HydrateSignedBeaconBlock hydrates a signed beacon block with correct field length sizes
// to comply with fssz merkleization rules.
func HydrateSignedBeaconBlock(b *phase1.SignedBeaconBlock) *phase1.SignedBeaconBlock {
	if b.Signature == nil {
		b.Signature = make([]byte, fieldparams.BLSSignatureLength)
	}
	b.Message = HydrateBeaconBlock(b.Message)
	return b
}

// NewBeaconBlock creates a beacon block with minimum marshalable fields.
func NewBeaconBlock() *phase1.SignedBeaconBlock {
	return HydrateSignedBeaconBlock(&phase1.SignedBeaconBlock{})
}

func filledBytes(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}

// Root returns a 32 byte slice filled with v, handy for telling roots apart.
func Root(v byte) []byte {
	return filledBytes(32, v)
}
