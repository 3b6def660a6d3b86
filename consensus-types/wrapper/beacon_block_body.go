package wrapper

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"github.com/prysmaticlabs/prysm-phase1-bridge/config/params"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

var (
	_ = interfaces.BeaconBlockBody(&beaconBlockBody{})
	_ = interfaces.Bitvector(&adapter.Bitvector[bitfield.Bitvector128]{})
	_ = interfaces.MutableBitvector(&adapter.MutableBitvector[bitfield.Bitvector128]{})
)

// beaconBlockBody is a convenience wrapper around a phase1 beacon block body. Every field is
// read-only.
type beaconBlockBody struct {
	adapter.Value[*phase1.BeaconBlockBody]
}

func wrapBeaconBlockBody(b *phase1.BeaconBlockBody) interfaces.BeaconBlockBody {
	return &beaconBlockBody{Value: adapter.NewValue(b)}
}

// WrappedBeaconBlockBody is a constructor which wraps a phase1 block body into an interface.
// Fixed length fields must match the compiled preset and operation lists longer than the
// configured maxima are rejected.
func WrappedBeaconBlockBody(b *phase1.BeaconBlockBody) (interfaces.BeaconBlockBody, error) {
	if b == nil {
		return nil, ErrNilObjectWrapped
	}
	if b.Eth1Data == nil {
		return nil, errors.Wrap(ErrNilObjectWrapped, "eth1 data")
	}
	if err := validateBodyShape(len(b.ShardTransitions), len(b.LightClientBits)); err != nil {
		return nil, err
	}
	if err := validateBodyLimits(b, params.BeaconConfig()); err != nil {
		return nil, err
	}
	return wrapBeaconBlockBody(b), nil
}

// validateBodyShape checks the fixed length fields against the compiled preset.
func validateBodyShape(shardTransitions, lightClientBytes int) error {
	if shardTransitions != fieldparams.MaxShards {
		return errors.Wrapf(adapter.ErrInvalidFieldCombination, "shard transitions must hold %d entries, got %d", fieldparams.MaxShards, shardTransitions)
	}
	if lightClientBytes != fieldparams.LightClientCommitteeSize/8 {
		return errors.Wrapf(adapter.ErrInvalidFieldCombination, "light client bits must hold %d bytes, got %d", fieldparams.LightClientCommitteeSize/8, lightClientBytes)
	}
	return nil
}

func validateBodyLimits(b *phase1.BeaconBlockBody, cfg *params.BeaconChainConfig) error {
	checks := []struct {
		field string
		len   int
		max   uint64
	}{
		{"proposer slashings", len(b.ProposerSlashings), cfg.MaxProposerSlashings},
		{"attester slashings", len(b.AttesterSlashings), cfg.MaxAttesterSlashings},
		{"attestations", len(b.Attestations), cfg.MaxAttestations},
		{"deposits", len(b.Deposits), cfg.MaxDeposits},
		{"voluntary exits", len(b.VoluntaryExits), cfg.MaxVoluntaryExits},
		{"custody slashings", len(b.CustodySlashings), cfg.MaxCustodySlashings},
		{"custody key reveals", len(b.CustodyKeyReveals), cfg.MaxCustodyKeyReveals},
		{"early derived secret reveals", len(b.EarlyDerivedSecretReveals), cfg.MaxEarlyDerivedSecretReveals},
	}
	for _, c := range checks {
		if uint64(c.len) > c.max {
			return errors.Wrapf(adapter.ErrCapacityExceeded, "%s holds %d items, configured maximum is %d", c.field, c.len, c.max)
		}
	}
	return nil
}

// BeaconBlockBodyFields is the full field set of a block body in facing form. Nil lists are
// empty. The shard transition vector and the light client bits are required.
type BeaconBlockBodyFields struct {
	RandaoReveal              primitives.BLSSignature
	Eth1Data                  interfaces.Eth1Data
	Graffiti                  primitives.Bytes32
	ProposerSlashings         *adapter.MutableList[interfaces.ProposerSlashing, *phase1.ProposerSlashing]
	AttesterSlashings         *adapter.MutableList[interfaces.AttesterSlashing, *phase1.AttesterSlashing]
	Attestations              *adapter.MutableList[interfaces.Attestation, *phase1.Attestation]
	Deposits                  *adapter.MutableList[interfaces.Deposit, *phase1.Deposit]
	VoluntaryExits            *adapter.MutableList[interfaces.SignedVoluntaryExit, *phase1.SignedVoluntaryExit]
	CustodySlashings          *adapter.MutableList[interfaces.SignedCustodySlashing, *phase1.SignedCustodySlashing]
	CustodyKeyReveals         *adapter.MutableList[interfaces.CustodyKeyReveal, *phase1.CustodyKeyReveal]
	EarlyDerivedSecretReveals *adapter.MutableList[interfaces.EarlyDerivedSecretReveal, *phase1.EarlyDerivedSecretReveal]
	ShardTransitions          *adapter.MutableVector[interfaces.ShardTransition, *phase1.ShardTransition]
	LightClientBits           *adapter.MutableBitvector[bitfield.Bitvector128]
	LightClientSignature      primitives.BLSSignature
}

// NewBeaconBlockBody builds a block body from facing values. Nested records must be backed by
// phase1 records and every list must fit the configured maximum for its field.
func NewBeaconBlockBody(f BeaconBlockBodyFields) (interfaces.BeaconBlockBody, error) {
	cfg := params.BeaconConfig()
	eth1, err := Eth1DataType.Unwrap(f.Eth1Data)
	if err != nil {
		return nil, errors.Wrap(err, "could not unwrap eth1 data")
	}
	if f.ShardTransitions == nil || f.LightClientBits == nil {
		return nil, errors.Wrap(adapter.ErrInvalidFieldCombination, "shard transitions and light client bits are required")
	}
	if err := validateBodyShape(int(f.ShardTransitions.Len()), len(f.LightClientBits.Native())); err != nil {
		return nil, err
	}
	body := &phase1.BeaconBlockBody{
		RandaoReveal:         signaturePair.ToNative(f.RandaoReveal),
		Eth1Data:             eth1,
		Graffiti:             bytes32Pair.ToNative(f.Graffiti),
		ShardTransitions:     f.ShardTransitions.Native(),
		LightClientBits:      f.LightClientBits.Native(),
		LightClientSignature: signaturePair.ToNative(f.LightClientSignature),
	}
	if body.ProposerSlashings, err = nativeItems("proposer slashings", f.ProposerSlashings, cfg.MaxProposerSlashings); err != nil {
		return nil, err
	}
	if body.AttesterSlashings, err = nativeItems("attester slashings", f.AttesterSlashings, cfg.MaxAttesterSlashings); err != nil {
		return nil, err
	}
	if body.Attestations, err = nativeItems("attestations", f.Attestations, cfg.MaxAttestations); err != nil {
		return nil, err
	}
	if body.Deposits, err = nativeItems("deposits", f.Deposits, cfg.MaxDeposits); err != nil {
		return nil, err
	}
	if body.VoluntaryExits, err = nativeItems("voluntary exits", f.VoluntaryExits, cfg.MaxVoluntaryExits); err != nil {
		return nil, err
	}
	if body.CustodySlashings, err = nativeItems("custody slashings", f.CustodySlashings, cfg.MaxCustodySlashings); err != nil {
		return nil, err
	}
	if body.CustodyKeyReveals, err = nativeItems("custody key reveals", f.CustodyKeyReveals, cfg.MaxCustodyKeyReveals); err != nil {
		return nil, err
	}
	if body.EarlyDerivedSecretReveals, err = nativeItems("early derived secret reveals", f.EarlyDerivedSecretReveals, cfg.MaxEarlyDerivedSecretReveals); err != nil {
		return nil, err
	}
	return wrapBeaconBlockBody(body), nil
}

// RandaoReveal returns the randao reveal from the block body.
func (w *beaconBlockBody) RandaoReveal() primitives.BLSSignature {
	return signaturePair.Wrap(w.Native().RandaoReveal)
}

// Eth1Data returns the eth1 data in the block. Setting its deposit root does not touch the body.
func (w *beaconBlockBody) Eth1Data() interfaces.Eth1Data {
	return Eth1DataType.Wrap(w.Native().Eth1Data)
}

// Graffiti returns the graffiti in the block.
func (w *beaconBlockBody) Graffiti() primitives.Bytes32 {
	return bytes32Pair.Wrap(w.Native().Graffiti)
}

// ProposerSlashings returns the proposer slashings in the block.
func (w *beaconBlockBody) ProposerSlashings() interfaces.List[interfaces.ProposerSlashing] {
	return readOnlyList[interfaces.ProposerSlashing, *phase1.ProposerSlashing]("proposer slashings", ProposerSlashingType, w.Native().ProposerSlashings, params.BeaconConfig().MaxProposerSlashings)
}

// AttesterSlashings returns the attester slashings in the block.
func (w *beaconBlockBody) AttesterSlashings() interfaces.List[interfaces.AttesterSlashing] {
	return readOnlyList[interfaces.AttesterSlashing, *phase1.AttesterSlashing]("attester slashings", AttesterSlashingType, w.Native().AttesterSlashings, params.BeaconConfig().MaxAttesterSlashings)
}

// Attestations returns the stored attestations in the block.
func (w *beaconBlockBody) Attestations() interfaces.List[interfaces.Attestation] {
	return readOnlyList[interfaces.Attestation, *phase1.Attestation]("attestations", AttestationType, w.Native().Attestations, params.BeaconConfig().MaxAttestations)
}

// Deposits returns the stored deposits in the block.
func (w *beaconBlockBody) Deposits() interfaces.List[interfaces.Deposit] {
	return readOnlyList[interfaces.Deposit, *phase1.Deposit]("deposits", DepositType, w.Native().Deposits, params.BeaconConfig().MaxDeposits)
}

// VoluntaryExits returns the voluntary exits in the block.
func (w *beaconBlockBody) VoluntaryExits() interfaces.List[interfaces.SignedVoluntaryExit] {
	return readOnlyList[interfaces.SignedVoluntaryExit, *phase1.SignedVoluntaryExit]("voluntary exits", SignedVoluntaryExitType, w.Native().VoluntaryExits, params.BeaconConfig().MaxVoluntaryExits)
}

func (w *beaconBlockBody) CustodySlashings() interfaces.List[interfaces.SignedCustodySlashing] {
	return readOnlyList[interfaces.SignedCustodySlashing, *phase1.SignedCustodySlashing]("custody slashings", SignedCustodySlashingType, w.Native().CustodySlashings, params.BeaconConfig().MaxCustodySlashings)
}

func (w *beaconBlockBody) CustodyKeyReveals() interfaces.List[interfaces.CustodyKeyReveal] {
	return readOnlyList[interfaces.CustodyKeyReveal, *phase1.CustodyKeyReveal]("custody key reveals", CustodyKeyRevealType, w.Native().CustodyKeyReveals, params.BeaconConfig().MaxCustodyKeyReveals)
}

func (w *beaconBlockBody) EarlyDerivedSecretReveals() interfaces.List[interfaces.EarlyDerivedSecretReveal] {
	return readOnlyList[interfaces.EarlyDerivedSecretReveal, *phase1.EarlyDerivedSecretReveal]("early derived secret reveals", EarlyDerivedSecretRevealType, w.Native().EarlyDerivedSecretReveals, params.BeaconConfig().MaxEarlyDerivedSecretReveals)
}

// ShardTransitions returns one transition per shard.
func (w *beaconBlockBody) ShardTransitions() interfaces.Vector[interfaces.ShardTransition] {
	return adapter.NewVector[interfaces.ShardTransition, *phase1.ShardTransition](ShardTransitionType, w.Native().ShardTransitions)
}

// LightClientBits returns the light client committee participation bits.
func (w *beaconBlockBody) LightClientBits() interfaces.Bitvector {
	return adapter.NewBitvector(w.Native().LightClientBits)
}

// LightClientSignature returns the aggregate signature of the light client committee.
func (w *beaconBlockBody) LightClientSignature() primitives.BLSSignature {
	return signaturePair.Wrap(w.Native().LightClientSignature)
}

// NewProposerSlashingList returns an empty proposer slashing list bounded by the configured maximum.
func NewProposerSlashingList() *adapter.MutableList[interfaces.ProposerSlashing, *phase1.ProposerSlashing] {
	return adapter.EmptyMutableList[interfaces.ProposerSlashing, *phase1.ProposerSlashing](ProposerSlashingType, params.BeaconConfig().MaxProposerSlashings)
}

// NewAttesterSlashingList returns an empty attester slashing list bounded by the configured maximum.
func NewAttesterSlashingList() *adapter.MutableList[interfaces.AttesterSlashing, *phase1.AttesterSlashing] {
	return adapter.EmptyMutableList[interfaces.AttesterSlashing, *phase1.AttesterSlashing](AttesterSlashingType, params.BeaconConfig().MaxAttesterSlashings)
}

// NewAttestationList returns an empty attestation list bounded by the configured maximum.
func NewAttestationList() *adapter.MutableList[interfaces.Attestation, *phase1.Attestation] {
	return adapter.EmptyMutableList[interfaces.Attestation, *phase1.Attestation](AttestationType, params.BeaconConfig().MaxAttestations)
}

// NewDepositList returns an empty deposit list bounded by the configured maximum.
func NewDepositList() *adapter.MutableList[interfaces.Deposit, *phase1.Deposit] {
	return adapter.EmptyMutableList[interfaces.Deposit, *phase1.Deposit](DepositType, params.BeaconConfig().MaxDeposits)
}

// NewVoluntaryExitList returns an empty voluntary exit list bounded by the configured maximum.
func NewVoluntaryExitList() *adapter.MutableList[interfaces.SignedVoluntaryExit, *phase1.SignedVoluntaryExit] {
	return adapter.EmptyMutableList[interfaces.SignedVoluntaryExit, *phase1.SignedVoluntaryExit](SignedVoluntaryExitType, params.BeaconConfig().MaxVoluntaryExits)
}

// NewCustodySlashingList returns an empty custody slashing list bounded by the configured maximum.
func NewCustodySlashingList() *adapter.MutableList[interfaces.SignedCustodySlashing, *phase1.SignedCustodySlashing] {
	return adapter.EmptyMutableList[interfaces.SignedCustodySlashing, *phase1.SignedCustodySlashing](SignedCustodySlashingType, params.BeaconConfig().MaxCustodySlashings)
}

// NewCustodyKeyRevealList returns an empty custody key reveal list bounded by the configured maximum.
func NewCustodyKeyRevealList() *adapter.MutableList[interfaces.CustodyKeyReveal, *phase1.CustodyKeyReveal] {
	return adapter.EmptyMutableList[interfaces.CustodyKeyReveal, *phase1.CustodyKeyReveal](CustodyKeyRevealType, params.BeaconConfig().MaxCustodyKeyReveals)
}

// NewEarlyDerivedSecretRevealList returns an empty early derived secret reveal list bounded by
// the configured maximum.
func NewEarlyDerivedSecretRevealList() *adapter.MutableList[interfaces.EarlyDerivedSecretReveal, *phase1.EarlyDerivedSecretReveal] {
	return adapter.EmptyMutableList[interfaces.EarlyDerivedSecretReveal, *phase1.EarlyDerivedSecretReveal](EarlyDerivedSecretRevealType, params.BeaconConfig().MaxEarlyDerivedSecretReveals)
}

// NewShardTransitionVector returns a vector holding one empty transition per shard.
func NewShardTransitionVector() *adapter.MutableVector[interfaces.ShardTransition, *phase1.ShardTransition] {
	st := make([]*phase1.ShardTransition, fieldparams.MaxShards)
	for i := range st {
		st[i] = &phase1.ShardTransition{
			ShardBlockLengths:          []uint64{},
			ShardDataRoots:             [][]byte{},
			ShardStates:                []*phase1.ShardState{},
			ProposerSignatureAggregate: make([]byte, fieldparams.BLSSignatureLength),
		}
	}
	return adapter.NewMutableVector[interfaces.ShardTransition, *phase1.ShardTransition](ShardTransitionType, st)
}

// NewLightClientBits returns cleared light client committee bits.
func NewLightClientBits() *adapter.MutableBitvector[bitfield.Bitvector128] {
	return adapter.NewMutableBitvector(bitfield.NewBitvector128())
}
