package wrapper

import (
	"github.com/prysmaticlabs/prysm-phase1-bridge/config/params"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

var (
	_ = interfaces.ShardState(&shardState{})
	_ = interfaces.ShardTransition(&shardTransition{})
	_ = interfaces.CustodySlashing(&custodySlashing{})
	_ = interfaces.SignedCustodySlashing(&signedCustodySlashing{})
	_ = interfaces.CustodyKeyReveal(&custodyKeyReveal{})
	_ = interfaces.EarlyDerivedSecretReveal(&earlyDerivedSecretReveal{})
)

type shardState struct {
	adapter.Value[*phase1.ShardState]
}

func wrapShardState(s *phase1.ShardState) interfaces.ShardState {
	return &shardState{Value: adapter.NewValue(s)}
}

func (s *shardState) Slot() primitives.Slot {
	return slotPair.Wrap(s.Native().Slot)
}

func (s *shardState) GasPrice() primitives.Gwei {
	return gweiPair.Wrap(s.Native().GasPrice)
}

func (s *shardState) LatestBlockRoot() primitives.Root {
	return rootPair.Wrap(s.Native().LatestBlockRoot)
}

type shardTransition struct {
	adapter.Value[*phase1.ShardTransition]
}

func wrapShardTransition(s *phase1.ShardTransition) interfaces.ShardTransition {
	return &shardTransition{Value: adapter.NewValue(s)}
}

func (s *shardTransition) StartSlot() primitives.Slot {
	return slotPair.Wrap(s.Native().StartSlot)
}

// ShardBlockLengths, ShardDataRoots and ShardStates run in parallel, one entry per shard block.
func (s *shardTransition) ShardBlockLengths() interfaces.List[uint64] {
	return readOnlyList[uint64, uint64]("shard block lengths", uint64Pair, s.Native().ShardBlockLengths, params.BeaconConfig().MaxShardBlocksPerAttestation)
}

func (s *shardTransition) ShardDataRoots() interfaces.List[primitives.Bytes32] {
	return readOnlyList[primitives.Bytes32, []byte]("shard data roots", bytes32Pair, s.Native().ShardDataRoots, params.BeaconConfig().MaxShardBlocksPerAttestation)
}

func (s *shardTransition) ShardStates() interfaces.List[interfaces.ShardState] {
	return readOnlyList[interfaces.ShardState, *phase1.ShardState]("shard states", ShardStateType, s.Native().ShardStates, params.BeaconConfig().MaxShardBlocksPerAttestation)
}

func (s *shardTransition) ProposerSignatureAggregate() primitives.BLSSignature {
	return signaturePair.Wrap(s.Native().ProposerSignatureAggregate)
}

type custodySlashing struct {
	adapter.Value[*phase1.CustodySlashing]
}

func wrapCustodySlashing(s *phase1.CustodySlashing) interfaces.CustodySlashing {
	return &custodySlashing{Value: adapter.NewValue(s)}
}

func (s *custodySlashing) DataIndex() uint64 {
	return uint64Pair.Wrap(s.Native().DataIndex)
}

func (s *custodySlashing) MaliciousValidatorIndex() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(s.Native().MaliciousValidatorIndex)
}

func (s *custodySlashing) Attestation() interfaces.Attestation {
	return AttestationType.Wrap(s.Native().Attestation)
}

func (s *custodySlashing) Whistleblower() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(s.Native().Whistleblower)
}

func (s *custodySlashing) ShardTransition() interfaces.ShardTransition {
	return ShardTransitionType.Wrap(s.Native().ShardTransition)
}

func (s *custodySlashing) CustodySecret() primitives.BLSSignature {
	return signaturePair.Wrap(s.Native().CustodySecret)
}

// Data returns a copy of the shard block data the slashing is about.
func (s *custodySlashing) Data() []byte {
	return bytesutil.SafeCopyBytes(s.Native().Data)
}

type signedCustodySlashing struct {
	adapter.Value[*phase1.SignedCustodySlashing]
}

func wrapSignedCustodySlashing(s *phase1.SignedCustodySlashing) interfaces.SignedCustodySlashing {
	return &signedCustodySlashing{Value: adapter.NewValue(s)}
}

func (s *signedCustodySlashing) Message() interfaces.CustodySlashing {
	return CustodySlashingType.Wrap(s.Native().Message)
}

func (s *signedCustodySlashing) Signature() primitives.BLSSignature {
	return signaturePair.Wrap(s.Native().Signature)
}

type custodyKeyReveal struct {
	adapter.Value[*phase1.CustodyKeyReveal]
}

func wrapCustodyKeyReveal(r *phase1.CustodyKeyReveal) interfaces.CustodyKeyReveal {
	return &custodyKeyReveal{Value: adapter.NewValue(r)}
}

func (r *custodyKeyReveal) RevealerIndex() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(r.Native().RevealerIndex)
}

func (r *custodyKeyReveal) Reveal() primitives.BLSSignature {
	return signaturePair.Wrap(r.Native().Reveal)
}

type earlyDerivedSecretReveal struct {
	adapter.Value[*phase1.EarlyDerivedSecretReveal]
}

func wrapEarlyDerivedSecretReveal(r *phase1.EarlyDerivedSecretReveal) interfaces.EarlyDerivedSecretReveal {
	return &earlyDerivedSecretReveal{Value: adapter.NewValue(r)}
}

func (r *earlyDerivedSecretReveal) RevealedIndex() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(r.Native().RevealedIndex)
}

func (r *earlyDerivedSecretReveal) Epoch() primitives.Epoch {
	return epochPair.Wrap(r.Native().Epoch)
}

func (r *earlyDerivedSecretReveal) Reveal() primitives.BLSSignature {
	return signaturePair.Wrap(r.Native().Reveal)
}

// MaskerIndex is the validator whose mask hides the reveal.
func (r *earlyDerivedSecretReveal) MaskerIndex() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(r.Native().MaskerIndex)
}

func (r *earlyDerivedSecretReveal) Mask() primitives.Bytes32 {
	return bytes32Pair.Wrap(r.Native().Mask)
}
