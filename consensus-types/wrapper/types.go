package wrapper

import (
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

// Type pairs between every facing record and the native record backing it. Containers use
// them to convert elements, and record constructors use them to unwrap nested facing values.
var (
	Eth1DataType                 = adapter.NewWrappedTypePair(wrapEth1Data)
	BeaconBlockHeaderType        = adapter.NewWrappedTypePair(wrapBeaconBlockHeader)
	SignedBeaconBlockHeaderType  = adapter.NewWrappedTypePair(wrapSignedBeaconBlockHeader)
	BeaconBlockBodyType          = adapter.NewWrappedTypePair(wrapBeaconBlockBody)
	BeaconBlockType              = adapter.NewWrappedTypePair(wrapBeaconBlock)
	SignedBeaconBlockType        = adapter.NewWrappedTypePair(wrapSignedBeaconBlock)
	CheckpointType               = adapter.NewWrappedTypePair(wrapCheckpoint)
	AttestationDataType          = adapter.NewWrappedTypePair(wrapAttestationData)
	AttestationType              = adapter.NewWrappedTypePair(wrapAttestation)
	IndexedAttestationType       = adapter.NewWrappedTypePair(wrapIndexedAttestation)
	AttesterSlashingType         = adapter.NewWrappedTypePair(wrapAttesterSlashing)
	ProposerSlashingType         = adapter.NewWrappedTypePair(wrapProposerSlashing)
	DepositDataType              = adapter.NewWrappedTypePair(wrapDepositData)
	DepositType                  = adapter.NewWrappedTypePair(wrapDeposit)
	VoluntaryExitType            = adapter.NewWrappedTypePair(wrapVoluntaryExit)
	SignedVoluntaryExitType      = adapter.NewWrappedTypePair(wrapSignedVoluntaryExit)
	ShardStateType               = adapter.NewWrappedTypePair(wrapShardState)
	ShardTransitionType          = adapter.NewWrappedTypePair(wrapShardTransition)
	CustodySlashingType          = adapter.NewWrappedTypePair(wrapCustodySlashing)
	SignedCustodySlashingType    = adapter.NewWrappedTypePair(wrapSignedCustodySlashing)
	CustodyKeyRevealType         = adapter.NewWrappedTypePair(wrapCustodyKeyReveal)
	EarlyDerivedSecretRevealType = adapter.NewWrappedTypePair(wrapEarlyDerivedSecretReveal)
)

var (
	_ = adapter.CallbackPair[interfaces.Eth1Data, *phase1.Eth1Data](Eth1DataType)
	_ = adapter.CallbackPair[interfaces.BeaconBlockHeader, *phase1.BeaconBlockHeader](BeaconBlockHeaderType)
	_ = adapter.TypePair[interfaces.BeaconBlockBody, *phase1.BeaconBlockBody](BeaconBlockBodyType)

	_ = interfaces.List[interfaces.Attestation](&adapter.List[interfaces.Attestation, *phase1.Attestation]{})
	_ = interfaces.MutableList[interfaces.Attestation](&adapter.MutableList[interfaces.Attestation, *phase1.Attestation]{})
	_ = interfaces.Vector[interfaces.ShardTransition](&adapter.Vector[interfaces.ShardTransition, *phase1.ShardTransition]{})
	_ = interfaces.MutableVector[interfaces.ShardTransition](&adapter.MutableVector[interfaces.ShardTransition, *phase1.ShardTransition]{})
)
