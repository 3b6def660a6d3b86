package interfaces

import (
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
)

type Checkpoint interface {
	Record
	Epoch() primitives.Epoch
	Root() primitives.Root
}

type AttestationData interface {
	Record
	Slot() primitives.Slot
	Index() primitives.CommitteeIndex
	BeaconBlockRoot() primitives.Root
	Source() Checkpoint
	Target() Checkpoint
	ShardHeadRoot() primitives.Root
	ShardTransitionRoot() primitives.Root
}

type Attestation interface {
	Record
	AggregationBits() bitfield.Bitlist
	Data() AttestationData
	CustodyBitsBlocks() List[bitfield.Bitlist]
	Signature() primitives.BLSSignature
}

type IndexedAttestation interface {
	Record
	Committee() List[primitives.ValidatorIndex]
	Attestation() Attestation
}

type AttesterSlashing interface {
	Record
	Attestation1() IndexedAttestation
	Attestation2() IndexedAttestation
}

type ProposerSlashing interface {
	Record
	SignedHeader1() SignedBeaconBlockHeader
	SignedHeader2() SignedBeaconBlockHeader
}

type DepositData interface {
	Record
	PublicKey() primitives.BLSPubkey
	WithdrawalCredentials() primitives.Bytes32
	Amount() primitives.Gwei
	Signature() primitives.BLSSignature
}

type Deposit interface {
	Record
	Proof() Vector[primitives.Bytes32]
	Data() DepositData
}

type VoluntaryExit interface {
	Record
	Epoch() primitives.Epoch
	ValidatorIndex() primitives.ValidatorIndex
}

type SignedVoluntaryExit interface {
	Record
	Message() VoluntaryExit
	Signature() primitives.BLSSignature
}

type ShardState interface {
	Record
	Slot() primitives.Slot
	GasPrice() primitives.Gwei
	LatestBlockRoot() primitives.Root
}

type ShardTransition interface {
	Record
	StartSlot() primitives.Slot
	ShardBlockLengths() List[uint64]
	ShardDataRoots() List[primitives.Bytes32]
	ShardStates() List[ShardState]
	ProposerSignatureAggregate() primitives.BLSSignature
}

type CustodySlashing interface {
	Record
	DataIndex() uint64
	MaliciousValidatorIndex() primitives.ValidatorIndex
	Attestation() Attestation
	Whistleblower() primitives.ValidatorIndex
	ShardTransition() ShardTransition
	CustodySecret() primitives.BLSSignature
	Data() []byte
}

type SignedCustodySlashing interface {
	Record
	Message() CustodySlashing
	Signature() primitives.BLSSignature
}

type CustodyKeyReveal interface {
	Record
	RevealerIndex() primitives.ValidatorIndex
	Reveal() primitives.BLSSignature
}

type EarlyDerivedSecretReveal interface {
	Record
	RevealedIndex() primitives.ValidatorIndex
	Epoch() primitives.Epoch
	Reveal() primitives.BLSSignature
	MaskerIndex() primitives.ValidatorIndex
	Mask() primitives.Bytes32
}
