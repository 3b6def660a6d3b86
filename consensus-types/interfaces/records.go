// Package interfaces declares the protocol-facing contracts of the phase1 records. State
// transition and validation code is written against these and never sees the native records.
package interfaces

import (
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
)

// Record is the behaviour every facing record shares. Roots, equality and strings come from
// the backing native record.
type Record interface {
	HashTreeRoot() ([32]byte, error)
	Equals(other interface{}) bool
	String() string
}

// Eth1Data is the eth1 vote carried by a block body. The deposit root is writable.
type Eth1Data interface {
	Record
	DepositRoot() primitives.Root
	SetDepositRoot(root primitives.Root)
	DepositCount() uint64
	BlockHash() primitives.Bytes32
	SetCallback(cb func(Eth1Data))
}

// BeaconBlockHeader summarizes a block with its body root. The state root is writable.
type BeaconBlockHeader interface {
	Record
	Slot() primitives.Slot
	ProposerIndex() primitives.ValidatorIndex
	ParentRoot() primitives.Root
	StateRoot() primitives.Root
	SetStateRoot(root primitives.Root)
	BodyRoot() primitives.Root
	CopyWith(slot primitives.Slot, proposerIndex primitives.ValidatorIndex, parentRoot, stateRoot, bodyRoot primitives.Root) BeaconBlockHeader
	SetCallback(cb func(BeaconBlockHeader))
}

// SignedBeaconBlockHeader pairs a header with its proposer signature.
type SignedBeaconBlockHeader interface {
	Record
	Message() BeaconBlockHeader
	Signature() primitives.BLSSignature
}

// BeaconBlockBody is the payload of a phase1 block. It is read-only; a changed body is a new body.
type BeaconBlockBody interface {
	Record
	RandaoReveal() primitives.BLSSignature
	Eth1Data() Eth1Data
	Graffiti() primitives.Bytes32
	ProposerSlashings() List[ProposerSlashing]
	AttesterSlashings() List[AttesterSlashing]
	Attestations() List[Attestation]
	Deposits() List[Deposit]
	VoluntaryExits() List[SignedVoluntaryExit]
	CustodySlashings() List[SignedCustodySlashing]
	CustodyKeyReveals() List[CustodyKeyReveal]
	EarlyDerivedSecretReveals() List[EarlyDerivedSecretReveal]
	ShardTransitions() Vector[ShardTransition]
	LightClientBits() Bitvector
	LightClientSignature() primitives.BLSSignature
}

// BeaconBlock is a read-only phase1 block.
type BeaconBlock interface {
	Record
	Slot() primitives.Slot
	ProposerIndex() primitives.ValidatorIndex
	ParentRoot() primitives.Root
	StateRoot() primitives.Root
	Body() BeaconBlockBody
}

// SignedBeaconBlock pairs a block with its proposer signature.
type SignedBeaconBlock interface {
	Record
	Message() BeaconBlock
	Signature() primitives.BLSSignature
	Header() (SignedBeaconBlockHeader, error)
}
