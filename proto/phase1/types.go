// Package phase1 holds the phase1 beacon chain records in their native form: plain structs
// merkleized with fastssz. Records are never mutated in place once shared; a changed field
// means a new record.
package phase1

import (
	"github.com/prysmaticlabs/go-bitfield"
)

type Eth1Data struct {
	DepositRoot  []byte `json:"deposit_root" ssz-size:"32"`
	DepositCount uint64 `json:"deposit_count"`
	BlockHash    []byte `json:"block_hash" ssz-size:"32"`
}

type BeaconBlockHeader struct {
	Slot          uint64 `json:"slot"`
	ProposerIndex uint64 `json:"proposer_index"`
	ParentRoot    []byte `json:"parent_root" ssz-size:"32"`
	StateRoot     []byte `json:"state_root" ssz-size:"32"`
	BodyRoot      []byte `json:"body_root" ssz-size:"32"`
}

type SignedBeaconBlockHeader struct {
	Message   *BeaconBlockHeader `json:"message"`
	Signature []byte             `json:"signature" ssz-size:"96"`
}

type Checkpoint struct {
	Epoch uint64 `json:"epoch"`
	Root  []byte `json:"root" ssz-size:"32"`
}

type AttestationData struct {
	Slot                uint64      `json:"slot"`
	Index               uint64      `json:"index"`
	BeaconBlockRoot     []byte      `json:"beacon_block_root" ssz-size:"32"`
	Source              *Checkpoint `json:"source"`
	Target              *Checkpoint `json:"target"`
	ShardHeadRoot       []byte      `json:"shard_head_root" ssz-size:"32"`
	ShardTransitionRoot []byte      `json:"shard_transition_root" ssz-size:"32"`
}

type Attestation struct {
	AggregationBits   bitfield.Bitlist   `json:"aggregation_bits" ssz-max:"2048"`
	Data              *AttestationData   `json:"data"`
	CustodyBitsBlocks []bitfield.Bitlist `json:"custody_bits_blocks" ssz-max:"12,2048"`
	Signature         []byte             `json:"signature" ssz-size:"96"`
}

type IndexedAttestation struct {
	Committee   []uint64     `json:"committee" ssz-max:"2048"`
	Attestation *Attestation `json:"attestation"`
}

type AttesterSlashing struct {
	Attestation1 *IndexedAttestation `json:"attestation_1"`
	Attestation2 *IndexedAttestation `json:"attestation_2"`
}

type ProposerSlashing struct {
	SignedHeader1 *SignedBeaconBlockHeader `json:"signed_header_1"`
	SignedHeader2 *SignedBeaconBlockHeader `json:"signed_header_2"`
}

type DepositData struct {
	PublicKey             []byte `json:"pubkey" ssz-size:"48"`
	WithdrawalCredentials []byte `json:"withdrawal_credentials" ssz-size:"32"`
	Amount                uint64 `json:"amount"`
	Signature             []byte `json:"signature" ssz-size:"96"`
}

type Deposit struct {
	Proof [][]byte     `json:"proof" ssz-size:"33,32"`
	Data  *DepositData `json:"data"`
}

type VoluntaryExit struct {
	Epoch          uint64 `json:"epoch"`
	ValidatorIndex uint64 `json:"validator_index"`
}

type SignedVoluntaryExit struct {
	Message   *VoluntaryExit `json:"message"`
	Signature []byte         `json:"signature" ssz-size:"96"`
}

type ShardState struct {
	Slot            uint64 `json:"slot"`
	GasPrice        uint64 `json:"gasprice"`
	LatestBlockRoot []byte `json:"latest_block_root" ssz-size:"32"`
}

type ShardTransition struct {
	StartSlot                  uint64        `json:"start_slot"`
	ShardBlockLengths          []uint64      `json:"shard_block_lengths" ssz-max:"12"`
	ShardDataRoots             [][]byte      `json:"shard_data_roots" ssz-max:"12" ssz-size:"?,32"`
	ShardStates                []*ShardState `json:"shard_states" ssz-max:"12"`
	ProposerSignatureAggregate []byte        `json:"proposer_signature_aggregate" ssz-size:"96"`
}

type CustodySlashing struct {
	DataIndex               uint64           `json:"data_index"`
	MaliciousValidatorIndex uint64           `json:"malicious_validator_index"`
	Attestation             *Attestation     `json:"attestation"`
	Whistleblower           uint64           `json:"whistleblower_index"`
	ShardTransition         *ShardTransition `json:"shard_transition"`
	CustodySecret           []byte           `json:"malicious_custody_secret" ssz-size:"96"`
	Data                    []byte           `json:"data" ssz-max:"1048576"`
}

type SignedCustodySlashing struct {
	Message   *CustodySlashing `json:"message"`
	Signature []byte           `json:"signature" ssz-size:"96"`
}

type CustodyKeyReveal struct {
	RevealerIndex uint64 `json:"revealer_index"`
	Reveal        []byte `json:"reveal" ssz-size:"96"`
}

type EarlyDerivedSecretReveal struct {
	RevealedIndex uint64 `json:"revealed_index"`
	Epoch         uint64 `json:"epoch"`
	Reveal        []byte `json:"reveal" ssz-size:"96"`
	MaskerIndex   uint64 `json:"masker_index"`
	Mask          []byte `json:"mask" ssz-size:"32"`
}

type BeaconBlockBody struct {
	RandaoReveal              []byte                      `json:"randao_reveal" ssz-size:"96"`
	Eth1Data                  *Eth1Data                   `json:"eth1_data"`
	Graffiti                  []byte                      `json:"graffiti" ssz-size:"32"`
	ProposerSlashings         []*ProposerSlashing         `json:"proposer_slashings" ssz-max:"16"`
	AttesterSlashings         []*AttesterSlashing         `json:"attester_slashings" ssz-max:"2"`
	Attestations              []*Attestation              `json:"attestations" ssz-max:"128"`
	Deposits                  []*Deposit                  `json:"deposits" ssz-max:"16"`
	VoluntaryExits            []*SignedVoluntaryExit      `json:"voluntary_exits" ssz-max:"16"`
	CustodySlashings          []*SignedCustodySlashing    `json:"custody_slashings" ssz-max:"1"`
	CustodyKeyReveals         []*CustodyKeyReveal         `json:"custody_key_reveals" ssz-max:"256"`
	EarlyDerivedSecretReveals []*EarlyDerivedSecretReveal `json:"early_derived_secret_reveals" ssz-max:"1"`
	ShardTransitions          []*ShardTransition          `json:"shard_transitions" ssz-size:"1024"`
	LightClientBits           bitfield.Bitvector128       `json:"light_client_bits" ssz-size:"16"`
	LightClientSignature      []byte                      `json:"light_client_signature" ssz-size:"96"`
}

type BeaconBlock struct {
	Slot          uint64           `json:"slot"`
	ProposerIndex uint64           `json:"proposer_index"`
	ParentRoot    []byte           `json:"parent_root" ssz-size:"32"`
	StateRoot     []byte           `json:"state_root" ssz-size:"32"`
	Body          *BeaconBlockBody `json:"body"`
}

type SignedBeaconBlock struct {
	Message   *BeaconBlock `json:"message"`
	Signature []byte       `json:"signature" ssz-size:"96"`
}
