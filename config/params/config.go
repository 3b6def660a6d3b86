// Package params defines the runtime chain configuration consumed by the phase1 record wrappers.
package params

// BeaconChainConfig contains the phase1 block operation maxima and the preset they belong to.
type BeaconChainConfig struct {
	PresetBase string `yaml:"PRESET_BASE" spec:"true"`
	ConfigName string `yaml:"CONFIG_NAME" spec:"true"`

	// Max operations per block constants.
	MaxProposerSlashings         uint64 `yaml:"MAX_PROPOSER_SLASHINGS" spec:"true"`           // MaxProposerSlashings defines the maximum number of slashings of proposers possible in a block.
	MaxAttesterSlashings         uint64 `yaml:"MAX_ATTESTER_SLASHINGS" spec:"true"`           // MaxAttesterSlashings defines the maximum number of casper FFG slashings possible in a block.
	MaxAttestations              uint64 `yaml:"MAX_ATTESTATIONS" spec:"true"`                 // MaxAttestations defines the maximum allowed attestations in a beacon block.
	MaxDeposits                  uint64 `yaml:"MAX_DEPOSITS" spec:"true"`                     // MaxDeposits defines the maximum number of validator deposits in a block.
	MaxVoluntaryExits            uint64 `yaml:"MAX_VOLUNTARY_EXITS" spec:"true"`              // MaxVoluntaryExits defines the maximum number of validator exits in a block.
	MaxCustodySlashings          uint64 `yaml:"MAX_CUSTODY_SLASHINGS" spec:"true"`            // MaxCustodySlashings defines the maximum number of custody slashings in a block.
	MaxCustodyKeyReveals         uint64 `yaml:"MAX_CUSTODY_KEY_REVEALS" spec:"true"`          // MaxCustodyKeyReveals defines the maximum number of custody key reveals in a block.
	MaxEarlyDerivedSecretReveals uint64 `yaml:"MAX_EARLY_DERIVED_SECRET_REVEALS" spec:"true"` // MaxEarlyDerivedSecretReveals defines the maximum number of early derived secret reveals in a block.

	// Sharding constants.
	MaxShards                    uint64 `yaml:"MAX_SHARDS" spec:"true"`                       // MaxShards is the length of the shard transition vector in a block body.
	LightClientCommitteeSize     uint64 `yaml:"LIGHT_CLIENT_COMMITTEE_SIZE" spec:"true"`      // LightClientCommitteeSize is the number of light client bits in a block body.
	MaxValidatorsPerCommittee    uint64 `yaml:"MAX_VALIDATORS_PER_COMMITTEE" spec:"true"`     // MaxValidatorsPerCommittee defines the upper bound of the size of a committee.
	MaxShardBlocksPerAttestation uint64 `yaml:"MAX_SHARD_BLOCKS_PER_ATTESTATION" spec:"true"` // MaxShardBlocksPerAttestation bounds the shard blocks covered by one shard transition.
	MaxShardBlockSize            uint64 `yaml:"MAX_SHARD_BLOCK_SIZE" spec:"true"`             // MaxShardBlockSize bounds the custody slashing data blob.

	// Deposit contract.
	DepositContractTreeDepth uint64 `yaml:"DEPOSIT_CONTRACT_TREE_DEPTH" spec:"true"` // DepositContractTreeDepth is the depth of the deposit contract merkle tree.
}

// DepositProofLength is the number of branch nodes in a deposit inclusion proof.
func (b *BeaconChainConfig) DepositProofLength() uint64 {
	return b.DepositContractTreeDepth + 1
}
