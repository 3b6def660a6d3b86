//go:build !minimal

package field_params

const (
	Preset                       = "mainnet"
	RootLength                   = 32      // RootLength defines the byte length of a Merkle root.
	BLSSignatureLength           = 96      // BLSSignatureLength defines the byte length of a BLSSignature.
	BLSPubkeyLength              = 48      // BLSPubkeyLength defines the byte length of a BLSSignature.
	MaxProposerSlashings         = 16      // MAX_PROPOSER_SLASHINGS
	MaxAttesterSlashings         = 2       // MAX_ATTESTER_SLASHINGS
	MaxAttestations              = 128     // MAX_ATTESTATIONS
	MaxDeposits                  = 16      // MAX_DEPOSITS
	MaxVoluntaryExits            = 16      // MAX_VOLUNTARY_EXITS
	MaxCustodySlashings          = 1       // MAX_CUSTODY_SLASHINGS
	MaxCustodyKeyReveals         = 256     // MAX_CUSTODY_KEY_REVEALS
	MaxEarlyDerivedSecretReveals = 1       // MAX_EARLY_DERIVED_SECRET_REVEALS
	MaxShards                    = 1024    // MAX_SHARDS
	LightClientCommitteeSize     = 128     // LIGHT_CLIENT_COMMITTEE_SIZE
	MaxValidatorsPerCommittee    = 2048    // MAX_VALIDATORS_PER_COMMITTEE
	MaxShardBlocksPerAttestation = 12      // MAX_SHARD_BLOCKS_PER_ATTESTATION
	MaxShardBlockSize            = 1048576 // MAX_SHARD_BLOCK_SIZE
	DepositProofLength           = 33      // DEPOSIT_CONTRACT_TREE_DEPTH + 1
)
