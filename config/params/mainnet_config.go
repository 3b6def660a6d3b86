package params

import (
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
)

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig
}

var mainnetBeaconConfig = &BeaconChainConfig{
	PresetBase: "mainnet",
	ConfigName: ConfigNames[Mainnet],

	// Max operations per block constants.
	MaxProposerSlashings:         16,
	MaxAttesterSlashings:         2,
	MaxAttestations:              128,
	MaxDeposits:                  16,
	MaxVoluntaryExits:            16,
	MaxCustodySlashings:          1,
	MaxCustodyKeyReveals:         256,
	MaxEarlyDerivedSecretReveals: 1,

	// Sharding constants.
	MaxShards:                    fieldparams.MaxShards,
	LightClientCommitteeSize:     128,
	MaxValidatorsPerCommittee:    2048,
	MaxShardBlocksPerAttestation: 12,
	MaxShardBlockSize:            1048576,

	DepositContractTreeDepth: 32,
}
