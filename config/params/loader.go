package params

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"gopkg.in/yaml.v2"
)

// ErrLimitAboveSSZ is returned when a configured maximum exceeds the compiled SSZ limit
// of the field it bounds.
var ErrLimitAboveSSZ = errors.New("configured maximum exceeds compiled ssz limit")

func isMinimal(lines []string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, "PRESET_BASE: 'minimal'") ||
			strings.HasPrefix(l, `PRESET_BASE: "minimal"`) ||
			strings.HasPrefix(l, "PRESET_BASE: minimal") ||
			strings.HasPrefix(l, "# Minimal preset") {
			return true
		}
	}
	return false
}

// UnmarshalConfig parses a yaml chain config on top of the preset it names and validates the result.
func UnmarshalConfig(yamlFile []byte, conf *BeaconChainConfig) (*BeaconChainConfig, error) {
	// To track if config name is defined inside config file.
	hasConfigName := false
	lines := strings.Split(string(yamlFile), "\n")
	if conf == nil {
		if isMinimal(lines) {
			conf = MinimalSpecConfig().Copy()
		} else {
			// Default to using mainnet.
			conf = MainnetConfig().Copy()
		}
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
			break
		}
	}
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "failed to parse chain config yaml")
		}
		log.WithError(err).Error("There were some issues parsing the config from a yaml file")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	if err := validateLimits(conf); err != nil {
		return nil, err
	}
	log.Debugf("Config file values: %+v", conf)
	return conf, nil
}

// LoadChainConfigFile reads a yaml chain config, validates it and makes it the active config.
func LoadChainConfigFile(configFilePath string, conf *BeaconChainConfig) error {
	yamlFile, err := os.ReadFile(configFilePath) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "failed to read chain config file")
	}
	c, err := UnmarshalConfig(yamlFile, conf)
	if err != nil {
		return err
	}
	log.WithField("configName", c.ConfigName).WithField("preset", c.PresetBase).Info("Loaded chain config")
	OverrideBeaconConfig(c)
	return nil
}

func validateLimits(c *BeaconChainConfig) error {
	checks := []struct {
		name  string
		value uint64
		limit uint64
	}{
		{"MAX_PROPOSER_SLASHINGS", c.MaxProposerSlashings, fieldparams.MaxProposerSlashings},
		{"MAX_ATTESTER_SLASHINGS", c.MaxAttesterSlashings, fieldparams.MaxAttesterSlashings},
		{"MAX_ATTESTATIONS", c.MaxAttestations, fieldparams.MaxAttestations},
		{"MAX_DEPOSITS", c.MaxDeposits, fieldparams.MaxDeposits},
		{"MAX_VOLUNTARY_EXITS", c.MaxVoluntaryExits, fieldparams.MaxVoluntaryExits},
		{"MAX_CUSTODY_SLASHINGS", c.MaxCustodySlashings, fieldparams.MaxCustodySlashings},
		{"MAX_CUSTODY_KEY_REVEALS", c.MaxCustodyKeyReveals, fieldparams.MaxCustodyKeyReveals},
		{"MAX_EARLY_DERIVED_SECRET_REVEALS", c.MaxEarlyDerivedSecretReveals, fieldparams.MaxEarlyDerivedSecretReveals},
		{"MAX_VALIDATORS_PER_COMMITTEE", c.MaxValidatorsPerCommittee, fieldparams.MaxValidatorsPerCommittee},
		{"MAX_SHARD_BLOCKS_PER_ATTESTATION", c.MaxShardBlocksPerAttestation, fieldparams.MaxShardBlocksPerAttestation},
		{"MAX_SHARD_BLOCK_SIZE", c.MaxShardBlockSize, fieldparams.MaxShardBlockSize},
	}
	for _, ch := range checks {
		if ch.value > ch.limit {
			return errors.Wrapf(ErrLimitAboveSSZ, "%s=%d, limit %d", ch.name, ch.value, ch.limit)
		}
	}
	// Vector lengths are part of the schema and must match exactly.
	if c.MaxShards != fieldparams.MaxShards {
		return errors.Errorf("MAX_SHARDS=%d does not match %s preset length %d", c.MaxShards, fieldparams.Preset, fieldparams.MaxShards)
	}
	if c.LightClientCommitteeSize != fieldparams.LightClientCommitteeSize {
		return errors.Errorf("LIGHT_CLIENT_COMMITTEE_SIZE=%d does not match compiled length %d", c.LightClientCommitteeSize, fieldparams.LightClientCommitteeSize)
	}
	if c.DepositProofLength() != fieldparams.DepositProofLength {
		return errors.Errorf("DEPOSIT_CONTRACT_TREE_DEPTH=%d does not match compiled proof length %d", c.DepositContractTreeDepth, fieldparams.DepositProofLength)
	}
	return nil
}

// ConfigToYaml takes a provided config and outputs its contents
// in yaml. This allows custom configs to be read by other clients.
func ConfigToYaml(cfg *BeaconChainConfig) []byte {
	lines := []string{}
	lines = append(lines, fmt.Sprintf("PRESET_BASE: '%s'", cfg.PresetBase))
	lines = append(lines, fmt.Sprintf("CONFIG_NAME: '%s'", cfg.ConfigName))
	lines = append(lines, fmt.Sprintf("MAX_PROPOSER_SLASHINGS: %d", cfg.MaxProposerSlashings))
	lines = append(lines, fmt.Sprintf("MAX_ATTESTER_SLASHINGS: %d", cfg.MaxAttesterSlashings))
	lines = append(lines, fmt.Sprintf("MAX_ATTESTATIONS: %d", cfg.MaxAttestations))
	lines = append(lines, fmt.Sprintf("MAX_DEPOSITS: %d", cfg.MaxDeposits))
	lines = append(lines, fmt.Sprintf("MAX_VOLUNTARY_EXITS: %d", cfg.MaxVoluntaryExits))
	lines = append(lines, fmt.Sprintf("MAX_CUSTODY_SLASHINGS: %d", cfg.MaxCustodySlashings))
	lines = append(lines, fmt.Sprintf("MAX_CUSTODY_KEY_REVEALS: %d", cfg.MaxCustodyKeyReveals))
	lines = append(lines, fmt.Sprintf("MAX_EARLY_DERIVED_SECRET_REVEALS: %d", cfg.MaxEarlyDerivedSecretReveals))
	lines = append(lines, fmt.Sprintf("MAX_SHARDS: %d", cfg.MaxShards))
	lines = append(lines, fmt.Sprintf("LIGHT_CLIENT_COMMITTEE_SIZE: %d", cfg.LightClientCommitteeSize))
	lines = append(lines, fmt.Sprintf("MAX_VALIDATORS_PER_COMMITTEE: %d", cfg.MaxValidatorsPerCommittee))
	lines = append(lines, fmt.Sprintf("MAX_SHARD_BLOCKS_PER_ATTESTATION: %d", cfg.MaxShardBlocksPerAttestation))
	lines = append(lines, fmt.Sprintf("MAX_SHARD_BLOCK_SIZE: %d", cfg.MaxShardBlockSize))
	lines = append(lines, fmt.Sprintf("DEPOSIT_CONTRACT_TREE_DEPTH: %d", cfg.DepositContractTreeDepth))

	yamlFile := []byte(strings.Join(lines, "\n"))
	return yamlFile
}
