package main

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/wrapper"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/migration"
)

type hashable interface {
	HashTreeRoot() ([32]byte, error)
}

// decoded is an input document wrapped as a facing record, together with the root the
// beacon-API type computes for the same document.
type decoded struct {
	record  interfaces.Record
	view    interface{}
	apiRoot [32]byte
}

type decoder func(data []byte) (*decoded, error)

var decoders = map[string]decoder{
	"eth1data": func(data []byte) (*decoded, error) {
		return decodeWith(data, &phase0.ETH1Data{}, migration.APIToPhase1Eth1Data, wrapper.WrappedEth1Data, eth1DataView)
	},
	"header": func(data []byte) (*decoded, error) {
		return decodeWith(data, &phase0.BeaconBlockHeader{}, migration.APIToPhase1BeaconBlockHeader, wrapper.WrappedBeaconBlockHeader, headerView)
	},
	"signed-header": func(data []byte) (*decoded, error) {
		return decodeWith(data, &phase0.SignedBeaconBlockHeader{}, migration.APIToPhase1SignedBeaconBlockHeader, wrapper.WrappedSignedBeaconBlockHeader, signedHeaderView)
	},
	"proposer-slashing": func(data []byte) (*decoded, error) {
		return decodeWith(data, &phase0.ProposerSlashing{}, migration.APIToPhase1ProposerSlashing, wrapper.WrappedProposerSlashing, proposerSlashingView)
	},
	"deposit": func(data []byte) (*decoded, error) {
		return decodeWith(data, &phase0.Deposit{}, migration.APIToPhase1Deposit, wrapper.WrappedDeposit, depositView)
	},
	"voluntary-exit": func(data []byte) (*decoded, error) {
		return decodeWith(data, &phase0.SignedVoluntaryExit{}, migration.APIToPhase1SignedVoluntaryExit, wrapper.WrappedSignedVoluntaryExit, voluntaryExitView)
	},
}

func recordTypes() []string {
	types := make([]string, 0, len(decoders))
	for t := range decoders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func decodeFile(recordType, path string) (*decoded, error) {
	dec, ok := decoders[recordType]
	if !ok {
		return nil, errors.Errorf("unknown record type %q", recordType)
	}
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}
	return dec(data)
}

func decodeWith[A hashable, N any, F interfaces.Record](
	data []byte,
	api A,
	convert func(A) (N, error),
	wrap func(N) (F, error),
	view func(F) interface{},
) (*decoded, error) {
	// JSON is a subset of YAML, so both input formats take the same path.
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not convert input to json")
	}
	if err := json.Unmarshal(j, api); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal beacon-API object")
	}
	apiRoot, err := api.HashTreeRoot()
	if err != nil {
		return nil, errors.Wrap(err, "could not hash beacon-API object")
	}
	native, err := convert(api)
	if err != nil {
		return nil, err
	}
	rec, err := wrap(native)
	if err != nil {
		return nil, err
	}
	return &decoded{record: rec, view: view(rec), apiRoot: apiRoot}, nil
}

type eth1DataFields struct {
	DepositRoot  primitives.Root    `json:"deposit_root"`
	DepositCount uint64             `json:"deposit_count"`
	BlockHash    primitives.Bytes32 `json:"block_hash"`
}

func eth1DataView(e interfaces.Eth1Data) interface{} {
	return &eth1DataFields{
		DepositRoot:  e.DepositRoot(),
		DepositCount: e.DepositCount(),
		BlockHash:    e.BlockHash(),
	}
}

type headerFields struct {
	Slot          primitives.Slot           `json:"slot"`
	ProposerIndex primitives.ValidatorIndex `json:"proposer_index"`
	ParentRoot    primitives.Root           `json:"parent_root"`
	StateRoot     primitives.Root           `json:"state_root"`
	BodyRoot      primitives.Root           `json:"body_root"`
}

func headerView(h interfaces.BeaconBlockHeader) interface{} {
	return &headerFields{
		Slot:          h.Slot(),
		ProposerIndex: h.ProposerIndex(),
		ParentRoot:    h.ParentRoot(),
		StateRoot:     h.StateRoot(),
		BodyRoot:      h.BodyRoot(),
	}
}

type signedFields struct {
	Message   interface{}             `json:"message"`
	Signature primitives.BLSSignature `json:"signature"`
}

func signedHeaderView(h interfaces.SignedBeaconBlockHeader) interface{} {
	return &signedFields{Message: headerView(h.Message()), Signature: h.Signature()}
}

func proposerSlashingView(s interfaces.ProposerSlashing) interface{} {
	return map[string]interface{}{
		"signed_header_1": signedHeaderView(s.SignedHeader1()),
		"signed_header_2": signedHeaderView(s.SignedHeader2()),
	}
}

type depositDataFields struct {
	PublicKey             primitives.BLSPubkey    `json:"pubkey"`
	WithdrawalCredentials primitives.Bytes32      `json:"withdrawal_credentials"`
	Amount                primitives.Gwei         `json:"amount"`
	Signature             primitives.BLSSignature `json:"signature"`
}

type depositFields struct {
	Proof []primitives.Bytes32 `json:"proof"`
	Data  *depositDataFields   `json:"data"`
}

func depositView(d interfaces.Deposit) interface{} {
	data := d.Data()
	return &depositFields{
		Proof: d.Proof().Items(),
		Data: &depositDataFields{
			PublicKey:             data.PublicKey(),
			WithdrawalCredentials: data.WithdrawalCredentials(),
			Amount:                data.Amount(),
			Signature:             data.Signature(),
		},
	}
}

type voluntaryExitFields struct {
	Epoch          primitives.Epoch          `json:"epoch"`
	ValidatorIndex primitives.ValidatorIndex `json:"validator_index"`
}

func voluntaryExitView(e interfaces.SignedVoluntaryExit) interface{} {
	return &signedFields{
		Message: &voluntaryExitFields{
			Epoch:          e.Message().Epoch(),
			ValidatorIndex: e.Message().ValidatorIndex(),
		},
		Signature: e.Signature(),
	}
}
