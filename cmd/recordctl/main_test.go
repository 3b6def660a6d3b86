package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/ghodss/yaml"
	"github.com/prysmaticlabs/prysm-phase1-bridge/config/params"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/assert"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/require"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/util"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	params.SetupTestConfigCleanup(t)
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"recordctl"}, args...))
	return out.String(), err
}

func writeDoc(t *testing.T, name string, v interface{}, asYAML bool) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	if asYAML {
		data, err = yaml.JSONToYAML(data)
		require.NoError(t, err)
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func outputRoot(t *testing.T, out string) primitives.Root {
	t.Helper()
	var report struct {
		Root primitives.Root `json:"root"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	return report.Root
}

func apiHeader() *phase0.BeaconBlockHeader {
	return &phase0.BeaconBlockHeader{
		Slot:          33,
		ProposerIndex: 7,
		ParentRoot:    phase0.Root{1},
		StateRoot:     phase0.Root{2},
		BodyRoot:      phase0.Root{3},
	}
}

func TestRoot(t *testing.T) {
	proof := make([][]byte, 33)
	for i := range proof {
		proof[i] = util.Root(byte(i))
	}
	tests := []struct {
		recordType string
		doc        interface {
			HashTreeRoot() ([32]byte, error)
		}
		contains string
	}{
		{
			recordType: "eth1data",
			doc:        &phase0.ETH1Data{DepositRoot: phase0.Root{0xaa}, DepositCount: 5, BlockHash: util.Root(0xbb)},
			contains:   "deposit_count: 5",
		},
		{
			recordType: "header",
			doc:        apiHeader(),
			contains:   "slot: 33",
		},
		{
			recordType: "signed-header",
			doc:        &phase0.SignedBeaconBlockHeader{Message: apiHeader(), Signature: phase0.BLSSignature{4}},
			contains:   "proposer_index: 7",
		},
		{
			recordType: "proposer-slashing",
			doc: &phase0.ProposerSlashing{
				SignedHeader1: &phase0.SignedBeaconBlockHeader{Message: apiHeader()},
				SignedHeader2: &phase0.SignedBeaconBlockHeader{Message: &phase0.BeaconBlockHeader{Slot: 33, ProposerIndex: 7}},
			},
			contains: "signed_header_2",
		},
		{
			recordType: "deposit",
			doc: &phase0.Deposit{
				Proof: proof,
				Data: &phase0.DepositData{
					PublicKey:             phase0.BLSPubKey{9},
					WithdrawalCredentials: util.Root(1),
					Amount:                32_000_000_000,
				},
			},
			contains: "amount: 32000000000",
		},
		{
			recordType: "voluntary-exit",
			doc: &phase0.SignedVoluntaryExit{
				Message: &phase0.VoluntaryExit{Epoch: 3, ValidatorIndex: 11},
			},
			contains: "validator_index: 11",
		},
	}
	for _, tt := range tests {
		want, err := tt.doc.HashTreeRoot()
		require.NoError(t, err)
		for _, asYAML := range []bool{false, true} {
			name := tt.recordType + "/json"
			if asYAML {
				name = tt.recordType + "/yaml"
			}
			t.Run(name, func(t *testing.T) {
				path := writeDoc(t, "doc", tt.doc, asYAML)
				out, err := run(t, "root", "--type", tt.recordType, "--file", path)
				require.NoError(t, err)
				assert.StringContains(t, tt.contains, out)
				assert.StringContains(t, "type: "+tt.recordType, out)
				assert.Equal(t, primitives.Root(want), outputRoot(t, out))
			})
		}
	}
}

func TestRoot_Errors(t *testing.T) {
	path := writeDoc(t, "eth1.json", &phase0.ETH1Data{BlockHash: util.Root(0)}, false)

	_, err := run(t, "root", "--type", "block", "--file", path)
	assert.ErrorContains(t, "allowed values are", err)

	_, err = run(t, "root", "--type", "eth1data", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, "could not read input", err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"deposit_root": "nope"}`), 0600))
	_, err = run(t, "root", "--type", "eth1data", "--file", bad)
	assert.ErrorContains(t, "could not unmarshal beacon-API object", err)

	_, err = run(t, "--log-format", "xml", "root", "--file", path)
	assert.ErrorContains(t, "allowed values are", err)
}

func TestSetDepositRoot(t *testing.T) {
	hook := logTest.NewGlobal()
	doc := &phase0.ETH1Data{DepositRoot: phase0.Root{0xa0}, DepositCount: 5, BlockHash: util.Root(0xb0)}
	path := writeDoc(t, "eth1.json", doc, false)
	prev, err := doc.HashTreeRoot()
	require.NoError(t, err)

	newRoot := "0x" + "a1" + "00000000000000000000000000000000000000000000000000000000000000"
	out, err := run(t, "set-deposit-root", "--file", path, "--root", newRoot)
	require.NoError(t, err)

	doc.DepositRoot = phase0.Root{0xa1}
	want, err := doc.HashTreeRoot()
	require.NoError(t, err)

	var report struct {
		PreviousRoot primitives.Root `json:"previous_root"`
		Root         primitives.Root `json:"root"`
		Record       struct {
			DepositRoot  primitives.Root    `json:"deposit_root"`
			DepositCount uint64             `json:"deposit_count"`
			BlockHash    primitives.Bytes32 `json:"block_hash"`
		} `json:"record"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, primitives.Root(prev), report.PreviousRoot)
	assert.Equal(t, primitives.Root(want), report.Root)
	assert.Equal(t, primitives.Root{0xa1}, report.Record.DepositRoot)
	assert.Equal(t, uint64(5), report.Record.DepositCount)
	assert.DeepEqual(t, util.Root(0xb0), report.Record.BlockHash[:])
	require.LogsContain(t, hook, "Deposit root updated")

	_, err = run(t, "set-deposit-root", "--file", path, "--root", "0x1234")
	assert.ErrorContains(t, "is not length 32 bytes", err)
	_, err = run(t, "set-deposit-root", "--file", path, "--root", "zz")
	assert.ErrorContains(t, "not a valid hex string", err)
}

func TestSetStateRoot(t *testing.T) {
	hook := logTest.NewGlobal()
	doc := apiHeader()
	path := writeDoc(t, "header.yaml", doc, true)

	newRoot := "0x" + "ff" + "00000000000000000000000000000000000000000000000000000000000000"
	out, err := run(t, "set-state-root", "--file", path, "--root", newRoot)
	require.NoError(t, err)

	doc.StateRoot = phase0.Root{0xff}
	want, err := doc.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, primitives.Root(want), outputRoot(t, out))
	assert.StringContains(t, "body_root: 0x03", out)
	require.LogsContain(t, hook, "State root updated")
}

func TestChainConfigFlags(t *testing.T) {
	path := writeDoc(t, "eth1.json", &phase0.ETH1Data{BlockHash: util.Root(0)}, false)

	_, err := run(t, "--minimal-config", "root", "--file", path)
	assert.ErrorContains(t, "minimal tag", err)

	cfg := params.MainnetConfig().Copy()
	cfg.MaxAttestations = 4
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, params.ConfigToYaml(cfg), 0600))

	params.SetupTestConfigCleanup(t)
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"recordctl", "--chain-config-file", cfgPath, "root", "--file", path}))
	assert.Equal(t, uint64(4), params.BeaconConfig().MaxAttestations)

	cfg.MaxAttestations = 1 << 20
	require.NoError(t, os.WriteFile(cfgPath, params.ConfigToYaml(cfg), 0600))
	_, err = run(t, "--chain-config-file", cfgPath, "root", "--file", path)
	assert.ErrorContains(t, "configured maximum exceeds compiled ssz limit", err)
}

func TestChainConfigSelection(t *testing.T) {
	path := writeDoc(t, "eth1.json", &phase0.ETH1Data{BlockHash: util.Root(0)}, false)
	params.SetupTestConfigCleanup(t)

	stale := params.BeaconConfig().Copy()
	stale.MaxDeposits = 1
	stale.ConfigName = "stale"
	params.OverrideBeaconConfig(stale)

	app := newApp()
	app.Writer = io.Discard
	require.NoError(t, app.Run([]string{"recordctl", "root", "--file", path}))
	assert.Equal(t, params.MainnetConfig().MaxDeposits, params.BeaconConfig().MaxDeposits)
	assert.Equal(t, params.Mainnet.String(), params.BeaconConfig().ConfigName)

	cfgPath := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("MAX_ATTESTATIONS: 4\n"), 0600))
	app = newApp()
	app.Writer = io.Discard
	require.NoError(t, app.Run([]string{"recordctl", "--chain-config-file", cfgPath, "root", "--file", path}))
	assert.Equal(t, uint64(4), params.BeaconConfig().MaxAttestations)
	assert.Equal(t, params.MainnetConfig().MaxDeposits, params.BeaconConfig().MaxDeposits)
	assert.Equal(t, "devnet", params.BeaconConfig().ConfigName)
}
