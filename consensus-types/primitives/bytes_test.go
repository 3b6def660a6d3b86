package primitives_test

import (
	"encoding/json"
	"testing"

	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/assert"
	"github.com/prysmaticlabs/prysm-phase1-bridge/testing/require"
)

func TestRoot_TextRoundTrip(t *testing.T) {
	r := primitives.Root{0x01, 0x02}
	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0x0102000000000000000000000000000000000000000000000000000000000000", string(text))
	assert.Equal(t, string(text), r.String())

	var back primitives.Root
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, r, back)
}

func TestRoot_UnmarshalText_WrongLength(t *testing.T) {
	var r primitives.Root
	assert.ErrorContains(t, "expected 32 bytes, got 2", r.UnmarshalText([]byte("0x0102")))
	assert.ErrorContains(t, "hex", r.UnmarshalText([]byte("0102")))
}

func TestFixedBytes_JSON(t *testing.T) {
	type record struct {
		Sig    primitives.BLSSignature `json:"sig"`
		Pubkey primitives.BLSPubkey    `json:"pubkey"`
		Hash   primitives.Bytes32      `json:"hash"`
	}
	in := record{Sig: primitives.BLSSignature{0xaa}, Pubkey: primitives.BLSPubkey{0xbb}, Hash: primitives.Bytes32{0xcc}}
	enc, err := json.Marshal(in)
	require.NoError(t, err)
	var out record
	require.NoError(t, json.Unmarshal(enc, &out))
	assert.DeepEqual(t, in, out)
	assert.Equal(t, "0xaa", out.Sig.String()[:4])
	assert.Equal(t, "0xbb", out.Pubkey.String()[:4])
}
