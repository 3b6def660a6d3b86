package wrapper

import (
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
)

// Element pairs for the scalar fields and list elements of the phase1 records.
var (
	uint64Pair         = adapter.Uint64[uint64]{}
	slotPair           = adapter.Uint64[primitives.Slot]{}
	epochPair          = adapter.Uint64[primitives.Epoch]{}
	validatorIndexPair = adapter.Uint64[primitives.ValidatorIndex]{}
	committeeIndexPair = adapter.Uint64[primitives.CommitteeIndex]{}
	gweiPair           = adapter.Uint64[primitives.Gwei]{}
	rootPair           = adapter.Bytes32[primitives.Root]{}
	bytes32Pair        = adapter.Bytes32[primitives.Bytes32]{}
	pubkeyPair         = adapter.Bytes48[primitives.BLSPubkey]{}
	signaturePair      = adapter.Bytes96[primitives.BLSSignature]{}
	bitlistPair        = adapter.Bitlist{}
)
