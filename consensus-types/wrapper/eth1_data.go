package wrapper

import (
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

var (
	_ = interfaces.Eth1Data(&eth1Data{})
)

// eth1Data is a convenience wrapper around a phase1 eth1 data object. The deposit root is
// written by rebuilding the owned object.
type eth1Data struct {
	adapter.Value[*phase1.Eth1Data]
	adapter.Mutable[interfaces.Eth1Data]
}

func wrapEth1Data(e *phase1.Eth1Data) interfaces.Eth1Data {
	return &eth1Data{Value: adapter.NewValue(e)}
}

// WrappedEth1Data is a constructor which wraps a phase1 eth1 data record into an interface.
func WrappedEth1Data(e *phase1.Eth1Data) (interfaces.Eth1Data, error) {
	if e == nil {
		return nil, ErrNilObjectWrapped
	}
	return wrapEth1Data(e), nil
}

// NewEth1Data builds eth1 data from its facing field values.
func NewEth1Data(depositRoot primitives.Root, depositCount uint64, blockHash primitives.Bytes32) interfaces.Eth1Data {
	return wrapEth1Data(&phase1.Eth1Data{
		DepositRoot:  rootPair.ToNative(depositRoot),
		DepositCount: depositCount,
		BlockHash:    bytes32Pair.ToNative(blockHash),
	})
}

// DepositRoot returns the root of the deposit contract tree.
func (e *eth1Data) DepositRoot() primitives.Root {
	return rootPair.Wrap(e.Native().DepositRoot)
}

// SetDepositRoot swaps in a copy of the owned object carrying root, then notifies.
func (e *eth1Data) SetDepositRoot(root primitives.Root) {
	cur := e.Native()
	e.Replace(&phase1.Eth1Data{
		DepositRoot:  rootPair.ToNative(root),
		DepositCount: cur.DepositCount,
		BlockHash:    bytesutil.SafeCopyBytes(cur.BlockHash),
	})
	e.Notify(e)
}

// DepositCount returns the number of deposits in the deposit contract tree.
func (e *eth1Data) DepositCount() uint64 {
	return uint64Pair.Wrap(e.Native().DepositCount)
}

// BlockHash returns the eth1 block hash the vote refers to.
func (e *eth1Data) BlockHash() primitives.Bytes32 {
	return bytes32Pair.Wrap(e.Native().BlockHash)
}
