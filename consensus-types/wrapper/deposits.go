package wrapper

import (
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/primitives"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

var (
	_ = interfaces.DepositData(&depositData{})
	_ = interfaces.Deposit(&deposit{})
	_ = interfaces.VoluntaryExit(&voluntaryExit{})
	_ = interfaces.SignedVoluntaryExit(&signedVoluntaryExit{})
)

type depositData struct {
	adapter.Value[*phase1.DepositData]
}

func wrapDepositData(d *phase1.DepositData) interfaces.DepositData {
	return &depositData{Value: adapter.NewValue(d)}
}

func (d *depositData) PublicKey() primitives.BLSPubkey {
	return pubkeyPair.Wrap(d.Native().PublicKey)
}

func (d *depositData) WithdrawalCredentials() primitives.Bytes32 {
	return bytes32Pair.Wrap(d.Native().WithdrawalCredentials)
}

func (d *depositData) Amount() primitives.Gwei {
	return gweiPair.Wrap(d.Native().Amount)
}

func (d *depositData) Signature() primitives.BLSSignature {
	return signaturePair.Wrap(d.Native().Signature)
}

type deposit struct {
	adapter.Value[*phase1.Deposit]
}

func wrapDeposit(d *phase1.Deposit) interfaces.Deposit {
	return &deposit{Value: adapter.NewValue(d)}
}

// WrappedDeposit wraps a deposit carrying its deposit data.
func WrappedDeposit(d *phase1.Deposit) (interfaces.Deposit, error) {
	if d == nil || d.Data == nil {
		return nil, ErrNilObjectWrapped
	}
	return wrapDeposit(d), nil
}

// Proof is the merkle branch of the deposit data in the deposit contract tree, including the
// mixed in deposit count.
func (d *deposit) Proof() interfaces.Vector[primitives.Bytes32] {
	return adapter.NewVector[primitives.Bytes32, []byte](bytes32Pair, d.Native().Proof)
}

func (d *deposit) Data() interfaces.DepositData {
	return DepositDataType.Wrap(d.Native().Data)
}

type voluntaryExit struct {
	adapter.Value[*phase1.VoluntaryExit]
}

func wrapVoluntaryExit(e *phase1.VoluntaryExit) interfaces.VoluntaryExit {
	return &voluntaryExit{Value: adapter.NewValue(e)}
}

func (e *voluntaryExit) Epoch() primitives.Epoch {
	return epochPair.Wrap(e.Native().Epoch)
}

func (e *voluntaryExit) ValidatorIndex() primitives.ValidatorIndex {
	return validatorIndexPair.Wrap(e.Native().ValidatorIndex)
}

type signedVoluntaryExit struct {
	adapter.Value[*phase1.SignedVoluntaryExit]
}

func wrapSignedVoluntaryExit(e *phase1.SignedVoluntaryExit) interfaces.SignedVoluntaryExit {
	return &signedVoluntaryExit{Value: adapter.NewValue(e)}
}

// WrappedSignedVoluntaryExit wraps a signed exit carrying its message.
func WrappedSignedVoluntaryExit(e *phase1.SignedVoluntaryExit) (interfaces.SignedVoluntaryExit, error) {
	if e == nil || e.Message == nil {
		return nil, ErrNilObjectWrapped
	}
	return wrapSignedVoluntaryExit(e), nil
}

func (e *signedVoluntaryExit) Message() interfaces.VoluntaryExit {
	return VoluntaryExitType.Wrap(e.Native().Message)
}

func (e *signedVoluntaryExit) Signature() primitives.BLSSignature {
	return signaturePair.Wrap(e.Native().Signature)
}
