// Package migration converts between the beacon-API phase0 types of go-eth2-client and the
// native phase1 records for the containers both forks share.
package migration

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

// ErrNilObject is returned when a required container is missing.
var ErrNilObject = errors.New("nil object")

// APIToPhase1Eth1Data converts a beacon-API eth1 data object to the native record.
func APIToPhase1Eth1Data(e *phase0.ETH1Data) (*phase1.Eth1Data, error) {
	if e == nil {
		return nil, errors.Wrap(ErrNilObject, "eth1 data")
	}
	return &phase1.Eth1Data{
		DepositRoot:  bytesutil.SafeCopyBytes(e.DepositRoot[:]),
		DepositCount: e.DepositCount,
		BlockHash:    bytesutil.SafeCopyBytes(e.BlockHash),
	}, nil
}

// APIToPhase1BeaconBlockHeader converts a beacon-API header to the native record.
func APIToPhase1BeaconBlockHeader(h *phase0.BeaconBlockHeader) (*phase1.BeaconBlockHeader, error) {
	if h == nil {
		return nil, errors.Wrap(ErrNilObject, "beacon block header")
	}
	return &phase1.BeaconBlockHeader{
		Slot:          uint64(h.Slot),
		ProposerIndex: uint64(h.ProposerIndex),
		ParentRoot:    bytesutil.SafeCopyBytes(h.ParentRoot[:]),
		StateRoot:     bytesutil.SafeCopyBytes(h.StateRoot[:]),
		BodyRoot:      bytesutil.SafeCopyBytes(h.BodyRoot[:]),
	}, nil
}

// APIToPhase1SignedBeaconBlockHeader converts a beacon-API signed header to the native record.
func APIToPhase1SignedBeaconBlockHeader(h *phase0.SignedBeaconBlockHeader) (*phase1.SignedBeaconBlockHeader, error) {
	if h == nil {
		return nil, errors.Wrap(ErrNilObject, "signed beacon block header")
	}
	msg, err := APIToPhase1BeaconBlockHeader(h.Message)
	if err != nil {
		return nil, err
	}
	return &phase1.SignedBeaconBlockHeader{
		Message:   msg,
		Signature: bytesutil.SafeCopyBytes(h.Signature[:]),
	}, nil
}

// APIToPhase1ProposerSlashing converts a beacon-API proposer slashing to the native record.
func APIToPhase1ProposerSlashing(s *phase0.ProposerSlashing) (*phase1.ProposerSlashing, error) {
	if s == nil {
		return nil, errors.Wrap(ErrNilObject, "proposer slashing")
	}
	h1, err := APIToPhase1SignedBeaconBlockHeader(s.SignedHeader1)
	if err != nil {
		return nil, errors.Wrap(err, "header 1")
	}
	h2, err := APIToPhase1SignedBeaconBlockHeader(s.SignedHeader2)
	if err != nil {
		return nil, errors.Wrap(err, "header 2")
	}
	return &phase1.ProposerSlashing{SignedHeader1: h1, SignedHeader2: h2}, nil
}

// APIToPhase1DepositData converts beacon-API deposit data to the native record.
func APIToPhase1DepositData(d *phase0.DepositData) (*phase1.DepositData, error) {
	if d == nil {
		return nil, errors.Wrap(ErrNilObject, "deposit data")
	}
	return &phase1.DepositData{
		PublicKey:             bytesutil.SafeCopyBytes(d.PublicKey[:]),
		WithdrawalCredentials: bytesutil.SafeCopyBytes(d.WithdrawalCredentials),
		Amount:                uint64(d.Amount),
		Signature:             bytesutil.SafeCopyBytes(d.Signature[:]),
	}, nil
}

// APIToPhase1Deposit converts a beacon-API deposit to the native record.
func APIToPhase1Deposit(d *phase0.Deposit) (*phase1.Deposit, error) {
	if d == nil {
		return nil, errors.Wrap(ErrNilObject, "deposit")
	}
	data, err := APIToPhase1DepositData(d.Data)
	if err != nil {
		return nil, err
	}
	return &phase1.Deposit{
		Proof: bytesutil.SafeCopy2dBytes(d.Proof),
		Data:  data,
	}, nil
}

// APIToPhase1VoluntaryExit converts a beacon-API voluntary exit to the native record.
func APIToPhase1VoluntaryExit(e *phase0.VoluntaryExit) (*phase1.VoluntaryExit, error) {
	if e == nil {
		return nil, errors.Wrap(ErrNilObject, "voluntary exit")
	}
	return &phase1.VoluntaryExit{
		Epoch:          uint64(e.Epoch),
		ValidatorIndex: uint64(e.ValidatorIndex),
	}, nil
}

// APIToPhase1SignedVoluntaryExit converts a beacon-API signed voluntary exit to the native record.
func APIToPhase1SignedVoluntaryExit(e *phase0.SignedVoluntaryExit) (*phase1.SignedVoluntaryExit, error) {
	if e == nil {
		return nil, errors.Wrap(ErrNilObject, "signed voluntary exit")
	}
	msg, err := APIToPhase1VoluntaryExit(e.Message)
	if err != nil {
		return nil, err
	}
	return &phase1.SignedVoluntaryExit{
		Message:   msg,
		Signature: bytesutil.SafeCopyBytes(e.Signature[:]),
	}, nil
}

// APIToPhase1Checkpoint converts a beacon-API checkpoint to the native record.
func APIToPhase1Checkpoint(c *phase0.Checkpoint) (*phase1.Checkpoint, error) {
	if c == nil {
		return nil, errors.Wrap(ErrNilObject, "checkpoint")
	}
	return &phase1.Checkpoint{
		Epoch: uint64(c.Epoch),
		Root:  bytesutil.SafeCopyBytes(c.Root[:]),
	}, nil
}
