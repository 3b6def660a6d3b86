package migration

import (
	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
	"github.com/prysmaticlabs/prysm-phase1-bridge/encoding/bytesutil"
	"github.com/prysmaticlabs/prysm-phase1-bridge/proto/phase1"
)

// ErrFieldLength is returned when a native byte field cannot fill its fixed size API field.
var ErrFieldLength = errors.New("incorrect field length")

func fixed(field string, b []byte, size int) ([]byte, error) {
	if len(b) != size {
		return nil, errors.Wrapf(ErrFieldLength, "%s: got %d bytes, want %d", field, len(b), size)
	}
	return b, nil
}

func root(field string, b []byte) (phase0.Root, error) {
	r, err := fixed(field, b, fieldparams.RootLength)
	if err != nil {
		return phase0.Root{}, err
	}
	return phase0.Root(bytesutil.ToBytes32(r)), nil
}

func signature(field string, b []byte) (phase0.BLSSignature, error) {
	s, err := fixed(field, b, fieldparams.BLSSignatureLength)
	if err != nil {
		return phase0.BLSSignature{}, err
	}
	return phase0.BLSSignature(bytesutil.ToBytes96(s)), nil
}

// Phase1ToAPIEth1Data converts a native eth1 data record to the beacon-API object.
func Phase1ToAPIEth1Data(e *phase1.Eth1Data) (*phase0.ETH1Data, error) {
	if e == nil {
		return nil, errors.Wrap(ErrNilObject, "eth1 data")
	}
	depositRoot, err := root("deposit root", e.DepositRoot)
	if err != nil {
		return nil, err
	}
	blockHash, err := fixed("block hash", e.BlockHash, 32)
	if err != nil {
		return nil, err
	}
	return &phase0.ETH1Data{
		DepositRoot:  depositRoot,
		DepositCount: e.DepositCount,
		BlockHash:    bytesutil.SafeCopyBytes(blockHash),
	}, nil
}

// Phase1ToAPIBeaconBlockHeader converts a native header to the beacon-API object.
func Phase1ToAPIBeaconBlockHeader(h *phase1.BeaconBlockHeader) (*phase0.BeaconBlockHeader, error) {
	if h == nil {
		return nil, errors.Wrap(ErrNilObject, "beacon block header")
	}
	parentRoot, err := root("parent root", h.ParentRoot)
	if err != nil {
		return nil, err
	}
	stateRoot, err := root("state root", h.StateRoot)
	if err != nil {
		return nil, err
	}
	bodyRoot, err := root("body root", h.BodyRoot)
	if err != nil {
		return nil, err
	}
	return &phase0.BeaconBlockHeader{
		Slot:          phase0.Slot(h.Slot),
		ProposerIndex: phase0.ValidatorIndex(h.ProposerIndex),
		ParentRoot:    parentRoot,
		StateRoot:     stateRoot,
		BodyRoot:      bodyRoot,
	}, nil
}

// Phase1ToAPISignedBeaconBlockHeader converts a native signed header to the beacon-API object.
func Phase1ToAPISignedBeaconBlockHeader(h *phase1.SignedBeaconBlockHeader) (*phase0.SignedBeaconBlockHeader, error) {
	if h == nil {
		return nil, errors.Wrap(ErrNilObject, "signed beacon block header")
	}
	msg, err := Phase1ToAPIBeaconBlockHeader(h.Message)
	if err != nil {
		return nil, err
	}
	sig, err := signature("signature", h.Signature)
	if err != nil {
		return nil, err
	}
	return &phase0.SignedBeaconBlockHeader{Message: msg, Signature: sig}, nil
}

// Phase1ToAPIDepositData converts native deposit data to the beacon-API object.
func Phase1ToAPIDepositData(d *phase1.DepositData) (*phase0.DepositData, error) {
	if d == nil {
		return nil, errors.Wrap(ErrNilObject, "deposit data")
	}
	pubkey, err := fixed("public key", d.PublicKey, fieldparams.BLSPubkeyLength)
	if err != nil {
		return nil, err
	}
	creds, err := fixed("withdrawal credentials", d.WithdrawalCredentials, 32)
	if err != nil {
		return nil, err
	}
	sig, err := signature("signature", d.Signature)
	if err != nil {
		return nil, err
	}
	return &phase0.DepositData{
		PublicKey:             phase0.BLSPubKey(bytesutil.ToBytes48(pubkey)),
		WithdrawalCredentials: bytesutil.SafeCopyBytes(creds),
		Amount:                phase0.Gwei(d.Amount),
		Signature:             sig,
	}, nil
}

// Phase1ToAPISignedVoluntaryExit converts a native signed voluntary exit to the beacon-API object.
func Phase1ToAPISignedVoluntaryExit(e *phase1.SignedVoluntaryExit) (*phase0.SignedVoluntaryExit, error) {
	if e == nil || e.Message == nil {
		return nil, errors.Wrap(ErrNilObject, "signed voluntary exit")
	}
	sig, err := signature("signature", e.Signature)
	if err != nil {
		return nil, err
	}
	return &phase0.SignedVoluntaryExit{
		Message: &phase0.VoluntaryExit{
			Epoch:          phase0.Epoch(e.Message.Epoch),
			ValidatorIndex: phase0.ValidatorIndex(e.Message.ValidatorIndex),
		},
		Signature: sig,
	}, nil
}
