package bytesutil

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// DecodeHexWithLength takes a string and a length in bytes,
// and validates whether the string is a hex and has the correct length.
func DecodeHexWithLength(s string, length int) ([]byte, error) {
	bytes, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "not a valid hex string")
	}
	if len(bytes) != length {
		return nil, errors.Errorf("%s is not length %d bytes", s, length)
	}
	return bytes, nil
}
