package wrapper

import "github.com/pkg/errors"

var (
	// ErrNilObjectWrapped is returned in a constructor when the underlying object is nil.
	ErrNilObjectWrapped = errors.New("attempted to wrap nil object")
	// ErrNilBeaconBlock is returned when a signed block carries no message.
	ErrNilBeaconBlock = errors.New("beacon block can't be nil")
	// ErrNilBeaconBlockBody is returned when a block carries no body.
	ErrNilBeaconBlockBody = errors.New("beacon block body can't be nil")
)
