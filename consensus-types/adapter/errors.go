package adapter

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when a container is accessed past its length.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrCapacityExceeded is returned when a bounded list would grow past its limit.
	ErrCapacityExceeded = errors.New("list capacity exceeded")
	// ErrInvalidFieldCombination is returned when a facing value cannot be unwrapped
	// into the native type its field expects.
	ErrInvalidFieldCombination = errors.New("invalid field combination")
)
