// Package primitives holds the scalar types the protocol-facing records are written against.
package primitives

// Slot represents a single slot.
type Slot uint64

// Epoch represents a single epoch.
type Epoch uint64

// ValidatorIndex in eth2.
type ValidatorIndex uint64

// CommitteeIndex of a committee within a slot.
type CommitteeIndex uint64

// Gwei is the denomination of deposit amounts.
type Gwei uint64

// Shard number.
type Shard uint64
