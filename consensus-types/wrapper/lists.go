package wrapper

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/adapter"
	"github.com/prysmaticlabs/prysm-phase1-bridge/consensus-types/interfaces"
	"github.com/sirupsen/logrus"
)

// readOnlyList views a native list field through pair. A native list that already holds more
// than limit elements is shown at its own length, since the owning record was accepted with it.
func readOnlyList[F, N any](field string, pair adapter.TypePair[F, N], items []N, limit uint64) interfaces.List[F] {
	if uint64(len(items)) > limit {
		log.WithFields(logrus.Fields{
			"field": field,
			"len":   len(items),
			"limit": limit,
		}).Warn("Native list exceeds configured maximum")
		limit = uint64(len(items))
	}
	l, err := adapter.NewList[F, N](pair, items, limit)
	if err != nil {
		// Unreachable with the clamp above.
		panic(err)
	}
	return l
}

// nativeItems unwraps a facing list for a record constructor. A nil list is empty.
func nativeItems[F, N any](field string, l *adapter.MutableList[F, N], max uint64) ([]N, error) {
	if l == nil {
		return []N{}, nil
	}
	return checkLen(field, l.Native(), max)
}

func checkLen[N any](field string, items []N, max uint64) ([]N, error) {
	if uint64(len(items)) > max {
		return nil, errors.Wrapf(adapter.ErrCapacityExceeded, "%s holds %d items, configured maximum is %d", field, len(items), max)
	}
	return items, nil
}
