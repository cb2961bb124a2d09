package sequences

import (
	"github.com/adamluzsi/sequences/internal/errutil"
)

// Last drains the iterator, returns its final value and closes the iterator.
// It must not be called on an endless iterator.
func Last[T any](i Iterator[T]) (value T, found bool, rErr error) {
	defer errutil.Finish(&rErr, i.Close)
	iterated := false
	var v T
	for i.Next() {
		iterated = true
		v = i.Value()
	}
	if err := i.Err(); err != nil {
		return v, false, err
	}
	if !iterated {
		return v, false, nil
	}
	return v, true, nil
}
