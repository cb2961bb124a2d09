package sequences

import (
	"github.com/adamluzsi/sequences/internal/errutil"
)

// First returns the first next value of the iterator and closes the iterator
func First[T any](i Iterator[T]) (value T, found bool, rErr error) {
	defer errutil.Finish(&rErr, i.Close)
	if !i.Next() {
		return value, false, i.Err()
	}
	return i.Value(), true, i.Err()
}
