package sequences

import (
	"github.com/adamluzsi/sequences/internal/errutil"
)

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
// It must not be called on an endless iterator.
func Count[T any](i Iterator[T]) (total int, rErr error) {
	defer errutil.Finish(&rErr, i.Close)
	total = 0
	for i.Next() {
		total++
	}
	return total, i.Err()
}
