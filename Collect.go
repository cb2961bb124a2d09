package sequences

import (
	"github.com/adamluzsi/sequences/internal/errutil"
)

// Collect drains the iterator into a slice and closes it.
// It must not be called on an endless iterator, as it only returns after the input reports no more values.
func Collect[T any](i Iterator[T]) (vs []T, rErr error) {
	defer errutil.Finish(&rErr, i.Close)
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}

// Take will take up to `n` amount of element, if it is available.
// The iterator is left open, so consumption can continue after the taken values.
func Take[T any](iter Iterator[T], n int) ([]T, error) {
	var vs []T
	for i := 0; i < n; i++ {
		if !iter.Next() {
			break
		}
		vs = append(vs, iter.Value())
	}
	return vs, iter.Err()
}
