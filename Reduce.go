package sequences

import (
	"github.com/adamluzsi/sequences/internal/errutil"
)

// Reduce folds the iterator values into a single result, starting from the initial value.
// The reducer block can be pure or allowed to fail with an error as its second return value.
// It must not be called on an endless iterator.
func Reduce[
	R, T any,
	FN func(R, T) R |
		func(R, T) (R, error),
](i Iterator[T], initial R, blk FN) (result R, rErr error) {
	var do func(R, T) (R, error)
	switch blk := any(blk).(type) {
	case func(R, T) R:
		do = func(result R, t T) (R, error) {
			return blk(result, t), nil
		}
	case func(R, T) (R, error):
		do = blk
	}
	defer errutil.Finish(&rErr, i.Close)
	var v = initial
	for i.Next() {
		var err error
		v, err = do(v, i.Value())
		if err != nil {
			return v, err
		}
	}
	return v, i.Err()
}
