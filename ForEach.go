package sequences

import (
	"github.com/adamluzsi/sequences/internal/errutil"
)

// Break is the error that a ForEach block can return to stop the iteration early without failing it.
const Break errutil.Error = `sequences:break`

// ForEach runs the function block on each value of the iterator, then closes the iterator.
// Returning Break from the block stops the iteration without an error.
// It must not be called on an endless iterator unless the block breaks out.
func ForEach[T any](i Iterator[T], fn func(T) error) (rErr error) {
	defer errutil.Finish(&rErr, i.Close)
	for i.Next() {
		v := i.Value()
		err := fn(v)
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return i.Err()
}
