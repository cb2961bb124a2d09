// Package ranges provides sequences over integer intervals.
package ranges

import (
	"golang.org/x/exp/constraints"

	"github.com/adamluzsi/sequences"
)

// Span returns the sequence of every integer of the inclusive interval between begin and end.
// When end is less than begin, the sequence is empty.
func Span[T constraints.Integer](begin, end T) sequences.Sequence[T] {
	return sequences.Generate(func() (T, bool) {
		return begin, begin <= end
	}, func(current T) (T, bool) {
		// past the end the wrapped around value is discarded along with the false flag,
		// which makes the interval safe to end at the maximum of T
		return current + 1, current < end
	})
}
