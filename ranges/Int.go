package ranges

import "github.com/adamluzsi/sequences"

// Int returns the sequence of the integers of the inclusive interval between begin and end.
func Int(begin, end int) sequences.Sequence[int] {
	return Span(begin, end)
}
