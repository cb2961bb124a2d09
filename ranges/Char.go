package ranges

import "github.com/adamluzsi/sequences"

// Char returns the sequence of the characters of the inclusive interval between begin and end.
func Char(begin, end rune) sequences.Sequence[rune] {
	return Span(begin, end)
}
