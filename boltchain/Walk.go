package boltchain

import (
	"github.com/adamluzsi/sequences"
)

// Walk returns the chain that starts at the head key as a restartable sequence.
// A nil or empty head describes an empty chain.
//
// Each advance resolves the current link in its own short lived read transaction,
// so a traversal observes the links as they are at the time of that step,
// and linking or unlinking mid traversal changes where the walk continues.
// Two traversals of the same walk can therefore yield different series
// when the chain is modified between them.
//
// When the database cannot serve a read any more, like after it was closed,
// the traversal has no way to continue and the failure propagates as a panic
// from the Next call of the traversal.
func (c *Chain) Walk(head []byte) sequences.Sequence[[]byte] {
	return sequences.Generate(
		func() ([]byte, bool) {
			return clone(head), len(head) != 0
		},
		func(current []byte) ([]byte, bool) {
			next, err := c.Next(current)
			if err != nil {
				panic(err)
			}
			return next, next != nil
		},
	)
}
