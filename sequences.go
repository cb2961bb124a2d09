// Package sequences provides lazy sequence and iterator implementations.
//
// # Summary
//
// A Sequence's goal is to describe a potentially unbounded series of values
// without materializing it. Most commonly, sequences express traversals of
// implicit chains, like a node, then its parent, then its parent's parent.
// A Sequence is only a description: beginning a traversal costs nothing,
// and values are produced one by one while the consumer advances.
// An Iterator represents one active traversal over such a series,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
// As a rule of thumb, if the consumer is not the final destination of the data stream,
// it should use the pipeline pattern to avoid bottlenecks with local resources such as memory.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package sequences

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// Sequence is a restartable description of an iterable series of values.
// Holding or constructing a Sequence evaluates nothing;
// work happens only while a traversal returned by Iterate is being advanced.
// Every Iterate call begins an independent traversal with its own cursor state,
// so the same Sequence value can be consumed any number of times.
type Sequence[V any] interface {
	// Iterate begins a new traversal over the sequence and returns its cursor.
	// The returned iterator is not yet started,
	// it produces nothing until its first Next call.
	Iterate() Iterator[V]
}

// SequenceFunc helps convert anonymous lambda expressions into a valid Sequence object.
type SequenceFunc[V any] func() Iterator[V]

// Iterate func implements the Sequence interface.
func (fn SequenceFunc[V]) Iterate() Iterator[V] { return fn() }

// Of returns a Sequence that yields the given values on each traversal.
func Of[V any](vs ...V) Sequence[V] {
	return SequenceFunc[V](func() Iterator[V] {
		return Slice(vs)
	})
}
