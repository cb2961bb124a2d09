package sequences

import (
	"github.com/adamluzsi/sequences/internal/errutil"
)

// Merge combines multiple iterators into a single iterator,
// that will iterate over the values of the received iterators in the order the iterators were given.
func Merge[T any](iters ...Iterator[T]) Iterator[T] {
	if len(iters) == 0 {
		return Empty[T]()
	}
	return &mergeIter[T]{iters: iters}
}

type mergeIter[T any] struct {
	iters []Iterator[T]
	iIndx int
}

func (i *mergeIter[T]) Close() error {
	var errs []error
	for _, itr := range i.iters {
		errs = append(errs, itr.Close())
	}
	return errutil.Merge(errs...)
}

// Err return the error cause.
func (i *mergeIter[T]) Err() error {
	var errs []error
	for _, itr := range i.iters {
		errs = append(errs, itr.Err())
	}
	return errutil.Merge(errs...)
}

// Next will ensure that Value returns the next item when executed.
// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
func (i *mergeIter[T]) Next() bool {
next:
	if !i.hasIter() {
		return false
	}
	hasNext := i.current().Next()
	if !hasNext {
		i.iIndx++
		goto next
	}
	return hasNext
}

// Value returns the current value in the iterator.
// The action should be repeatable without side effects.
func (i *mergeIter[T]) Value() T {
	return i.current().Value()
}

func (i *mergeIter[T]) hasIter() bool {
	return i.iIndx < len(i.iters)
}

func (i *mergeIter[T]) current() Iterator[T] {
	if !i.hasIter() {
		return Empty[T]()
	}
	return i.iters[i.iIndx]
}
