package sequences

// WithErr combines an iterator with a pre-known failure.
// The returned iterator yields no values and reports the given error,
// while closing still releases the wrapped iterator.
// When the error is nil, the original iterator is returned as is.
func WithErr[T any](iter Iterator[T], err error) Iterator[T] {
	if err == nil {
		return iter
	}
	return withErrIter[T]{iter: iter, err: err}
}

type withErrIter[T any] struct {
	iter Iterator[T]
	err  error
}

func (i withErrIter[T]) Close() error {
	if i.iter == nil {
		return nil
	}
	return i.iter.Close()
}

func (i withErrIter[T]) Next() bool {
	return false
}

func (i withErrIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	if i.iter != nil {
		return i.iter.Err()
	}
	return nil
}

func (i withErrIter[T]) Value() T {
	var v T
	return v
}
