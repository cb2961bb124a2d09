package sequences

// Limit caps how many values the iterator may yield.
func Limit[V any](iter Iterator[V], n int) Iterator[V] {
	return &limitIter[V]{
		Iterator: iter,
		Limit:    n,
	}
}

type limitIter[V any] struct {
	Iterator[V]
	Limit int
	index int
}

func (li *limitIter[V]) Next() bool {
	if !(li.index < li.Limit) {
		return false
	}
	if !li.Iterator.Next() {
		return false
	}
	li.index++
	return true
}

// Offset skips the first given number of values before yielding.
func Offset[V any](iter Iterator[V], offset int) Iterator[V] {
	return &offsetIter[V]{
		Iterator: iter,
		Offset:   offset,
	}
}

type offsetIter[V any] struct {
	Iterator[V]
	Offset  int
	skipped int
}

func (oi *offsetIter[V]) Next() bool {
	for oi.skipped < oi.Offset {
		oi.Iterator.Next()
		oi.skipped++
	}
	return oi.Iterator.Next()
}
