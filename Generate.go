package sequences

// Generate composes an initial value producer and a successor function into a Sequence.
//
// The series begins with the value of the initial producer and continues with the values
// the successor function derives from the current one, until either function reports
// through its second return value that no further value is available.
// Both functions are invoked lazily: constructing the Sequence or beginning a traversal
// with Iterate evaluates nothing. The initial producer runs on the traversal's first
// Next call, once per traversal, and the successor function runs once per each further
// Next call, receiving the traversal's current value.
//
// Because the initial producer runs once per traversal, it may close over live external
// state, such as the current position in a mutable graph; separate traversals then
// observe that state as it is at their own first advance, and no snapshot consistency
// is guaranteed between them. A traversal retains only its current value, which keeps
// the cost of advancing constant even on very long chains.
//
// Nothing guards against a successor function that never reports the end of the series;
// consuming such a sequence with an operation that needs finite input, like Collect,
// Count or Last, will not return. Passing nil functions is a caller error and surfaces
// as a nil dereference panic on the first advance. Panics raised by the given functions
// propagate to the Next caller unchanged, and the traversal must not be used afterwards.
func Generate[V any](initial func() (V, bool), successor func(V) (V, bool)) Sequence[V] {
	return generator[V]{Initial: initial, Successor: successor}
}

// GenerateFrom composes a constant seed value and a successor function into a Sequence.
// It behaves as Generate with an initial producer that always yields the seed.
func GenerateFrom[V any](seed V, successor func(V) (V, bool)) Sequence[V] {
	return Generate(func() (V, bool) { return seed, true }, successor)
}

type generator[V any] struct {
	Initial   func() (V, bool)
	Successor func(V) (V, bool)
}

func (g generator[V]) Iterate() Iterator[V] {
	return &generatorIter[V]{Initial: g.Initial, Successor: g.Successor}
}

// traversalState distinguishes a traversal that was not advanced yet
// from one that holds a current value and from one that already finished.
// Keeping this apart from the value slot allows any value of V,
// including the zero value, to be a legitimate element of the series.
type traversalState uint8

const (
	traversalNotStarted traversalState = iota
	traversalActive
	traversalTerminated
)

type generatorIter[V any] struct {
	Initial   func() (V, bool)
	Successor func(V) (V, bool)

	state  traversalState
	value  V
	closed bool
}

// Close abandons the traversal: no producer function runs afterwards.
// Abandoning a traversal mid-series is always safe as it holds no resources.
func (i *generatorIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *generatorIter[V]) Err() error {
	return nil
}

func (i *generatorIter[V]) Next() bool {
	if i.closed || i.state == traversalTerminated {
		return false
	}
	var (
		value V
		ok    bool
	)
	switch i.state {
	case traversalNotStarted:
		value, ok = i.Initial()
	case traversalActive:
		value, ok = i.Successor(i.value)
	}
	if !ok {
		// the end of the series is final, later Next calls must not
		// reach for the producer functions again
		i.state = traversalTerminated
		var zero V
		i.value = zero
		return false
	}
	i.state = traversalActive
	i.value = value
	return true
}

func (i *generatorIter[V]) Value() V {
	switch i.state {
	case traversalNotStarted:
		panic(".Value() is called before the first .Next() call")
	case traversalTerminated:
		panic(".Value() is called after the traversal already finished")
	}
	return i.value
}
