package contracts

import (
	"testing"

	"github.com/adamluzsi/testcase"

	"github.com/adamluzsi/sequences"
)

// Sequence is the contract that every sequences.Sequence implementation must fulfil.
type Sequence[V any] struct {
	// MakeSubject returns a sequence that describes a finite and non-empty series of values.
	MakeSubject func(testing.TB) sequences.Sequence[V]
}

func (c Sequence[V]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Sequence[V]) Benchmark(b *testing.B) { c.Spec(testcase.NewSpec(b)) }

func (c Sequence[V]) Spec(s *testcase.Spec) {
	subject := testcase.Let(s, func(t *testcase.T) sequences.Sequence[V] {
		return c.MakeSubject(t)
	})

	s.Then(`.Iterate() returns a non-nil iterator`, func(t *testcase.T) {
		iter := subject.Get(t).Iterate()
		t.Must.NotNil(iter)
		t.Must.Nil(iter.Close())
	})

	s.Then(`every traversal yields the same values`, func(t *testcase.T) {
		seq := subject.Get(t)

		reference, err := sequences.Collect(seq.Iterate())
		t.Must.Nil(err)
		t.Must.NotEmpty(reference)

		t.Random.Repeat(2, 5, func() {
			vs, err := sequences.Collect(seq.Iterate())
			t.Must.Nil(err)
			t.Must.Equal(reference, vs)
		})
	})

	s.Then(`traversals made from the same sequence don't affect each other`, func(t *testcase.T) {
		seq := subject.Get(t)

		var (
			a = seq.Iterate()
			b = seq.Iterate()
		)
		defer a.Close()
		defer b.Close()

		var avs, bvs []V
		for a.Next() {
			avs = append(avs, a.Value())
			if b.Next() {
				bvs = append(bvs, b.Value())
			}
		}
		for b.Next() {
			bvs = append(bvs, b.Value())
		}
		t.Must.Nil(a.Err())
		t.Must.Nil(b.Err())
		t.Must.Equal(avs, bvs)
	})

	s.Then(`an abandoned traversal doesn't consume the sequence`, func(t *testcase.T) {
		seq := subject.Get(t)

		abandoned := seq.Iterate()
		abandoned.Next()
		t.Must.Nil(abandoned.Close())

		vs, err := sequences.Collect(seq.Iterate())
		t.Must.Nil(err)
		t.Must.NotEmpty(vs)
	})

	testcase.RunSuite(s, Iterator[V]{
		MakeSubject: func(tb testing.TB) sequences.Iterator[V] {
			return c.MakeSubject(tb).Iterate()
		},
	})
}
