// Package contracts holds the behavioural expectations of the sequences port types.
//
// The expectations are expressed as testcase suites,
// so the toolkit of this module and any external implementation
// can verify themselves against the same specification.
package contracts

import (
	"context"
	"testing"
	"time"

	"github.com/adamluzsi/testcase"

	"github.com/adamluzsi/sequences"
)

// Iterator is the contract that every sequences.Iterator implementation must fulfil.
type Iterator[V any] struct {
	// MakeSubject returns a freshly made iterator that yields at least one value.
	MakeSubject func(testing.TB) sequences.Iterator[V]
}

func (c Iterator[V]) Test(t *testing.T) { c.Spec(testcase.NewSpec(t)) }

func (c Iterator[V]) Benchmark(b *testing.B) { c.Spec(testcase.NewSpec(b)) }

func (c Iterator[V]) Spec(s *testcase.Spec) {
	subject := testcase.Let(s, func(t *testcase.T) sequences.Iterator[V] {
		return c.MakeSubject(t)
	})

	s.Then(`the values can be collected without an error`, func(t *testcase.T) {
		vs, err := sequences.Collect(subject.Get(t))
		t.Must.Nil(err)
		t.Must.NotEmpty(vs)
	})

	s.Then(`.Err() returns without blocking`, func(t *testcase.T) {
		iter := subject.Get(t)
		t.Must.Within(time.Second, func(context.Context) {
			t.Must.Nil(iter.Err())
		})
	})

	s.Then(`once the iterator reached the end, further .Next() calls yield no value`, func(t *testcase.T) {
		iter := subject.Get(t)
		defer iter.Close()
		for iter.Next() {
		}
		t.Must.Nil(iter.Err())

		t.Random.Repeat(3, 7, func() {
			t.Must.False(iter.Next())
		})
	})

	s.Then(`.Close() can be called multiple times`, func(t *testcase.T) {
		iter := subject.Get(t)
		t.Must.Nil(iter.Close())

		t.Random.Repeat(3, 7, func() {
			t.Must.Nil(iter.Close())
		})
	})

	s.Then(`after .Close() the iterator yields no further values`, func(t *testcase.T) {
		iter := subject.Get(t)
		t.Must.Nil(iter.Close())
		t.Must.False(iter.Next())
	})
}
