package sequences_test

import (
	"errors"
	"testing"

	"github.com/adamluzsi/testcase/assert"

	"github.com/adamluzsi/sequences"
)

func TestCount_IteratorGiven_AllTheRecordsCounted(t *testing.T) {
	t.Parallel()

	i := sequences.Slice[int]([]int{1, 2, 3})
	total, err := sequences.Count[int](i)
	assert.Must(t).Nil(err)
	assert.Must(t).Equal(3, total)
}

func TestCount_errorOnCloseReturned(t *testing.T) {
	t.Parallel()

	s := sequences.Slice[int]([]int{1, 2, 3})
	m := sequences.Stub[int](s)

	expected := errors.New("boom")
	m.StubClose = func() error {
		return expected
	}

	_, err := sequences.Count[int](m)
	assert.Must(t).Equal(expected, err)
}
