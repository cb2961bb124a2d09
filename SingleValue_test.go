package sequences_test

import (
	"testing"

	"github.com/adamluzsi/testcase/assert"

	"github.com/adamluzsi/sequences"
)

var _ sequences.Iterator[any] = sequences.SingleValue[any]("")

type ExampleStruct struct {
	Name string
}

func TestSingleValue_StructGiven_StructReceivedWithFirst(t *testing.T) {
	t.Parallel()

	var expected = ExampleStruct{Name: rnd.StringN(7)}

	i := sequences.SingleValue[ExampleStruct](expected)
	defer i.Close()

	actually, found, err := sequences.First[ExampleStruct](i)
	assert.Must(t).Nil(err)
	assert.Must(t).True(found)
	assert.Must(t).Equal(expected, actually)
}

func TestSingleValue_NextCalledMultipleTimes_NextOnlyReturnTrueOnceAndStayFalseAfterThat(t *testing.T) {
	t.Parallel()

	var expected = ExampleStruct{Name: rnd.StringN(7)}

	i := sequences.SingleValue(&expected)
	defer i.Close()

	assert.Must(t).True(i.Next())

	checkAmount := rnd.IntBetween(1, 100)
	for n := 0; n < checkAmount; n++ {
		assert.Must(t).False(i.Next())
	}
}

func TestSingleValue_CloseCalled_NoMoreValueYielded(t *testing.T) {
	t.Parallel()

	i := sequences.SingleValue(&ExampleStruct{Name: rnd.StringN(7)})
	i.Close()
	assert.Must(t).False(i.Next())
	assert.Must(t).Nil(i.Err())
}
