package fixtures_test

import (
	"testing"
	"time"

	"github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences/fixtures"
)

func ExampleNew() {
	type ExampleStruct struct {
		ID   string `ext:"ID"`
		Name string
		Age  int
	}

	_ = fixtures.New[ExampleStruct]()
}

func TestNew_fieldsArePopulated(t *testing.T) {
	t.Parallel()

	type NestedStruct struct {
		Name string
	}
	type TestStruct struct {
		ID        string `ext:"ID"`
		Name      string
		Age       int
		Score     float64
		CreatedAt time.Time
		Timeout   time.Duration
		Tags      []string
		Meta      map[string]string
		Parent    *NestedStruct
		Nested    NestedStruct
	}

	ent := fixtures.New[TestStruct]()
	require.NotNil(t, ent)

	_, err := uuid.FromString(ent.ID)
	require.NoError(t, err, `the ID field is expected to be a uuid`)

	require.NotEmpty(t, ent.Name)
	require.False(t, ent.CreatedAt.IsZero())
	require.NotNil(t, ent.Tags)
	require.NotNil(t, ent.Meta)
	require.NotNil(t, ent.Parent)
	require.NotEmpty(t, ent.Nested.Name, `nested struct fields are populated as well`)
}

func TestNew_valuesDifferBetweenCalls(t *testing.T) {
	t.Parallel()

	type TestStruct struct {
		ID  string
		Int int
	}

	ids := make(map[string]struct{})
	ints := make(map[int]struct{})
	for i := 0; i < 8; i++ {
		ent := fixtures.New[TestStruct]()
		ids[ent.ID] = struct{}{}
		ints[ent.Int] = struct{}{}
	}
	require.Len(t, ids, 8)
	require.True(t, 1 < len(ints))
}

func TestNew_idFieldDetection(t *testing.T) {
	t.Parallel()

	t.Run(`a string field named ID receives a uuid`, func(t *testing.T) {
		type TestStruct struct{ ID string }

		_, err := uuid.FromString(fixtures.New[TestStruct]().ID)
		require.NoError(t, err)
	})

	t.Run(`a string field tagged as external ID receives a uuid`, func(t *testing.T) {
		type TestStruct struct {
			Identifier string `ext:"ID"`
		}

		_, err := uuid.FromString(fixtures.New[TestStruct]().Identifier)
		require.NoError(t, err)
	})

	t.Run(`a non string ID field is populated as its own kind`, func(t *testing.T) {
		type TestStruct struct{ ID int }

		require.NotPanics(t, func() { fixtures.New[TestStruct]() })
	})
}

func TestNew_unexportedFieldsAreLeftAlone(t *testing.T) {
	t.Parallel()

	type TestStruct struct {
		name string
		Name string
	}

	ent := fixtures.New[TestStruct]()
	require.Empty(t, ent.name)
	require.NotEmpty(t, ent.Name)
}

func TestNew_nonStructType(t *testing.T) {
	t.Parallel()

	n := fixtures.New[int]()
	require.NotNil(t, n)
	require.Equal(t, 0, *n)
}
