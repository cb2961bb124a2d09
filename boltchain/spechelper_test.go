package boltchain_test

import (
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	"github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/boltchain"
)

var chainBucket = []byte(`chain`)

func NewDB(tb testing.TB) *bolt.DB {
	dbPath := filepath.Join(tb.TempDir(), uuid.NewV4().String())
	db, err := bolt.Open(dbPath, 0600, nil)
	require.NoError(tb, err)
	tb.Cleanup(func() { require.NoError(tb, db.Close()) })
	return db
}

func NewChain(tb testing.TB) *boltchain.Chain {
	return boltchain.New(NewDB(tb), chainBucket)
}

func link(tb testing.TB, chain *boltchain.Chain, from, to string) {
	require.NoError(tb, chain.Link([]byte(from), []byte(to)))
}

func keysOf(tb testing.TB, iter sequences.Iterator[[]byte]) []string {
	vs, err := sequences.Collect(iter)
	require.NoError(tb, err)
	keys := make([]string, 0, len(vs))
	for _, v := range vs {
		keys = append(keys, string(v))
	}
	return keys
}
