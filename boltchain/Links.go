package boltchain

import (
	"github.com/boltdb/bolt"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/internal/errutil"
)

// Link is a single persisted link of a Chain.
type Link struct {
	From []byte
	To   []byte
}

// Links returns every link of the chain's bucket in the byte order of the From keys.
// Each traversal owns a read transaction and a cursor over the bucket,
// which are released when the traversal is closed or reaches the end.
func (c *Chain) Links() sequences.Sequence[Link] {
	return sequences.SequenceFunc[Link](func() sequences.Iterator[Link] {
		return &linksIter{db: c.db, bucket: c.bucket}
	})
}

type linksIter struct {
	db     *bolt.DB
	bucket []byte

	tx      *bolt.Tx
	cursor  *bolt.Cursor
	started bool
	done    bool
	value   Link
	err     error
}

func (i *linksIter) Close() error {
	i.done = true
	return i.release()
}

func (i *linksIter) Err() error {
	return i.err
}

func (i *linksIter) Next() bool {
	if i.done || i.err != nil {
		return false
	}
	var from, to []byte
	if !i.started {
		i.started = true
		from, to = i.first()
	} else {
		from, to = i.cursor.Next()
	}
	if from == nil {
		i.done = true
		i.err = errutil.Merge(i.err, i.release())
		return false
	}
	i.value = Link{From: clone(from), To: clone(to)}
	return true
}

func (i *linksIter) Value() Link {
	return i.value
}

// first opens the traversal's read transaction and positions its cursor.
func (i *linksIter) first() (from, to []byte) {
	tx, err := i.db.Begin(false)
	if err != nil {
		i.err = err
		return nil, nil
	}
	i.tx = tx
	bucket := tx.Bucket(i.bucket)
	if bucket == nil {
		return nil, nil
	}
	i.cursor = bucket.Cursor()
	return i.cursor.First()
}

// release gives back the read transaction of the traversal, if it still holds one.
func (i *linksIter) release() error {
	if i.tx == nil {
		return nil
	}
	tx := i.tx
	i.tx = nil
	i.cursor = nil
	return tx.Rollback()
}
