// Package boltchain persists key linked chains in a bolt bucket
// and exposes their traversal as restartable sequences.
//
// The value stored at a key names the key of its successor.
// A key with no stored value is the end of its chain.
package boltchain

import (
	"github.com/boltdb/bolt"

	"github.com/adamluzsi/sequences/internal/errutil"
)

// ErrEmptyLinkTarget is returned by Chain.Link when the successor key is empty.
// Removing a link is the job of Chain.Unlink.
const ErrEmptyLinkTarget errutil.Error = "boltchain: a link must name a non-empty successor key"

// New returns a Chain that persists its links in the given bucket of the bolt database.
// The bucket is created lazily by the first write.
func New(db *bolt.DB, bucket []byte) *Chain {
	return &Chain{db: db, bucket: bucket}
}

// Chain is a set of key to key links persisted in a single bolt bucket.
type Chain struct {
	db     *bolt.DB
	bucket []byte
}

// Link records that the to key follows the from key.
// A link made earlier from the same key is overwritten.
func (c *Chain) Link(from, to []byte) error {
	if len(to) == 0 {
		return ErrEmptyLinkTarget
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(c.bucket)
		if err != nil {
			return err
		}
		return bucket.Put(from, to)
	})
}

// Unlink removes the link that starts at the given key,
// which turns the key into a chain end.
// Removing an absent link is not an error.
func (c *Chain) Unlink(from []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(c.bucket)
		if bucket == nil {
			return nil
		}
		return bucket.Delete(from)
	})
}

// Next returns the key the given key links to, or nil when the chain ends there.
func (c *Chain) Next(from []byte) ([]byte, error) {
	var to []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(c.bucket)
		if bucket == nil {
			return nil
		}
		to = clone(bucket.Get(from))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return to, nil
}

// clone copies a byte slice owned by a bolt transaction,
// since the original is only valid until the transaction ends.
func clone(bs []byte) []byte {
	if bs == nil {
		return nil
	}
	return append([]byte(nil), bs...)
}
