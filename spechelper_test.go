package sequences_test

import (
	"errors"
	"io"
	"testing"

	"github.com/adamluzsi/testcase/random"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
)

var rnd = random.New(random.CryptoSeed{})

type Entity struct {
	Text string
}

type ReadCloser struct {
	IsClosed bool
	io       io.Reader
}

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{io: r, IsClosed: false}
}

func (rc *ReadCloser) Read(p []byte) (n int, err error) {
	return rc.io.Read(p)
}

func (rc *ReadCloser) Close() error {
	if rc.IsClosed {
		return errors.New("already closed")
	}

	rc.IsClosed = true
	return nil
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }

func FirstAndLastSharedErrorTestCases(t *testing.T, subject func(sequences.Iterator[Entity]) (Entity, bool, error)) {
	t.Run("error test-cases", func(t *testing.T) {
		expectedErr := errors.New(rnd.StringN(4))

		t.Run("Closing", func(t *testing.T) {
			t.Parallel()

			i := sequences.Stub[Entity](sequences.SingleValue(Entity{Text: "close"}))
			i.StubClose = func() error { return expectedErr }

			_, _, err := subject(i)
			require.ErrorIs(t, err, expectedErr)
		})

		t.Run("Err", func(t *testing.T) {
			t.Parallel()

			i := sequences.Stub[Entity](sequences.SingleValue(Entity{Text: "err"}))
			i.StubErr = func() error { return expectedErr }

			_, _, err := subject(i)
			require.ErrorIs(t, err, expectedErr)
		})

		t.Run("Err+Close Err", func(t *testing.T) {
			t.Parallel()

			closeErr := errors.New("close boom")
			i := sequences.Stub[Entity](sequences.SingleValue(Entity{Text: "err"}))
			i.StubErr = func() error { return expectedErr }
			i.StubClose = func() error { return closeErr }

			_, _, err := subject(i)
			require.ErrorIs(t, err, expectedErr)
			require.ErrorIs(t, err, closeErr)
		})

		t.Run("empty iterator with .Err()", func(t *testing.T) {
			t.Parallel()

			_, found, err := subject(sequences.Error[Entity](expectedErr))
			require.False(t, found)
			require.ErrorIs(t, err, expectedErr)
		})
	})
}
