package sequences

import (
	"context"

	"github.com/adamluzsi/sequences/internal/errutil"
)

// Pipe return a receiver and a sender.
// This can be used with resources that produce values asynchronously from the consumer.
func Pipe[T any]() (*PipeIn[T], *PipeOut[T]) {
	return PipeWithContext[T](context.Background())
}

// PipeWithContext behaves like Pipe, but both ends also respect the given context:
// cancelling it unblocks the sender and makes the receiver report the context error.
func PipeWithContext[T any](ctx context.Context) (*PipeIn[T], *PipeOut[T]) {
	pipeChan := makePipeChan[T](ctx)
	return &PipeIn[T]{pipeChan: pipeChan},
		&PipeOut[T]{pipeChan: pipeChan}
}

func makePipeChan[T any](ctx context.Context) pipeChan[T] {
	return pipeChan[T]{
		context:   ctx,
		values:    make(chan T),
		errors:    make(chan error, 1),
		outIsDone: make(chan struct{}, 1),
	}
}

type pipeChan[T any] struct {
	context   context.Context
	values    chan T
	errors    chan error
	outIsDone chan struct{}
}

// PipeOut implements iterator interface while it's still being able to receive values, used for streaming
type PipeOut[T any] struct {
	pipeChan[T]
	value    T
	iterated bool
	lastErr  error
}

// Close sends a signal back that no more value should be sent because receiver stops listening
func (out *PipeOut[T]) Close() error {
	defer func() { recover() }()
	close(out.outIsDone)
	return nil
}

// Next set the current entity for the next value
// returns false if no next value
func (out *PipeOut[T]) Next() bool {
	out.iterated = true

	if err := out.getErrNonBlocking(); err != nil {
		return false
	}

	select {
	case <-out.context.Done():
		return false
	case v, ok := <-out.pipeChan.values:
		if !ok {
			return false
		}
		out.value = v
		return true
	}
}

// Err returns an error object that the pipe sender wants to present for the pipe receiver
func (out *PipeOut[T]) Err() error {
	if out.iterated {
		// so we wait for the iteration to finish
		// to avoid race conditions with the error value communication.
		return out.getErrBlocking()
	}
	return out.getErrNonBlocking()
}

func (out *PipeOut[T]) getErrBlocking() error {
	select {
	case err, ok := <-out.errors:
		if ok {
			out.lastErr = err
		}
	case <-out.context.Done():
		return out.context.Err()
	case <-out.outIsDone:
	}
	return errutil.Merge(out.lastErr, out.context.Err())
}

func (out *PipeOut[T]) getErrNonBlocking() error {
	select {
	case err, ok := <-out.errors:
		if ok {
			out.lastErr = err
		}
	case <-out.context.Done():
	case <-out.outIsDone:
	default:
	}
	return errutil.Merge(out.lastErr, out.context.Err())
}

// Value returns the current value that was sent into the pipe
func (out *PipeOut[T]) Value() T {
	return out.value
}

// PipeIn provides access to feed a pipe receiver with entities
type PipeIn[T any] struct {
	pipeChan[T]
}

// Value sends value to the PipeOut.Value.
// It returns if sending was possible.
func (in *PipeIn[T]) Value(v T) (ok bool) {
	select {
	case <-in.context.Done():
		return false
	case <-in.pipeChan.outIsDone:
		return false
	case in.pipeChan.values <- v:
		return true
	}
}

// Error send an error object to the PipeOut side, so it will be accessible with iterator.Err()
func (in *PipeIn[T]) Error(err error) {
	if err == nil {
		return
	}
	defer func() { recover() }()
	select {
	case <-in.context.Done():
	case in.pipeChan.errors <- err:
	}
}

// Close will close the feed and err channels, which eventually notify the receiver that no more value expected
func (in *PipeIn[T]) Close() error {
	defer func() { recover() }()
	close(in.pipeChan.values)
	close(in.pipeChan.errors)
	return nil
}
