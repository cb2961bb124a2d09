// Package errutil contains the error handling helpers used across the sequences module.
package errutil

import (
	"errors"
	"strings"
)

// Error is an implementation of the error interface,
// that allows you to declare exported errors in the const section.
//
//	const ErrSomething errutil.Error = "something went wrong"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// Finish is a helper function that can be used from a deferred context.
//
// Usage:
//
//	defer errutil.Finish(&returnError, iter.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// Merge will combine all given non nil error values into a single error value.
// If no valid error is given, nil is returned.
// If only a single non nil error value is given, the error value is returned.
func Merge(errs ...error) error {
	var retained []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		retained = append(retained, err)
	}
	switch len(retained) {
	case 0:
		return nil
	case 1:
		return retained[0]
	default:
		return multiError(retained)
	}
}

type multiError []error

func (errs multiError) Error() string {
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs multiError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

func (errs multiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
