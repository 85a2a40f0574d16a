package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrPreconditionUnmet means there are not enough items to compare. Callers
	// should redirect away from the comparison flow rather than report an error.
	ErrPreconditionUnmet = errors.New("not enough items to compare")

	ErrSelfComparison = errors.New("item cannot be compared against itself")
	ErrMalformedID    = errors.New("malformed item identifier")
	ErrInvalidBucket  = errors.New("invalid sentiment bucket")
	ErrItemNotFound   = errors.New("item rating not found")
	ErrBucketMismatch = errors.New("items are in different sentiment buckets")

	// ErrSelectionFailure is returned when every candidate selection strategy failed.
	ErrSelectionFailure = errors.New("no candidate selection strategy succeeded")

	// ErrVoteTimeout means the vote commit did not complete before its deadline.
	// The vote may or may not have been applied; retrying is safe.
	ErrVoteTimeout = errors.New("vote submission timed out")
)

// PersistenceError wraps a failure of the underlying store. A vote that
// fails with a PersistenceError has not been applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err wraps a PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// errorCodes maps sentinel errors to the stable codes used on the wire.
var errorCodes = []struct {
	code string
	err  error
}{
	{"precondition_unmet", ErrPreconditionUnmet},
	{"self_comparison", ErrSelfComparison},
	{"malformed_id", ErrMalformedID},
	{"invalid_bucket", ErrInvalidBucket},
	{"item_not_found", ErrItemNotFound},
	{"bucket_mismatch", ErrBucketMismatch},
	{"selection_failure", ErrSelectionFailure},
	{"vote_timeout", ErrVoteTimeout},
}

const (
	ErrorCodePersistence = "persistence_error"
	ErrorCodeInternal    = "internal_error"
)

// ErrorCode returns the wire code for err.
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	if IsPersistenceError(err) {
		return ErrorCodePersistence
	}
	return ErrorCodeInternal
}

// ErrorFromCode is the inverse of ErrorCode. Unknown codes yield nil.
func ErrorFromCode(code string) error {
	for _, ec := range errorCodes {
		if ec.code == code {
			return ec.err
		}
	}
	return nil
}
