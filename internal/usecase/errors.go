package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")

	// ErrStandingsNotFound also matches ErrNotFound.
	ErrStandingsNotFound      = crerr.Mark(crerr.New("standings not found"), ErrNotFound)
	ErrMalformedStandingsData = crerr.New("malformed standings data")
)

// NotFoundError reports a match without statistics.
type NotFoundError struct {
	MatchID string
}

func (e *NotFoundError) Error() string {
	return "statistics not found for match with ID: " + e.MatchID
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func newMatchNotFound(matchID string) error {
	return crerr.WithStack(&NotFoundError{MatchID: matchID})
}

// storeError wraps a repository failure so it maps to ErrDependencyUnavailable.
// Cancellations keep their own identity.
func storeError(err error, op string) error {
	if crerr.IsAny(err, context.Canceled, context.DeadlineExceeded) {
		return crerr.Wrap(err, op)
	}
	return crerr.Mark(crerr.Wrap(err, op), ErrDependencyUnavailable)
}
