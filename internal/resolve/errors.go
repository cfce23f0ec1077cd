// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"errors"

	"github.com/pdiddy/refkit/internal/lookup"
)

var (
	// ErrNotFound means a strategy found nothing for the lookup.
	ErrNotFound = lookup.ErrNotFound

	// ErrAmbiguousProviderResult means a provider returned several entries
	// for an identifier that should be unique.
	ErrAmbiguousProviderResult = lookup.ErrAmbiguousResult

	// ErrServiceError means a provider call failed.
	ErrServiceError = lookup.ErrServiceError

	// ErrCancelled means the user aborted an interactive prompt. It aborts
	// the whole resolution and no records are returned.
	ErrCancelled = errors.New("resolution cancelled")

	// errNotApplicable marks a strategy that does not apply to the lookup,
	// for example a DOI lookup when the text holds no DOI.
	errNotApplicable = errors.New("strategy not applicable")
)

// recoverable reports whether the next strategy may be tried after err.
func recoverable(err error) bool {
	return errors.Is(err, errNotApplicable) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrServiceError) ||
		errors.Is(err, ErrAmbiguousProviderResult)
}
