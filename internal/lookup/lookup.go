// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup queries the remote metadata providers (arXiv and CrossRef)
// and converts their responses into metadata records.
package lookup

import (
	"errors"
	"fmt"

	"github.com/pdiddy/refkit/internal/httputil"
	"github.com/pdiddy/refkit/internal/identifier"
	"github.com/pdiddy/refkit/internal/metadata"
)

var (
	// ErrNotFound means the provider has no record for the identifier.
	ErrNotFound = identifier.ErrNotFound

	// ErrAmbiguousResult means a lookup by a supposedly unique identifier
	// returned more than one entry.
	ErrAmbiguousResult = errors.New("provider returned more than one entry")

	// ErrServiceError means the provider request failed or returned a
	// response that could not be understood.
	ErrServiceError = errors.New("provider service error")
)

// Candidate is one free-text search hit. Citation is the text ranked against
// the lookup string.
type Candidate struct {
	Citation string
	Record   metadata.Record
}

// serviceError classifies an httputil error: HTTP 404 becomes ErrNotFound,
// everything else ErrServiceError. The cause stays in the chain so context
// cancellation remains detectable.
func serviceError(provider string, err error) error {
	var se *httputil.StatusError
	if errors.As(err, &se) && se.NotFound() {
		return fmt.Errorf("%s: %w: %w", provider, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w: %w", provider, ErrServiceError, err)
}
