// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/pdiddy/refkit/internal/metadata"
)

// strategy is one named way of producing a record.
type strategy struct {
	name string
	run  func(ctx context.Context) (metadata.Record, error)
}

// exhaustedError collects the failures of every strategy in a chain.
type exhaustedError struct {
	errs []error
}

func (e *exhaustedError) Error() string {
	return "all strategies failed: " + errors.Join(e.errs...).Error()
}

func (e *exhaustedError) Unwrap() []error { return e.errs }

// onlyServiceErrors reports whether every applicable strategy failed because
// a provider could not be reached or understood.
func (e *exhaustedError) onlyServiceErrors() bool {
	seen := false
	for _, err := range e.errs {
		switch {
		case errors.Is(err, errNotApplicable):
		case errors.Is(err, ErrServiceError) && !errors.Is(err, ErrNotFound):
			seen = true
		default:
			return false
		}
	}
	return seen
}

// firstOf runs strategies in order and returns the first record produced.
// Recoverable failures advance to the next strategy. Any other failure, or
// cancellation of ctx, stops the chain and is returned as is. When every
// strategy fails the result is an *exhaustedError.
func firstOf(ctx context.Context, log zerolog.Logger, strategies ...strategy) (metadata.Record, error) {
	exhausted := &exhaustedError{}
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return metadata.Record{}, err
		}
		rec, err := s.run(ctx)
		if err == nil {
			log.Debug().Str("strategy", s.name).Msg("strategy succeeded")
			return rec, nil
		}
		if ctx.Err() != nil || !recoverable(err) {
			return metadata.Record{}, err
		}
		if !errors.Is(err, errNotApplicable) {
			log.Debug().Str("strategy", s.name).Err(err).Msg("strategy failed, trying next")
		}
		exhausted.errs = append(exhausted.errs, err)
	}
	return metadata.Record{}, exhausted
}
