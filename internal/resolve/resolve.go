// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve turns a loose lookup string (DOI, ISBN, arXiv identifier,
// or free-text citation) into metadata records by querying arXiv and
// CrossRef, ranking free-text hits, and escalating to the user when the
// match is unclear.
package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/refkit/internal/identifier"
	"github.com/pdiddy/refkit/internal/lookup"
	"github.com/pdiddy/refkit/internal/metadata"
	"github.com/pdiddy/refkit/internal/ranking"
)

// ArxivProvider looks up arXiv records by identifier.
type ArxivProvider interface {
	QueryByID(ctx context.Context, id string) (metadata.Record, error)
}

// CrossRefProvider looks up CrossRef works by DOI, by ISBN, and by free text.
type CrossRefProvider interface {
	QueryByDOI(ctx context.Context, doi string) (metadata.Record, error)
	QueryByISBN(ctx context.Context, isbn string) (metadata.Record, error)
	QueryByText(ctx context.Context, text string) ([]lookup.Candidate, error)
}

// Choice is a ranked free-text candidate offered for disambiguation.
type Choice struct {
	Score    float64
	Citation string
	Record   metadata.Record
}

// NoSelection is returned by a DisambiguateFunc when none of the choices match.
const NoSelection = -1

// DisambiguateFunc asks which of the ranked choices matches lookup. It
// returns an index into choices or NoSelection. Returning ErrCancelled
// aborts the resolution.
type DisambiguateFunc func(ctx context.Context, lookup string, choices []Choice) (int, error)

// ManualEntryFunc asks for the record of lookup to be entered by hand. ok is
// false when the user declines. Returning ErrCancelled aborts the resolution.
type ManualEntryFunc func(ctx context.Context, lookup string) (rec metadata.Record, ok bool, err error)

// Resolver drives a single resolution. It holds no per-call state and may
// be reused.
type Resolver struct {
	arxiv        ArxivProvider
	crossref     CrossRefProvider
	thresholds   ranking.Thresholds
	disambiguate DisambiguateFunc
	manual       ManualEntryFunc
	log          zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithThresholds sets the automatic acceptance thresholds.
func WithThresholds(t ranking.Thresholds) Option {
	return func(r *Resolver) { r.thresholds = t }
}

// WithDisambiguator sets the callback used for ambiguous free-text results.
// Without one, ambiguous results are treated as no match.
func WithDisambiguator(f DisambiguateFunc) Option {
	return func(r *Resolver) { r.disambiguate = f }
}

// WithManualEntry sets the collaborator used when nothing was found.
func WithManualEntry(f ManualEntryFunc) Option {
	return func(r *Resolver) { r.manual = f }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// New returns a Resolver over the two providers. Thresholds default to
// ranking.DefaultThresholds and are validated.
func New(arxiv ArxivProvider, crossref CrossRefProvider, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		arxiv:      arxiv,
		crossref:   crossref,
		thresholds: ranking.DefaultThresholds(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}
	return r, nil
}

// Resolve returns the records found for text. The first record is the
// primary one; when an arXiv preprint is found, the CrossRef record of its
// published version may follow. Finding nothing returns no records and a
// nil error. The error is ErrCancelled when the user aborts a prompt, the
// context error when ctx is done, and ErrServiceError when every applicable
// lookup failed at the provider.
func (r *Resolver) Resolve(ctx context.Context, text string) ([]metadata.Record, error) {
	log := r.log.With().Str("lookup", text).Logger()

	var results []metadata.Record
	rec, err := r.fromArxiv(ctx, log, text)
	switch {
	case err == nil:
		results = append(results, rec)
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case !recoverable(err):
		return nil, err
	case errors.Is(err, ErrAmbiguousProviderResult):
		log.Warn().Err(err).Str("provider", "arxiv").Msg("ambiguous arXiv result ignored")
	case errors.Is(err, ErrServiceError):
		log.Warn().Err(err).Str("provider", "arxiv").Msg("arXiv lookup failed")
	}

	if len(results) > 0 {
		seed := results[0].SearchableString()
		rec, err := r.fromCrossRef(ctx, log, seed, false)
		switch {
		case err == nil:
			results = append(results, rec)
		case !isExhausted(err):
			return nil, err
		default:
			log.Info().Err(err).Msg("no CrossRef record for arXiv preprint")
		}
		return results, nil
	}

	rec, err = r.fromCrossRef(ctx, log, text, true)
	if err == nil {
		return append(results, rec), nil
	}
	var exhausted *exhaustedError
	if !errors.As(err, &exhausted) {
		return nil, err
	}
	if exhausted.onlyServiceErrors() {
		return nil, fmt.Errorf("resolving %q: %w", text, err)
	}
	log.Info().Msg("no metadata found")
	return nil, nil
}

func isExhausted(err error) bool {
	var exhausted *exhaustedError
	return errors.As(err, &exhausted)
}

// fromArxiv looks the text up on arXiv when it carries an arXiv identifier.
func (r *Resolver) fromArxiv(ctx context.Context, log zerolog.Logger, text string) (metadata.Record, error) {
	id, err := identifier.ExtractArxivID(text)
	if err != nil {
		return metadata.Record{}, errNotApplicable
	}
	log.Debug().Str("provider", "arxiv").Str("id", id).Msg("arXiv identifier found")
	return r.arxiv.QueryByID(ctx, id)
}

// fromCrossRef tries, in order, an embedded DOI, an embedded ISBN, a ranked
// free-text search, and (when allowManual is set) manual entry.
func (r *Resolver) fromCrossRef(ctx context.Context, log zerolog.Logger, text string, allowManual bool) (metadata.Record, error) {
	strategies := []strategy{
		{name: "doi", run: func(ctx context.Context) (metadata.Record, error) {
			doi, err := identifier.ExtractDOI(text)
			if err != nil {
				return metadata.Record{}, errNotApplicable
			}
			return r.crossref.QueryByDOI(ctx, doi)
		}},
		{name: "isbn", run: func(ctx context.Context) (metadata.Record, error) {
			isbn, err := identifier.ExtractISBN(text)
			if err != nil {
				return metadata.Record{}, errNotApplicable
			}
			return r.crossref.QueryByISBN(ctx, isbn)
		}},
		{name: "search", run: func(ctx context.Context) (metadata.Record, error) {
			return r.search(ctx, log, text)
		}},
	}
	if allowManual && r.manual != nil {
		strategies = append(strategies, strategy{name: "manual", run: func(ctx context.Context) (metadata.Record, error) {
			rec, ok, err := r.manual(ctx, text)
			if err != nil {
				return metadata.Record{}, err
			}
			if !ok {
				return metadata.Record{}, fmt.Errorf("manual entry declined: %w", ErrNotFound)
			}
			rec.Tidy()
			return rec, nil
		}})
	}
	return firstOf(ctx, log.With().Str("provider", "crossref").Logger(), strategies...)
}

// search runs a free-text query on the ASCII-folded text and ranks the hits.
func (r *Resolver) search(ctx context.Context, log zerolog.Logger, text string) (metadata.Record, error) {
	folded := foldASCII(text)
	candidates, err := r.crossref.QueryByText(ctx, folded)
	if err != nil {
		return metadata.Record{}, err
	}

	citations := make([]string, len(candidates))
	for i, c := range candidates {
		citations[i] = c.Citation
	}
	decision := ranking.Classify(folded, citations, r.thresholds)

	switch decision.Outcome {
	case ranking.Accept:
		best, _ := decision.Best()
		log.Info().Str("strategy", "search").Float64("score", best.Score).Msg("candidate accepted")
		return candidates[best.Index].Record, nil
	case ranking.Ambiguous:
		if best, ok := decision.Best(); ok {
			log.Info().Str("strategy", "search").Float64("score", best.Score).Int("candidates", len(decision.Ranked)).Msg("ambiguous candidates")
		}
		return r.choose(ctx, text, candidates, decision.Ranked)
	default:
		return metadata.Record{}, fmt.Errorf("free-text search: %w", ErrNotFound)
	}
}

// choose hands the ranked candidates to the disambiguation callback.
func (r *Resolver) choose(ctx context.Context, text string, candidates []lookup.Candidate, ranked []ranking.Scored) (metadata.Record, error) {
	if r.disambiguate == nil {
		return metadata.Record{}, fmt.Errorf("ambiguous free-text search: %w", ErrNotFound)
	}

	choices := make([]Choice, len(ranked))
	for i, s := range ranked {
		choices[i] = Choice{Score: s.Score, Citation: s.Text, Record: candidates[s.Index].Record}
	}
	selected, err := r.disambiguate(ctx, text, choices)
	if err != nil {
		return metadata.Record{}, err
	}
	if selected == NoSelection {
		return metadata.Record{}, fmt.Errorf("no candidate selected: %w", ErrNotFound)
	}
	if selected < 0 || selected >= len(choices) {
		return metadata.Record{}, fmt.Errorf("selection %d out of range [0, %d)", selected, len(choices))
	}
	return choices[selected].Record, nil
}
