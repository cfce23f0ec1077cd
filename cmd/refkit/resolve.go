// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refkit/internal/httputil"
	"github.com/pdiddy/refkit/internal/library"
	"github.com/pdiddy/refkit/internal/lookup"
	"github.com/pdiddy/refkit/internal/metadata"
	"github.com/pdiddy/refkit/internal/prompt"
	"github.com/pdiddy/refkit/internal/ranking"
	"github.com/pdiddy/refkit/internal/resolve"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [reference...]",
	Short: "Resolve references to bibliographic records",
	Long: `Resolve looks up each reference and prints the resulting citation.

A reference may be free text ("Doe, Phys. Rev. Lett. 110 (2013)"), a DOI,
an ISBN, or an arXiv identifier. arXiv preprints are looked up on arXiv and
then on CrossRef, so a published version is printed alongside the preprint
when one exists. Other references are tried on CrossRef by DOI, by ISBN,
and then by free-text search.

Arguments are joined into one reference. Use --file to resolve one
reference per line of a file ("-" reads standard input; blank lines and
lines starting with # are skipped).

When a free-text search is ambiguous or finds nothing, refkit asks on the
terminal unless --interactive=false is given.`,
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	cached, _ := cmd.Flags().GetBool("cached")
	save, _ := cmd.Flags().GetBool("save")

	if err := checkFormat(format); err != nil {
		return err
	}

	lookups, err := collectLookups(cmd.InOrStdin(), file, args)
	if err != nil {
		return err
	}
	if len(lookups) == 0 {
		return errors.New("no reference given: pass it as arguments or use --file")
	}
	if file == "-" && cfg.Resolve.Interactive {
		logger.Warn().Msg("references read from standard input; disabling prompts")
		cfg.Resolve.Interactive = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := newResolver(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var lib *library.Store
	if cached || save {
		lib, err = library.Open(cfg.Library)
		if err != nil {
			return err
		}
		defer lib.Close()
	}

	out := cmd.OutOrStdout()
	var (
		all    []metadata.Record
		failed int
	)
	for _, text := range lookups {
		records, err := resolveOne(ctx, r, lib, text, cached, save)
		if errors.Is(err, resolve.ErrCancelled) {
			return err
		}
		if ctx.Err() != nil {
			return fmt.Errorf("resolution interrupted: %w", ctx.Err())
		}
		if err != nil {
			logger.Error().Err(err).Str("lookup", text).Msg("resolution failed")
			fmt.Fprintf(cmd.ErrOrStderr(), "failed  %s: %v\n", text, err)
			failed++
			continue
		}
		if len(records) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "no metadata found for %q\n", text)
			continue
		}
		if format == formatText {
			if err := writeRecords(out, format, records); err != nil {
				return err
			}
			continue
		}
		all = append(all, records...)
	}

	if format != formatText {
		if err := writeRecords(out, format, all); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d reference(s) failed to resolve", failed)
	}
	return nil
}

// resolveOne resolves a single lookup, consulting and updating the library
// when asked to.
func resolveOne(ctx context.Context, r *resolve.Resolver, lib *library.Store, text string, cached, save bool) ([]metadata.Record, error) {
	if cached {
		records, err := lib.Get(ctx, text)
		if err == nil {
			logger.Debug().Str("lookup", text).Msg("library hit")
			return records, nil
		}
		if !errors.Is(err, library.ErrNotFound) {
			return nil, err
		}
	}

	records, err := r.Resolve(ctx, text)
	if err != nil {
		return nil, err
	}
	if save && len(records) > 0 {
		if err := lib.Save(ctx, text, records); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// newResolver wires the provider clients and, when prompts are enabled,
// terminal collaborators reading from in and writing to out.
func newResolver(in io.Reader, out io.Writer) (*resolve.Resolver, error) {
	client := httputil.NewClient(cfg.HTTP)
	arxiv := lookup.NewArxiv(client, cfg.Providers, logger)
	crossref := lookup.NewCrossRef(client, cfg.Providers, logger)

	opts := []resolve.Option{
		resolve.WithLogger(logger),
		resolve.WithThresholds(ranking.Thresholds{
			AutoMin: cfg.Resolve.AutoMin,
			AutoMax: cfg.Resolve.AutoMax,
		}),
	}
	if cfg.Resolve.Interactive {
		term := prompt.NewTerminal(in, out)
		opts = append(opts,
			resolve.WithDisambiguator(term.Disambiguate),
			resolve.WithManualEntry(term.ManualEntry))
	}
	return resolve.New(arxiv, crossref, opts...)
}

// collectLookups returns the references to resolve: one per line of file
// when set, followed by the arguments joined by spaces.
func collectLookups(stdin io.Reader, file string, args []string) ([]string, error) {
	if file == "" {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return nil, nil
		}
		return []string{text}, nil
	}

	var r io.Reader = stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening reference file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lookups []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lookups = append(lookups, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	if extra := strings.TrimSpace(strings.Join(args, " ")); extra != "" {
		lookups = append(lookups, extra)
	}
	return lookups, nil
}

func init() {
	resolveCmd.Flags().StringP("file", "f", "", "file with one reference per line (- for standard input)")
	resolveCmd.Flags().String("format", formatText, "output format: text, yaml or csl")
	resolveCmd.Flags().Bool("cached", false, "use records saved in the library before querying providers")
	resolveCmd.Flags().Bool("save", false, "save resolved records in the library")
	resolveCmd.Flags().String("library", "refkit.db", "library database file")
	resolveCmd.Flags().Bool("interactive", true, "prompt to disambiguate or enter records by hand")
	resolveCmd.Flags().Float64("auto-min", ranking.DefaultAutoMin, "minimum score to accept a search match without asking")
	resolveCmd.Flags().Float64("auto-max", ranking.DefaultAutoMax, "maximum runner-up to best score ratio to accept without asking")
	resolveCmd.Flags().String("mailto", "", "contact e-mail sent to CrossRef")
	addRenderFlags(resolveCmd)

	rootCmd.AddCommand(resolveCmd)
}
