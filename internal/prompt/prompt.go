// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive collaborators of the resolver
// on a line-oriented terminal: choosing among ranked candidates and typing a
// record by hand.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/pdiddy/refkit/internal/metadata"
	"github.com/pdiddy/refkit/internal/resolve"
)

// Terminal reads answers from in and writes questions to out. A single
// goroutine reads in, so a line typed after a cancelled question answers
// the next one.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	start sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

// NewTerminal returns a Terminal over in and out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, lines: make(chan line)}
}

// Disambiguate lists the ranked choices and asks for the number of the
// right one. Zero means none match. Input that is not a listed number is
// asked for again. End of input, "q", or a cancelled ctx returns
// resolve.ErrCancelled.
func (t *Terminal) Disambiguate(ctx context.Context, lookup string, choices []resolve.Choice) (int, error) {
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "Lookup: %s\n", lookup)
	fmt.Fprintln(t.out, "Candidates:")
	for i, c := range choices {
		fmt.Fprintf(t.out, "  [%d] %s (score %.2f)\n", i+1, c.Citation, c.Score)
	}

	for {
		answer, err := t.ask(ctx, "Number of the matching candidate (0 if none, q to quit): ")
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(answer, "q") {
			return 0, resolve.ErrCancelled
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 0 || n > len(choices) {
			fmt.Fprintf(t.out, "Enter a number between 0 and %d.\n", len(choices))
			continue
		}
		if n == 0 {
			return resolve.NoSelection, nil
		}
		return n - 1, nil
	}
}

// ManualEntry offers to enter the record for lookup by hand. When accepted
// it asks for every field, then for authors and editors one at a time until
// an empty family name is given.
func (t *Terminal) ManualEntry(ctx context.Context, lookup string) (metadata.Record, bool, error) {
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "No metadata found for: %s\n", lookup)
	answer, err := t.ask(ctx, "Enter it manually? [y/N]: ")
	if err != nil {
		return metadata.Record{}, false, err
	}
	if !strings.HasPrefix(strings.ToLower(answer), "y") {
		return metadata.Record{}, false, nil
	}

	var r metadata.Record
	fields := []struct {
		label string
		dst   *string
	}{
		{"doi", &r.DOI}, {"isbn", &r.ISBN}, {"issn", &r.ISSN}, {"url", &r.URL},
		{"publisher", &r.Publisher}, {"title", &r.Title}, {"edition", &r.Edition},
		{"journal", &r.Journal}, {"volume", &r.Volume}, {"issue", &r.Issue},
		{"year", &r.Year}, {"first page", &r.PageStart}, {"last page", &r.PageEnd},
	}
	for _, f := range fields {
		if *f.dst, err = t.ask(ctx, f.label+": "); err != nil {
			return metadata.Record{}, false, err
		}
	}
	if r.Authors, err = t.askPeople(ctx, "author"); err != nil {
		return metadata.Record{}, false, err
	}
	if r.Editors, err = t.askPeople(ctx, "editor"); err != nil {
		return metadata.Record{}, false, err
	}
	r.Tidy()
	return r, true, nil
}

func (t *Terminal) askPeople(ctx context.Context, role string) ([]metadata.PersonName, error) {
	var people []metadata.PersonName
	for {
		given, err := t.ask(ctx, role+" given name: ")
		if err != nil {
			return nil, err
		}
		family, err := t.ask(ctx, role+" family name (empty to finish): ")
		if err != nil {
			return nil, err
		}
		p := metadata.PersonName{Given: given, Family: family}
		if !p.Valid() {
			return people, nil
		}
		people = append(people, p)
	}
}

// ask writes question and waits for one line of input.
func (t *Terminal) ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(t.out, question)
	t.start.Do(func() { go t.readLines() })

	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return "", resolve.ErrCancelled
	case res, ok := <-t.lines:
		if !ok {
			fmt.Fprintln(t.out)
			return "", resolve.ErrCancelled
		}
		text := strings.TrimSpace(res.text)
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && text != "" {
				return text, nil
			}
			fmt.Fprintln(t.out)
			return "", resolve.ErrCancelled
		}
		return text, nil
	}
}

// readLines delivers lines from in until a read fails, then closes lines.
func (t *Terminal) readLines() {
	defer close(t.lines)
	for {
		text, err := t.in.ReadString('\n')
		t.lines <- line{text, err}
		if err != nil {
			return
		}
	}
}
