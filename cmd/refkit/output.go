// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/refkit/internal/journal"
	"github.com/pdiddy/refkit/internal/metadata"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatCSL  = "csl"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatYAML, formatCSL:
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml or csl", format)
	}
}

// writeRecords writes records to w as rendered citations (one per line),
// a YAML list of records, or a CSL-YAML list.
func writeRecords(w io.Writer, format string, records []metadata.Record) error {
	switch format {
	case formatYAML:
		if records == nil {
			records = []metadata.Record{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding records: %w", err)
		}
		return enc.Close()
	case formatCSL:
		return metadata.FormatCSL(records, w)
	default:
		abbr, err := abbreviator()
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Fprintln(w, r.Render(cfg.Render, abbr))
		}
		return nil
	}
}

// abbreviator returns the journal abbreviator selected by the configuration.
func abbreviator() (*journal.Abbreviator, error) {
	if cfg.Render.JournalsFile == "" {
		return journal.Default(), nil
	}
	return journal.LoadFile(cfg.Render.JournalsFile)
}

// addRenderFlags registers the citation rendering flags on cmd.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-names", 0, "print at most n-1 names followed by et al. (below 2 prints all)")
	cmd.Flags().Bool("abbreviate-journal", true, "print abbreviated journal titles")
	cmd.Flags().Bool("abbreviate-names", false, "reduce given names to initials")
	cmd.Flags().Bool("family-first", false, "print names as Family, Given")
	cmd.Flags().Bool("force-title", false, "print titles of journal and arXiv references")
	cmd.Flags().Bool("first-page-only", false, "print only the first page of a page range")
	cmd.Flags().String("journals", "", "YAML journal abbreviation dictionary replacing the bundled one")
}
