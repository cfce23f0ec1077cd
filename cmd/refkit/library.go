// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refkit/internal/library"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the local reference library (list, search, export)",
	Long: `Library manages the local SQLite database of resolved references written
by "refkit resolve --save". Use subcommands to list saved lookups, search
them, or export every saved record as CSL-YAML.`,
}

// --- list subcommand ---

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved references, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withLibrary(func(ctx context.Context, s *library.Store) error {
			entries, err := s.List(ctx, limit)
			if err != nil {
				return err
			}
			return formatEntries(cmd, entries)
		})
	},
}

// --- search subcommand ---

var librarySearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search saved references",
	Long: `Search lists saved references whose lookup text or record fields contain
every word of the query, ignoring case.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		text := strings.Join(args, " ")
		return withLibrary(func(ctx context.Context, s *library.Store) error {
			entries, err := s.Search(ctx, text, limit)
			if err != nil {
				return err
			}
			return formatEntries(cmd, entries)
		})
	},
}

// --- export subcommand ---

var libraryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved records as CSL-YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return withLibrary(func(ctx context.Context, s *library.Store) error {
			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := s.Export(ctx, w); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", output)
			}
			return nil
		})
	},
}

// --- shared helpers ---

func withLibrary(fn func(context.Context, *library.Store) error) error {
	s, err := library.Open(cfg.Library)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(context.Background(), s)
}

func formatEntries(cmd *cobra.Command, entries []library.Entry) error {
	out := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No saved references.")
		return nil
	}

	abbr, err := abbreviator()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s\n", e.SavedAt.Local().Format("2006-01-02 15:04"), e.Lookup)
		for _, r := range e.Records {
			fmt.Fprintf(out, "    %s\n", r.Render(cfg.Render, abbr))
		}
	}
	fmt.Fprintf(out, "\n%d references\n", len(entries))
	return nil
}

func init() {
	libraryCmd.PersistentFlags().String("library", "refkit.db", "library database file")

	libraryListCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	libraryListCmd.Flags().Bool("json", false, "output entries as JSON")
	librarySearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	librarySearchCmd.Flags().Bool("json", false, "output entries as JSON")
	libraryExportCmd.Flags().StringP("output", "o", "", "write to a file instead of standard output")

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySearchCmd)
	libraryCmd.AddCommand(libraryExportCmd)

	rootCmd.AddCommand(libraryCmd)
}
