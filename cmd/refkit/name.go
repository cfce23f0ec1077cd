// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refkit/internal/names"
)

var nameCmd = &cobra.Command{
	Use:   "name <full name>",
	Short: "Split and format a person's name",
	Long: `Name splits a full name ("John Ronald Reuel Tolkien", "Tolkien, J. R. R.")
into given and family parts and prints it the way citations print names.
Use --given and --family to format parts that are already split.`,
	RunE: runName,
}

func runName(cmd *cobra.Command, args []string) error {
	given, _ := cmd.Flags().GetString("given")
	family, _ := cmd.Flags().GetString("family")
	split, _ := cmd.Flags().GetBool("split")

	if full := strings.TrimSpace(strings.Join(args, " ")); full != "" {
		given, family = names.Split(full)
	}
	if given == "" && family == "" {
		return errors.New("name required: pass a full name or use --given and --family")
	}

	out := cmd.OutOrStdout()
	if split {
		fmt.Fprintf(out, "given: %s\nfamily: %s\n", given, family)
		return nil
	}
	fmt.Fprintln(out, names.FormatName(given, family, cfg.Render.AbbreviateNames, cfg.Render.FamilyNameFirst))
	return nil
}

func init() {
	nameCmd.Flags().String("given", "", "given name(s)")
	nameCmd.Flags().String("family", "", "family name")
	nameCmd.Flags().Bool("split", false, "print the given and family parts instead of the formatted name")
	nameCmd.Flags().Bool("abbreviate-names", false, "reduce given names to initials")
	nameCmd.Flags().Bool("family-first", false, "print the name as Family, Given")

	rootCmd.AddCommand(nameCmd)
}
