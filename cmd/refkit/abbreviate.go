// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var abbreviateCmd = &cobra.Command{
	Use:   "abbreviate <journal title>",
	Short: "Print the abbreviated form of a journal title",
	Long: `Abbreviate prints the abbreviation of a journal title using the bundled
dictionary, or the dictionary given with --journals.`,
	Example: `  refkit abbreviate Physical Review Letters
  refkit abbreviate "Journal of Chemical Physics"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return errors.New("journal title required")
		}
		abbr, err := abbreviator()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), abbr.Abbreviate(title))
		return nil
	},
}

func init() {
	abbreviateCmd.Flags().String("journals", "", "YAML journal abbreviation dictionary replacing the bundled one")
	rootCmd.AddCommand(abbreviateCmd)
}
