// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/refkit/internal/metadata"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render record files as citations",
	Long: `Render reads bibliographic records from a YAML file (a single record or a
list of records, as written by "refkit resolve --format yaml") and prints
them as citations, record YAML, or CSL-YAML.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")

	if err := checkFormat(format); err != nil {
		return err
	}
	if file == "" {
		return errors.New("record file required: use --file (- for standard input)")
	}

	records, err := readRecords(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}
	return writeRecords(cmd.OutOrStdout(), format, records)
}

func readRecords(stdin io.Reader, file string) ([]metadata.Record, error) {
	if file == "-" {
		return metadata.ReadYAML(stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening record file: %w", err)
	}
	defer f.Close()
	return metadata.ReadYAML(f)
}

func init() {
	renderCmd.Flags().StringP("file", "f", "", "record YAML file (- for standard input)")
	renderCmd.Flags().String("format", formatText, "output format: text, yaml or csl")
	addRenderFlags(renderCmd)

	rootCmd.AddCommand(renderCmd)
}
