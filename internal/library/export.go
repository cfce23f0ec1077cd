// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/refkit/internal/metadata"
)

// Export writes every saved record as a CSL-YAML list, oldest entry first.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lookup, records, saved_at FROM refs ORDER BY saved_at ASC, id ASC`)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	defer rows.Close()

	var records []metadata.Record
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return err
		}
		records = append(records, e.Records...)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	return metadata.FormatCSL(records, w)
}
