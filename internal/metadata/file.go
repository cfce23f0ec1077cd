// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// WriteYAML writes the record as a YAML mapping to w.
func (r Record) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&r); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return enc.Close()
}

// ReadYAML reads records from a YAML document holding either a single record
// mapping or a list of records. Every record is tidied.
func ReadYAML(rd io.Reader) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(rd).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing record file: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var records []Record
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding records: %w", err)
		}
	case yaml.MappingNode:
		var r Record
		if err := root.Decode(&r); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
		records = []Record{r}
	default:
		return nil, fmt.Errorf("record file must hold a mapping or a list, got %s", kindName(root.Kind))
	}

	for i := range records {
		records[i].Tidy()
	}
	return records, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("node kind %d", k)
	}
}
