// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/refkit/internal/metadata"
	"github.com/pdiddy/refkit/pkg/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var got types.Config
	require.NoError(t, v.Unmarshal(&got))

	assert.Equal(t, 0.99, got.Resolve.AutoMin)
	assert.Equal(t, 0.7, got.Resolve.AutoMax)
	assert.True(t, got.Resolve.Interactive)
	assert.Equal(t, 30*time.Second, got.HTTP.Timeout)
	assert.Equal(t, 1.0, got.HTTP.RatePerSecond)
	assert.Equal(t, 10, got.Providers.CrossRefRows)
	assert.True(t, got.Render.AbbreviateJournal)
	assert.False(t, got.Render.AbbreviateNames)
	assert.Equal(t, "refkit.db", got.Library.Path)
	assert.Equal(t, "warn", got.Logging.Level)
	assert.Equal(t, "console", got.Logging.Format)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("REFKIT_RENDER_MAX_NAMES", "3")
	t.Setenv("REFKIT_HTTP_TIMEOUT", "5s")

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("REFKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var got types.Config
	require.NoError(t, v.Unmarshal(&got))
	assert.Equal(t, 3, got.Render.MaxNames)
	assert.Equal(t, 5*time.Second, got.HTTP.Timeout)
}

func TestCollectLookups(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "refs.txt")
	require.NoError(t, os.WriteFile(file, []byte("# comment\n10.1000/abc\n\n  Doe 2013  \n"), 0o644))

	tests := []struct {
		name  string
		stdin string
		file  string
		args  []string
		want  []string
	}{
		{"args joined", "", "", []string{"Doe,", "PRL", "2013"}, []string{"Doe, PRL 2013"}},
		{"no args", "", "", nil, nil},
		{"file", "", file, nil, []string{"10.1000/abc", "Doe 2013"}},
		{"file then args", "", file, []string{"arXiv:1234.5678"}, []string{"10.1000/abc", "Doe 2013", "arXiv:1234.5678"}},
		{"stdin", "one\ntwo\n", "-", nil, []string{"one", "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collectLookups(strings.NewReader(tt.stdin), tt.file, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectLookupsMissingFile(t *testing.T) {
	_, err := collectLookups(nil, filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.Error(t, err)
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"text", "yaml", "csl"} {
		assert.NoError(t, checkFormat(f))
	}
	assert.Error(t, checkFormat("bibtex"))
}

func TestWriteRecords(t *testing.T) {
	cfg = types.Config{Render: types.DefaultRenderConfig()}
	records := []metadata.Record{{
		Journal:   "Physical Review Letters",
		Volume:    "110",
		PageStart: "123456",
		Year:      "2013",
		Authors:   []metadata.PersonName{{Given: "Jane", Family: "Doe"}},
	}}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, formatText, records))
		assert.Equal(t, "Jane Doe, Phys. Rev. Lett. 110, 123456 (2013)\n", buf.String())
	})

	t.Run("yaml round trip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, formatYAML, records))
		got, err := metadata.ReadYAML(&buf)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("csl", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeRecords(&buf, formatCSL, records))
		var items []metadata.CSLItem
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "article-journal", items[0].Type)
		assert.Equal(t, "Physical Review Letters", items[0].ContainerTitle)
	})
}

func TestAbbreviateCommand(t *testing.T) {
	out, err := execute(t, "abbreviate", "Physical", "Review", "Letters")
	require.NoError(t, err)
	assert.Equal(t, "Phys. Rev. Lett.\n", out)
}

func TestNameCommand(t *testing.T) {
	out, err := execute(t, "name", "--abbreviate-names", "--family-first", "John Ronald Reuel Tolkien")
	require.NoError(t, err)
	assert.Equal(t, "Tolkien, J. R. R.\n", out)

	out, err = execute(t, "name", "--split", "Tolkien, J. R. R.")
	require.NoError(t, err)
	assert.Equal(t, "given: J. R. R.\nfamily: Tolkien\n", out)
}

func TestRenderCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "record.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
title: The Hobbit
publisher: Allen & Unwin
year: "1937"
authors:
  - given: J. R. R.
    family: Tolkien
`), 0o644))

	out, err := execute(t, "render", "--file", file, "--journals", "", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "J. R. R. Tolkien, The Hobbit, Allen & Unwin (1937)\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "refkit dev\n", out)
}
