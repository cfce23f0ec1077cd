// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads provider credentials from a directory of plain-text
// files and from .env files. Each file in the directory is one secret: the
// filename is the key and the trimmed contents are the value.
//
// Supported key files: crossref-mailto.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// MailtoKey names the file holding the contact e-mail sent to CrossRef.
	MailtoKey = "crossref-mailto"

	// MailtoEnv overrides the MailtoKey file when set.
	MailtoEnv = "REFKIT_MAILTO"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files are logged as warnings but do not abort.
func Load(dir string, log zerolog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// LoadEnv loads variables from the given .env files into the process
// environment. Files that do not exist are skipped, and variables already
// set in the environment are not overridden.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Mailto returns the CrossRef contact e-mail: MailtoEnv when set, otherwise
// the MailtoKey secret.
func Mailto(secrets map[string]string) string {
	if v := strings.TrimSpace(os.Getenv(MailtoEnv)); v != "" {
		return v
	}
	return secrets[MailtoKey]
}
