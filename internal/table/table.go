// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table loads the list of logos to download. The default list is
// embedded in the binary; a YAML file with the same shape can replace it.
package table

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/logo-fetch/pkg/types"
)

//go:embed banks.yaml
var defaultTable []byte

// tableFile is the on-disk shape of a table.
type tableFile struct {
	Entries []types.Entry `yaml:"entries"`
}

// Default returns the embedded bank logo table. Each call returns a fresh
// slice, so callers cannot alter the table seen by others.
func Default() []types.Entry {
	entries, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("embedded table is invalid: %v", err))
	}
	return entries
}

// Load reads and validates a table from a YAML file.
func Load(path string) ([]types.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", path, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes a YAML table and validates it. Surrounding whitespace is
// trimmed from ids and urls.
func Parse(data []byte) ([]types.Entry, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}
	for i := range tf.Entries {
		tf.Entries[i].ID = strings.TrimSpace(tf.Entries[i].ID)
		tf.Entries[i].URL = strings.TrimSpace(tf.Entries[i].URL)
	}
	if err := Validate(tf.Entries); err != nil {
		return nil, err
	}
	return tf.Entries, nil
}

// Validate checks that every id is non-empty, unique, and usable as a
// single path component.
func Validate(entries []types.Entry) error {
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("entry %d: empty id", i)
		}
		if e.ID == "." || e.ID == ".." || strings.ContainsAny(e.ID, `/\`) {
			return fmt.Errorf("entry %d: id %q is not a valid file name", i, e.ID)
		}
		if prev, ok := seen[e.ID]; ok {
			return fmt.Errorf("entry %d: duplicate id %q (first at entry %d)", i, e.ID, prev)
		}
		seen[e.ID] = i
	}
	return nil
}
