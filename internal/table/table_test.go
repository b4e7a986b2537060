// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/logo-fetch/pkg/types"
)

func TestDefault(t *testing.T) {
	entries := Default()
	require.Len(t, entries, 31)

	assert.Equal(t, types.Entry{ID: "bmg", URL: "https://upload.wikimedia.org/wikipedia/commons/8/8a/Banco_BMG_logo.png"}, entries[0])
	assert.Equal(t, "presenca", entries[len(entries)-1].ID)

	var missing []string
	for _, e := range entries {
		if !e.HasURL() {
			missing = append(missing, e.ID)
		}
	}
	assert.Equal(t, []string{"happy", "nbc", "finanto", "qualibank", "fintech_corban", "quero_mais", "presenca"}, missing)
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a[0].ID = "changed"
	b := Default()
	assert.Equal(t, "bmg", b[0].ID)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []types.Entry
		errMsg string
	}{
		{
			name:  "trims whitespace",
			input: "entries:\n  - id: \" a \"\n    url: \" http://host/a.png \"\n  - id: b\n",
			want:  []types.Entry{{ID: "a", URL: "http://host/a.png"}, {ID: "b"}},
		},
		{
			name:  "empty table",
			input: "entries: []\n",
			want:  []types.Entry{},
		},
		{
			name:   "empty id",
			input:  "entries:\n  - url: http://host/a.png\n",
			errMsg: "empty id",
		},
		{
			name:   "duplicate id",
			input:  "entries:\n  - id: a\n  - id: a\n",
			errMsg: `duplicate id "a"`,
		},
		{
			name:   "path separator",
			input:  "entries:\n  - id: ../etc\n",
			errMsg: "not a valid file name",
		},
		{
			name:   "malformed yaml",
			input:  "entries: [",
			errMsg: "parsing table",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - id: c6\n    url: http://host/c6.png\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Entry{{ID: "c6", URL: "http://host/c6.png"}}, got)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading table")
}
