// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry is one row of the download table: an identifier that becomes the
// output filename stem, and the URL to fetch it from.
type Entry struct {
	// ID is the filename stem (e.g. "itau" saves to "itau.png").
	ID string `json:"id" yaml:"id"`

	// URL is the remote image location. Empty means the logo is unknown
	// and must be fetched manually.
	URL string `json:"url" yaml:"url"`
}

// HasURL reports whether the entry has a source to download from.
func (e Entry) HasURL() bool {
	return e.URL != ""
}
