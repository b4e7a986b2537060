package types

import "time"

// HTTPConfig holds HTTP settings used when fetching entries.
type HTTPConfig struct {
	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with each request
	// (e.g. "logo-fetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for a batch run.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutputDir is the directory files are written into (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Workers is the number of entries fetched concurrently (default 1).
	Workers int `json:"workers" yaml:"workers"`

	// DetectExtension derives the file extension from the response
	// Content-Type instead of always using ".png".
	DetectExtension bool `json:"detect_extension" yaml:"detect_extension"`
}
