// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ReportRecord is the YAML form of one Outcome.
type ReportRecord struct {
	ID         string `yaml:"id"`
	URL        string `yaml:"url,omitempty"`
	Outcome    string `yaml:"outcome"`
	Path       string `yaml:"path,omitempty"`
	Bytes      int    `yaml:"bytes,omitempty"`
	StatusCode int    `yaml:"status,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

// Report is the YAML document written after a run.
type Report struct {
	Total     int            `yaml:"total"`
	Saved     int            `yaml:"saved"`
	Skipped   int            `yaml:"skipped"`
	HTTPError int            `yaml:"http_errors"`
	Failed    int            `yaml:"failed"`
	Entries   []ReportRecord `yaml:"entries"`
}

// NewReport builds a Report from the result of a run.
func NewReport(r Result) Report {
	rep := Report{
		Total:     r.Total(),
		Saved:     r.Count(Saved),
		Skipped:   r.Count(Skipped),
		HTTPError: r.Count(HTTPError),
		Failed:    r.Count(Failure),
		Entries:   make([]ReportRecord, 0, len(r.Outcomes)),
	}
	for _, o := range r.Outcomes {
		rec := ReportRecord{
			ID:         o.ID,
			URL:        o.URL,
			Outcome:    o.Kind.String(),
			Path:       o.Path,
			Bytes:      o.Bytes,
			StatusCode: o.StatusCode,
		}
		if o.Err != nil {
			rec.Error = o.Err.Error()
		}
		rep.Entries = append(rep.Entries, rec)
	}
	return rep
}

// WriteReport writes the YAML report for r to path.
func WriteReport(r Result, path string) error {
	data, err := yaml.Marshal(NewReport(r))
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
