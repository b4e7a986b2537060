// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the entries of a logo table to local files and
// reports one outcome per entry.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/logo-fetch/internal/httputil"
	"github.com/pdiddy/logo-fetch/pkg/types"
)

// DefaultExt is the extension used for every saved file unless extension
// detection is enabled.
const DefaultExt = ".png"

// DoneMessage is printed after every entry has been processed.
const DoneMessage = "Processo finalizado. Verifique os arquivos nesta pasta."

// Result holds the outcomes of a batch run in table order.
type Result struct {
	Outcomes []Outcome
}

// Count returns how many outcomes have the given kind.
func (r Result) Count(k Kind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == k {
			n++
		}
	}
	return n
}

// Total returns the number of entries processed.
func (r Result) Total() int {
	return len(r.Outcomes)
}

// FetchOne processes a single entry. An entry without a URL is skipped
// with no network or file I/O. Otherwise one GET is issued, bounded by
// cfg.Timeout, and the body is written to OutputDir/<id><ext> only on
// HTTP 200. FetchOne never returns an error: every problem is reported
// through the Outcome.
func FetchOne(ctx context.Context, client *http.Client, e types.Entry, cfg types.FetchConfig) Outcome {
	out := Outcome{ID: e.ID, URL: e.URL}
	if !e.HasURL() {
		out.Kind = Skipped
		return out
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log := zap.L().With(zap.String("id", e.ID), zap.String("url", e.URL))
	start := time.Now()

	resp, err := httputil.Get(ctx, client, e.URL, cfg.UserAgent)
	if err != nil {
		log.Debug("request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		out.Kind = Failure
		out.Err = err
		return out
	}
	log.Debug("response received",
		zap.Int("status", resp.StatusCode),
		zap.String("content_type", resp.ContentType),
		zap.Duration("elapsed", time.Since(start)))

	if !resp.OK() {
		out.Kind = HTTPError
		out.StatusCode = resp.StatusCode
		return out
	}

	ext := DefaultExt
	if cfg.DetectExtension {
		ext = ExtensionFor(resp.ContentType)
	}
	path := filepath.Join(outputDir(cfg), e.ID+ext)
	if err := writeFile(path, resp.Body); err != nil {
		out.Kind = Failure
		out.Err = err
		return out
	}
	log.Debug("saved", zap.String("path", path), zap.Int("bytes", len(resp.Body)))

	out.Kind = Saved
	out.Path = path
	out.Ext = ext
	out.Bytes = len(resp.Body)
	return out
}

// RunAll processes every entry exactly once and writes one status line per
// entry to w, in table order, followed by the completion line. With
// cfg.Workers > 1 entries are fetched concurrently; the lines are then
// written once all fetches finish, still in table order. A failed entry
// never stops the run.
func RunAll(ctx context.Context, client *http.Client, entries []types.Entry, cfg types.FetchConfig, w io.Writer) Result {
	outcomes := make([]Outcome, len(entries))

	if cfg.Workers <= 1 {
		for i, e := range entries {
			outcomes[i] = FetchOne(ctx, client, e, cfg)
			fmt.Fprintln(w, outcomes[i].Message())
		}
	} else {
		var g errgroup.Group
		g.SetLimit(cfg.Workers)
		for i, e := range entries {
			i, e := i, e
			g.Go(func() error {
				outcomes[i] = FetchOne(ctx, client, e, cfg)
				return nil
			})
		}
		g.Wait()
		for _, o := range outcomes {
			fmt.Fprintln(w, o.Message())
		}
	}

	fmt.Fprintf(w, "\n%s\n", DoneMessage)

	result := Result{Outcomes: outcomes}
	zap.L().Debug("batch finished",
		zap.Int("total", result.Total()),
		zap.Int("saved", result.Count(Saved)),
		zap.Int("skipped", result.Count(Skipped)),
		zap.Int("http_errors", result.Count(HTTPError)),
		zap.Int("failures", result.Count(Failure)))
	return result
}

func outputDir(cfg types.FetchConfig) string {
	if cfg.OutputDir == "" {
		return "."
	}
	return cfg.OutputDir
}

// writeFile writes data to a temporary file next to path and renames it
// into place, so a failed write never leaves a partial file at path.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".logo-fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
