// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the single-shot HTTP GET used by the fetcher.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxDrain caps how much of a non-200 body is read before closing, so the
// connection can be reused without pulling down a large error page.
const maxDrain = 64 << 10

// Response is a fully buffered HTTP response.
type Response struct {
	StatusCode  int
	ContentType string

	// Body holds the complete response body. It is only read for
	// HTTP 200; for any other status it is nil.
	Body []byte
}

// OK reports whether the response carried HTTP 200.
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Get executes one GET request for url bound to ctx. There are no retries;
// redirects follow the client's policy. A non-nil error means the request
// never completed: malformed URL, DNS or connection failure, timeout, or a
// body that could not be read in full.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	out := &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
		return out, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	out.Body = body
	return out, nil
}
