package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"

	"github.com/victordeveloper/webgrade/internal/shared/constants"
)

// ErrBadStatus marks a fetch that completed but answered with a client or
// server error status. Like a transport failure, it aborts the run.
var ErrBadStatus = errors.New("page returned an error status")

// FetchResult is the immutable outcome of the primary page retrieval,
// produced exactly once per run. Only the final response in a redirect
// chain is represented.
type FetchResult struct {
	FinalURL   string
	StatusCode int
	Header     http.Header
	Body       []byte
	TotalTime  time.Duration
	TTFB       time.Duration
}

// IsHTTPS reports whether the final resolved URL uses TLS.
func (r *FetchResult) IsHTTPS() bool {
	return len(r.FinalURL) >= 8 && r.FinalURL[:8] == "https://"
}

// Server returns the final response's Server header.
func (r *FetchResult) Server() string {
	return r.Header.Get("Server")
}

// Compression returns the final response's Content-Encoding header.
func (r *FetchResult) Compression() string {
	return r.Header.Get("Content-Encoding")
}

// PageSizeKB returns the body size in kilobytes.
func (r *FetchResult) PageSizeKB() float64 {
	return float64(len(r.Body)) / 1024
}

// FetchPage retrieves the target with a browser User-Agent, following
// redirects, measuring total load time and time-to-first-byte. Transport
// errors and 4xx/5xx responses are fatal for the run: no partial report
// exists without a successful initial fetch.
func FetchPage(ctx context.Context, targetURL string) (*FetchResult, error) {
	client := &http.Client{Timeout: constants.FetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", constants.UserAgent)

	var ttfb time.Duration
	start := time.Now()
	trace := &httptrace.ClientTrace{
		GotFirstResponseByte: func() {
			ttfb = time.Since(start)
		},
	}
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", targetURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	total := time.Since(start)

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: %d for %s", ErrBadStatus, resp.StatusCode, resp.Request.URL)
	}

	return &FetchResult{
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		TotalTime:  total,
		TTFB:       ttfb,
	}, nil
}
