package probe

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/victordeveloper/webgrade/internal/shared/constants"
)

// FileStatus is the outcome of one well-known file check. Exactly one
// status applies at a time.
type FileStatus string

const (
	StatusFound    FileStatus = "found"
	StatusNotFound FileStatus = "not_found"
	StatusFailed   FileStatus = "failed"
)

// WellKnownFile describes one probed well-known path. StatusCode is set
// for not_found; URLCount and ParseError only apply to a found sitemap.
type WellKnownFile struct {
	Status      FileStatus `json:"status"`
	StatusCode  int        `json:"status_code,omitempty"`
	URLCount    int        `json:"url_count,omitempty"`
	HasURLCount bool       `json:"has_url_count"`
	ParseError  bool       `json:"parse_error,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []struct {
		Loc string `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 loc"`
	} `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 url"`
}

// CheckRobots probes /robots.txt. Found requires status 200 with a
// non-HTML content type; any other status is not_found with its code; a
// transport failure is failed.
func CheckRobots(ctx context.Context, baseURL string) WellKnownFile {
	resp, err := fetchWellKnown(ctx, baseURL, "/robots.txt", constants.RobotsTimeout)
	if err != nil {
		return WellKnownFile{Status: StatusFailed}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode == http.StatusOK && !strings.Contains(resp.Header.Get("Content-Type"), "html") {
		return WellKnownFile{Status: StatusFound}
	}
	return WellKnownFile{Status: StatusNotFound, StatusCode: resp.StatusCode}
}

// CheckSitemap probes /sitemap.xml. Found requires status 200 with an XML
// content type; the body is then parsed against the sitemap namespace to
// count url entries. A parse failure is flagged without demoting found.
func CheckSitemap(ctx context.Context, baseURL string) WellKnownFile {
	resp, err := fetchWellKnown(ctx, baseURL, "/sitemap.xml", constants.SitemapTimeout)
	if err != nil {
		return WellKnownFile{Status: StatusFailed}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK || !strings.Contains(resp.Header.Get("Content-Type"), "xml") {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return WellKnownFile{Status: StatusNotFound, StatusCode: resp.StatusCode}
	}

	file := WellKnownFile{Status: StatusFound}
	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxBodyBytes))
	if err != nil {
		file.ParseError = true
		return file
	}

	var set sitemapURLSet
	if err := xml.Unmarshal(body, &set); err != nil {
		file.ParseError = true
		return file
	}
	file.URLCount = len(set.URLs)
	file.HasURLCount = true
	return file
}

func fetchWellKnown(ctx context.Context, baseURL, path string, timeout time.Duration) (*http.Response, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	target := base.ResolveReference(ref).String()

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("User-Agent", constants.UserAgent)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	// The caller drains and closes the body before reqCtx matters again;
	// tie the cancel to body close.
	resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	c.cancel()
	return c.ReadCloser.Close()
}
