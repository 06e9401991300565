// Package analyzer derives structural, SEO, accessibility, resource, link
// and technology signals from a single parsed HTML document. Every
// extraction is a pure read query: the document is parsed once per run and
// never mutated.
package analyzer

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document bundles the parsed tree with the raw text, the final resolved
// URL and the response headers, the four inputs every extraction and
// fingerprinting rule may inspect.
type Document struct {
	doc       *goquery.Document
	bodyText  string
	bodyLower string
	headers   http.Header
	finalURL  *url.URL
}

// NewDocument parses the fetched body. The parser is tolerant of malformed
// markup; only an unreadable body fails.
func NewDocument(body []byte, finalURL string, headers http.Header) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	parsed, err := url.Parse(finalURL)
	if err != nil {
		return nil, fmt.Errorf("parse final url: %w", err)
	}

	text := string(body)
	return &Document{
		doc:       doc,
		bodyText:  text,
		bodyLower: strings.ToLower(text),
		headers:   headers,
		finalURL:  parsed,
	}, nil
}

// Find runs a CSS selector query against the parsed tree.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// BodyText returns the raw response body as text.
func (d *Document) BodyText() string {
	return d.bodyText
}

// bodyContains reports a case-insensitive substring match on the raw body.
func (d *Document) bodyContains(needle string) bool {
	return strings.Contains(d.bodyLower, strings.ToLower(needle))
}

// Header returns a response header value, empty when absent.
func (d *Document) Header(name string) string {
	if d.headers == nil {
		return ""
	}
	return d.headers.Get(name)
}

// FinalURL returns the page's final resolved URL.
func (d *Document) FinalURL() *url.URL {
	return d.finalURL
}
