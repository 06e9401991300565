package constants

import "time"

const (
	// FetchTimeout bounds the primary page retrieval, redirects included.
	FetchTimeout = 15 * time.Second
	// ResolveTimeout bounds the hostname resolution probe.
	ResolveTimeout = 5 * time.Second
	// PingTimeout bounds the single echo round-trip.
	PingTimeout = 5 * time.Second
	// CertTimeout bounds the TLS handshake used for certificate inspection.
	CertTimeout = 5 * time.Second
	// LinkCheckTimeout bounds each per-link existence check.
	LinkCheckTimeout = 5 * time.Second
	// RobotsTimeout bounds the robots.txt probe.
	RobotsTimeout = 5 * time.Second
	// SitemapTimeout bounds the sitemap.xml probe.
	SitemapTimeout = 10 * time.Second
)

const (
	// DefaultLinkSampleSize caps how many internal links are audited per run.
	DefaultLinkSampleSize = 100
	// DefaultLinkConcurrency is the link audit worker pool size.
	DefaultLinkConcurrency = 8
	// DefaultLinkRateLimit is the global requests-per-second cap for link checks.
	DefaultLinkRateLimit = 10
	// MaxBodyBytes caps the primary response body read.
	MaxBodyBytes = 10 << 20
)

// UserAgent is sent on every outbound request so responses match what a
// regular browser would receive.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
