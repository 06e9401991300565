// Package probe contains the network-facing checks: the primary page
// fetch, DNS and latency diagnostics, domain and certificate inspection,
// security header analysis, the broken-link audit and the well-known file
// checks. Apart from the fetch, every probe degrades to an explicit
// absent-value-plus-cause instead of failing the run.
package probe

import (
	"net/url"
	"strings"
)

// TargetInfo contains parsed target information.
type TargetInfo struct {
	Original string // original target string
	Scheme   string // http or https
	Host     string // hostname without protocol, path or port
	Port     string // port if specified
	FullURL  string // normalized URL used for requests
}

// ParseTarget normalizes user input into a requestable URL. Accepted
// forms include bare hosts ("example.com"), scheme-less host:port pairs
// and full URLs. A missing scheme defaults to https.
func ParseTarget(target string) *TargetInfo {
	info := &TargetInfo{Original: target}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme == "" || strings.Contains(parsed.Scheme, ".") {
		parsed, _ = url.Parse("https://" + target)
	}

	if parsed != nil {
		info.Scheme = parsed.Scheme
		info.Host = parsed.Hostname()
		info.Port = parsed.Port()
		info.FullURL = parsed.String()
	}

	if info.Host == "" {
		host := strings.TrimPrefix(target, "http://")
		host = strings.TrimPrefix(host, "https://")
		host = strings.Split(host, "/")[0]
		parts := strings.Split(host, ":")
		info.Host = parts[0]
		if len(parts) > 1 {
			info.Port = parts[1]
		}
		if info.Scheme == "" {
			info.Scheme = "https"
		}
		info.FullURL = info.Scheme + "://" + host
	}

	return info
}
