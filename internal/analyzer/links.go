package analyzer

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LinkGraph classifies every non-trivial anchor on the page. InternalURLs
// is deduplicated and sorted so downstream sampling is deterministic.
type LinkGraph struct {
	Total        int      `json:"total"`
	Internal     int      `json:"internal"`
	External     int      `json:"external"`
	Nofollow     int      `json:"nofollow"`
	InternalURLs []string `json:"internal_urls"`
}

// ExtractLinks resolves each anchor against the page's final URL and
// classifies it. Fragment-only, mailto: and tel: hrefs are excluded from
// every count. A link is internal when its resolved host matches the
// page's host, regardless of scheme or port.
func ExtractLinks(d *Document) LinkGraph {
	var g LinkGraph
	base := d.FinalURL()
	seen := make(map[string]struct{})

	d.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if skipHref(href) {
			return
		}

		g.Total++
		if rel, _ := sel.Attr("rel"); hasRelToken(rel, "nofollow") {
			g.Nofollow++
		}

		parsed, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(parsed)

		if strings.EqualFold(resolved.Hostname(), base.Hostname()) {
			g.Internal++
			full := resolved.String()
			if _, dup := seen[full]; !dup {
				seen[full] = struct{}{}
				g.InternalURLs = append(g.InternalURLs, full)
			}
		} else if resolved.Scheme == "http" || resolved.Scheme == "https" {
			g.External++
		}
	})

	sort.Strings(g.InternalURLs)
	return g
}

func skipHref(href string) bool {
	return href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:")
}

// hasRelToken matches a whitespace-separated rel attribute token.
func hasRelToken(rel, token string) bool {
	for _, t := range strings.Fields(rel) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}
