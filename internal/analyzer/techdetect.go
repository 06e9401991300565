package analyzer

import (
	"sort"
	"strings"
)

// Rule is a pure predicate over the document, its raw text, the response
// headers and the final URL, all reachable through Document.
type Rule func(d *Document) bool

// registry maps technology name to its detection rule. Rules are
// independent; several may fire for one page.
var registry = map[string]Rule{
	"WordPress": func(d *Document) bool {
		return d.bodyContains("/wp-content/") || d.bodyContains("/wp-includes/")
	},
	"Joomla": func(d *Document) bool {
		return d.bodyContains("com_content")
	},
	"Drupal": func(d *Document) bool {
		return d.bodyContains("/sites/default/")
	},
	"Shopify": func(d *Document) bool {
		return d.bodyContains("cdn.shopify.com")
	},
	"Wix": func(d *Document) bool {
		return d.bodyContains("wix.com") || d.bodyContains("wixstatic.com")
	},
	"React": func(d *Document) bool {
		return d.Find("div#root").Length() > 0 || d.Find("div#__next").Length() > 0
	},
	"Vue.js": func(d *Document) bool {
		return d.Find("div#app").Length() > 0 || d.bodyContains("data-v-")
	},
	"Angular": func(d *Document) bool {
		return d.Find("[ng-version]").Length() > 0
	},
	"jQuery": func(d *Document) bool {
		return d.bodyContains("jquery")
	},
	"Bootstrap": func(d *Document) bool {
		return d.bodyContains("bootstrap")
	},
	"Google Analytics": func(d *Document) bool {
		return d.bodyContains("google-analytics.com") || d.bodyContains("googletagmanager.com")
	},
	"Hotjar": func(d *Document) bool {
		return d.bodyContains("hotjar.com")
	},
	"Cloudflare": func(d *Document) bool {
		return strings.Contains(strings.ToLower(d.Header("Server")), "cloudflare")
	},
	"Nginx": func(d *Document) bool {
		return strings.Contains(strings.ToLower(d.Header("Server")), "nginx")
	},
	"Apache": func(d *Document) bool {
		return strings.Contains(strings.ToLower(d.Header("Server")), "apache")
	},
	"PHP": func(d *Document) bool {
		if strings.Contains(strings.ToLower(d.Header("X-Powered-By")), "php") {
			return true
		}
		return strings.Contains(d.FinalURL().Path, ".php")
	},
}

// Register adds or replaces a detection rule. The registry is open: new
// technologies need no dispatch changes.
func Register(name string, rule Rule) {
	registry[name] = rule
}

// DetectTechnologies evaluates every rule and returns the matched
// technology names sorted for stable presentation.
func DetectTechnologies(d *Document) []string {
	var found []string
	for name, rule := range registry {
		if rule(d) {
			found = append(found, name)
		}
	}
	sort.Strings(found)
	return found
}
