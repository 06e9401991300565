package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SeoStructure holds the basic on-page structure signals.
type SeoStructure struct {
	Title          string      `json:"title,omitempty"`
	Lang           string      `json:"lang,omitempty"`
	Description    string      `json:"description,omitempty"`
	HasDescription bool        `json:"has_description"`
	Viewport       string      `json:"viewport,omitempty"`
	HasViewport    bool        `json:"has_viewport"`
	Headings       map[int]int `json:"headings"`
}

// AdvancedSeo holds canonical and social sharing metadata.
type AdvancedSeo struct {
	CanonicalURL string            `json:"canonical_url,omitempty"`
	OpenGraph    map[string]string `json:"open_graph"`
	TwitterCards map[string]string `json:"twitter_cards"`
}

var headingTags = [6]string{"h1", "h2", "h3", "h4", "h5", "h6"}

// ExtractSeoStructure pulls title, declared language, meta description,
// meta viewport and per-level heading counts. Absent heading levels are
// reported as zero.
func ExtractSeoStructure(d *Document) SeoStructure {
	s := SeoStructure{Headings: make(map[int]int, 6)}

	s.Title = strings.TrimSpace(d.Find("title").First().Text())
	s.Lang, _ = d.Find("html").First().Attr("lang")

	if desc := d.Find(`meta[name="description"]`).First(); desc.Length() > 0 {
		s.HasDescription = true
		s.Description, _ = desc.Attr("content")
	}
	if vp := d.Find(`meta[name="viewport"]`).First(); vp.Length() > 0 {
		s.HasViewport = true
		s.Viewport, _ = vp.Attr("content")
	}

	for level, tag := range headingTags {
		s.Headings[level+1] = d.Find(tag).Length()
	}
	return s
}

// ExtractAdvancedSeo pulls the canonical link target and every Open Graph
// (og:-prefixed property) and Twitter Card (twitter:-prefixed name) meta
// tag.
func ExtractAdvancedSeo(d *Document) AdvancedSeo {
	adv := AdvancedSeo{
		OpenGraph:    make(map[string]string),
		TwitterCards: make(map[string]string),
	}

	if href, ok := d.Find(`link[rel="canonical"]`).First().Attr("href"); ok && href != "" {
		adv.CanonicalURL = href
	}

	d.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		if prop, ok := sel.Attr("property"); ok && strings.HasPrefix(prop, "og:") {
			content, _ := sel.Attr("content")
			adv.OpenGraph[prop] = content
		}
		if name, ok := sel.Attr("name"); ok && strings.HasPrefix(name, "twitter:") {
			content, _ := sel.Attr("content")
			adv.TwitterCards[name] = content
		}
	})

	return adv
}
