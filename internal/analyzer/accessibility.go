package analyzer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AccessibilitySummary counts the accessibility problems the auditor can
// observe statically.
type AccessibilitySummary struct {
	TotalImages      int `json:"total_images"`
	ImagesWithoutAlt int `json:"images_without_alt"`
	LinksWithoutText int `json:"links_without_text"`
}

// ExtractAccessibility counts images lacking non-empty alt text and
// anchors carrying neither visible text nor an image descendant.
func ExtractAccessibility(d *Document) AccessibilitySummary {
	var s AccessibilitySummary

	d.Find("img").Each(func(_ int, sel *goquery.Selection) {
		s.TotalImages++
		if alt, _ := sel.Attr("alt"); strings.TrimSpace(alt) == "" {
			s.ImagesWithoutAlt++
		}
	})

	d.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) == "" && sel.Find("img").Length() == 0 {
			s.LinksWithoutText++
		}
	})

	return s
}
