package score

import "time"

// Presentation and scoring share these thresholds.
const (
	// SlowLoadThreshold is the total load time above which performance
	// credit turns into a penalty.
	SlowLoadThreshold = 3 * time.Second
	// SlowTTFBThreshold is the time-to-first-byte equivalent.
	SlowTTFBThreshold = 800 * time.Millisecond
)

// RatePerformance scores total load time, TTFB and response compression.
func RatePerformance(a *Accumulator, totalTime, ttfb time.Duration, compressed bool) {
	if totalTime > SlowLoadThreshold {
		a.Add(Performance, -10)
	} else {
		a.Add(Performance, 10)
	}
	if ttfb > SlowTTFBThreshold {
		a.Add(Performance, -10)
	} else {
		a.Add(Performance, 10)
	}
	if compressed {
		a.Add(Performance, 5)
	}
}

// RateSecurity scores HTTPS usage and recommended header presence.
func RateSecurity(a *Accumulator, https bool, headersFound int) {
	if https {
		a.Add(Security, 20)
	}
	a.Add(Security, headersFound*2)
}

// RateSEOStructure scores the basic on-page structure signals.
func RateSEOStructure(a *Accumulator, hasTitle, hasDescription bool, h1Count int) {
	if hasTitle {
		a.Add(SEO, 5)
	}
	if hasDescription {
		a.Add(SEO, 5)
	}
	switch {
	case h1Count == 1:
		a.Add(SEO, 10)
	case h1Count > 1:
		a.Add(SEO, -5)
	}
}

// RateAdvancedSEO scores canonical and social metadata presence.
func RateAdvancedSEO(a *Accumulator, hasCanonical, hasOpenGraph, hasTwitterCards bool) {
	if hasCanonical {
		a.Add(SEO, 5)
	}
	if hasOpenGraph {
		a.Add(SEO, 5)
	}
	if hasTwitterCards {
		a.Add(SEO, 2)
	}
}

// RateAccessibility scores language/viewport declarations and subtracts
// capped penalties for missing alt text and textless links.
func RateAccessibility(a *Accumulator, hasLang, hasViewport bool, imagesNoAlt, linksNoText int) {
	if hasLang {
		a.Add(Accessibility, 2)
	}
	if hasViewport {
		a.Add(Accessibility, 10)
	}
	if imagesNoAlt > 0 {
		a.Add(Accessibility, -minInt(10, imagesNoAlt*2))
	}
	if linksNoText > 0 {
		a.Add(Accessibility, -minInt(5, linksNoText))
	}
}

// RateWellKnown scores the presence of robots.txt and sitemap.xml.
func RateWellKnown(a *Accumulator, robotsFound, sitemapFound bool) {
	if robotsFound {
		a.Add(SEO, 2)
	}
	if sitemapFound {
		a.Add(SEO, 2)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
