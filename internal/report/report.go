// Package report defines the aggregate result of one audit run. The
// presenter consumes it read-only; the pipeline is the only writer.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/victordeveloper/webgrade/internal/analyzer"
	"github.com/victordeveloper/webgrade/internal/probe"
	"github.com/victordeveloper/webgrade/internal/score"
)

// Page holds the fetch-derived facts shown in the general info panel.
type Page struct {
	FinalURL    string        `json:"final_url"`
	StatusCode  int           `json:"status_code"`
	TotalTime   time.Duration `json:"total_time"`
	TTFB        time.Duration `json:"ttfb"`
	PageSizeKB  float64       `json:"page_size_kb"`
	Server      string        `json:"server,omitempty"`
	Compression string        `json:"compression,omitempty"`
	IsHTTPS     bool          `json:"is_https"`
}

// LinkAudit pairs the broken subset with how many links were checked.
type LinkAudit struct {
	Performed bool               `json:"performed"`
	Checked   int                `json:"checked"`
	Broken    []probe.BrokenLink `json:"broken,omitempty"`
}

// DomainAudit groups the optional WHOIS and certificate sub-probes.
type DomainAudit struct {
	Performed   bool                    `json:"performed"`
	Domain      probe.DomainRecord      `json:"domain"`
	Certificate probe.CertificateRecord `json:"certificate"`
}

// Report is the full outcome of one audit run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Target      string    `json:"target"`

	Page          Page                          `json:"page"`
	Network       probe.NetworkProfile          `json:"network"`
	Security      probe.SecurityHeaders         `json:"security_headers"`
	DomainAudit   DomainAudit                   `json:"domain_audit"`
	Technologies  []string                      `json:"technologies,omitempty"`
	Seo           analyzer.SeoStructure         `json:"seo"`
	AdvancedSeo   analyzer.AdvancedSeo          `json:"advanced_seo"`
	Accessibility analyzer.AccessibilitySummary `json:"accessibility"`
	Resources     analyzer.ResourceInventory    `json:"resources"`
	Links         analyzer.LinkGraph            `json:"links"`
	LinkAudit     LinkAudit                     `json:"link_audit"`
	Robots        probe.WellKnownFile           `json:"robots"`
	Sitemap       probe.WellKnownFile           `json:"sitemap"`
	Score         score.Summary                 `json:"score"`
}

// New returns an empty report stamped with a fresh run ID.
func New(target string) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Target:      target,
	}
}
