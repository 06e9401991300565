// Package pipeline runs the audit stages in order: one fetch, one parse,
// then the analyzers and best-effort probes, threading the score
// accumulator through and assembling the final Report.
package pipeline

import (
	"context"
	"fmt"

	"github.com/victordeveloper/webgrade/internal/analyzer"
	"github.com/victordeveloper/webgrade/internal/probe"
	"github.com/victordeveloper/webgrade/internal/report"
	"github.com/victordeveloper/webgrade/internal/score"
	"github.com/victordeveloper/webgrade/internal/shared/constants"
)

// Config carries the per-run settings resolved by the command layer.
type Config struct {
	Target          string
	CheckDomain     bool
	CheckLinks      bool
	LinkSampleSize  int
	LinkConcurrency int
	LinkRateLimit   int

	// OnLinkAuditStart fires before the broken-link stage with the number
	// of links about to be checked; OnLinkChecked once per completed
	// check. Both are optional progress hooks.
	OnLinkAuditStart func(count int)
	OnLinkChecked    func(broken bool)
}

// Run executes one audit. Only a fetch failure returns a nil report; a
// canceled context after a successful fetch returns the partial report
// together with the context error.
func Run(ctx context.Context, cfg Config) (*report.Report, error) {
	target := probe.ParseTarget(cfg.Target)

	fetch, err := probe.FetchPage(ctx, target.FullURL)
	if err != nil {
		return nil, err
	}

	doc, err := analyzer.NewDocument(fetch.Body, fetch.FinalURL, fetch.Header)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	acc := score.NewAccumulator()
	rep := report.New(cfg.Target)

	rep.Page = report.Page{
		FinalURL:    fetch.FinalURL,
		StatusCode:  fetch.StatusCode,
		TotalTime:   fetch.TotalTime,
		TTFB:        fetch.TTFB,
		PageSizeKB:  fetch.PageSizeKB(),
		Server:      fetch.Server(),
		Compression: fetch.Compression(),
		IsHTTPS:     fetch.IsHTTPS(),
	}
	score.RatePerformance(acc, fetch.TotalTime, fetch.TTFB, fetch.Compression() != "")

	rep.Network = probe.DiagnoseNetwork(ctx, target.Host)
	rep.Technologies = analyzer.DetectTechnologies(doc)

	rep.Security = probe.AnalyzeSecurityHeaders(fetch.Header)
	score.RateSecurity(acc, fetch.IsHTTPS(), rep.Security.FoundCount())

	if cfg.CheckDomain {
		rep.DomainAudit = report.DomainAudit{
			Performed:   true,
			Domain:      probe.InspectDomain(target.Host),
			Certificate: probe.InspectCertificate(target.Host),
		}
	}
	if canceled(ctx, rep, acc) {
		return rep, ctx.Err()
	}

	rep.Seo = analyzer.ExtractSeoStructure(doc)
	score.RateSEOStructure(acc, rep.Seo.Title != "", rep.Seo.HasDescription, rep.Seo.Headings[1])

	rep.AdvancedSeo = analyzer.ExtractAdvancedSeo(doc)
	score.RateAdvancedSEO(acc,
		rep.AdvancedSeo.CanonicalURL != "",
		len(rep.AdvancedSeo.OpenGraph) > 0,
		len(rep.AdvancedSeo.TwitterCards) > 0)

	rep.Accessibility = analyzer.ExtractAccessibility(doc)
	score.RateAccessibility(acc,
		rep.Seo.Lang != "",
		rep.Seo.HasViewport,
		rep.Accessibility.ImagesWithoutAlt,
		rep.Accessibility.LinksWithoutText)

	rep.Resources = analyzer.ExtractResources(doc)
	rep.Links = analyzer.ExtractLinks(doc)

	if cfg.CheckLinks && len(rep.Links.InternalURLs) > 0 {
		rep.LinkAudit = auditLinks(ctx, cfg, rep.Links.InternalURLs)
	}
	if canceled(ctx, rep, acc) {
		return rep, ctx.Err()
	}

	rep.Robots = probe.CheckRobots(ctx, fetch.FinalURL)
	rep.Sitemap = probe.CheckSitemap(ctx, fetch.FinalURL)
	score.RateWellKnown(acc, rep.Robots.Status == probe.StatusFound, rep.Sitemap.Status == probe.StatusFound)

	rep.Score = acc.Summarize()
	return rep, nil
}

func auditLinks(ctx context.Context, cfg Config, candidates []string) report.LinkAudit {
	sample := cfg.LinkSampleSize
	if sample <= 0 {
		sample = constants.DefaultLinkSampleSize
	}
	checked := len(candidates)
	if checked > sample {
		checked = sample
	}
	if cfg.OnLinkAuditStart != nil {
		cfg.OnLinkAuditStart(checked)
	}

	auditor := probe.NewLinkAuditor()
	if cfg.LinkConcurrency > 0 {
		auditor.Concurrency = cfg.LinkConcurrency
	}
	if cfg.LinkRateLimit > 0 {
		auditor.RateLimit = cfg.LinkRateLimit
	}
	auditor.OnChecked = cfg.OnLinkChecked

	return report.LinkAudit{
		Performed: true,
		Checked:   checked,
		Broken:    auditor.Audit(ctx, candidates, sample),
	}
}

// canceled summarizes the partial accumulator state when the context is
// done, so the caller can still render what was gathered.
func canceled(ctx context.Context, rep *report.Report, acc *score.Accumulator) bool {
	if ctx.Err() == nil {
		return false
	}
	rep.Score = acc.Summarize()
	return true
}
