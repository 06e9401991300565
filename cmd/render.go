package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/victordeveloper/webgrade/internal/analyzer"
	"github.com/victordeveloper/webgrade/internal/i18n"
	"github.com/victordeveloper/webgrade/internal/probe"
	"github.com/victordeveloper/webgrade/internal/report"
	"github.com/victordeveloper/webgrade/internal/score"
)

const panelWidth = 62

// renderReport prints every result panel followed by the score summary.
func renderReport(w io.Writer, c *i18n.Catalog, rep *report.Report) {
	renderGeneral(w, c, rep)
	renderTechnologies(w, c, rep.Technologies)
	renderSecurity(w, c, rep)
	renderDomain(w, c, rep.DomainAudit)
	renderSeo(w, c, rep.Seo)
	renderAdvancedSeo(w, c, rep.AdvancedSeo)
	renderAccessibility(w, c, rep.Accessibility)
	renderResources(w, c, rep.Resources)
	renderLinks(w, c, rep)
	renderWellKnown(w, c, rep)
	renderScore(w, c, rep.Score)
}

func renderGeneral(w io.Writer, c *i18n.Catalog, rep *report.Report) {
	lines := []string{
		fmt.Sprintf("%s %s", c.Get("final_url_analyzed"), rep.Page.FinalURL),
	}

	if rep.Network.IPAddress != "" {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("ip_address"), rep.Network.IPAddress))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("ip_address"), colorWarn(c.Get("could_not_resolve_ip"))))
	}

	lines = append(lines, fmt.Sprintf("%s %s", c.Get("status_code"), colorSuccess(rep.Page.StatusCode)))

	if rep.Network.HasLatency {
		style := latencyStyle(rep.Network.LatencyMS)
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("network_latency"),
			style(fmt.Sprintf("%.2f ms", rep.Network.LatencyMS))))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("network_latency"), c.Get("not_measured_icmp")))
	}

	total := rep.Page.TotalTime
	loadText := fmt.Sprintf("%.2f %s", total.Seconds(), c.Get("seconds"))
	if total > score.SlowLoadThreshold {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("total_load_time"), colorWarn(loadText+c.Get("slow_warning_3s"))))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("total_load_time"), colorSuccess(loadText)))
	}

	ttfbText := fmt.Sprintf("%.2f %s", rep.Page.TTFB.Seconds(), c.Get("seconds"))
	if rep.Page.TTFB > score.SlowTTFBThreshold {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("ttfb"), colorWarn(ttfbText+c.Get("slow_warning_ttfb"))))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("ttfb"), colorSuccess(ttfbText)))
	}

	lines = append(lines, fmt.Sprintf("%s %.2f KB", c.Get("page_size"), rep.Page.PageSizeKB))

	server := rep.Page.Server
	if server == "" {
		server = c.Get("not_provided")
	}
	lines = append(lines, fmt.Sprintf("%s %s", c.Get("server"), server))

	if rep.Page.Compression != "" {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("compression"), colorSuccess(rep.Page.Compression)))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("compression"), colorWarn(c.Get("none"))))
	}

	panel(w, c.Get("panel_general_info"), lines)
}

func renderTechnologies(w io.Writer, c *i18n.Catalog, techs []string) {
	if len(techs) == 0 {
		return
	}
	lines := make([]string, 0, len(techs))
	for _, tech := range techs {
		lines = append(lines, "    - "+tech)
	}
	panel(w, c.Get("panel_tech"), lines)
}

func renderSecurity(w io.Writer, c *i18n.Catalog, rep *report.Report) {
	https := colorDanger(c.Get("https_no"))
	if rep.Page.IsHTTPS {
		https = colorSuccess(c.Get("https_yes"))
	}
	lines := []string{
		fmt.Sprintf("%s %s", c.Get("using_https"), https),
		c.Get("security_headers"),
		c.Format("headers_found", map[string]string{
			"count": strconv.Itoa(rep.Security.FoundCount()),
			"total": strconv.Itoa(rep.Security.Total),
		}),
	}
	for _, name := range rep.Security.Found {
		lines = append(lines, "    - "+colorSuccess(name))
	}
	panel(w, c.Get("panel_onpage_security"), lines)
}

func renderDomain(w io.Writer, c *i18n.Catalog, audit report.DomainAudit) {
	if !audit.Performed {
		return
	}

	var lines []string
	if audit.Domain.Cause != "" {
		lines = append(lines, colorWarn(c.Get("whois_error")))
	} else {
		if audit.Domain.CreatedAt != nil {
			lines = append(lines, fmt.Sprintf("%s %s", c.Get("domain_creation_date"),
				audit.Domain.CreatedAt.Format("02/01/2006")))
		}
		if audit.Domain.Registrar != "" {
			lines = append(lines, fmt.Sprintf("%s %s", c.Get("registrar"), audit.Domain.Registrar))
		}
	}

	if audit.Certificate.Cause != "" {
		lines = append(lines, colorWarn(c.Get("ssl_error")))
	} else {
		style := certStyle(audit.Certificate.DaysLeft)
		suffix := ""
		if audit.Certificate.Expired() {
			suffix = c.Get("ssl_expired")
		} else if audit.Certificate.DaysLeft <= 30 {
			suffix = c.Format("ssl_expiry_warning", map[string]string{
				"days": strconv.Itoa(audit.Certificate.DaysLeft),
			})
		}
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("ssl_validity"), style("OK"+suffix)))
	}

	panel(w, c.Get("panel_domain_ssl"), lines)
}

func renderSeo(w io.Writer, c *i18n.Catalog, seo analyzer.SeoStructure) {
	var lines []string

	if seo.Title != "" {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("title"), seo.Title))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("title"), colorWarn(c.Get("not_found"))))
	}

	if seo.Lang != "" {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("declared_language"), seo.Lang))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("declared_language"), colorWarn(c.Get("lang_not_declared"))))
	}

	lines = append(lines, colorInfo(c.Get("meta_tags")))
	if seo.HasDescription {
		lines = append(lines, "    - description: "+truncate(seo.Description, 100))
	} else {
		lines = append(lines, colorWarn(c.Get("meta_desc_missing")))
	}
	if seo.HasViewport {
		lines = append(lines, "    - viewport: "+truncate(seo.Viewport, 100))
	} else {
		lines = append(lines, colorWarn(c.Get("meta_viewport_missing")))
	}

	lines = append(lines, colorInfo(c.Get("headings_structure")))
	if seo.Headings[1] == 1 {
		lines = append(lines, colorSuccess(c.Get("h1_ideal")))
	} else {
		lines = append(lines, colorWarn(c.Format("h1_warning", map[string]string{
			"count": strconv.Itoa(seo.Headings[1]),
		})))
	}
	for level := 2; level <= 6; level++ {
		if count := seo.Headings[level]; count > 0 {
			lines = append(lines, c.Format("heading_found", map[string]string{
				"tag":   fmt.Sprintf("h%d", level),
				"count": strconv.Itoa(count),
			}))
		}
	}

	panel(w, c.Get("panel_seo_content"), lines)
}

func renderAdvancedSeo(w io.Writer, c *i18n.Catalog, adv analyzer.AdvancedSeo) {
	var lines []string

	if adv.CanonicalURL != "" {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("canonical_url"), adv.CanonicalURL))
	} else {
		lines = append(lines, colorWarn(c.Get("canonical_not_found")))
	}

	lines = append(lines, colorInfo(c.Get("open_graph")))
	if len(adv.OpenGraph) > 0 {
		lines = append(lines, metaLines(adv.OpenGraph)...)
	} else {
		lines = append(lines, colorWarn(c.Get("og_tags_missing")))
	}

	lines = append(lines, colorInfo(c.Get("twitter_cards")))
	if len(adv.TwitterCards) > 0 {
		lines = append(lines, metaLines(adv.TwitterCards)...)
	} else {
		lines = append(lines, colorWarn(c.Get("twitter_tags_missing")))
	}

	panel(w, c.Get("panel_advanced_seo"), lines)
}

func renderAccessibility(w io.Writer, c *i18n.Catalog, a11y analyzer.AccessibilitySummary) {
	var lines []string

	if a11y.TotalImages > 0 {
		style := colorSuccess
		if a11y.ImagesWithoutAlt > 0 {
			style = colorDanger
		}
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("images_no_alt"),
			style(fmt.Sprintf("%d %s %d", a11y.ImagesWithoutAlt, c.Get("images_of"), a11y.TotalImages))))
		if a11y.ImagesWithoutAlt > 0 {
			lines = append(lines, c.Format("alt_text_needed", map[string]string{
				"count": strconv.Itoa(a11y.ImagesWithoutAlt),
			}))
		}
	} else {
		lines = append(lines, c.Get("no_img_tags"))
	}

	if a11y.LinksWithoutText > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", c.Get("links_no_text"),
			colorDanger(c.Format("links_found", map[string]string{
				"count": strconv.Itoa(a11y.LinksWithoutText),
			}))))
		lines = append(lines, c.Get("link_text_clarity"))
	}

	panel(w, c.Get("panel_accessibility"), lines)
}

func renderResources(w io.Writer, c *i18n.Catalog, res analyzer.ResourceInventory) {
	lines := []string{
		fmt.Sprintf("%s %d", c.Get("images_label"), res.Images),
		fmt.Sprintf("%s %d %s, %d %s", c.Get("css_label"), res.ExternalCSS, c.Get("external"), res.InternalCSS, c.Get("internal")),
		fmt.Sprintf("%s %d %s, %d %s", c.Get("js_label"), res.ExternalJS, c.Get("external"), res.InternalJS, c.Get("internal")),
	}
	panel(w, c.Get("panel_resources"), lines)
}

func renderLinks(w io.Writer, c *i18n.Catalog, rep *report.Report) {
	lines := []string{
		fmt.Sprintf("%s %d", c.Get("total_links"), rep.Links.Total),
		fmt.Sprintf("%s %d", c.Get("internal_links"), rep.Links.Internal),
		fmt.Sprintf("%s %d", c.Get("external_links"), rep.Links.External),
		fmt.Sprintf("%s %d", c.Get("nofollow_links"), rep.Links.Nofollow),
	}
	panel(w, c.Get("panel_link_analysis"), lines)

	if !rep.LinkAudit.Performed {
		return
	}

	if len(rep.LinkAudit.Broken) > 0 {
		for _, link := range rep.LinkAudit.Broken {
			if link.ConnError {
				fmt.Fprintf(w, "%s %s\n", colorDanger(c.Get("check_failed")), link.URL)
			} else {
				fmt.Fprintf(w, "%s %s\n", colorDanger(c.Format("broken_link", map[string]string{
					"code": strconv.Itoa(link.StatusCode),
				})), link.URL)
			}
		}
		fmt.Fprintln(w, colorWarn(c.Format("broken_summary", map[string]string{
			"count": strconv.Itoa(len(rep.LinkAudit.Broken)),
		})))
	} else {
		fmt.Fprintln(w, colorSuccess(c.Format("no_broken_links", map[string]string{
			"count": strconv.Itoa(rep.LinkAudit.Checked),
		})))
	}
}

func renderWellKnown(w io.Writer, c *i18n.Catalog, rep *report.Report) {
	var lines []string

	switch rep.Robots.Status {
	case probe.StatusFound:
		lines = append(lines, colorSuccess(c.Get("robots_found")))
	case probe.StatusNotFound:
		lines = append(lines, colorWarn(c.Format("robots_not_found", map[string]string{
			"code": strconv.Itoa(rep.Robots.StatusCode),
		})))
	default:
		lines = append(lines, colorWarn(c.Get("robots_failed")))
	}

	switch rep.Sitemap.Status {
	case probe.StatusFound:
		lines = append(lines, colorSuccess(c.Get("sitemap_found")))
		if rep.Sitemap.HasURLCount {
			lines = append(lines, fmt.Sprintf("%s %d", c.Get("sitemap_urls_found"), rep.Sitemap.URLCount))
		} else if rep.Sitemap.ParseError {
			lines = append(lines, colorWarn(c.Get("sitemap_parse_error")))
		}
	case probe.StatusNotFound:
		lines = append(lines, colorWarn(c.Format("sitemap_not_found", map[string]string{
			"code": strconv.Itoa(rep.Sitemap.StatusCode),
		})))
	default:
		lines = append(lines, colorWarn(c.Get("sitemap_failed")))
	}

	panel(w, c.Get("panel_common_files"), lines)
}

func renderScore(w io.Writer, c *i18n.Catalog, s score.Summary) {
	fmt.Fprintln(w, colorInfo(c.Get("summary_title")))
	fmt.Fprintf(w, "  %-20s %10s %6s\n", c.Get("col_category"), c.Get("col_score"), c.Get("col_max"))

	row := func(label string, value, ceiling int) {
		style := categoryStyle(value, ceiling)
		fmt.Fprintf(w, "  %-20s %10s %6d\n", label, style(value), ceiling)
	}
	row(c.Get("cat_perf"), s.Performance, score.PerformanceCeiling)
	row(c.Get("cat_sec"), s.Security, score.SecurityCeiling)
	row(c.Get("cat_seo"), s.SEO, score.SEOCeiling)
	row(c.Get("cat_a11y"), s.Accessibility, score.AccessibilityCeiling)

	final := c.Format("final_score", map[string]string{
		"score":          strconv.Itoa(s.Total),
		"classification": c.Get(classificationKey(s.Classification)),
	})
	panel(w, c.Get("panel_final_result"), []string{totalStyle(s.Total)(final)})
}

func classificationKey(cl score.Classification) string {
	switch cl {
	case score.Excellent:
		return "class_excellent"
	case score.Good:
		return "class_good"
	case score.NeedsImprovement:
		return "class_needs_improvement"
	default:
		return "class_not_optimized"
	}
}

// panel prints a titled rule followed by indented content lines.
func panel(w io.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	head := "── " + title + " "
	if pad := panelWidth - len([]rune(head)); pad > 0 {
		head += strings.Repeat("─", pad)
	}
	fmt.Fprintln(w, colorInfo(head))
	for _, line := range lines {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}

// metaLines renders a meta tag map in stable key order.
func metaLines(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("    - %s: %s", k, truncate(tags[k], 100)))
	}
	return lines
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
