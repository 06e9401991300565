package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/victordeveloper/webgrade/internal/i18n"
	"github.com/victordeveloper/webgrade/internal/pipeline"
)

var auditCmd = &cobra.Command{
	Use:   "audit <url>",
	Short: "Audit one website and print the scored report",
	Long: `Fetches the page once, then runs network, security, SEO, accessibility
and link checks against it, scoring the result out of 100.`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	flags := auditCmd.Flags()
	flags.BoolVar(&runtimeCfg.CheckLinks, "check-links", runtimeCfg.CheckLinks, "check a sample of internal links for broken targets")
	flags.BoolVar(&runtimeCfg.CheckDomain, "check-domain", runtimeCfg.CheckDomain, "query WHOIS registration and TLS certificate data")
	flags.IntVar(&runtimeCfg.LinkSampleSize, "sample-size", runtimeCfg.LinkSampleSize, "maximum internal links to check")
	flags.IntVar(&runtimeCfg.LinkConcurrency, "concurrency", runtimeCfg.LinkConcurrency, "parallel link checks")
	flags.IntVar(&runtimeCfg.LinkRateLimit, "rate-limit", runtimeCfg.LinkRateLimit, "link checks per second")
	flags.BoolVar(&runtimeCfg.ProgressEnabled, "progress", runtimeCfg.ProgressEnabled, "show a live progress line during the link check")
}

func runAudit(cmd *cobra.Command, args []string) error {
	catalog := i18n.New(runtimeCfg.Lang)
	target := args[0]

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			fmt.Printf("\n%s %s (%s)\n", colorWarn("!"), catalog.Get("analysis_canceled"), sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Infow("audit started", "target", target, "lang", catalog.Locale())
	fmt.Println(colorInfo(catalog.Format("start_analysis", map[string]string{"url": target})))

	var progress *progressPrinter
	cfg := pipeline.Config{
		Target:          target,
		CheckDomain:     runtimeCfg.CheckDomain,
		CheckLinks:      runtimeCfg.CheckLinks,
		LinkSampleSize:  runtimeCfg.LinkSampleSize,
		LinkConcurrency: runtimeCfg.LinkConcurrency,
		LinkRateLimit:   runtimeCfg.LinkRateLimit,
	}
	if runtimeCfg.CheckLinks && runtimeCfg.ProgressEnabled {
		cfg.OnLinkAuditStart = func(count int) {
			fmt.Println(catalog.Format("checking_links", map[string]string{
				"count": strconv.Itoa(count),
				"limit": strconv.Itoa(runtimeCfg.LinkSampleSize),
			}))
			progress = newProgressPrinter(count, catalog.Get("checking_progress"))
			progress.Start()
		}
		cfg.OnLinkChecked = func(broken bool) {
			if progress != nil {
				progress.Increment(!broken)
			}
		}
	}

	rep, err := pipeline.Run(ctx, cfg)
	if progress != nil {
		progress.Stop()
	}
	if rep == nil {
		logger.Errorw("audit failed", "target", target, "error", err)
		fmt.Println(colorDanger(catalog.Get("connection_error_title")))
		fmt.Println(catalog.Format("critical_error_accessing_url", map[string]string{"error": err.Error()}))
		return err
	}

	renderReport(cmd.OutOrStdout(), catalog, rep)

	if err != nil {
		logger.Warnw("audit interrupted, partial report rendered", "run_id", rep.RunID, "error", err)
	} else {
		logger.Infow("audit complete", "run_id", rep.RunID, "score", rep.Score.Total)
	}
	fmt.Println(colorInfo(catalog.Get("analysis_complete")))
	return nil
}
