package probe

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/victordeveloper/webgrade/internal/shared/constants"
)

// BrokenLink describes one failed existence check. StatusCode is zero and
// ConnError true when the failure happened below HTTP (timeout, DNS,
// refused connection, TLS).
type BrokenLink struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code,omitempty"`
	ConnError  bool   `json:"conn_error"`
}

// LinkAuditor issues lightweight existence checks against a bounded
// sample of links using a worker pool with a global rate limit. Checks
// are mutually independent: one link's failure never cancels another's.
type LinkAuditor struct {
	Concurrency int
	RateLimit   int
	Timeout     time.Duration
	// OnChecked, when set, is called once per completed check (any
	// outcome) for progress reporting.
	OnChecked func(broken bool)
	// Client overrides the HTTP client, used by tests.
	Client *http.Client
}

// NewLinkAuditor returns an auditor with the default pool settings.
func NewLinkAuditor() *LinkAuditor {
	return &LinkAuditor{
		Concurrency: constants.DefaultLinkConcurrency,
		RateLimit:   constants.DefaultLinkRateLimit,
		Timeout:     constants.LinkCheckTimeout,
	}
}

// Audit truncates candidates to sampleSize, checks each one and returns
// the broken subset. Result order is not meaningful; the absence of a
// result means the link was confirmed reachable.
func (l *LinkAuditor) Audit(ctx context.Context, candidates []string, sampleSize int) []BrokenLink {
	if sampleSize >= 0 && len(candidates) > sampleSize {
		candidates = candidates[:sampleSize]
	}
	if len(candidates) == 0 {
		return nil
	}

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: l.Timeout}
	}

	limiter := rate.NewLimiter(rate.Limit(l.RateLimit), l.RateLimit)
	sem := make(chan struct{}, l.poolSize())

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		broken []BrokenLink
	)

	for _, candidate := range candidates {
		wg.Add(1)
		go func(link string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if err := limiter.Wait(ctx); err != nil {
				return
			}

			entry, isBroken := l.checkOne(ctx, client, link)
			if isBroken {
				mu.Lock()
				broken = append(broken, entry)
				mu.Unlock()
			}
			if l.OnChecked != nil {
				l.OnChecked(isBroken)
			}
		}(candidate)
	}

	wg.Wait()
	return broken
}

// checkOne performs a single minimal-body existence check.
func (l *LinkAuditor) checkOne(ctx context.Context, client *http.Client, link string) (BrokenLink, bool) {
	checkCtx, cancel := context.WithTimeout(ctx, l.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodHead, link, nil)
	if err != nil {
		return BrokenLink{URL: link, ConnError: true}, true
	}
	req.Header.Set("User-Agent", constants.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return BrokenLink{URL: link, ConnError: true}, true
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 600 {
		return BrokenLink{URL: link, StatusCode: resp.StatusCode}, true
	}
	return BrokenLink{}, false
}

func (l *LinkAuditor) poolSize() int {
	if l.Concurrency > 0 {
		return l.Concurrency
	}
	return constants.DefaultLinkConcurrency
}
