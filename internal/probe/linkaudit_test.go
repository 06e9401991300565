package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newAuditTestServer(t *testing.T, hits *int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.WriteHeader(http.StatusGone)
	})
	mux.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func TestAuditClassifiesBrokenLinks(t *testing.T) {
	var hits int64
	srv := newAuditTestServer(t, &hits)
	defer srv.Close()

	auditor := NewLinkAuditor()
	candidates := []string{
		srv.URL + "/ok",
		srv.URL + "/gone",
		srv.URL + "/boom",
	}
	broken := auditor.Audit(context.Background(), candidates, 100)

	if len(broken) != 2 {
		t.Fatalf("got %d broken links, want 2: %+v", len(broken), broken)
	}
	byURL := make(map[string]BrokenLink, len(broken))
	for _, b := range broken {
		byURL[b.URL] = b
	}

	gone := byURL[srv.URL+"/gone"]
	if gone.StatusCode != http.StatusGone || gone.ConnError {
		t.Errorf("gone entry = %+v, want status 410 without conn error", gone)
	}
	boom := byURL[srv.URL+"/boom"]
	if boom.StatusCode != http.StatusInternalServerError {
		t.Errorf("boom entry = %+v, want status 500", boom)
	}
}

func TestAuditTransportFailureSetsConnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	auditor := NewLinkAuditor()
	auditor.Timeout = time.Second
	broken := auditor.Audit(context.Background(), []string{srv.URL + "/x"}, 100)

	if len(broken) != 1 {
		t.Fatalf("got %d broken links, want 1", len(broken))
	}
	if !broken[0].ConnError || broken[0].StatusCode != 0 {
		t.Errorf("entry = %+v, want conn error with absent status", broken[0])
	}
}

func TestAuditHonorsSampleCap(t *testing.T) {
	var hits int64
	srv := newAuditTestServer(t, &hits)
	defer srv.Close()

	n, cap := 25, 10
	candidates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, fmt.Sprintf("%s/ok?i=%d", srv.URL, i))
	}

	var checked int64
	auditor := NewLinkAuditor()
	auditor.RateLimit = 1000
	auditor.OnChecked = func(bool) { atomic.AddInt64(&checked, 1) }
	auditor.Audit(context.Background(), candidates, cap)

	if got := atomic.LoadInt64(&hits); got != int64(cap) {
		t.Errorf("server saw %d checks, want exactly min(N, C) = %d", got, cap)
	}
	if got := atomic.LoadInt64(&checked); got != int64(cap) {
		t.Errorf("progress callback fired %d times, want %d", got, cap)
	}
}

func TestAuditSampleSmallerThanCap(t *testing.T) {
	var hits int64
	srv := newAuditTestServer(t, &hits)
	defer srv.Close()

	auditor := NewLinkAuditor()
	auditor.RateLimit = 1000
	auditor.Audit(context.Background(), []string{srv.URL + "/ok", srv.URL + "/ok?b=1"}, 100)

	if got := atomic.LoadInt64(&hits); got != 2 {
		t.Errorf("server saw %d checks, want 2", got)
	}
}

func TestAuditEmptyCandidates(t *testing.T) {
	auditor := NewLinkAuditor()
	if broken := auditor.Audit(context.Background(), nil, 100); broken != nil {
		t.Errorf("expected nil result for no candidates, got %v", broken)
	}
}

func TestAuditOneFailureDoesNotAffectOthers(t *testing.T) {
	var hits int64
	srv := newAuditTestServer(t, &hits)
	defer srv.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	auditor := NewLinkAuditor()
	auditor.Timeout = time.Second
	auditor.RateLimit = 1000
	broken := auditor.Audit(context.Background(), []string{
		dead.URL + "/x",
		srv.URL + "/ok",
		srv.URL + "/gone",
	}, 100)

	if len(broken) != 2 {
		t.Fatalf("got %d broken links, want 2 (dead + gone)", len(broken))
	}
}
