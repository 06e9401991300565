package probe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchPageSuccess(t *testing.T) {
	var gotUA string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		http.Redirect(w, r, "/home", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/home", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "nginx")
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html><body>hello</body></html>")) //nolint:errcheck
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	result, err := FetchPage(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}

	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("User-Agent = %q, want a browser-identifying header", gotUA)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", result.StatusCode)
	}
	if !strings.HasSuffix(result.FinalURL, "/home") {
		t.Errorf("FinalURL = %q, want redirect target", result.FinalURL)
	}
	if len(result.Body) == 0 {
		t.Error("expected body bytes")
	}
	if result.TTFB <= 0 || result.TTFB > result.TotalTime {
		t.Errorf("TTFB %v must be positive and <= total %v", result.TTFB, result.TotalTime)
	}
	if result.Server() != "nginx" {
		t.Errorf("Server() = %q", result.Server())
	}
}

func TestFetchPageErrorStatusIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchPage(context.Background(), srv.URL)
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}

func TestFetchPageTransportErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if _, err := FetchPage(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestFetchResultHelpers(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Encoding", "gzip")
	r := &FetchResult{
		FinalURL: "https://example.com/",
		Header:   h,
		Body:     make([]byte, 2048),
	}

	if !r.IsHTTPS() {
		t.Error("IsHTTPS() = false for https URL")
	}
	if r.Compression() != "gzip" {
		t.Errorf("Compression() = %q", r.Compression())
	}
	if r.PageSizeKB() != 2 {
		t.Errorf("PageSizeKB() = %f, want 2", r.PageSizeKB())
	}

	plain := &FetchResult{FinalURL: "http://example.com/", Header: http.Header{}}
	if plain.IsHTTPS() {
		t.Error("IsHTTPS() = true for http URL")
	}
}
