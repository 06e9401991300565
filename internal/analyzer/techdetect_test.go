package analyzer

import (
	"net/http"
	"testing"
)

func TestDetectTechnologiesFromMarkupAndHeaders(t *testing.T) {
	page := `<html><body>
<div id="root"></div>
<script src="/assets/jquery.min.js"></script>
<script src="https://www.googletagmanager.com/gtag/js"></script>
</body></html>`
	h := http.Header{}
	h.Set("Server", "cloudflare")
	h.Set("X-Powered-By", "PHP/8.2")

	d := mustDocument(t, page, "https://example.com/index.php", h)
	got := DetectTechnologies(d)

	want := []string{"Cloudflare", "Google Analytics", "PHP", "React", "jQuery"}
	if len(got) != len(want) {
		t.Fatalf("DetectTechnologies = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q (sorted)", i, got[i], want[i])
		}
	}
}

func TestDetectTechnologiesNoMatches(t *testing.T) {
	d := mustDocument(t, "<html><body>plain</body></html>", "https://example.com/", nil)
	if got := DetectTechnologies(d); len(got) != 0 {
		t.Errorf("expected no technologies, got %v", got)
	}
}

func TestDetectTechnologiesServerHeaderVariants(t *testing.T) {
	testCases := []struct {
		server string
		want   string
	}{
		{"nginx/1.25.3", "Nginx"},
		{"Apache/2.4.62 (Debian)", "Apache"},
	}
	for _, tc := range testCases {
		h := http.Header{}
		h.Set("Server", tc.server)
		d := mustDocument(t, "<html></html>", "https://example.com/", h)
		got := DetectTechnologies(d)
		if len(got) != 1 || got[0] != tc.want {
			t.Errorf("server %q detected %v, want [%s]", tc.server, got, tc.want)
		}
	}
}

func TestRegisterExtendsRegistry(t *testing.T) {
	Register("Matomo", func(d *Document) bool {
		return d.bodyContains("matomo.js")
	})
	defer delete(registry, "Matomo")

	d := mustDocument(t, `<script src="/matomo.js"></script>`, "https://example.com/", nil)
	got := DetectTechnologies(d)
	if len(got) != 1 || got[0] != "Matomo" {
		t.Errorf("registered rule did not fire: %v", got)
	}
}
