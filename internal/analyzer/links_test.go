package analyzer

import "testing"

func TestExtractLinks(t *testing.T) {
	d := mustDocument(t, samplePage, "https://example.com/", nil)
	g := ExtractLinks(d)

	// Anchors minus the fragment, mailto: and tel: ones.
	if g.Total != 6 {
		t.Errorf("Total = %d, want 6", g.Total)
	}
	// /shop x2, :8443/support (same host, different port), /icon-only, /empty.
	if g.Internal != 5 {
		t.Errorf("Internal = %d, want 5", g.Internal)
	}
	if g.External != 1 {
		t.Errorf("External = %d, want 1", g.External)
	}
	if g.Nofollow != 1 {
		t.Errorf("Nofollow = %d, want 1", g.Nofollow)
	}

	// Deduplicated and sorted.
	want := []string{
		"https://example.com/empty",
		"https://example.com/icon-only",
		"https://example.com/shop",
		"https://example.com:8443/support",
	}
	if len(g.InternalURLs) != len(want) {
		t.Fatalf("InternalURLs = %v, want %v", g.InternalURLs, want)
	}
	for i := range want {
		if g.InternalURLs[i] != want[i] {
			t.Errorf("InternalURLs[%d] = %q, want %q", i, g.InternalURLs[i], want[i])
		}
	}
}

func TestExtractLinksSchemeDoesNotAffectClassification(t *testing.T) {
	page := `<html><body>
<a href="http://example.com/insecure">Insecure same host</a>
<a href="HTTPS://EXAMPLE.COM/caps">Caps host</a>
</body></html>`
	d := mustDocument(t, page, "https://example.com/", nil)
	g := ExtractLinks(d)

	if g.Internal != 2 || g.External != 0 {
		t.Errorf("internal=%d external=%d, want 2/0: same authority is always internal", g.Internal, g.External)
	}
}

func TestExtractLinksNonHTTPSchemesNotCountedExternal(t *testing.T) {
	page := `<html><body>
<a href="ftp://files.example.org/readme">ftp</a>
<a href="javascript:void(0)">js</a>
</body></html>`
	d := mustDocument(t, page, "https://example.com/", nil)
	g := ExtractLinks(d)

	if g.Total != 2 {
		t.Errorf("Total = %d, want 2", g.Total)
	}
	if g.External != 0 {
		t.Errorf("External = %d, want 0 for non-http(s) schemes", g.External)
	}
}

func TestHasRelToken(t *testing.T) {
	testCases := []struct {
		rel  string
		want bool
	}{
		{"nofollow", true},
		{"noopener nofollow", true},
		{"NOFOLLOW", true},
		{"nofollowish", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := hasRelToken(tc.rel, "nofollow"); got != tc.want {
			t.Errorf("hasRelToken(%q) = %v, want %v", tc.rel, got, tc.want)
		}
	}
}
