package probe

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantScheme string
		wantHost   string
		wantPort   string
		wantURL    string
	}{
		{
			name:       "bare host defaults to https",
			target:     "example.com",
			wantScheme: "https",
			wantHost:   "example.com",
			wantURL:    "https://example.com",
		},
		{
			name:       "explicit http kept",
			target:     "http://example.com",
			wantScheme: "http",
			wantHost:   "example.com",
			wantURL:    "http://example.com",
		},
		{
			name:       "https with path preserved",
			target:     "https://example.com/blog/post",
			wantScheme: "https",
			wantHost:   "example.com",
			wantURL:    "https://example.com/blog/post",
		},
		{
			name:       "scheme-less host with port",
			target:     "example.com:8080",
			wantScheme: "https",
			wantHost:   "example.com",
			wantPort:   "8080",
			wantURL:    "https://example.com:8080",
		},
		{
			name:       "full url with port",
			target:     "http://localhost:3000/admin",
			wantScheme: "http",
			wantHost:   "localhost",
			wantPort:   "3000",
			wantURL:    "http://localhost:3000/admin",
		},
		{
			name:       "subdomain",
			target:     "www.example.co.uk",
			wantScheme: "https",
			wantHost:   "www.example.co.uk",
			wantURL:    "https://www.example.co.uk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseTarget(tt.target)
			if info.Original != tt.target {
				t.Errorf("Original = %q, want %q", info.Original, tt.target)
			}
			if info.Scheme != tt.wantScheme {
				t.Errorf("Scheme = %q, want %q", info.Scheme, tt.wantScheme)
			}
			if info.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", info.Host, tt.wantHost)
			}
			if info.Port != tt.wantPort {
				t.Errorf("Port = %q, want %q", info.Port, tt.wantPort)
			}
			if info.FullURL != tt.wantURL {
				t.Errorf("FullURL = %q, want %q", info.FullURL, tt.wantURL)
			}
		})
	}
}
