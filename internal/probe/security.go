package probe

import "net/http"

// recommendedHeaders lists the response headers whose presence earns
// security credit. The slice is ordered for stable display.
var recommendedHeaders = []string{
	"Content-Security-Policy",
	"Strict-Transport-Security",
	"X-Content-Type-Options",
	"X-Frame-Options",
	"Referrer-Policy",
}

// SecurityHeaders summarizes recommended security header presence on the
// final response.
type SecurityHeaders struct {
	Found []string `json:"found"`
	Total int      `json:"total"`
}

// FoundCount returns how many recommended headers were present.
func (s SecurityHeaders) FoundCount() int {
	return len(s.Found)
}

// AnalyzeSecurityHeaders checks the final response headers against the
// recommended set. Lookup is case-insensitive via http.Header semantics.
func AnalyzeSecurityHeaders(headers http.Header) SecurityHeaders {
	result := SecurityHeaders{Total: len(recommendedHeaders)}
	for _, name := range recommendedHeaders {
		if headers.Get(name) != "" {
			result.Found = append(result.Found, name)
		}
	}
	return result
}
