package probe

import (
	"crypto/tls"
	"net"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"github.com/victordeveloper/webgrade/internal/shared/constants"
)

// DomainRecord holds registration metadata for the target's domain.
// Cause is set when the lookup failed; partial population (creation date
// without registrar, or the reverse) is valid.
type DomainRecord struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Registrar string     `json:"registrar,omitempty"`
	Cause     string     `json:"cause,omitempty"`
}

// CertificateRecord holds the TLS certificate validity window. DaysLeft
// is negative for an already-expired certificate.
type CertificateRecord struct {
	NotAfter *time.Time `json:"not_after,omitempty"`
	DaysLeft int        `json:"days_left"`
	Cause    string     `json:"cause,omitempty"`
}

// Expired reports whether the certificate's validity has lapsed.
func (c *CertificateRecord) Expired() bool {
	return c.NotAfter != nil && c.DaysLeft < 0
}

// InspectDomain queries WHOIS registration data for the hostname. Any
// lookup or parse failure is captured as the cause.
func InspectDomain(host string) DomainRecord {
	record := DomainRecord{}

	raw, err := whois.Whois(host)
	if err != nil {
		record.Cause = err.Error()
		return record
	}

	info, err := whoisparser.Parse(raw)
	if err != nil {
		record.Cause = err.Error()
		return record
	}

	if info.Domain != nil {
		if info.Domain.CreatedDateInTime != nil {
			created := *info.Domain.CreatedDateInTime
			record.CreatedAt = &created
		}
	}
	if info.Registrar != nil {
		record.Registrar = info.Registrar.Name
	}
	return record
}

// InspectCertificate performs a TLS handshake on the standard secure port
// with server-name verification and extracts the leaf certificate's
// expiry. Handshake or timeout failures become the cause.
func InspectCertificate(host string) CertificateRecord {
	return inspectCertificateAt(host, time.Now())
}

func inspectCertificateAt(host string, now time.Time) CertificateRecord {
	record := CertificateRecord{}

	dialer := &net.Dialer{Timeout: constants.CertTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(host, "443"), &tls.Config{
		ServerName: host,
	})
	if err != nil {
		record.Cause = err.Error()
		return record
	}
	defer conn.Close()

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		record.Cause = "no peer certificates presented"
		return record
	}

	notAfter := certs[0].NotAfter
	record.NotAfter = &notAfter
	record.DaysLeft = wholeDaysBetween(now, notAfter)
	return record
}

// wholeDaysBetween returns the signed whole-day distance from now to the
// given instant.
func wholeDaysBetween(now, t time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}
