package probe

import (
	"context"
	"net"

	probing "github.com/prometheus-community/pro-bing"

	"github.com/victordeveloper/webgrade/internal/shared/constants"
)

// NetworkProfile holds the two best-effort network probes. An absent
// value always carries its cause.
type NetworkProfile struct {
	IPAddress    string  `json:"ip_address,omitempty"`
	ResolveCause string  `json:"resolve_cause,omitempty"`
	LatencyMS    float64 `json:"latency_ms,omitempty"`
	HasLatency   bool    `json:"has_latency"`
	LatencyCause string  `json:"latency_cause,omitempty"`
}

// DiagnoseNetwork resolves the hostname and measures one echo round-trip.
// The probes are independent: either may degrade without affecting the
// other, and neither aborts the run.
func DiagnoseNetwork(ctx context.Context, host string) NetworkProfile {
	profile := NetworkProfile{}

	resolver := &net.Resolver{PreferGo: true}
	lookupCtx, cancel := context.WithTimeout(ctx, constants.ResolveTimeout)
	defer cancel()

	addrs, err := resolver.LookupHost(lookupCtx, host)
	switch {
	case err != nil:
		profile.ResolveCause = err.Error()
	case len(addrs) == 0:
		profile.ResolveCause = "no addresses found"
	default:
		profile.IPAddress = addrs[0]
	}

	latency, cause := pingOnce(ctx, host)
	if cause != "" {
		profile.LatencyCause = cause
	} else {
		profile.LatencyMS = latency
		profile.HasLatency = true
	}

	return profile
}

// pingOnce sends a single unprivileged echo request. ICMP is commonly
// blocked; any failure is reported as a cause, never an error.
func pingOnce(ctx context.Context, host string) (float64, string) {
	pinger, err := probing.NewPinger(host)
	if err != nil {
		return 0, err.Error()
	}
	pinger.Count = 1
	pinger.Timeout = constants.PingTimeout
	pinger.SetPrivileged(false)

	if err := pinger.RunWithContext(ctx); err != nil {
		return 0, err.Error()
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return 0, "echo request blocked or unanswered"
	}
	return float64(stats.AvgRtt.Microseconds()) / 1000, ""
}
