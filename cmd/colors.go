package cmd

import "github.com/fatih/color"

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorDanger  = color.New(color.FgRed, color.Bold).SprintFunc()
)

type styleFunc func(a ...interface{}) string

// latencyStyle colors round-trip latency: under 100 ms is healthy.
func latencyStyle(ms float64) styleFunc {
	if ms < 100 {
		return colorSuccess
	}
	return colorWarn
}

// certStyle colors certificate validity: danger within a week of expiry,
// warning within a month.
func certStyle(daysLeft int) styleFunc {
	switch {
	case daysLeft > 30:
		return colorSuccess
	case daysLeft > 7:
		return colorWarn
	default:
		return colorDanger
	}
}

// categoryStyle colors a clamped category score against its ceiling.
func categoryStyle(score, ceiling int) styleFunc {
	switch {
	case score*3 > ceiling*2:
		return colorSuccess
	case score*3 > ceiling:
		return colorWarn
	default:
		return colorDanger
	}
}

// totalStyle colors the final score along the classification cut points.
func totalStyle(total int) styleFunc {
	switch {
	case total >= 70:
		return colorSuccess
	case total >= 40:
		return colorWarn
	default:
		return colorDanger
	}
}
