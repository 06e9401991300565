// Package score accumulates weighted optimization deltas from every probe
// and folds them into clamped category scores with a final classification.
package score

// Category names one of the four scored dimensions.
type Category string

const (
	Performance   Category = "performance"
	Security      Category = "security"
	SEO           Category = "seo"
	Accessibility Category = "accessibility"
)

// Per-category ceilings applied at summary time.
const (
	PerformanceCeiling   = 30
	SecurityCeiling      = 30
	SEOCeiling           = 30
	AccessibilityCeiling = 10
)

// accessibilityBaseline gives default credit for accessibility checks the
// auditor cannot observe; observed problems subtract from it.
const accessibilityBaseline = 27

// Classification is the qualitative tier derived from the total score.
type Classification string

const (
	Excellent        Classification = "excellent"
	Good             Classification = "good"
	NeedsImprovement Classification = "needs_improvement"
	Poor             Classification = "poor"
)

// Accumulator collects unbounded per-category counters over one run. It is
// scoped to a single run and not safe for concurrent mutation.
type Accumulator struct {
	counters map[Category]int
}

// NewAccumulator returns a fresh accumulator with the accessibility
// baseline pre-seeded.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		counters: map[Category]int{
			Performance:   0,
			Security:      0,
			SEO:           0,
			Accessibility: accessibilityBaseline,
		},
	}
}

// Add applies a delta to one category. Counters stay unbounded here;
// clamping happens once, in Summarize.
func (a *Accumulator) Add(c Category, delta int) {
	a.counters[c] += delta
}

// Raw returns the unclamped counter for a category.
func (a *Accumulator) Raw(c Category) int {
	return a.counters[c]
}

// Summary holds the clamped per-category scores, their total and the
// resulting classification.
type Summary struct {
	Performance    int            `json:"performance"`
	Security       int            `json:"security"`
	SEO            int            `json:"seo"`
	Accessibility  int            `json:"accessibility"`
	Total          int            `json:"total"`
	Classification Classification `json:"classification"`
}

// Summarize clamps every counter into [0, ceiling], totals them and
// classifies the result. Call it exactly once, after all probes have
// contributed.
func (a *Accumulator) Summarize() Summary {
	s := Summary{
		Performance:   clamp(a.counters[Performance], PerformanceCeiling),
		Security:      clamp(a.counters[Security], SecurityCeiling),
		SEO:           clamp(a.counters[SEO], SEOCeiling),
		Accessibility: clamp(a.counters[Accessibility], AccessibilityCeiling),
	}
	s.Total = s.Performance + s.Security + s.SEO + s.Accessibility
	s.Classification = classify(s.Total)
	return s
}

func clamp(v, ceiling int) int {
	if v < 0 {
		return 0
	}
	if v > ceiling {
		return ceiling
	}
	return v
}

func classify(total int) Classification {
	switch {
	case total >= 90:
		return Excellent
	case total >= 70:
		return Good
	case total >= 40:
		return NeedsImprovement
	default:
		return Poor
	}
}
