package boundary

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EdgeTolerance is the magnitude, relative to the largest absolute profile
// value, at or below which a value is rounding residue rather than an edge.
const EdgeTolerance = 1e-9

// Pair joins sections into feature spans. A span opens at a section whose
// first value is a rising edge and closes at the end of the first section,
// the same one included, whose last value is a falling edge.
//
// Over a uniform feature the gradient mean is zero up to rounding, so
// Sections reports either one run covering the feature or separate runs for
// its two edges, depending on whether the residue happens to cancel. Pair
// gives the same span in both cases. Sections that do not start an open
// span with a rising edge are skipped, and a span still open after the last
// section is dropped.
func Pair(profile []float64, sections []Section) []Section {
	if len(sections) == 0 {
		return nil
	}
	limit := EdgeTolerance * floats.Norm(profile, math.Inf(1))
	rising := func(v float64) bool { return v > limit }
	falling := func(v float64) bool { return v < -limit }

	var spans []Section
	start := -1
	for _, s := range sections {
		if s.Empty() || s.Start < 0 || s.End > len(profile) {
			continue
		}
		if start == -1 {
			if !rising(profile[s.Start]) {
				continue
			}
			start = s.Start
		}
		if falling(profile[s.End-1]) {
			spans = append(spans, Section{Start: start, End: s.End})
			start = -1
		}
	}
	return spans
}
