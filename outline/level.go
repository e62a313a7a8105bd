package outline

import "regexp"

// levelPatterns is the ordered pattern table for level classification.
// First match wins, and H4 shapes are checked before H3/H2/H1 so that the
// more specific multi-dot numbering and "For each/the" phrasings are not
// shadowed by the looser top-level shapes. The order within and across
// tiers is load-bearing; keep this a slice, never a map.
var levelPatterns = []struct {
	re    *regexp.Regexp
	level Level
}{
	// H4
	{regexp.MustCompile(`(?i)^For\s+(?:each|the)\s+\w+.*:$`), H4},
	// H3
	{regexp.MustCompile(`(?i)^\d+\.\d+\.\d+\s+[A-Z]`), H3},
	{regexp.MustCompile(`(?i)^Phase\s+[IVX]+:`), H3},
	{regexp.MustCompile(`(?i)^.*:\s*$`), H3},
	{regexp.MustCompile(`(?i)^\d+\.\s+[A-Z].*`), H3},
	// H2
	{regexp.MustCompile(`(?i)^\d+\.\d+\s+[A-Z]`), H2},
	{regexp.MustCompile(`(?i)^(?:Milestones?|Summary|Background)$`), H2},
	{regexp.MustCompile(`(?i)^Approach\s+and\s+`), H2},
	{regexp.MustCompile(`(?i)^Evaluation\s+and\s+`), H2},
	{regexp.MustCompile(`(?i)^Appendix\s+[A-Z]:`), H2},
	// H1
	{regexp.MustCompile(`(?i)^\d+\.\s+[A-Z]`), H1},
	{regexp.MustCompile(`(?i)^(?:Abstract|Introduction|Overview|Summary|Background|Conclusion|References|Bibliography|Acknowledgements?|Table\s+of\s+Contents|Revision\s+History)$`), H1},
	{regexp.MustCompile(`(?i)^Appendix\s+[A-Z]`), H1},
	{regexp.MustCompile(`(?i)^[A-Z][A-Z\s&:-]{10,}$`), H1},
	{regexp.MustCompile(`(?i)^[A-Z][a-z]+\s+OPTIONS?$`), H1},
	{regexp.MustCompile(`(?i)^(?:HOPE|WELCOME|THANK).*$`), H1},
	{regexp.MustCompile(`(?i)^[A-Z].*\s+(?:Library|Digital|Component|Plan)$`), H1},
	{regexp.MustCompile(`(?i)^Business\s+Plan`), H1},
}

// ClassifyLevel assigns a heading level: pattern table first, then size
// percentile thresholds. H3 is the default floor — there is no
// H4-by-percentile path.
func ClassifyLevel(text string, sizePercentile float64) Level {
	for _, p := range levelPatterns {
		if p.re.MatchString(text) {
			return p.level
		}
	}
	switch {
	case sizePercentile >= 0.9:
		return H1
	case sizePercentile >= 0.75:
		return H2
	case sizePercentile >= 0.5:
		return H3
	}
	return H3
}
