package outline

import "regexp"

var (
	numberedSectionPattern    = regexp.MustCompile(`^\d+\.\s+`)
	numberedSubsectionPattern = regexp.MustCompile(`^\d+\.\d+\s+`)
	colonTerminatedPattern    = regexp.MustCompile(`^.*:\s*$`)
)

// canonicalSections are section names that score as strongly as numbered
// headings when a line equals one exactly.
var canonicalSections = map[string]bool{
	"Revision History":  true,
	"Table of Contents": true,
	"Acknowledgements":  true,
	"Summary":           true,
	"Background":        true,
	"References":        true,
}

// ScoreCandidate assigns an importance score to a heading candidate. The
// score is purely additive and unnormalized; it is only used for relative
// ranking within one document. Structural bonuses are mutually exclusive,
// first matching rule wins.
func ScoreCandidate(text string, span Span, stats Stats) float64 {
	score := stats.Percentile[span.Size] * 3

	if span.Flags&0x2 != 0 {
		score += 2
	}

	switch {
	case numberedSectionPattern.MatchString(text):
		score += 3
	case numberedSubsectionPattern.MatchString(text):
		score += 2
	case canonicalSections[text]:
		score += 3
	case colonTerminatedPattern.MatchString(text):
		score += 1
	}

	if span.Page == 0 {
		score += 1
	}
	if span.Y < 200 {
		score += 0.5
	}
	return score
}
