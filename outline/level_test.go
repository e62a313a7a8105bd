package outline

import "testing"

func TestClassifyLevelPatterns(t *testing.T) {
	tests := []struct {
		text string
		want Level
	}{
		// H4 shapes win over the colon-terminated H3 shape.
		{"For each Ontario citizen it could mean:", H4},
		{"For the Ontario government it could mean:", H4},
		// H3
		{"3.1.4 Detailed Design", H3},
		{"Phase II: Implementing and Transitioning", H3},
		{"Timeline:", H3},
		{"1. Preamble", H3},
		// H2
		{"2.1 Intended Audience", H2},
		{"Milestones", H2},
		{"Summary", H2},
		{"Approach and Specific Proposal Requirements", H2},
		{"Evaluation and Awarding of Contract", H2},
		{"Appendix B: ODL Steering Committee Terms of Reference", H2},
		// H1
		{"Table of Contents", H1},
		{"Appendix B", H1},
		{"ONTARIO DIGITAL LIBRARY MEMBERS", H1},
		{"Pathway OPTIONS", H1},
		{"HOPE To SEE You THERE!", H1},
		{"Ontario Digital Library", H1},
		{"Business Plan to be Developed", H1},
	}
	for _, tt := range tests {
		if got := ClassifyLevel(tt.text, 0); got != tt.want {
			t.Errorf("ClassifyLevel(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestClassifyLevelPercentileFallback(t *testing.T) {
	// No pattern matches a lowercase prose-ish line with digits, so the
	// percentile thresholds decide.
	text := "supported by 2,500 individual librarians"
	tests := []struct {
		pct  float64
		want Level
	}{
		{1.0, H1},
		{0.9, H1},
		{0.8, H2},
		{0.75, H2},
		{0.6, H3},
		{0.5, H3},
		{0.1, H3},
		{0, H3},
	}
	for _, tt := range tests {
		if got := ClassifyLevel(text, tt.pct); got != tt.want {
			t.Errorf("ClassifyLevel(pct=%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}
