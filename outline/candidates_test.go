package outline

import "testing"

func TestIsCandidateAccepts(t *testing.T) {
	tests := []string{
		"1. Introduction",
		"2.1 Intended Audience",
		"3.1.4 Detailed Design",
		"Chapter 12",
		"Appendix B",
		"Table of Contents",
		"EXECUTIVE SUMMARY",
		"Timeline:",
		"Phase II: Implementing and Transitioning",
		"For each Ontario citizen it could mean:",
		"What could the ODL really mean?",
		"Pathway OPTIONS",
		"HOPE To SEE You THERE!",
		"Ontario Digital Library",
		"Milestones",
		"Approach and Specific Proposal Requirements",
		"Business Plan to be Developed",
		"3) Third item",
		"- First bullet",
	}
	for _, text := range tests {
		if !IsCandidate(text, DocOther) {
			t.Errorf("IsCandidate(%q) = false, want true", text)
		}
	}
}

func TestIsCandidateRejects(t *testing.T) {
	tests := []string{
		"ab",                              // too short
		"Page 4 of 12",                    // boilerplate
		"Copyright 2014 ISTQB",            // boilerplate
		"Version 1.0",                     // boilerplate
		"2014",                            // bare year
		"www.example.com/syllabus",        // URL
		"http://example.com",              // URL
		"42",                              // bare number
		"***",                             // punctuation only
		"(see appendix)",                  // parenthetical only
		"3.1 - 4.2",                       // numeric run
		"PLEASE RSVP BY FRIDAY",           // shout prefix
		"It works. It also scales. Good.", // multi-sentence prose
	}
	for _, text := range tests {
		if IsCandidate(text, DocOther) {
			t.Errorf("IsCandidate(%q) = true, want false", text)
		}
	}
}

func TestIsCandidateLengthBounds(t *testing.T) {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	if IsCandidate(string(long), DocOther) {
		t.Error("candidate over 200 runes should be rejected")
	}
}

func TestIsCandidatePermissiveForTabledArchetypes(t *testing.T) {
	// No heading pattern matches these, so DocOther rejects them, but the
	// archetypes backed by literal tables accept on the loose branch.
	tests := []struct {
		text string
		// accepted attribute for the permissive branch
		why string
	}{
		{"ONTARIO’S LIBRARIES", "all caps with non-ASCII"},
		{"supported by 2,500 individual librarians across the province", "more than five words"},
	}
	for _, tt := range tests {
		if IsCandidate(tt.text, DocOther) {
			t.Errorf("IsCandidate(%q, other) = true, want false (%s)", tt.text, tt.why)
		}
		for _, dt := range []DocType{DocTechnical, DocRFP, DocPathways} {
			if !IsCandidate(tt.text, dt) {
				t.Errorf("IsCandidate(%q, %s) = false, want true (%s)", tt.text, dt, tt.why)
			}
		}
	}
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"SUMMARY", true},
		{"ONTARIO’S 2025", true},
		{"Summary", false},
		{"1234", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isUpper(tt.text); got != tt.want {
			t.Errorf("isUpper(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
