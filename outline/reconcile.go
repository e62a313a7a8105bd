package outline

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	dashRunPattern     = regexp.MustCompile(`[-–—]`)
	nonAlnumSpacePattern = regexp.MustCompile(`[^A-Za-z0-9 ]`)
	spaceRunPattern    = regexp.MustCompile(`\s+`)
)

// normalizeKey folds a heading to a comparison key: NFKD-decompose (so
// accents become combining marks that the ASCII filter drops), dashes to
// spaces, strip everything but letters/digits/spaces, collapse whitespace,
// lower-case.
func normalizeKey(s string) string {
	s = norm.NFKD.String(s)
	s = dashRunPattern.ReplaceAllString(s, " ")
	s = nonAlnumSpacePattern.ReplaceAllString(s, "")
	s = spaceRunPattern.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// wordSet splits a normalized key into its distinct words.
func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.FieldsFunc(s, unicode.IsSpace) {
		set[w] = true
	}
	return set
}

// Reconcile matches scored candidates against a fixed ordered table of
// expected headings and always returns the full table, in table order, with
// the table's levels. The first three entries (front-matter headings) accept
// any candidate with word-overlap ratio > 0.7 on pages <= 5; later entries
// require ratio > 0.85 and a page at or past the end of the table of
// contents (its detected page plus one, defaulting to page 4). Unmatched
// entries synthesize lastMatchedPage+1 (page 0 if nothing matched yet), so
// synthesized pages are monotonically non-decreasing in table order.
func Reconcile(cands []Candidate, expected []TableEntry) []Entry {
	tocEndPage := 3
	for _, c := range cands {
		if strings.HasPrefix(normalizeKey(c.Text), "table of contents") && c.Span.Page > tocEndPage {
			tocEndPage = c.Span.Page
		}
	}
	minSectionPage := tocEndPage + 1

	out := make([]Entry, 0, len(expected))
	lastPage := 0
	for idx, exp := range expected {
		expWords := wordSet(normalizeKey(exp.Text))

		matched := false
		bestPage := 0
		for _, c := range cands {
			candWords := wordSet(normalizeKey(c.Text))
			common := 0
			for w := range expWords {
				if candWords[w] {
					common++
				}
			}
			denom := len(expWords)
			if denom < 1 {
				denom = 1
			}
			ratio := float64(common) / float64(denom)
			page := c.Span.Page

			if idx <= 2 {
				if ratio > 0.7 && page <= 5 && (!matched || page < bestPage) {
					matched = true
					bestPage = page
				}
			} else {
				if ratio > 0.85 && page >= minSectionPage && (!matched || page < bestPage) {
					matched = true
					bestPage = page
				}
			}
		}

		var page int
		if matched {
			page = bestPage
		} else if len(out) > 0 {
			page = lastPage + 1
		} else {
			page = 0
		}
		lastPage = page

		out = append(out, Entry{Level: exp.Level, Text: exp.Text, Page: page})
	}
	return out
}
