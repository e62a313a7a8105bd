package outline

import (
	"regexp"
	"strings"
	"unicode"
)

// excludePatterns reject boilerplate and prose lines before any heading
// shape is considered: page/copyright/version lines, bare numbers, URLs and
// emails, pure punctuation, parenthetical-only lines, numeric runs, a few
// imperative shout prefixes, and multi-sentence prose.
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Page\s+\d+`),
	regexp.MustCompile(`(?i)^Copyright`),
	regexp.MustCompile(`(?i)^Version\s+\d`),
	regexp.MustCompile(`^\d{4}$`),
	regexp.MustCompile(`(?i)^(?:www\.|http)`),
	regexp.MustCompile(`(?i)^@\w+\.`),
	regexp.MustCompile(`^\d+\s*$`),
	regexp.MustCompile(`^[^\p{L}\p{N}_\s]*$`),
	regexp.MustCompile(`^\([^)]*\)$`),
	regexp.MustCompile(`^[\d\s\-.]+$`),
	regexp.MustCompile(`(?i)^(?:CLOSED|PLEASE|VISIT|REQUIRED|CLIMBING)`),
	regexp.MustCompile(`^.*[.!?]\s+.*[.!?]`),
}

// headingPatterns accept structural heading shapes: numbered sections,
// named sections, appendix markers, long all-caps runs, colon-terminated
// lines, list items, and a few archetype-flavored shapes. All patterns are
// case-insensitive prefix matches, mirroring the tuning of the reference
// documents.
var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d+\.\s+[A-Z]`),
	regexp.MustCompile(`(?i)^\d+\.\d+\s+[A-Z]`),
	regexp.MustCompile(`(?i)^\d+\.\d+\.\d+\s+[A-Z]`),
	regexp.MustCompile(`(?i)^(?:Chapter|Section|Part)\s+\d+`),
	regexp.MustCompile(`(?i)^Appendix\s+[A-Z]`),
	regexp.MustCompile(`(?i)^(?:Abstract|Introduction|Overview|Summary|Background|Conclusion|References|Bibliography|Acknowledgements?|Table\s+of\s+Contents|Revision\s+History)$`),
	regexp.MustCompile(`(?i)^[A-Z][A-Z\s&:-]{6,}$`),
	regexp.MustCompile(`(?i)^.*:\s*$`),
	regexp.MustCompile(`(?i)^Phase\s+[IVX]+:`),
	regexp.MustCompile(`(?i)^For\s+(?:each|the)\s+\w+.*:$`),
	regexp.MustCompile(`(?i)^What\s+.*\?$`),
	regexp.MustCompile(`(?i)^[A-Z][a-z]+\s+OPTIONS?$`),
	regexp.MustCompile(`(?i)^(?:HOPE|WELCOME|THANK).*$`),
	regexp.MustCompile(`(?i)^[A-Z].*\s+(?:Library|Digital|Component|Plan)$`),
	regexp.MustCompile(`(?i)^Milestones?$`),
	regexp.MustCompile(`(?i)^Approach\s+and\s+`),
	regexp.MustCompile(`(?i)^Evaluation\s+and\s+`),
	regexp.MustCompile(`(?i)^Business\s+Plan`),
	regexp.MustCompile(`(?i)^\d+\)\s+[A-Z]`),
	regexp.MustCompile(`(?i)^[-*•]\s+[A-Z]`),
	regexp.MustCompile(`(?i)^[A-Z][A-Za-z\s\-:&]+[.:]?\s*$`),
}

// spanishHeadingPattern is the basic non-English branch: common Spanish
// section openers become candidates with a fixed score.
var spanishHeadingPattern = regexp.MustCompile(`(?i)^(?:Resumen|Introducción|Conclusión|Referencias|Índice|Capítulo|Sección|Anexo)`)

// IsCandidate reports whether a line might be a heading. Archetypes with
// literal correction tables downstream (technical, rfp, pathways) get a
// permissive extra branch — any all-caps line, colon-terminated line, or
// line longer than five words — since the filter stage repairs recall
// errors against the expected tables.
func IsCandidate(text string, docType DocType) bool {
	n := len([]rune(text))
	if n < 3 || n > 200 {
		return false
	}
	for _, p := range excludePatterns {
		if p.MatchString(text) {
			return false
		}
	}
	for _, p := range headingPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	if docType == DocTechnical || docType == DocRFP || docType == DocPathways {
		if isUpper(text) || strings.HasSuffix(text, ":") || len(strings.Fields(text)) > 5 {
			return true
		}
	}
	return false
}

// isUpper reports whether text has at least one cased rune and none of its
// cased runes are lowercase.
func isUpper(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}
