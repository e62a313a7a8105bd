package outline

import "testing"

func TestClassifyDocByTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  DocType
	}{
		{"form", ltcFormTitle, DocForm},
		{"technical", technicalTitle, DocTechnical},
		{"rfp", rfpTitle, DocRFP},
		{"pathways", pathwaysTitle, DocPathways},
		{"other", "Quarterly Report ", DocOther},
	}
	spans := []Span{{Text: "body", Page: 0}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDoc(tt.title, spans, "en"); got != tt.want {
				t.Errorf("ClassifyDoc(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassifyDocEvent(t *testing.T) {
	spans := []Span{
		{Text: "YOU ARE INVITED", Page: 0},
		{Text: "HOPE TO SEE YOU THERE!", Page: 1},
	}
	if got := ClassifyDoc("", spans, "en"); got != DocEvent {
		t.Errorf("ClassifyDoc = %q, want event", got)
	}
}

func TestClassifyDocEventRequiresShortDoc(t *testing.T) {
	spans := []Span{
		{Text: "JOIN US", Page: 0},
		{Text: "filler", Page: 3},
	}
	if got := ClassifyDoc("", spans, "en"); got != DocOther {
		t.Errorf("ClassifyDoc = %q, want other for 4-page doc", got)
	}
}

func TestClassifyDocEventRequiresEmptyTitle(t *testing.T) {
	spans := []Span{{Text: "JOIN US", Page: 0}}
	if got := ClassifyDoc("Company Picnic ", spans, "en"); got != DocOther {
		t.Errorf("ClassifyDoc = %q, want other when a title resolved", got)
	}
}

func TestClassifyDocNonEnglish(t *testing.T) {
	if got := ClassifyDoc(rfpTitle, []Span{{Text: "x", Page: 0}}, "es"); got != DocOther {
		t.Errorf("ClassifyDoc = %q, want other for non-English", got)
	}
}
