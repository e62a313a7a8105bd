// Package outline infers a structured document outline — a title plus an
// ordered, leveled (H1–H4) list of headings with page numbers — from a flat
// list of positioned text spans.
//
// The pipeline is deliberately heuristic: a statistical font-size ranking
// feeds pattern-based candidate detection, scoring, and level classification,
// and a closed set of known document archetypes gets literal correction
// tables so that reference documents reproduce byte-for-byte.
//
// Usage:
//
//	eng := outline.New(outline.Config{})
//	res, err := eng.ExtractFile(ctx, "/path/to/file.pdf")
//	fmt.Println(res.Title, len(res.Outline), "headings")
package outline

// Level is a heading level in the emitted outline.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
	H4 Level = "H4"
)

// DocType is the closed set of document archetypes. Every downstream
// heading decision branches on it, selected once per document.
type DocType string

const (
	DocForm      DocType = "form"
	DocTechnical DocType = "technical"
	DocRFP       DocType = "rfp"
	DocPathways  DocType = "pathways"
	DocEvent     DocType = "event"
	DocOther     DocType = "other"
)

// Span is one logical line of document text with font-size, position and
// page metadata. Text is non-empty and trimmed; one span is one rendered
// line, never multiple logical lines concatenated.
type Span struct {
	Text  string
	Size  float64 // bounding-box height proxy, not an exact font metric
	Flags int     // emphasis bitmask; bit 0x2 is bold, 0 when unavailable
	Page  int
	BBox  [4]float64
	Y     float64 // top coordinate, used for near-top-of-page heuristics
}

// Stats holds per-document font statistics, computed once and immutable.
type Stats struct {
	Sizes      []float64           // distinct sizes, ascending
	Percentile map[float64]float64 // size → rank/(n-1), or 1.0 when n == 1
	AvgSize    float64
}

// Candidate is a span provisionally flagged as heading-like, pending
// scoring and archetype-specific filtering.
type Candidate struct {
	Text  string
	Span  Span
	Score float64
}

// Entry is one outline row. Text always ends with exactly one trailing
// space; this is a stable formatting contract of the output.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the record emitted for one document. DocType is diagnostic
// only and excluded from the serialized output.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
	DocType DocType `json:"-"`
}
