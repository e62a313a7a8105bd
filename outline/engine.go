package outline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/docsift/docsift/langid"
	"github.com/docsift/docsift/pdfspan"
)

// Config configures the outline engine.
type Config struct {
	// Detector identifies the document language from a first-two-page text
	// sample. Defaults to the lingua-backed detector. Detection failures
	// never propagate: the engine falls back to "en".
	Detector langid.Detector `json:"-" yaml:"-"`

	// Logger for debug/error messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Detector == nil {
		c.Detector = langid.New(langid.Config{Logger: c.Logger})
	}
}

// Engine runs the outline inference pipeline. It is stateless after
// construction and safe for concurrent use.
type Engine struct {
	detector langid.Detector
	logger   *slog.Logger
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	cfg.defaults()
	return &Engine{
		detector: cfg.Detector,
		logger:   cfg.Logger,
	}
}

// ExtractFile extracts spans from the PDF at path and builds its outline.
// A document with no extractable text yields an empty title and outline,
// never an error.
func (e *Engine) ExtractFile(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frags, err := pdfspan.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	spans := Normalize(frags)
	lang := e.detectLanguage(spans)

	e.logger.Debug("document extracted", "path", path, "spans", len(spans), "lang", lang)

	return e.Build(spans, lang), nil
}

// detectLanguage samples the first two pages. Empty samples and detection
// failures silently default to English.
func (e *Engine) detectLanguage(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Page != 0 && s.Page != 1 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Text)
	}
	sample := strings.TrimSpace(sb.String())
	if sample == "" {
		return "en"
	}
	code, err := e.detector.Detect(sample)
	if err != nil {
		return "en"
	}
	return code
}

// Build runs the full inference pipeline over normalized spans: title
// resolution, archetype classification, candidate detection, scoring, and
// the archetype's outline strategy. It is a pure function of its inputs.
func (e *Engine) Build(spans []Span, lang string) *Result {
	if len(spans) == 0 {
		return &Result{Outline: []Entry{}, DocType: DocOther}
	}

	title := ResolveTitle(spans)
	docType := ClassifyDoc(title, spans, lang)

	// Event flyers bypass the heading pipeline entirely: fixed single-entry
	// outline, forced-empty title.
	if lang == "en" && docType == DocEvent {
		return &Result{
			Title:   "",
			Outline: []Entry{{Level: H1, Text: eventHeading, Page: 0}},
			DocType: DocEvent,
		}
	}

	stats := Analyze(spans)
	cands := collectCandidates(spans, stats, docType, lang)
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score > cands[j].Score })

	entries := strategyFor(docType).ProduceOutline(cands, stats)
	if entries == nil {
		entries = []Entry{}
	}
	return &Result{Title: title, Outline: entries, DocType: docType}
}

// collectCandidates flags heading-like spans in document order. English
// documents get the full pattern detector and scorer; Spanish documents get
// the basic section-opener branch with a fixed score; anything else yields
// no candidates.
func collectCandidates(spans []Span, stats Stats, docType DocType, lang string) []Candidate {
	var cands []Candidate
	for _, s := range spans {
		text := strings.TrimSpace(s.Text)
		switch lang {
		case "en":
			if IsCandidate(text, docType) {
				cands = append(cands, Candidate{
					Text:  text,
					Span:  s,
					Score: ScoreCandidate(text, s, stats),
				})
			}
		case "es":
			if spanishHeadingPattern.MatchString(text) {
				cands = append(cands, Candidate{Text: text, Span: s, Score: 2})
			}
		}
	}
	return cands
}
