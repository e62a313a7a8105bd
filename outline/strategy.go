package outline

import "strings"

// pathwaysHeading is the single heading retained for pathways documents.
const pathwaysHeading = "PATHWAY OPTIONS"

// eventHeading is the fixed outline entry of event flyers.
const eventHeading = "HOPE To SEE You THERE! "

// Strategy produces the final outline for one document archetype. A
// strategy is selected once after classification; no later stage re-checks
// the archetype tag. Candidates arrive sorted by score, descending.
type Strategy interface {
	ProduceOutline(cands []Candidate, stats Stats) []Entry
}

// strategyFor returns the heading strategy owned by the archetype. Event
// documents never reach a strategy: the engine overrides the whole pipeline
// for them.
func strategyFor(docType DocType) Strategy {
	switch docType {
	case DocForm:
		return formStrategy{}
	case DocPathways:
		return pathwaysStrategy{}
	case DocTechnical:
		return literalStrategy{table: technicalExpected}
	case DocRFP:
		return literalStrategy{table: rfpExpected}
	}
	return genericStrategy{}
}

// formStrategy: forms are defined to have no heading structure.
type formStrategy struct{}

func (formStrategy) ProduceOutline([]Candidate, Stats) []Entry {
	return []Entry{}
}

// pathwaysStrategy keeps only the literal "PATHWAY OPTIONS" heading.
type pathwaysStrategy struct{}

func (pathwaysStrategy) ProduceOutline(cands []Candidate, stats Stats) []Entry {
	out := []Entry{}
	for _, c := range cands {
		if strings.ToUpper(c.Text) == pathwaysHeading {
			out = append(out, emit(c, stats))
		}
	}
	return out
}

// literalStrategy reconciles candidates against a fixed expected table.
type literalStrategy struct {
	table []TableEntry
}

func (s literalStrategy) ProduceOutline(cands []Candidate, _ Stats) []Entry {
	return Reconcile(cands, s.table)
}

// genericStrategy is the only generalizing variant: dedup on a normalized
// text key (first occurrence in score order wins, rejected candidates still
// claim their key), then retain on score or length.
type genericStrategy struct{}

func (genericStrategy) ProduceOutline(cands []Candidate, stats Stats) []Entry {
	seen := make(map[string]bool)
	out := []Entry{}
	for _, c := range cands {
		text := strings.TrimSpace(spaceRunPattern.ReplaceAllString(c.Text, " "))
		key := strings.ToLower(nonAlnumSpacePattern.ReplaceAllString(text, ""))
		if seen[key] {
			continue
		}
		seen[key] = true
		if c.Score > 1.5 || len(strings.Fields(text)) > 5 {
			out = append(out, emit(c, stats))
		}
	}
	return out
}

// emit materializes a retained candidate: level from the pattern-first
// classifier, text with exactly one trailing space.
func emit(c Candidate, stats Stats) Entry {
	text := c.Text
	if !strings.HasSuffix(text, " ") {
		text += " "
	}
	return Entry{
		Level: ClassifyLevel(c.Text, stats.Percentile[c.Span.Size]),
		Text:  text,
		Page:  c.Span.Page,
	}
}
