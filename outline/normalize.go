package outline

import (
	"strings"

	"github.com/docsift/docsift/pdfspan"
)

// Normalize explodes raw fragments into logical line spans. Each non-empty
// trimmed line of a text fragment becomes one Span inheriting the fragment's
// size, page and bounding box. Non-text fragments are skipped. Fragments are
// assumed already block-level; no merging is attempted.
func Normalize(frags []pdfspan.Fragment) []Span {
	var spans []Span
	for _, f := range frags {
		if f.Kind != pdfspan.KindText {
			continue
		}
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}
		size := f.BBox[3] - f.BBox[1]
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			spans = append(spans, Span{
				Text: line,
				Size: size,
				Page: f.Page,
				BBox: f.BBox,
				Y:    f.BBox[1],
			})
		}
	}
	return spans
}
