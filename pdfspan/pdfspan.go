// Package pdfspan extracts positioned text fragments from PDF files using
// pdfcpu. It is the extraction collaborator of the outline pipeline: each
// fragment carries text (possibly multi-line), a bounding box whose height
// serves as the font-size proxy, and a zero-based page index.
//
// The content-stream parsing is deliberately approximate — it tracks the
// text cursor through Tf/Td/TD/Tm/T* operators and decodes Tj/TJ/' show
// operators — which is sufficient for the size/position heuristics
// downstream. A PDF with no extractable text yields an empty fragment list,
// not an error.
package pdfspan

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// KindText marks plain text content; consumers skip any other kind.
const KindText = 0

// Fragment is one raw block of page text. Text may contain embedded
// newlines; BBox is (x0, y0, x1, y1) in a top-origin frame, so the box
// height doubles as the font-size proxy. Page is zero-based.
type Fragment struct {
	Text string
	BBox [4]float64
	Kind int
	Page int
}

const (
	defaultFontSize   = 12.0
	defaultPageHeight = 842.0 // A4 in points
	glyphWidthRatio   = 0.5   // rough advance per glyph, relative to size
)

// Extract parses the PDF at path and returns its text fragments in page
// order. Fragment pages are zero-based.
func Extract(path string) ([]Fragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	pageHeights := make([]float64, ctx.PageCount)
	if dims, err := ctx.PageDims(); err == nil {
		for i, d := range dims {
			if i < len(pageHeights) {
				pageHeights[i] = d.Height
			}
		}
	}

	var frags []Fragment
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil || len(data) == 0 {
			continue
		}
		h := pageHeights[pageNr-1]
		if h <= 0 {
			h = defaultPageHeight
		}
		frags = append(frags, parseContent(data, pageNr-1, h)...)
	}
	return frags, nil
}

// pdfStringPattern matches PDF string literals: (text here)
var pdfStringPattern = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// parseContent walks a page content stream line by line and emits one
// fragment per text line, flushing the accumulated run whenever the text
// cursor moves vertically. Coordinates are converted to a top-origin frame
// so that small Y means near the top of the page.
func parseContent(data []byte, page int, pageHeight float64) []Fragment {
	var frags []Fragment

	fontSize := defaultFontSize
	var x, y float64
	var buf strings.Builder

	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text == "" {
			return
		}
		topY := pageHeight - y - fontSize
		if topY < 0 {
			topY = 0
		}
		width := float64(len([]rune(text))) * fontSize * glyphWidthRatio
		frags = append(frags, Fragment{
			Text: text,
			BBox: [4]float64{x, topY, x + width, topY + fontSize},
			Page: page,
		})
	}

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasSuffix(line, "Tf"):
			if size, ok := operandFloat(line, 2); ok && size > 0 {
				flush()
				fontSize = size
			}

		case strings.HasSuffix(line, "Tm"):
			fields := strings.Fields(line)
			if len(fields) >= 7 {
				flush()
				if v, err := strconv.ParseFloat(fields[len(fields)-3], 64); err == nil {
					x = v
				}
				if v, err := strconv.ParseFloat(fields[len(fields)-2], 64); err == nil {
					y = v
				}
			}

		case strings.HasSuffix(line, "Td"), strings.HasSuffix(line, "TD"):
			fields := strings.Fields(line)
			if len(fields) >= 3 {
				tx, errX := strconv.ParseFloat(fields[len(fields)-3], 64)
				ty, errY := strconv.ParseFloat(fields[len(fields)-2], 64)
				if errX == nil && errY == nil {
					if ty != 0 {
						flush()
					}
					x += tx
					y += ty
				}
			}

		case line == "T*":
			flush()
			y -= fontSize * 1.2

		case line == "BT", line == "ET":
			flush()

		case strings.HasSuffix(line, "Tj"), strings.HasSuffix(line, "TJ"):
			for _, m := range pdfStringPattern.FindAllStringSubmatch(line, -1) {
				buf.WriteString(decodeString(m[1]))
			}

		case strings.HasSuffix(line, "'"):
			flush()
			y -= fontSize * 1.2
			for _, m := range pdfStringPattern.FindAllStringSubmatch(line, -1) {
				buf.WriteString(decodeString(m[1]))
			}
		}
	}
	flush()
	return frags
}

// operandFloat parses the nth-from-last whitespace field of an operator
// line as a float, where n counts the operator itself as 1.
func operandFloat(line string, n int) (float64, bool) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[len(fields)-n], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// decodeString handles basic PDF string escapes including octal sequences.
func decodeString(raw string) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for k := 0; k < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; k++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}
