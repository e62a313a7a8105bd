// Package langid identifies the dominant language of a text sample.
//
// The default detector wraps lingua over a fixed set of common document
// languages. Callers that only care about a known code (tests, forced
// pipelines) can use Fixed.
//
// Usage:
//
//	det := langid.New(langid.Config{})
//	code, err := det.Detect("Table of Contents ...")
//	// code is a lowercase ISO 639-1 code, e.g. "en"
package langid

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrUndetermined is returned when the sample is too short or ambiguous to
// classify. Callers are expected to fall back to a default language.
var ErrUndetermined = errors.New("language undetermined")

// Detector identifies the language of a text sample.
type Detector interface {
	// Detect returns a lowercase ISO 639-1 code, or ErrUndetermined.
	Detect(text string) (string, error)
}

// Config configures the lingua-backed detector.
type Config struct {
	// Logger for debug messages. Defaults to slog.Default().
	Logger *slog.Logger
}

// defaultLanguages bounds the lingua model set. The pipeline only branches
// on English and Spanish; the rest exist so that clearly non-English text
// classifies away from "en" instead of being forced into it.
var defaultLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Chinese,
	lingua.Japanese,
}

type detector struct {
	inner  lingua.LanguageDetector
	logger *slog.Logger
}

// New creates the lingua-backed detector.
func New(cfg Config) Detector {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(defaultLanguages...).
			Build(),
		logger: cfg.Logger,
	}
}

func (d *detector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrUndetermined
	}
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		d.logger.Debug("language undetermined", "sample_len", len(text))
		return "", ErrUndetermined
	}
	return strings.ToLower(lang.IsoCode639_1().String()), nil
}

// Fixed returns a Detector that always reports code. Useful in tests and
// when the caller already knows the document language.
func Fixed(code string) Detector {
	return fixed(code)
}

type fixed string

func (f fixed) Detect(string) (string, error) {
	return string(f), nil
}
