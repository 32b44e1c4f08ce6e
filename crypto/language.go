package crypto

import (
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// LanguageScorer rates text by a statistical language model's confidence
// that it is written in Language. It is slower than EnglishScorer but is
// less easily fooled by uniform letter soup.
type LanguageScorer struct {
	Language lingua.Language
	detector lingua.LanguageDetector
}

// NewLanguageScorer builds a detector that distinguishes want from the
// given alternatives. At least one alternative is required by the model.
func NewLanguageScorer(want lingua.Language, alternatives ...lingua.Language) *LanguageScorer {
	if len(alternatives) == 0 {
		alternatives = []lingua.Language{lingua.French, lingua.German, lingua.Spanish}
	}
	langs := append([]lingua.Language{want}, alternatives...)
	return &LanguageScorer{
		Language: want,
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			WithLowAccuracyMode().
			Build(),
	}
}

// Score returns the model's confidence, in [0, 1]. Text that is not valid
// UTF-8 scores 0.
func (s *LanguageScorer) Score(text []byte) float64 {
	if !utf8.Valid(text) {
		return 0
	}
	return s.detector.ComputeLanguageConfidence(string(text), s.Language)
}
