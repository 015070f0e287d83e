package usecase

import (
	"regexp"
	"strings"
)

// Compiled regex patterns for text normalization
var (
	// Lower-case words of three letters or more
	conceptWordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

	// Multiple whitespace cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// Normalizer tokenizes free text and maps technology/keyword variants to a
// canonical form. All methods are pure; unknown terms pass through unchanged.
type Normalizer struct {
	vocab *Vocabulary
}

// NewNormalizer creates a normalizer over the given vocabulary.
// A nil vocabulary selects DefaultVocabulary.
func NewNormalizer(vocab *Vocabulary) *Normalizer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Normalizer{vocab: vocab}
}

// Vocabulary returns the vocabulary the normalizer was built with
func (n *Normalizer) Vocabulary() *Vocabulary {
	return n.vocab
}

// Concepts extracts the distinct, stop-word filtered words of length >= 3
// from text, in first-seen order.
func (n *Normalizer) Concepts(text string) []string {
	return n.words(text, n.vocab.IsConceptStopWord, true)
}

// TitleWords extracts the meaningful words of a title. Repeats are kept so
// that the overlap ratio is taken over the title as written.
func (n *Normalizer) TitleWords(title string) []string {
	return n.words(title, n.vocab.IsTitleStopWord, false)
}

// Terms extracts every non-noise word of length >= 3, repeats included.
// Used for term density and cosine similarity.
func (n *Normalizer) Terms(text string) []string {
	return n.words(text, n.vocab.IsDensityStopWord, false)
}

func (n *Normalizer) words(text string, stop func(string) bool, distinct bool) []string {
	matches := conceptWordPattern.FindAllString(strings.ToLower(text), -1)

	var seen map[string]bool
	if distinct {
		seen = make(map[string]bool, len(matches))
	}

	words := make([]string, 0, len(matches))
	for _, w := range matches {
		if stop(w) {
			continue
		}
		if distinct {
			if seen[w] {
				continue
			}
			seen[w] = true
		}
		words = append(words, w)
	}
	return words
}

// NormalizeTechnology lower-cases a technology name and resolves known aliases
// ("tf" -> "tensorflow", "cnn" -> "convolutional neural network").
func (n *Normalizer) NormalizeTechnology(tech string) string {
	lower := strings.ToLower(strings.TrimSpace(tech))
	if canonical, ok := n.vocab.CanonicalTechnology(lower); ok {
		return canonical
	}
	return lower
}

// NormalizeTechnologies normalizes a list, dropping entries that normalize to nothing
func (n *Normalizer) NormalizeTechnologies(techs []string) []string {
	out := make([]string, 0, len(techs))
	for _, t := range techs {
		if norm := n.NormalizeTechnology(t); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}

// NormalizeKeyword lower-cases a keyword and collapses a plural by stripping one trailing "s"
func (n *Normalizer) NormalizeKeyword(keyword string) string {
	lower := strings.ToLower(strings.TrimSpace(keyword))
	return strings.TrimSuffix(lower, "s")
}

// NormalizeKeywords normalizes a list, dropping entries that normalize to nothing
func (n *Normalizer) NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if norm := n.NormalizeKeyword(k); norm != "" {
			out = append(out, norm)
		}
	}
	return out
}

// CollapseWhitespace trims s and replaces every whitespace run with a single space
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(s, " "))
}

// truncateRunes cuts s to at most limit runes
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

// containsEither reports whether a contains b or b contains a
func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
