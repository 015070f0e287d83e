package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/archiveinsight/backend/internal/domain"
)

// Comparison thresholds, in percent of the uploaded side
const (
	techMatchThreshold        = 60
	abstractMatchThreshold    = 50
	methodologyMatchThreshold = 50
	keywordPassThreshold      = 70
	titleMatchThreshold       = 70
	titleSimilarThreshold     = 40
)

const (
	abstractPreviewLength    = 100
	methodologyPreviewLength = 150
)

// AbstractSections are the free-text sections that together express a project's intent
type AbstractSections struct {
	ProblemStatement string
	Objective        string
	Approach         string
	ExpectedOutcome  string
}

// AbstractOf returns the abstract sections of an extracted document
func AbstractOf(info domain.ExtractedDocumentInfo) AbstractSections {
	return AbstractSections{
		ProblemStatement: info.ProblemStatement,
		Objective:        info.Objective,
		Approach:         info.Approach,
		ExpectedOutcome:  info.ExpectedOutcome,
	}
}

// AbstractOfProject returns the abstract sections of an archived project
func AbstractOfProject(p domain.ArchivedProject) AbstractSections {
	return AbstractSections{
		ProblemStatement: p.ProblemStatement,
		Objective:        p.Objective,
		Approach:         p.Approach,
		ExpectedOutcome:  p.ExpectedOutcome,
	}
}

func (a AbstractSections) text() string {
	return strings.Join([]string{a.ProblemStatement, a.Objective, a.Approach, a.ExpectedOutcome}, " ")
}

func (a AbstractSections) preview() string {
	return fmt.Sprintf("Problem: %s... | Objective: %s...",
		truncateRunes(a.ProblemStatement, abstractPreviewLength),
		truncateRunes(a.Objective, abstractPreviewLength))
}

// SectionComparator holds the five section comparison functions. Every method
// is a pure function of its arguments.
type SectionComparator struct {
	normalizer *Normalizer
}

// NewSectionComparator creates a comparator over the given normalizer
func NewSectionComparator(normalizer *Normalizer) *SectionComparator {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	return &SectionComparator{normalizer: normalizer}
}

// CompareTechnologies checks what share of the uploaded technologies appear in
// the archived list. An uploaded technology is found when, after normalization,
// it equals or contains (or is contained by) an archived one. At least 60% must
// be found; an empty uploaded list never matches.
func (c *SectionComparator) CompareTechnologies(uploaded, archived []string) (bool, domain.SectionComparison) {
	normUploaded := c.normalizer.NormalizeTechnologies(uploaded)
	normArchived := c.normalizer.NormalizeTechnologies(archived)

	matched := 0
	for _, tech := range normUploaded {
		if containsAny(normArchived, tech) {
			matched++
		}
	}

	ok := meetsThreshold(matched, len(normUploaded), techMatchThreshold)
	return ok, domain.SectionComparison{
		Status:         statusOf(ok),
		YourContent:    strings.Join(uploaded, ", "),
		MatchedContent: strings.Join(archived, ", "),
	}
}

// CompareAbstractIntent checks what share of the uploaded abstract's concepts
// also appear in the archived abstract. At least 50% must overlap.
func (c *SectionComparator) CompareAbstractIntent(uploaded, archived AbstractSections) (bool, domain.SectionComparison) {
	uploadedConcepts := c.normalizer.Concepts(uploaded.text())
	archivedConcepts := make(map[string]bool)
	for _, concept := range c.normalizer.Concepts(archived.text()) {
		archivedConcepts[concept] = true
	}

	shared := 0
	for _, concept := range uploadedConcepts {
		if archivedConcepts[concept] {
			shared++
		}
	}

	ok := meetsThreshold(shared, len(uploadedConcepts), abstractMatchThreshold)
	return ok, domain.SectionComparison{
		Status:         statusOf(ok),
		YourContent:    uploaded.preview(),
		MatchedContent: archived.preview(),
	}
}

// CompareMethodology intersects the methodology vocabulary terms found in both
// texts. At least 50% of the uploaded terms must also be in the archived text.
func (c *SectionComparator) CompareMethodology(uploadedMethodology, archivedApproach string) (bool, domain.SectionComparison) {
	uploadedTerms := c.methodologyTerms(uploadedMethodology)
	archivedTerms := make(map[string]bool)
	for _, term := range c.methodologyTerms(archivedApproach) {
		archivedTerms[term] = true
	}

	shared := 0
	for _, term := range uploadedTerms {
		if archivedTerms[term] {
			shared++
		}
	}

	ok := meetsThreshold(shared, len(uploadedTerms), methodologyMatchThreshold)
	return ok, domain.SectionComparison{
		Status:         statusOf(ok),
		YourContent:    truncateRunes(uploadedMethodology, methodologyPreviewLength) + "...",
		MatchedContent: truncateRunes(archivedApproach, methodologyPreviewLength) + "...",
	}
}

func (c *SectionComparator) methodologyTerms(text string) []string {
	lower := strings.ToLower(text)
	var terms []string
	for _, term := range c.normalizer.Vocabulary().MethodologyTerms() {
		if strings.Contains(lower, term) {
			terms = append(terms, term)
		}
	}
	return terms
}

// CompareKeywords reports the percentage of uploaded keywords that overlap an
// archived keyword (singularized, substring either way). No uploaded keywords is 0%.
func (c *SectionComparator) CompareKeywords(uploaded, archived []string) domain.KeywordComparison {
	normUploaded := c.normalizer.NormalizeKeywords(uploaded)
	normArchived := c.normalizer.NormalizeKeywords(archived)

	overlapping := make([]string, 0)
	for _, kw := range normUploaded {
		if containsAny(normArchived, kw) {
			overlapping = append(overlapping, kw)
		}
	}

	return domain.KeywordComparison{
		Percentage:          percentage(len(overlapping), len(normUploaded)),
		YourKeywords:        copyStrings(uploaded),
		MatchedKeywords:     copyStrings(archived),
		OverlappingKeywords: overlapping,
	}
}

// CompareTitle measures word overlap over the uploaded title's meaningful words:
// >= 70% is matched, >= 40% semantically similar, anything less different.
func (c *SectionComparator) CompareTitle(uploaded, archived string) domain.SectionComparison {
	uploadedWords := c.normalizer.TitleWords(uploaded)
	archivedWords := make(map[string]bool)
	for _, w := range c.normalizer.TitleWords(archived) {
		archivedWords[w] = true
	}

	shared := 0
	for _, w := range uploadedWords {
		if archivedWords[w] {
			shared++
		}
	}

	status := domain.StatusDifferent
	switch {
	case meetsThreshold(shared, len(uploadedWords), titleMatchThreshold):
		status = domain.StatusMatched
	case meetsThreshold(shared, len(uploadedWords), titleSimilarThreshold):
		status = domain.StatusSemanticallySimilar
	}

	return domain.SectionComparison{
		Status:         status,
		YourContent:    uploaded,
		MatchedContent: archived,
	}
}

// meetsThreshold reports matched/total >= pct%, in integer arithmetic so the
// boundary is exact. A zero total never meets a threshold.
func meetsThreshold(matched, total, pct int) bool {
	if total <= 0 {
		return false
	}
	return matched*100 >= pct*total
}

// percentage returns round(part/total*100), or 0 when total is 0
func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

func containsAny(candidates []string, term string) bool {
	for _, candidate := range candidates {
		if candidate == term || containsEither(candidate, term) {
			return true
		}
	}
	return false
}

func statusOf(matched bool) domain.SectionStatus {
	if matched {
		return domain.StatusMatched
	}
	return domain.StatusDifferent
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
