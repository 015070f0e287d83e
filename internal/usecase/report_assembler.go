package usecase

import (
	"fmt"
	"strings"

	"github.com/archiveinsight/backend/internal/domain"
)

// ReportAssembler builds the final MatchReport from per-project results
type ReportAssembler struct {
	normalizer *Normalizer
	policy     GatingPolicy
}

// NewReportAssembler creates a report assembler. The policy only changes the
// wording of the explanation.
func NewReportAssembler(normalizer *Normalizer, policy GatingPolicy) *ReportAssembler {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	if policy == "" {
		policy = GatingTwoGate
	}
	return &ReportAssembler{normalizer: normalizer, policy: policy}
}

// Assemble selects the first full match in archive order and writes the
// explanation. rawText feeds the informational intent and term density; when
// empty the extracted sections are used instead.
func (a *ReportAssembler) Assemble(
	uploaded domain.ExtractedDocumentInfo,
	rawText string,
	comparisons []domain.ComparisonResult,
) *domain.MatchReport {
	if comparisons == nil {
		comparisons = []domain.ComparisonResult{}
	}

	insightText := rawText
	if strings.TrimSpace(insightText) == "" {
		insightText = uploaded.Title + "\n" + AbstractOf(uploaded).text()
	}

	report := &domain.MatchReport{
		UploadedProjectInfo: domain.UploadedProjectInfo{
			Title:        uploaded.Title,
			Technologies: copyStrings(uploaded.Technologies),
			Abstract:     uploaded.ProblemStatement + " " + uploaded.Objective,
			Methodology:  uploaded.Methodology,
			Keywords:     copyStrings(uploaded.Keywords),
			Intent:       ClassifyIntent(a.normalizer, insightText),
			TopTerms:     TermDensity(a.normalizer, insightText, defaultTopTerms),
		},
		Comparisons: comparisons,
		FinalResult: domain.VerdictUnique,
	}

	for i := range comparisons {
		if comparisons[i].IsFullMatch {
			matched := comparisons[i]
			report.MatchedWith = &matched
			report.FinalResult = domain.VerdictExists
			break
		}
	}

	if report.MatchedWith != nil {
		report.Explanation = a.matchExplanation(*report.MatchedWith)
	} else {
		report.Explanation = a.uniqueExplanation(comparisons)
	}

	return report
}

func (a *ReportAssembler) matchExplanation(m domain.ComparisonResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your project matches an existing submission %q (%s).\n\n", m.ProjectTitle, m.ProjectID)
	fmt.Fprintf(&b, "• Technologies: %s\n", checkMark(m.PassedTechCheck))
	fmt.Fprintf(&b, "• Abstract Intent: %s\n", checkMark(m.PassedAbstractCheck))
	fmt.Fprintf(&b, "• Methodology: %s%s\n", checkMark(m.PassedMethodologyCheck), a.supportingSuffix())
	fmt.Fprintf(&b, "• Keywords: %d%% overlap %s%s\n", m.Keywords.Percentage, tick(m.PassedKeywordCheck), a.supportingSuffix())
	fmt.Fprintf(&b, "• Title: %s (informational)\n\n", m.Title.Status)
	b.WriteString(a.mandatorySummary(true))
	return b.String()
}

func (a *ReportAssembler) uniqueExplanation(comparisons []domain.ComparisonResult) string {
	if len(comparisons) == 0 {
		return "Your project is UNIQUE and does not match any existing submissions.\n\n" +
			"The archive contains no projects to compare against."
	}

	closest := closestMatch(comparisons)

	var b strings.Builder
	b.WriteString("Your project is UNIQUE and does not match any existing submissions.\n\n")
	fmt.Fprintf(&b, "Closest comparison was with %q (%s):\n", closest.ProjectTitle, closest.ProjectID)
	fmt.Fprintf(&b, "• Technologies: %s\n", plainMark(closest.PassedTechCheck))
	fmt.Fprintf(&b, "• Abstract Intent: %s\n", abstractMark(closest))
	fmt.Fprintf(&b, "• Methodology: %s%s\n", plainMark(closest.PassedMethodologyCheck), a.supportingSuffix())
	fmt.Fprintf(&b, "• Keywords: %d%% overlap%s\n\n", closest.Keywords.Percentage, a.supportingSuffix())
	b.WriteString(a.mandatorySummary(false))
	return b.String()
}

func (a *ReportAssembler) supportingSuffix() string {
	if a.policy == GatingStrict {
		return ""
	}
	return " (supporting)"
}

func (a *ReportAssembler) mandatorySummary(matched bool) string {
	switch {
	case matched && a.policy == GatingStrict:
		return "All mandatory conditions are met. This project cannot be registered as it closely matches an existing submission."
	case matched:
		return "Both mandatory conditions (technology and abstract intent) are met. This project cannot be registered as it closely matches an existing submission."
	default:
		return "At least one mandatory condition failed, confirming this is a unique project."
	}
}

// closestMatch picks the comparison with the most passed tech/abstract/methodology
// checks. Ties keep the earliest project in archive order.
func closestMatch(comparisons []domain.ComparisonResult) domain.ComparisonResult {
	best := comparisons[0]
	bestScore := passedChecks(best)
	for _, c := range comparisons[1:] {
		if score := passedChecks(c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func passedChecks(c domain.ComparisonResult) int {
	n := 0
	for _, passed := range []bool{c.PassedTechCheck, c.PassedAbstractCheck, c.PassedMethodologyCheck} {
		if passed {
			n++
		}
	}
	return n
}

func abstractMark(c domain.ComparisonResult) string {
	if c.AbstractIntent.YourContent == skippedContent {
		return "Skipped"
	}
	return plainMark(c.PassedAbstractCheck)
}

func checkMark(passed bool) string {
	if passed {
		return "✓ Matched"
	}
	return "✗ Different"
}

func plainMark(passed bool) string {
	if passed {
		return "Matched"
	}
	return "Different"
}

func tick(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}
