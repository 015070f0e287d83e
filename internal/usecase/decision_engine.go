package usecase

import (
	"fmt"
	"log"

	"github.com/archiveinsight/backend/internal/domain"
)

// GatingPolicy selects which checks must pass for a full match
type GatingPolicy string

const (
	// GatingTwoGate requires technology and abstract intent only. Methodology,
	// keywords and title are reported but never change the verdict.
	GatingTwoGate GatingPolicy = "two_gate"

	// GatingStrict additionally requires the methodology check (run only after
	// the abstract check passed) and at least 70% keyword overlap.
	GatingStrict GatingPolicy = "strict"
)

// ParseGatingPolicy converts a configuration value to a GatingPolicy
func ParseGatingPolicy(s string) (GatingPolicy, error) {
	switch GatingPolicy(s) {
	case GatingTwoGate, "":
		return GatingTwoGate, nil
	case GatingStrict:
		return GatingStrict, nil
	default:
		return "", fmt.Errorf("unknown gating policy %q (want %q or %q)", s, GatingTwoGate, GatingStrict)
	}
}

// EvaluationState is a step of the per-project comparison state machine
type EvaluationState int

const (
	StatePending EvaluationState = iota
	StateTechChecked
	StateAbstractChecked
	StateDecided
)

func (s EvaluationState) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateTechChecked:
		return "TECH_CHECKED"
	case StateAbstractChecked:
		return "ABSTRACT_CHECKED"
	case StateDecided:
		return "DECIDED"
	default:
		return fmt.Sprintf("EvaluationState(%d)", int(s))
	}
}

// skippedContent marks a gated check that never ran because an upstream gate failed
const skippedContent = "Skipped"

var skippedComparison = domain.SectionComparison{
	Status:         domain.StatusDifferent,
	YourContent:    skippedContent,
	MatchedContent: skippedContent,
}

// DecisionEngineConfig holds configuration for the decision engine
type DecisionEngineConfig struct {
	Policy             GatingPolicy
	EnableDebugLogging bool
}

// DecisionEngine runs the gated comparison chain against archived projects
type DecisionEngine struct {
	comparator         *SectionComparator
	normalizer         *Normalizer
	policy             GatingPolicy
	enableDebugLogging bool
}

// NewDecisionEngine creates a decision engine. An empty policy means GatingTwoGate.
func NewDecisionEngine(normalizer *Normalizer, config DecisionEngineConfig) *DecisionEngine {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	policy := config.Policy
	if policy == "" {
		policy = GatingTwoGate
	}
	return &DecisionEngine{
		comparator:         NewSectionComparator(normalizer),
		normalizer:         normalizer,
		policy:             policy,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Policy returns the gating policy in effect
func (e *DecisionEngine) Policy() GatingPolicy {
	return e.policy
}

// evaluation carries one (uploaded, archived) pair through the state machine
type evaluation struct {
	uploaded domain.ExtractedDocumentInfo
	project  domain.ArchivedProject
	state    EvaluationState
	result   domain.ComparisonResult
}

// EvaluateAll compares the upload against every project, in archive order.
// There is no early exit: each project gets its own result.
func (e *DecisionEngine) EvaluateAll(uploaded domain.ExtractedDocumentInfo, projects []domain.ArchivedProject) []domain.ComparisonResult {
	results := make([]domain.ComparisonResult, 0, len(projects))
	for _, project := range projects {
		results = append(results, e.Evaluate(uploaded, project))
	}
	return results
}

// Evaluate drives one pair from PENDING to DECIDED and returns its result
func (e *DecisionEngine) Evaluate(uploaded domain.ExtractedDocumentInfo, project domain.ArchivedProject) domain.ComparisonResult {
	ev := &evaluation{
		uploaded: uploaded,
		project:  project,
		state:    StatePending,
		result: domain.ComparisonResult{
			ProjectID:    project.ID,
			ProjectTitle: project.Title,
			UserID:       project.UserID,
		},
	}

	for ev.state != StateDecided {
		next := e.advance(ev)
		if e.enableDebugLogging {
			log.Printf("[ENGINE] %s: %s -> %s", project.ID, ev.state, next)
		}
		ev.state = next
	}

	return ev.result
}

// advance performs the work of the current state and returns the next one
func (e *DecisionEngine) advance(ev *evaluation) EvaluationState {
	switch ev.state {
	case StatePending:
		ev.result.PassedTechCheck, ev.result.Technology =
			e.comparator.CompareTechnologies(ev.uploaded.Technologies, ev.project.Technologies)
		return StateTechChecked

	case StateTechChecked:
		if !ev.result.PassedTechCheck {
			ev.result.AbstractIntent = skippedComparison
			return StateAbstractChecked
		}
		ev.result.PassedAbstractCheck, ev.result.AbstractIntent =
			e.comparator.CompareAbstractIntent(AbstractOf(ev.uploaded), AbstractOfProject(ev.project))
		return StateAbstractChecked

	case StateAbstractChecked:
		e.collectSupportingSignals(ev)
		ev.result.IsFullMatch = e.isFullMatch(ev.result)
		return StateDecided
	}

	return StateDecided
}

// collectSupportingSignals fills in methodology, keyword, title and text
// similarity. Under the strict policy methodology is itself gated.
func (e *DecisionEngine) collectSupportingSignals(ev *evaluation) {
	gatesPassed := ev.result.PassedTechCheck && ev.result.PassedAbstractCheck
	if e.policy == GatingStrict && !gatesPassed {
		ev.result.Methodology = skippedComparison
	} else {
		ev.result.PassedMethodologyCheck, ev.result.Methodology =
			e.comparator.CompareMethodology(ev.uploaded.Methodology, ev.project.MethodologyText())
	}

	ev.result.Keywords = e.comparator.CompareKeywords(ev.uploaded.Keywords, ev.project.Keywords)
	ev.result.PassedKeywordCheck = ev.result.Keywords.Percentage >= keywordPassThreshold

	ev.result.Title = e.comparator.CompareTitle(ev.uploaded.Title, ev.project.Title)

	ev.result.TextSimilarity = CosineSimilarity(e.normalizer,
		ev.uploaded.Title+" "+AbstractOf(ev.uploaded).text(),
		ev.project.Title+" "+ev.project.Description+" "+AbstractOfProject(ev.project).text())
}

func (e *DecisionEngine) isFullMatch(r domain.ComparisonResult) bool {
	full := r.PassedTechCheck && r.PassedAbstractCheck
	if e.policy == GatingStrict {
		full = full && r.PassedMethodologyCheck && r.PassedKeywordCheck
	}
	return full
}
