package domain

// SectionStatus is the outcome of a single section comparison
type SectionStatus string

const (
	StatusMatched             SectionStatus = "matched"
	StatusSemanticallySimilar SectionStatus = "semantically-similar"
	StatusDifferent           SectionStatus = "different"
)

// Verdict is the overall analysis outcome
type Verdict string

const (
	VerdictUnique Verdict = "unique"
	VerdictExists Verdict = "exists"
)

// SectionComparison is the evidence for one compared section
type SectionComparison struct {
	Status         SectionStatus `json:"status"`
	YourContent    string        `json:"yourContent"`
	MatchedContent string        `json:"matchedContent"`
}

// KeywordComparison reports keyword overlap as a percentage of the uploaded keywords
type KeywordComparison struct {
	Percentage          int      `json:"percentage"` // 0-100
	YourKeywords        []string `json:"yourKeywords"`
	MatchedKeywords     []string `json:"matchedKeywords"`
	OverlappingKeywords []string `json:"overlappingKeywords"`
}

// ComparisonResult is the outcome of comparing the upload against one archived project
type ComparisonResult struct {
	ProjectID              string            `json:"projectId"`
	ProjectTitle           string            `json:"projectTitle"`
	UserID                 string            `json:"userId"`
	Technology             SectionComparison `json:"technology"`
	AbstractIntent         SectionComparison `json:"abstractIntent"`
	Methodology            SectionComparison `json:"methodology"`
	Keywords               KeywordComparison `json:"keywords"`
	Title                  SectionComparison `json:"title"`
	PassedTechCheck        bool              `json:"passedTechCheck"`
	PassedAbstractCheck    bool              `json:"passedAbstractCheck"`
	PassedMethodologyCheck bool              `json:"passedMethodologyCheck"`
	PassedKeywordCheck     bool              `json:"passedKeywordCheck"`
	IsFullMatch            bool              `json:"isFullMatch"`
	TextSimilarity         float64           `json:"textSimilarity"` // cosine, 0-1, informational
}

// TermFrequency is one entry of the uploaded document's term density
type TermFrequency struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// UploadedProjectInfo summarises the uploaded document in the report
type UploadedProjectInfo struct {
	Title        string          `json:"title"`
	Technologies []string        `json:"technologies"`
	Abstract     string          `json:"abstract"`
	Methodology  string          `json:"methodology"`
	Keywords     []string        `json:"keywords"`
	Intent       string          `json:"intent"`
	TopTerms     []TermFrequency `json:"topTerms"`
}

// MatchReport is the terminal artifact of one analysis run
type MatchReport struct {
	UploadedProjectInfo UploadedProjectInfo `json:"uploadedProjectInfo"`
	Comparisons         []ComparisonResult  `json:"comparisons"`
	FinalResult         Verdict             `json:"finalResult"`
	MatchedWith         *ComparisonResult   `json:"matchedWith"`
	Explanation         string              `json:"explanation"`
}
