package domain

// ExtractedDocumentInfo is the structured record derived from one uploaded document.
// Every field is populated: missing sections carry a "not found" sentinel and slices are never nil.
type ExtractedDocumentInfo struct {
	Title            string   `json:"title"`
	Technologies     []string `json:"technologies"`
	ProblemStatement string   `json:"problemStatement"`
	Objective        string   `json:"objective"`
	Approach         string   `json:"approach"`
	ExpectedOutcome  string   `json:"expectedOutcome"`
	Methodology      string   `json:"methodology"`
	Keywords         []string `json:"keywords"`
}

// ArchivedProject is one previously accepted project in the archive
type ArchivedProject struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	UserID           string   `json:"userId"`
	Year             int      `json:"year"`
	Branch           string   `json:"branch"`
	Description      string   `json:"description,omitempty"`
	Technologies     []string `json:"technologies"`
	ProblemStatement string   `json:"problemStatement"`
	Objective        string   `json:"objective"`
	Approach         string   `json:"approach"`
	ExpectedOutcome  string   `json:"expectedOutcome"`
	Methodology      string   `json:"methodology,omitempty"`
	Keywords         []string `json:"keywords"`
}

// MethodologyText returns the methodology, falling back to the approach for
// records that never stored one separately.
func (p ArchivedProject) MethodologyText() string {
	if p.Methodology != "" {
		return p.Methodology
	}
	return p.Approach
}

// Document is an uploaded submission. Text, when set, is used as-is and Data is ignored.
type Document struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
	Text     string `json:"text,omitempty"`
}
