package usecase

import (
	"log"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/archiveinsight/backend/internal/domain"
)

// Sentinel values for sections that could not be located
const (
	ProblemStatementNotFound = "Problem statement not found in document"
	ObjectiveNotFound        = "Objective not found in document"
	ApproachNotFound         = "Approach/methodology not found in document"
	ExpectedOutcomeNotFound  = "Expected outcome not found in document"

	untitledProject = "Untitled Project"
)

const (
	maxSectionLength = 500
	maxTitleLength   = 200
	maxTitleLineLen  = 150
)

// DocumentFieldExtractor turns raw document text into a structured record.
// Implementations never fail: missing data degrades to sentinel values.
type DocumentFieldExtractor interface {
	Extract(text, filename string) domain.ExtractedDocumentInfo
}

type sectionKind int

const (
	sectionTitle sectionKind = iota
	sectionTechnologies
	sectionKeywords
	sectionProblem
	sectionObjective
	sectionApproach
	sectionOutcome
	sectionConclusion
	sectionOther
)

type sectionHeader struct {
	kind    sectionKind
	pattern *regexp.Regexp
}

// headerSeparator is what may follow a header label: a colon or dash, or the end of the line
const headerSeparator = `(?:[ \t]*[:—–][ \t]*|[ \t]+-[ \t]+|[ \t]*$)`

func header(kind sectionKind, labels string) sectionHeader {
	expr := `(?im)^[ \t]*(?:\d+[.)][ \t]*)?(?:` + labels + `)` + headerSeparator
	return sectionHeader{kind: kind, pattern: regexp.MustCompile(expr)}
}

// Longer labels come first: alternation is leftmost-first.
var sectionHeaders = []sectionHeader{
	header(sectionTitle, `project[ \t]+title|project[ \t]+name|title|name`),
	header(sectionTechnologies, `technologies[ \t]+used|technology[ \t]+used|technologies|tech[ \t]*stack|tools[ \t]+(?:and|&)[ \t]+technologies|tools|software[ \t]+used`),
	header(sectionKeywords, `keywords|keyword|key[ \t]*terms|key[ \t]*term|index[ \t]+terms|tags|tag`),
	header(sectionProblem, `problem[ \t]+statement|problem[ \t]+definition|problem|issue|challenge`),
	header(sectionObjective, `objectives|objective|aims|aim|goals|goal|purpose`),
	header(sectionApproach, `proposed[ \t]+(?:solution|system|method)|methodology|approach|methods|method`),
	header(sectionOutcome, `expected[ \t]+(?:outcomes|outcome|results|result)|outcomes|outcome|results|result|expected`),
	header(sectionConclusion, `conclusions|conclusion|summary|future[ \t]+work`),
	header(sectionOther, `abstract|introduction|background|references|acknowledg(?:e)?ments?`),
}

var (
	techListSeparators    = regexp.MustCompile(`[,;|•\n]+`)
	keywordListSeparators = regexp.MustCompile(`[,;|•]+`)
	surroundingQuotes     = regexp.MustCompile(`^["']|["']$`)
	titleBreakers         = regexp.MustCompile(`[:—]`)
	filenameSeparators    = regexp.MustCompile(`[-_]`)
)

// headerMatch is one recognised section header in the text
type headerMatch struct {
	kind       sectionKind
	start, end int
}

// FieldExtractor is the regex-based DocumentFieldExtractor
type FieldExtractor struct {
	normalizer         *Normalizer
	enableDebugLogging bool
}

// NewFieldExtractor creates a field extractor using the normalizer's vocabulary
func NewFieldExtractor(normalizer *Normalizer, enableDebugLogging bool) *FieldExtractor {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	return &FieldExtractor{
		normalizer:         normalizer,
		enableDebugLogging: enableDebugLogging,
	}
}

// Extract parses document text into an ExtractedDocumentInfo. Empty text yields
// the default record so callers always have something to compare.
func (e *FieldExtractor) Extract(text, filename string) domain.ExtractedDocumentInfo {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		if e.enableDebugLogging {
			log.Printf("[EXTRACT] No text for %q, using default record", filename)
		}
		return DefaultDocumentInfo(filename)
	}

	headers := findHeaders(text)

	approach := sectionBody(text, headers, sectionApproach, ApproachNotFound)
	info := domain.ExtractedDocumentInfo{
		Title:            e.extractTitle(text, headers, filename),
		Technologies:     e.extractTechnologies(text, headers),
		ProblemStatement: sectionBody(text, headers, sectionProblem, ProblemStatementNotFound),
		Objective:        sectionBody(text, headers, sectionObjective, ObjectiveNotFound),
		Approach:         approach,
		ExpectedOutcome:  sectionBody(text, headers, sectionOutcome, ExpectedOutcomeNotFound),
		Methodology:      approach,
		Keywords:         e.extractKeywords(text, headers),
	}

	if e.enableDebugLogging {
		log.Printf("[EXTRACT] %q: title=%q technologies=%v keywords=%v headers=%d",
			filename, info.Title, info.Technologies, info.Keywords, len(headers))
	}

	return info
}

// DefaultDocumentInfo is the record used when no text could be obtained
func DefaultDocumentInfo(filename string) domain.ExtractedDocumentInfo {
	return domain.ExtractedDocumentInfo{
		Title:            titleFromFilename(filename),
		Technologies:     []string{"React", "Node.js", "MongoDB"},
		ProblemStatement: "A novel problem statement not found in existing projects",
		Objective:        "To achieve a unique objective through innovative methods",
		Approach:         "A completely new approach not seen in existing submissions",
		ExpectedOutcome:  "Novel outcomes that differ from existing work",
		Methodology:      "A completely new approach not seen in existing submissions",
		Keywords:         []string{"innovation", "novel", "unique", "new approach"},
	}
}

// findHeaders returns every recognised header ordered by position, with
// overlapping matches resolved in favour of the earliest, longest one.
func findHeaders(text string) []headerMatch {
	var all []headerMatch
	for _, h := range sectionHeaders {
		for _, loc := range h.pattern.FindAllStringIndex(text, -1) {
			all = append(all, headerMatch{kind: h.kind, start: loc[0], end: loc[1]})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].start != all[j].start {
			return all[i].start < all[j].start
		}
		return all[i].end > all[j].end
	})

	headers := make([]headerMatch, 0, len(all))
	lastEnd := -1
	for _, h := range all {
		if h.start < lastEnd {
			continue
		}
		headers = append(headers, h)
		lastEnd = h.end
	}
	return headers
}

// sectionBody returns the cleaned text between the first non-empty header of
// kind and the next header, or notFound.
func sectionBody(text string, headers []headerMatch, kind sectionKind, notFound string) string {
	for i, h := range headers {
		if h.kind != kind {
			continue
		}
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1].start
		}
		body := CollapseWhitespace(text[h.end:end])
		if body != "" {
			return truncateRunes(body, maxSectionLength)
		}
	}
	return notFound
}

// lineValue returns the text after a single-line header such as "Keywords:".
// When the header stands alone, the next non-empty line is used instead.
func lineValue(text string, headers []headerMatch, kind sectionKind) (string, bool) {
	for i, h := range headers {
		if h.kind != kind {
			continue
		}
		limit := len(text)
		if i+1 < len(headers) {
			limit = headers[i+1].start
		}
		rest := text[h.end:limit]
		for _, line := range strings.Split(rest, "\n") {
			if v := strings.TrimSpace(line); v != "" {
				return v, true
			}
		}
	}
	return "", false
}

func (e *FieldExtractor) extractTitle(text string, headers []headerMatch, filename string) string {
	if title, ok := lineValue(text, headers, sectionTitle); ok {
		return truncateRunes(title, maxTitleLength)
	}

	// Only the first non-empty line can be a title. A bare section label
	// there means the document has no title line.
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !isHeaderLine(line) && utf8.RuneCountInString(line) < maxTitleLineLen && !titleBreakers.MatchString(line) {
			return line
		}
		break
	}

	return titleFromFilename(filename)
}

// isHeaderLine reports whether line is nothing but a section label
func isHeaderLine(line string) bool {
	for _, h := range sectionHeaders {
		if loc := h.pattern.FindStringIndex(line); loc != nil && loc[0] == 0 && strings.TrimSpace(line[loc[1]:]) == "" {
			return true
		}
	}
	return false
}

func titleFromFilename(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "." || base == string(filepath.Separator) {
		base = ""
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	title := CollapseWhitespace(filenameSeparators.ReplaceAllString(base, " "))
	if title == "" {
		return untitledProject
	}
	return title
}

// extractTechnologies scans the whole text against the pattern library, then
// re-matches each entry of an explicit technologies list. Result is in library order.
func (e *FieldExtractor) extractTechnologies(text string, headers []headerMatch) []string {
	patterns := e.normalizer.Vocabulary().TechnologyPatterns()
	found := make([]string, 0)
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			found = append(found, name)
		}
	}

	for _, p := range patterns {
		if p.MatchString(text) {
			add(p.Name)
		}
	}

	if list, ok := lineValue(text, headers, sectionTechnologies); ok {
		for _, item := range techListSeparators.Split(list, -1) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			for _, p := range patterns {
				if p.MatchString(item) {
					add(p.Name)
					break
				}
			}
		}
	}

	return found
}

// extractKeywords prefers an explicit keyword list and falls back to the
// common vocabulary terms present in the text.
func (e *FieldExtractor) extractKeywords(text string, headers []headerMatch) []string {
	if list, ok := lineValue(text, headers, sectionKeywords); ok {
		keywords := make([]string, 0)
		for _, k := range keywordListSeparators.Split(list, -1) {
			k = surroundingQuotes.ReplaceAllString(strings.TrimSpace(k), "")
			n := utf8.RuneCountInString(k)
			if n > 1 && n < 50 {
				keywords = append(keywords, k)
			}
		}
		if len(keywords) > 0 {
			return keywords
		}
	}

	lower := strings.ToLower(text)
	keywords := make([]string, 0)
	for _, kw := range e.normalizer.Vocabulary().CommonKeywords() {
		if strings.Contains(lower, kw) {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
