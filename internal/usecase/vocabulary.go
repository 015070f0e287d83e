package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
)

// TechnologyPattern recognises one technology by name and spelling variants
type TechnologyPattern struct {
	Name          string
	pattern       *regexp.Regexp
	notFollowedBy *regexp.Regexp
}

// MatchString reports whether the technology appears in s
func (p TechnologyPattern) MatchString(s string) bool {
	if p.notFollowedBy == nil {
		return p.pattern.MatchString(s)
	}
	for _, loc := range p.pattern.FindAllStringIndex(s, -1) {
		if !p.notFollowedBy.MatchString(s[loc[1]:]) {
			return true
		}
	}
	return false
}

func tech(name, expr string) TechnologyPattern {
	return TechnologyPattern{Name: name, pattern: regexp.MustCompile(`(?i)` + expr)}
}

func techExcept(name, expr, notFollowedBy string) TechnologyPattern {
	p := tech(name, expr)
	p.notFollowedBy = regexp.MustCompile(`(?i)^` + notFollowedBy)
	return p
}

// intentRule maps trigger phrases to a project intent label
type intentRule struct {
	label    string
	triggers []string
}

// Vocabulary is the immutable term data the normalizer and extractor work from.
// Build it once with NewVocabulary and share it; nothing mutates it afterwards.
type Vocabulary struct {
	techSynonyms       map[string]string
	conceptStopWords   map[string]bool
	titleStopWords     map[string]bool
	densityStopWords   map[string]bool
	methodologyTerms   []string
	commonKeywords     []string
	technologyPatterns []TechnologyPattern
	intentRules        []intentRule
}

var defaultVocabulary = NewVocabulary(nil)

// DefaultVocabulary returns the shared vocabulary built at process start
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}

// NewVocabulary builds a vocabulary from the built-in tables, merging extra
// technology synonyms (alias -> canonical) on top of the defaults.
func NewVocabulary(extraSynonyms map[string]string) *Vocabulary {
	synonyms := make(map[string]string, len(defaultTechSynonyms)+len(extraSynonyms))
	for k, v := range defaultTechSynonyms {
		synonyms[k] = v
	}
	for k, v := range extraSynonyms {
		alias := strings.ToLower(strings.TrimSpace(k))
		canonical := strings.ToLower(strings.TrimSpace(v))
		if alias == "" || canonical == "" {
			continue
		}
		synonyms[alias] = canonical
	}

	return &Vocabulary{
		techSynonyms:       synonyms,
		conceptStopWords:   toSet(conceptStopWords),
		titleStopWords:     toSet(titleStopWords),
		densityStopWords:   toSet(densityStopWords),
		methodologyTerms:   append([]string(nil), methodologyTerms...),
		commonKeywords:     append([]string(nil), commonKeywords...),
		technologyPatterns: buildTechnologyPatterns(),
		intentRules:        defaultIntentRules,
	}
}

// CanonicalTechnology returns the canonical form for a lower-cased alias
func (v *Vocabulary) CanonicalTechnology(alias string) (string, bool) {
	canonical, ok := v.techSynonyms[alias]
	return canonical, ok
}

// Fingerprint identifies the merged synonym table. Two vocabularies with the
// same fingerprint normalise technologies identically.
func (v *Vocabulary) Fingerprint() string {
	aliases := make([]string, 0, len(v.techSynonyms))
	for alias := range v.techSynonyms {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	h := sha256.New()
	for _, alias := range aliases {
		h.Write([]byte(alias))
		h.Write([]byte{0})
		h.Write([]byte(v.techSynonyms[alias]))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// IsConceptStopWord reports whether w is ignored by concept extraction
func (v *Vocabulary) IsConceptStopWord(w string) bool { return v.conceptStopWords[w] }

// IsTitleStopWord reports whether w is ignored by title comparison
func (v *Vocabulary) IsTitleStopWord(w string) bool { return v.titleStopWords[w] }

// IsDensityStopWord reports whether w is ignored by term density and cosine similarity
func (v *Vocabulary) IsDensityStopWord(w string) bool { return v.densityStopWords[w] }

// MethodologyTerms returns a copy of the methodology term list
func (v *Vocabulary) MethodologyTerms() []string {
	return append([]string(nil), v.methodologyTerms...)
}

// CommonKeywords returns a copy of the fallback keyword vocabulary
func (v *Vocabulary) CommonKeywords() []string {
	return append([]string(nil), v.commonKeywords...)
}

// TechnologyPatterns returns the technology pattern library in match order
func (v *Vocabulary) TechnologyPatterns() []TechnologyPattern {
	return append([]TechnologyPattern(nil), v.technologyPatterns...)
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var defaultTechSynonyms = map[string]string{
	"dl":   "deep learning",
	"ml":   "machine learning",
	"ai":   "artificial intelligence",
	"cv":   "computer vision",
	"nlp":  "natural language processing",
	"cnn":  "convolutional neural network",
	"rnn":  "recurrent neural network",
	"lstm": "long short-term memory",
	"gan":  "generative adversarial network",
	"js":   "javascript",
	"ts":   "typescript",
	"py":   "python",
	"tf":   "tensorflow",
	"k8s":  "kubernetes",
	"aws":  "amazon web services",
	"gcp":  "google cloud platform",
	"iot":  "internet of things",
	"ar":   "augmented reality",
	"vr":   "virtual reality",
}

func buildTechnologyPatterns() []TechnologyPattern {
	return []TechnologyPattern{
		// ML frameworks
		tech("TensorFlow", `\btensor\s*flow\b`),
		tech("PyTorch", `\bpy\s*torch\b`),
		tech("Keras", `\bkeras\b`),
		tech("scikit-learn", `\b(?:scikit[- ]learn|sklearn)\b`),

		// Languages
		tech("Python", `\bpython\b`),
		tech("JavaScript", `(?:^|[^.\w])(?:javascript|js)\b`),
		tech("TypeScript", `(?:^|[^.\w])(?:typescript|ts)\b`),
		techExcept("Java", `\bjava\b`, `\s*script`),
		tech("C++", `\bc\+\+|\bcpp\b`),
		tech("Rust", `\brust\b`),
		tech("Solidity", `\bsolidity\b`),

		// Frameworks
		tech("React", `\breact\b`),
		tech("Angular", `\bangular\b`),
		tech("Vue.js", `\bvue(?:\.js)?\b`),
		tech("Flask", `\bflask\b`),
		tech("Django", `\bdjango\b`),
		tech("FastAPI", `\bfast\s*api\b`),
		tech("Node.js", `\bnode(?:\.js)?\b`),
		tech("Spring Boot", `\bspring\s*boot\b`),

		// Computer vision
		tech("OpenCV", `\bopen\s*cv\b`),
		tech("YOLO", `\byolo\b`),

		// Databases
		tech("PostgreSQL", `\bpostgres(?:ql)?\b`),
		tech("MongoDB", `\bmongodb\b`),
		tech("MySQL", `\bmysql\b`),
		tech("Redis", `\bredis\b`),
		tech("InfluxDB", `\binfluxdb\b`),

		// Cloud / DevOps
		tech("Kubernetes", `\b(?:kubernetes|k8s)\b`),
		tech("Docker", `\bdocker\b`),
		tech("AWS", `\baws\b`),
		tech("AWS IoT", `\baws\s*iot\b`),
		tech("Azure", `\bazure\b`),
		tech("Google Cloud Platform", `\bgcp\b`),

		// Blockchain
		tech("Ethereum", `\bethereum\b`),
		tech("Web3.js", `\bweb3(?:\.js)?\b`),
		tech("IPFS", `\bipfs\b`),
		tech("Smart Contracts", `\bsmart\s*contracts?\b`),

		// Hardware / IoT
		tech("Arduino", `\barduino\b`),
		tech("Raspberry Pi", `\braspberry\s*pi\b`),

		// ML concepts listed as technologies
		tech("CNN", `\b(?:cnn|convolutional\s*neural\s*network)\b`),
		tech("RNN", `\b(?:rnn|recurrent\s*neural\s*network)\b`),
		tech("LSTM", `\blstm\b`),
		tech("BERT", `\bbert\b`),
		tech("GAN", `\b(?:gan|generative\s*adversarial\s*network)\b`),
		tech("Deep Learning", `\bdeep\s*learning\b`),
		tech("Machine Learning", `\bmachine\s*learning\b`),
		tech("NLP", `\b(?:nlp|natural\s*language\s*processing)\b`),
		tech("Computer Vision", `\bcomputer\s*vision\b`),
		tech("Augmented Reality", `\b(?:ar|augmented\s*reality)\b`),
		tech("Virtual Reality", `\b(?:vr|virtual\s*reality)\b`),
		tech("Federated Learning", `\bfederated\s*learning\b`),

		// Other
		tech("Unity", `\bunity\b`),
		tech("ARCore", `\bar\s*core\b`),
		tech("Firebase", `\bfirebase\b`),
		tech("gRPC", `\bgrpc\b`),
		tech("Apache Kafka", `\bkafka\b`),
		tech("ROS", `\bros\b`),
	}
}

var conceptStopWords = []string{
	"the", "a", "an", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might", "must", "shall",
	"can", "need", "dare", "ought", "used", "to", "of", "in", "for", "on", "with", "at", "by",
	"from", "as", "into", "through", "during", "before", "after", "above", "below", "between",
	"under", "again", "further", "then", "once", "and", "but", "or", "nor", "so", "yet", "both",
	"either", "neither", "not", "only", "own", "same", "than", "too", "very", "just", "that",
	"this", "these", "those", "such", "what", "which", "who", "whom", "whose", "when", "where",
	"why", "how",
}

var titleStopWords = []string{
	"the", "a", "an", "for", "of", "in", "on", "with", "using", "based", "and", "to",
}

// densityStopWords also drops words that appear in nearly every project write-up
var densityStopWords = []string{
	"the", "and", "a", "an", "of", "to", "in", "is", "for", "on", "with", "as", "by",
	"at", "from", "it", "that", "this", "be", "was", "are", "or", "which", "project",
	"system", "using", "based", "proposed", "paper", "implementation", "design", "development",
}

var methodologyTerms = []string{
	"neural network", "cnn", "deep learning", "machine learning", "detection", "classification",
	"training", "model", "algorithm", "analysis", "processing", "optimization", "framework",
	"architecture", "pipeline", "workflow", "implementation", "validation", "testing",
}

var commonKeywords = []string{
	"machine learning", "deep learning", "artificial intelligence", "neural network",
	"blockchain", "smart contract", "iot", "sensor", "cloud computing",
	"natural language processing", "computer vision", "classification",
	"detection", "prediction", "analysis", "optimization", "monitoring",
	"automation", "security", "privacy", "healthcare", "education",
	"agriculture", "manufacturing", "traffic", "management",
}

var defaultIntentRules = []intentRule{
	{label: "Research & Analysis", triggers: []string{"dataset", "survey", "review", "analysis", "study", "comparison"}},
	{label: "Software Development", triggers: []string{"implementation", "application", "tool", "system", "platform", "software"}},
	{label: "AI/ML Modeling", triggers: []string{"model", "algorithm", "neural network", "machine learning", "deep learning"}},
	{label: "System Design", triggers: []string{"architecture", "framework", "schema", "design"}},
}

const defaultIntent = "General Implementation"
