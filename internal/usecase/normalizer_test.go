package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Concepts(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stop words and short words",
			text: "The system is used to detect the cars on a road",
			want: []string{"system", "detect", "cars", "road"},
		},
		{
			name: "distinct in first-seen order",
			text: "Traffic data, traffic flow and more TRAFFIC data",
			want: []string{"traffic", "data", "flow", "more"},
		},
		{
			name: "splits on punctuation and digits",
			text: "real-time analysis of 30% congestion",
			want: []string{"real", "time", "analysis", "congestion"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Concepts(tt.text))
		})
	}
}

func TestNormalizer_TitleWords(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, []string{"smart", "traffic", "management", "system"},
		n.TitleWords("Smart Traffic Management System"))
	assert.Equal(t, []string{"traffic", "management", "deep", "learning"},
		n.TitleWords("Traffic Management Using Deep Learning"))
	assert.Equal(t, []string{"data", "data"}, n.TitleWords("Data for Data"))
}

func TestNormalizer_NormalizeTechnology(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		in   string
		want string
	}{
		{"TF", "tensorflow"},
		{"  CNN ", "convolutional neural network"},
		{"k8s", "kubernetes"},
		{"React", "react"},
		{"Node.js", "node.js"},
		{"SomethingUnknown", "somethingunknown"},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeTechnology(tt.in))
		})
	}
}

func TestNormalizer_NormalizeTechnologies_DropsEmpty(t *testing.T) {
	n := NewNormalizer(nil)
	assert.Equal(t, []string{"python", "tensorflow"}, n.NormalizeTechnologies([]string{"Python", "", " ", "tf"}))
	assert.Equal(t, []string{}, n.NormalizeTechnologies(nil))
}

func TestNormalizer_NormalizeKeyword(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, "sensor", n.NormalizeKeyword("Sensors"))
	assert.Equal(t, "smart contract", n.NormalizeKeyword(" Smart Contracts "))
	assert.Equal(t, "clas", n.NormalizeKeyword("class"), "only one trailing s is stripped")
	assert.Equal(t, "traffic", n.NormalizeKeyword("traffic"))
	assert.Equal(t, []string{"iot", "drone"}, n.NormalizeKeywords([]string{"IoT", "", "drones"}))
}

func TestNewVocabulary_ExtraSynonyms(t *testing.T) {
	v := NewVocabulary(map[string]string{
		" GoLang ": "Go",
		"tf":       "tensorflow-custom",
		"":         "ignored",
		"blank":    "  ",
	})
	n := NewNormalizer(v)

	assert.Equal(t, "go", n.NormalizeTechnology("golang"))
	assert.Equal(t, "tensorflow-custom", n.NormalizeTechnology("TF"), "configured synonyms override defaults")
	assert.Equal(t, "blank", n.NormalizeTechnology("blank"))

	// the shared default vocabulary is untouched
	assert.Equal(t, "tensorflow", NewNormalizer(nil).NormalizeTechnology("tf"))
}

func TestVocabulary_Fingerprint(t *testing.T) {
	base := NewVocabulary(nil).Fingerprint()

	assert.Equal(t, base, DefaultVocabulary().Fingerprint())
	assert.Len(t, base, 64)
	assert.Equal(t, base, NewVocabulary(map[string]string{"tf": "tensorflow"}).Fingerprint(),
		"restating a default synonym changes nothing")
	assert.Equal(t,
		NewVocabulary(map[string]string{"pytorch": "torch"}).Fingerprint(),
		NewVocabulary(map[string]string{" PyTorch ": "Torch"}).Fingerprint())
	assert.NotEqual(t, base, NewVocabulary(map[string]string{"pytorch": "torch"}).Fingerprint())
	assert.NotEqual(t,
		NewVocabulary(map[string]string{"pytorch": "torch"}).Fingerprint(),
		NewVocabulary(map[string]string{"pytorch": "torch7"}).Fingerprint())
}

func TestVocabulary_AccessorsReturnCopies(t *testing.T) {
	v := NewVocabulary(nil)

	terms := v.MethodologyTerms()
	terms[0] = "mutated"
	assert.NotEqual(t, "mutated", v.MethodologyTerms()[0])

	keywords := v.CommonKeywords()
	keywords[0] = "mutated"
	assert.NotEqual(t, "mutated", v.CommonKeywords()[0])

	patterns := v.TechnologyPatterns()
	patterns[0] = TechnologyPattern{Name: "mutated"}
	assert.Equal(t, "TensorFlow", v.TechnologyPatterns()[0].Name)
}

func TestTechnologyPattern_NegativeContext(t *testing.T) {
	patterns := make(map[string]TechnologyPattern)
	for _, p := range DefaultVocabulary().TechnologyPatterns() {
		patterns[p.Name] = p
	}

	tests := []struct {
		name string
		tech string
		text string
		want bool
	}{
		{"java alone", "Java", "Backend written in Java and Spring Boot", true},
		{"javascript is not java", "Java", "Frontend in JavaScript", false},
		{"java script spaced is not java", "Java", "java script snippets", false},
		{"java after javascript", "Java", "JavaScript client, Java server", true},
		{"javascript", "JavaScript", "Written in JavaScript", true},
		{"js abbreviation", "JavaScript", "plain JS on the client", true},
		{"node.js suffix is not javascript", "JavaScript", "Node.js backend", false},
		{"web3.js suffix is not javascript", "JavaScript", "uses Web3.js", false},
		{"node without suffix", "Node.js", "a node server", true},
		{"tensorflow spaced", "TensorFlow", "Tensor Flow models", true},
		{"cnn spelled out", "CNN", "a Convolutional Neural Network", true},
		{"aws iot", "AWS IoT", "AWS IoT Core", true},
		{"postgres", "PostgreSQL", "stored in Postgres", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := patterns[tt.tech]
			if !ok {
				t.Fatalf("no pattern named %q", tt.tech)
			}
			assert.Equal(t, tt.want, p.MatchString(tt.text))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n\t b   c \r\n"))
	assert.Equal(t, "", CollapseWhitespace(" \n "))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "", truncateRunes("héllo", 0))
}
