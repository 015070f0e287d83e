package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredProposal = `Title: Smart Irrigation Controller

Technologies Used: Python, Raspberry Pi, TensorFlow, InfluxDB

Problem Statement:
Farms waste water because irrigation
runs on fixed timers.

Objective - Schedule irrigation from live soil moisture readings.

Methodology: Sensor nodes report soil moisture; a model predicts demand.
Expected Outcome: 20% less water used.
Keywords: irrigation; soil moisture | IoT, "sensors"
Conclusion: Worth piloting.`

func TestFieldExtractor_Extract_StructuredDocument(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	info := e.Extract(structuredProposal, "proposal.pdf")

	assert.Equal(t, "Smart Irrigation Controller", info.Title)
	assert.Equal(t, []string{"TensorFlow", "Python", "InfluxDB", "Raspberry Pi"}, info.Technologies)
	assert.Equal(t, "Farms waste water because irrigation runs on fixed timers.", info.ProblemStatement)
	assert.Equal(t, "Schedule irrigation from live soil moisture readings.", info.Objective)
	assert.Equal(t, "Sensor nodes report soil moisture; a model predicts demand.", info.Approach)
	assert.Equal(t, info.Approach, info.Methodology)
	assert.Equal(t, "20% less water used.", info.ExpectedOutcome)
	assert.Equal(t, []string{"irrigation", "soil moisture", "IoT", "sensors"}, info.Keywords)
}

func TestFieldExtractor_Extract_MissingSections(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	info := e.Extract("Just a few words about nothing in particular.\nSecond line here.", "my_cool-project.docx")

	assert.Equal(t, "Just a few words about nothing in particular.", info.Title)
	assert.Equal(t, ProblemStatementNotFound, info.ProblemStatement)
	assert.Equal(t, ObjectiveNotFound, info.Objective)
	assert.Equal(t, ApproachNotFound, info.Approach)
	assert.Equal(t, ApproachNotFound, info.Methodology)
	assert.Equal(t, ExpectedOutcomeNotFound, info.ExpectedOutcome)
	assert.NotNil(t, info.Technologies)
	assert.Empty(t, info.Technologies)
	assert.NotNil(t, info.Keywords)
	assert.Empty(t, info.Keywords)
}

func TestFieldExtractor_Extract_EmptyTextUsesDefaultRecord(t *testing.T) {
	e := NewFieldExtractor(nil, true)

	for _, text := range []string{"", "   \n\t  "} {
		info := e.Extract(text, "final_year-report.pdf")
		assert.Equal(t, DefaultDocumentInfo("final_year-report.pdf"), info)
		assert.Equal(t, "final year report", info.Title)
		assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, info.Technologies)
		assert.Equal(t, []string{"innovation", "novel", "unique", "new approach"}, info.Keywords)
	}
}

func TestFieldExtractor_Title(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	tests := []struct {
		name     string
		text     string
		filename string
		want     string
	}{
		{
			name:     "explicit title line",
			text:     "Some heading\nProject Title: Drone Delivery Network\nBody",
			filename: "x.pdf",
			want:     "Drone Delivery Network",
		},
		{
			name:     "title label on its own line",
			text:     "TITLE\nDrone Delivery Network\n\nAbstract\nStuff",
			filename: "x.pdf",
			want:     "Drone Delivery Network",
		},
		{
			name:     "header first line falls back to filename",
			text:     "Abstract\nDrone Delivery Network\nmore",
			filename: "drone_delivery.pdf",
			want:     "drone delivery",
		},
		{
			name:     "body sentence under a header is not a title",
			text:     "\n\nAbstract\nWe route parcels by drone.\n",
			filename: "parcel-drones.docx",
			want:     "parcel drones",
		},
		{
			name:     "first line with colon falls back to filename",
			text:     "Note: draft version\nDrone Delivery Network",
			filename: "drone-delivery_network.pdf",
			want:     "drone delivery network",
		},
		{
			name:     "overlong first line falls back to filename",
			text:     strings.Repeat("word ", 40),
			filename: "long.txt",
			want:     "long",
		},
		{
			name:     "no filename either",
			text:     "Note: draft",
			filename: "",
			want:     "Untitled Project",
		},
		{
			name:     "path in filename",
			text:     "Note: draft",
			filename: "/tmp/uploads/smart_bin.pdf",
			want:     "smart bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text, tt.filename).Title)
		})
	}
}

func TestFieldExtractor_Technologies(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "library order regardless of text order",
			text: "We use OpenCV with Python and TensorFlow.",
			want: []string{"TensorFlow", "Python", "OpenCV"},
		},
		{
			name: "node.js does not imply javascript",
			text: "Tech Stack: React, Node.js, MongoDB",
			want: []string{"React", "Node.js", "MongoDB"},
		},
		{
			name: "java and javascript together",
			text: "Written in Java with a JavaScript client.",
			want: []string{"JavaScript", "Java"},
		},
		{
			name: "no duplicates",
			text: "Python python PYTHON\nTechnologies: Python",
			want: []string{"Python"},
		},
		{
			name: "no technologies",
			text: "A study of medieval poetry.",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Extract(tt.text, "doc.txt").Technologies)
		})
	}
}

func TestFieldExtractor_Keywords(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	t.Run("explicit list filters one-letter entries", func(t *testing.T) {
		info := e.Extract("Keywords: a, deep learning, , x, traffic", "doc.txt")
		assert.Equal(t, []string{"deep learning", "traffic"}, info.Keywords)
	})

	t.Run("explicit list that filters to nothing falls back to vocabulary", func(t *testing.T) {
		info := e.Extract("Keywords: a, b\nThis is about traffic monitoring and automation.", "doc.txt")
		assert.Equal(t, []string{"monitoring", "automation", "traffic"}, info.Keywords)
	})

	t.Run("vocabulary scan in vocabulary order", func(t *testing.T) {
		info := e.Extract("Security analysis for blockchain based healthcare records.", "doc.txt")
		assert.Equal(t, []string{"blockchain", "analysis", "security", "healthcare"}, info.Keywords)
	})
}

func TestFieldExtractor_SectionTruncation(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	long := strings.Repeat("a", 700)
	info := e.Extract("Problem Statement: "+long, "doc.txt")

	require.Len(t, []rune(info.ProblemStatement), maxSectionLength)
}

func TestFieldExtractor_NumberedHeadersAndCRLF(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	text := "1. Problem Statement\r\nCities are congested.\r\n2) Objectives:\r\nReduce waiting time.\r\n3. Proposed System - Adaptive signals.\r\n"
	info := e.Extract(text, "doc.txt")

	assert.Equal(t, "Cities are congested.", info.ProblemStatement)
	assert.Equal(t, "Reduce waiting time.", info.Objective)
	assert.Equal(t, "Adaptive signals.", info.Approach)
}

func TestFieldExtractor_EmptySectionUsesLaterOne(t *testing.T) {
	e := NewFieldExtractor(nil, false)

	text := "Objective:\nMethodology: Surveys.\nGoals: Map demand."
	info := e.Extract(text, "doc.txt")

	assert.Equal(t, "Map demand.", info.Objective)
	assert.Equal(t, "Surveys.", info.Approach)
}

func TestFieldExtractor_IsDeterministic(t *testing.T) {
	e := NewFieldExtractor(nil, false)
	first := e.Extract(structuredProposal, "proposal.pdf")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(structuredProposal, "proposal.pdf"))
	}
}
