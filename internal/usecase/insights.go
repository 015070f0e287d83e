package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/archiveinsight/backend/internal/domain"
)

const defaultTopTerms = 10

// TermDensity returns the topN most frequent non-noise terms of text.
// Ties keep first-occurrence order.
func TermDensity(n *Normalizer, text string, topN int) []domain.TermFrequency {
	terms := n.Terms(text)

	counts := make(map[string]int, len(terms))
	order := make([]string, 0, len(terms))
	for _, t := range terms {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}

	out := make([]domain.TermFrequency, 0, len(order))
	for _, t := range order {
		out = append(out, domain.TermFrequency{Text: t, Count: counts[t]})
	}
	return out
}

// ClassifyIntent labels a project write-up with a coarse intent using the
// first vocabulary rule whose trigger appears in the text.
func ClassifyIntent(n *Normalizer, text string) string {
	lower := strings.ToLower(text)
	for _, rule := range n.Vocabulary().intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.label
			}
		}
	}
	return defaultIntent
}

// CosineSimilarity is the bag-of-words cosine similarity of two texts,
// rounded to four decimals. Either side empty gives 0.
func CosineSimilarity(n *Normalizer, a, b string) float64 {
	va := termVector(n.Terms(a))
	vb := termVector(n.Terms(b))
	if len(va) == 0 || len(vb) == 0 {
		return 0
	}

	var dot, sumA, sumB float64
	for term, ca := range va {
		sumA += float64(ca * ca)
		if cb, ok := vb[term]; ok {
			dot += float64(ca * cb)
		}
	}
	for _, cb := range vb {
		sumB += float64(cb * cb)
	}

	denominator := math.Sqrt(sumA) * math.Sqrt(sumB)
	if denominator == 0 {
		return 0
	}
	return math.Round(dot/denominator*10000) / 10000
}

func termVector(terms []string) map[string]int {
	v := make(map[string]int, len(terms))
	for _, t := range terms {
		v[t]++
	}
	return v
}
