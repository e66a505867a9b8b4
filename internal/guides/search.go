package guides

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxFuzzyRatio is the normalized edit distance above which a fuzzy
// candidate is rejected.
const maxFuzzyRatio = 0.34

// Search filters guides by query. Substring matches on title, slug,
// topic name, and tags rank first; close fuzzy matches on individual
// title words follow. An empty query returns the full catalog.
func (l *Library) Search(query string) []Guide {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return l.All()
	}

	type scored struct {
		guide Guide
		rank  int // 0 substring, 1 fuzzy
		pos   int // catalog position, stable tiebreak
	}
	var hits []scored

	for i, g := range l.guides {
		switch {
		case substringMatch(g, q):
			hits = append(hits, scored{g, 0, i})
		case fuzzyMatch(g, q):
			hits = append(hits, scored{g, 1, i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		return hits[i].pos < hits[j].pos
	})

	out := make([]Guide, len(hits))
	for i, h := range hits {
		out[i] = h.guide
	}
	return out
}

func substringMatch(g Guide, q string) bool {
	if strings.Contains(strings.ToLower(g.Title), q) {
		return true
	}
	if strings.Contains(g.Slug, q) {
		return true
	}
	if strings.Contains(strings.ToLower(TopicName(g.Topic)), q) {
		return true
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func fuzzyMatch(g Guide, q string) bool {
	words := strings.Fields(strings.ToLower(g.Title))
	words = append(words, g.Tags...)
	for _, w := range words {
		w = strings.ToLower(w)
		dist := levenshtein.ComputeDistance(w, q)
		maxlen := len(w)
		if len(q) > maxlen {
			maxlen = len(q)
		}
		if maxlen == 0 {
			continue
		}
		if float64(dist)/float64(maxlen) <= maxFuzzyRatio {
			return true
		}
	}
	return false
}
