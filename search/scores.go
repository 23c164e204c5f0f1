package search

import (
	"sort"

	"github.com/poiesic/notematch/core"
)

// scoreBoard accumulates per-term scores while remembering the order in
// which terms were first seen. Because every code path feeds it terms in
// catalog order and ranking uses a stable sort, equal scores always resolve
// to the same ordering, so repeated searches over the same vocabulary are
// byte-for-byte identical.
type scoreBoard struct {
	order  []string
	scores map[string]float64
}

func newScoreBoard() *scoreBoard {
	return &scoreBoard{scores: make(map[string]float64)}
}

// max records score for term, keeping the strongest evidence seen so far.
// Used within the lexical matcher, where passes corroborate rather than
// compound.
func (b *scoreBoard) max(term string, score float64) {
	current, seen := b.scores[term]
	if !seen {
		b.order = append(b.order, term)
		b.scores[term] = score
		return
	}
	if score > current {
		b.scores[term] = score
	}
}

// add sums score into term's running total. Used by fusion, where agreement
// between independent matchers is itself evidence.
func (b *scoreBoard) add(term string, score float64) {
	if _, seen := b.scores[term]; !seen {
		b.order = append(b.order, term)
	}
	b.scores[term] += score
}

// ranked returns the terms sorted by descending score, truncated to limit.
// Ties keep first-seen order.
func (b *scoreBoard) ranked(limit int) []core.RankedResult {
	results := make([]core.RankedResult, 0, len(b.order))
	for _, term := range b.order {
		results = append(results, core.RankedResult{Term: term, Score: b.scores[term]})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// candidates is like ranked but in the intermediate matcher shape.
func (b *scoreBoard) candidates(limit int) []core.MatchCandidate {
	ranked := b.ranked(limit)
	out := make([]core.MatchCandidate, len(ranked))
	for i, r := range ranked {
		out[i] = core.MatchCandidate{Term: r.Term, Score: r.Score}
	}
	return out
}
