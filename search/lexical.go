package search

import (
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/poiesic/notematch/core"
)

// Lexical ranks vocabulary terms against the query using fuzzy string
// matching. Three passes feed a max-merge: a substring pass that pins
// containment matches to a perfect score, a per-token edit-distance pass,
// and a whole-query pass that catches multi-word terms. A term matched by
// several passes keeps its single best score; matching the same surface
// string more ways is not stronger evidence.
//
// Scores are in [0,1]. The result is sorted by descending score, ties in
// catalog order, and truncated to limit.
func Lexical(query string, terms []string, limit int, cfg Config) []core.MatchCandidate {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}

	board := newScoreBoard()
	tokens := tokenize(normalized, cfg.MinTokenLength)

	for _, token := range tokens {
		// Containment in either direction is a hard match: "berry" inside
		// "berrylicious" just as much as "berrylicious" around "berry".
		for _, term := range terms {
			if strings.Contains(token, term) || strings.Contains(term, token) {
				board.max(term, 1.0)
			}
		}
		for _, match := range fuzzyTop(token, terms, cfg.FuzzyLimit, cfg.TokenCutoff) {
			board.max(match.Term, match.Score/100)
		}
	}

	// The whole-query pass uses a lower cutoff: a query spanning a
	// multi-word term scores lower per character than a single token
	// would, so the per-token bar would miss it.
	for _, match := range fuzzyTop(normalized, terms, cfg.FuzzyLimit, cfg.QueryCutoff) {
		board.max(match.Term, match.Score/100)
	}

	return board.candidates(limit)
}

// fuzzyTop scores needle against every term on the 0-100 similarity scale
// and keeps the top limit matches at or above cutoff. Terms are scanned in
// catalog order so equal scores rank deterministically.
func fuzzyTop(needle string, terms []string, limit int, cutoff float64) []core.MatchCandidate {
	board := newScoreBoard()
	for _, term := range terms {
		similarity, err := edlib.StringsSimilarity(needle, term, edlib.Levenshtein)
		if err != nil {
			continue
		}
		score := float64(similarity) * 100
		if score >= cutoff {
			board.max(term, score)
		}
	}
	return board.candidates(limit)
}
