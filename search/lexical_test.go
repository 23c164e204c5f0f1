package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTerms() []string {
	return []string{
		"berry",
		"chocolate",
		"jammy",
		"funky",
		"stone fruit",
		"brown sugar",
		"winey",
	}
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	tokens := tokenize("a Hint OF Berry in it", 3)
	assert.Equal(t, []string{"hint", "berry"}, tokens)
}

func TestTokenizeEmptyQuery(t *testing.T) {
	assert.Empty(t, tokenize("   ", 3))
	assert.Empty(t, tokenize("", 3))
}

func TestLexicalSubstringIsPerfectScore(t *testing.T) {
	results := Lexical("berrylicious", testTerms(), 10, DefaultConfig())

	require.NotEmpty(t, results)
	assert.Equal(t, "berry", results[0].Term)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestLexicalSubstringBothDirections(t *testing.T) {
	// The query token sits inside the vocabulary term this time.
	results := Lexical("fun", []string{"funky"}, 10, DefaultConfig())

	require.Len(t, results, 1)
	assert.Equal(t, "funky", results[0].Term)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestLexicalRecoversTypo(t *testing.T) {
	results := Lexical("choclate", testTerms(), 10, DefaultConfig())

	require.NotEmpty(t, results)
	assert.Equal(t, "chocolate", results[0].Term)
	assert.GreaterOrEqual(t, results[0].Score, 0.6)
	assert.Less(t, results[0].Score, 1.0)
}

func TestLexicalEmptyQuery(t *testing.T) {
	assert.Empty(t, Lexical("", testTerms(), 10, DefaultConfig()))
	assert.Empty(t, Lexical("   ", testTerms(), 10, DefaultConfig()))
}

func TestLexicalNoMatchForUnrelatedQuery(t *testing.T) {
	results := Lexical("xylophone", testTerms(), 10, DefaultConfig())
	assert.Empty(t, results)
}

func TestLexicalRespectsLimit(t *testing.T) {
	terms := []string{"berry", "berry jam", "berrylike", "blueberry", "strawberry"}
	results := Lexical("berry", terms, 2, DefaultConfig())
	assert.Len(t, results, 2)
}

func TestLexicalMaxMergeKeepsBestScore(t *testing.T) {
	// "jammy berry" matches "berry" by substring (1.0) and fuzzily at a
	// lower score; the term must appear once with the substring score.
	results := Lexical("jammy berry", testTerms(), 10, DefaultConfig())

	seen := map[string]float64{}
	for _, r := range results {
		_, dup := seen[r.Term]
		assert.False(t, dup, "term %q ranked twice", r.Term)
		seen[r.Term] = r.Score
	}
	assert.Equal(t, 1.0, seen["berry"])
	assert.Equal(t, 1.0, seen["jammy"])
}

func TestLexicalWholeQueryPassCatchesMultiWordTerms(t *testing.T) {
	// Per-token matching cannot score "stone fruit" well from either
	// token alone below the substring path; the whole-query pass can.
	results := Lexical("stone fruits", testTerms(), 10, DefaultConfig())

	found := false
	for _, r := range results {
		if r.Term == "stone fruit" {
			found = true
		}
	}
	assert.True(t, found, "expected whole-query pass to surface %q", "stone fruit")
}

func TestLexicalDeterministicOrdering(t *testing.T) {
	first := Lexical("berry chocolate", testTerms(), 10, DefaultConfig())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Lexical("berry chocolate", testTerms(), 10, DefaultConfig()))
	}
}

func TestLexicalTieBreaksInCatalogOrder(t *testing.T) {
	// Both terms contain the token, so both score exactly 1.0. Catalog
	// order must decide.
	terms := []string{"winey", "berry notes", "berry jam"}
	results := Lexical("berry", terms, 10, DefaultConfig())

	require.Len(t, results, 2)
	assert.Equal(t, "berry notes", results[0].Term)
	assert.Equal(t, "berry jam", results[1].Term)
}

func TestFuzzyTopHonorsCutoff(t *testing.T) {
	matches := fuzzyTop("berry", []string{"berry", "chocolate"}, 5, 60)

	require.Len(t, matches, 1)
	assert.Equal(t, "berry", matches[0].Term)
	assert.Equal(t, 100.0, matches[0].Score)
}
