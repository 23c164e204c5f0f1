package search

import "github.com/poiesic/notematch/core"

// Monitor observes the stages of a single search. Implementations receive
// callbacks in pipeline order after the matchers complete, on the calling
// goroutine; they must not retain the slices they are handed.
type Monitor interface {
	// SearchStarted fires once per search with the raw query.
	SearchStarted(query string)

	// LexicalCandidates fires with the lexical matcher's widened
	// candidate list.
	LexicalCandidates(candidates []core.MatchCandidate)

	// SemanticCandidates fires with the semantic matcher's widened
	// candidate list. It does not fire for a degraded search.
	SemanticCandidates(candidates []core.MatchCandidate)

	// SearchDegraded fires when the semantic matcher was unavailable and
	// the search fell back to lexical-only results.
	SearchDegraded(reason string)

	// SearchFinished fires with the final ranked results.
	SearchFinished(results []core.RankedResult)
}

// NoopMonitor is a Monitor that ignores every callback. It is the default
// for searches without an observer attached.
type NoopMonitor struct{}

func (NoopMonitor) SearchStarted(string)                     {}
func (NoopMonitor) LexicalCandidates([]core.MatchCandidate)  {}
func (NoopMonitor) SemanticCandidates([]core.MatchCandidate) {}
func (NoopMonitor) SearchDegraded(string)                    {}
func (NoopMonitor) SearchFinished([]core.RankedResult)       {}
