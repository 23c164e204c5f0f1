package eval

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/poiesic/notematch/core"
	"github.com/poiesic/notematch/search"
)

// MethodReport holds one matching method's output for a query, with the
// wall-clock time the method took. Timings include the embedding call for
// the methods that make one, so lexical will usually look unfairly fast;
// that is the honest number for capacity planning.
type MethodReport struct {
	Name    string
	Results []core.RankedResult
	Elapsed time.Duration
}

// Terms returns the matched terms in rank order.
func (r MethodReport) Terms() []string {
	terms := make([]string, len(r.Results))
	for i, result := range r.Results {
		terms[i] = result.Term
	}
	return terms
}

// OverlapReport counts agreement between the three methods and lists the
// terms each method found that the others missed.
type OverlapReport struct {
	LexicalSemantic int
	LexicalHybrid   int
	SemanticHybrid  int
	AllThree        int

	OnlyLexical  []string
	OnlySemantic []string
	OnlyHybrid   []string
}

// Comparison is the result of running all three matching methods against
// the same vocabulary snapshot for one query.
type Comparison struct {
	Query    string
	Lexical  MethodReport
	Semantic MethodReport
	Hybrid   MethodReport
	Overlap  OverlapReport
}

// Compare runs lexical-only, semantic-only, and hybrid matching over the
// same snapshot and reports their rankings, timings, and overlap. The
// methods run sequentially so their timings do not contend with each
// other; semantic and hybrid each make their own embedding call because a
// shared one would understate hybrid's real latency.
func Compare(ctx context.Context, query string, embedder search.QueryEmbedder, snap search.Snapshot, cfg search.Config) (*Comparison, error) {
	comparison := &Comparison{Query: query}

	started := time.Now()
	lexical := search.Lexical(query, snap.Terms, cfg.Limit, cfg)
	comparison.Lexical = MethodReport{
		Name:    "lexical",
		Results: asRanked(lexical),
		Elapsed: time.Since(started),
	}

	started = time.Now()
	semantic, err := search.Semantic(ctx, query, embedder, snap, cfg.Limit, cfg.VectorThreshold)
	if err != nil {
		return nil, fmt.Errorf("semantic method: %w", err)
	}
	comparison.Semantic = MethodReport{
		Name:    "semantic",
		Results: asRanked(semantic),
		Elapsed: time.Since(started),
	}

	started = time.Now()
	hybrid, err := search.Hybrid(ctx, query, embedder, snap, cfg)
	if err != nil {
		return nil, fmt.Errorf("hybrid method: %w", err)
	}
	comparison.Hybrid = MethodReport{
		Name:    "hybrid",
		Results: hybrid,
		Elapsed: time.Since(started),
	}

	comparison.Overlap = overlap(comparison.Lexical, comparison.Semantic, comparison.Hybrid)
	return comparison, nil
}

func asRanked(candidates []core.MatchCandidate) []core.RankedResult {
	results := make([]core.RankedResult, len(candidates))
	for i, c := range candidates {
		results[i] = core.RankedResult{Term: c.Term, Score: c.Score}
	}
	return results
}

func overlap(lexical, semantic, hybrid MethodReport) OverlapReport {
	inLexical := toSet(lexical.Terms())
	inSemantic := toSet(semantic.Terms())
	inHybrid := toSet(hybrid.Terms())

	report := OverlapReport{}
	for _, term := range lexical.Terms() {
		if inSemantic[term] {
			report.LexicalSemantic++
		}
		if inHybrid[term] {
			report.LexicalHybrid++
		}
		if inSemantic[term] && inHybrid[term] {
			report.AllThree++
		}
		if !inSemantic[term] && !inHybrid[term] {
			report.OnlyLexical = append(report.OnlyLexical, term)
		}
	}
	for _, term := range semantic.Terms() {
		if inHybrid[term] {
			report.SemanticHybrid++
		}
		if !inLexical[term] && !inHybrid[term] {
			report.OnlySemantic = append(report.OnlySemantic, term)
		}
	}
	for _, term := range hybrid.Terms() {
		if !inLexical[term] && !inSemantic[term] {
			report.OnlyHybrid = append(report.OnlyHybrid, term)
		}
	}
	return report
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		set[term] = true
	}
	return set
}

// Render writes the comparison as aligned text tables, one per method,
// followed by an overlap summary.
func (c *Comparison) Render(w io.Writer) error {
	fmt.Fprintf(w, "query: %q\n\n", c.Query)

	for _, report := range []MethodReport{c.Lexical, c.Semantic, c.Hybrid} {
		if err := renderMethod(w, report); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "overlap:")
	fmt.Fprintf(w, "  lexical/semantic: %d\n", c.Overlap.LexicalSemantic)
	fmt.Fprintf(w, "  lexical/hybrid:   %d\n", c.Overlap.LexicalHybrid)
	fmt.Fprintf(w, "  semantic/hybrid:  %d\n", c.Overlap.SemanticHybrid)
	fmt.Fprintf(w, "  all three:        %d\n", c.Overlap.AllThree)
	renderUnique(w, "only lexical", c.Overlap.OnlyLexical)
	renderUnique(w, "only semantic", c.Overlap.OnlySemantic)
	renderUnique(w, "only hybrid", c.Overlap.OnlyHybrid)
	return nil
}

func renderMethod(w io.Writer, report MethodReport) error {
	fmt.Fprintf(w, "%s (%s):\n", report.Name, report.Elapsed.Round(time.Microsecond))
	if len(report.Results) == 0 {
		fmt.Fprintln(w, "  no matches")
		fmt.Fprintln(w)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, result := range report.Results {
		fmt.Fprintf(tw, "  %d.\t%s\t%.4f\n", i+1, result.Term, result.Score)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func renderUnique(w io.Writer, label string, terms []string) {
	if len(terms) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s: %v\n", label, terms)
}
