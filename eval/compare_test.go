package eval

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/notematch/ai/mock"
	"github.com/poiesic/notematch/search"
)

func testSnapshot() search.Snapshot {
	unit := func(x float64) []float32 {
		return []float32{float32(x), float32(math.Sqrt(1 - x*x))}
	}
	return search.Snapshot{
		Terms: []string{"berry", "chocolate", "jammy", "funky"},
		Vectors: map[string][]float32{
			"berry":     unit(0.9),
			"chocolate": unit(0.1),
			"jammy":     unit(0.85),
			"funky":     unit(0.3),
		},
	}
}

func testEmbedder() *mock.MockEmbedder {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedQueryFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	return embedder
}

func TestCompareRunsAllThreeMethods(t *testing.T) {
	comparison, err := Compare(context.Background(), "berry", testEmbedder(), testSnapshot(), search.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "lexical", comparison.Lexical.Name)
	assert.Equal(t, "semantic", comparison.Semantic.Name)
	assert.Equal(t, "hybrid", comparison.Hybrid.Name)

	// "berry" is an exact lexical hit and a 0.9 semantic hit.
	require.NotEmpty(t, comparison.Lexical.Results)
	assert.Equal(t, "berry", comparison.Lexical.Results[0].Term)
	require.NotEmpty(t, comparison.Semantic.Results)
	assert.Equal(t, "berry", comparison.Semantic.Results[0].Term)
	require.NotEmpty(t, comparison.Hybrid.Results)
	assert.Equal(t, "berry", comparison.Hybrid.Results[0].Term)
}

func TestCompareRecordsTimings(t *testing.T) {
	comparison, err := Compare(context.Background(), "berry", testEmbedder(), testSnapshot(), search.DefaultConfig())
	require.NoError(t, err)

	assert.Greater(t, comparison.Lexical.Elapsed.Nanoseconds(), int64(0))
	assert.Greater(t, comparison.Semantic.Elapsed.Nanoseconds(), int64(0))
	assert.Greater(t, comparison.Hybrid.Elapsed.Nanoseconds(), int64(0))
}

func TestCompareOverlapCounts(t *testing.T) {
	// "jammy" matches semantically (0.85) but not lexically for this
	// query; "berry" matches every way.
	comparison, err := Compare(context.Background(), "berry", testEmbedder(), testSnapshot(), search.DefaultConfig())
	require.NoError(t, err)

	lexicalTerms := comparison.Lexical.Terms()
	semanticTerms := comparison.Semantic.Terms()

	assert.Contains(t, semanticTerms, "jammy")
	assert.NotContains(t, lexicalTerms, "jammy")
	assert.GreaterOrEqual(t, comparison.Overlap.AllThree, 1)
	assert.GreaterOrEqual(t, comparison.Overlap.SemanticHybrid, 2)
	assert.Empty(t, comparison.Overlap.OnlySemantic, "hybrid should absorb every semantic match here")
}

func TestCompareSemanticErrorFailsComparison(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedQueryFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("backend unreachable")
	}

	_, err := Compare(context.Background(), "berry", embedder, testSnapshot(), search.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "semantic method")
}

func TestComparisonRender(t *testing.T) {
	comparison, err := Compare(context.Background(), "berry", testEmbedder(), testSnapshot(), search.DefaultConfig())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, comparison.Render(&buf))
	output := buf.String()

	assert.Contains(t, output, `query: "berry"`)
	assert.Contains(t, output, "lexical (")
	assert.Contains(t, output, "semantic (")
	assert.Contains(t, output, "hybrid (")
	assert.Contains(t, output, "overlap:")
	assert.Contains(t, output, "berry")
}

func TestComparisonRenderEmptyResults(t *testing.T) {
	embedder := testEmbedder()
	snap := search.Snapshot{Terms: []string{"chocolate"}, Vectors: map[string][]float32{
		"chocolate": {0.1, float32(math.Sqrt(1 - 0.01))},
	}}

	comparison, err := Compare(context.Background(), "xylophone", embedder, snap, search.DefaultConfig())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, comparison.Render(&buf))
	assert.Contains(t, buf.String(), "no matches")
}
