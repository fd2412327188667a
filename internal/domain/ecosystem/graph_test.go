package ecosystem

import (
	"testing"
	"time"

	"skill-insight/internal/domain/posting"

	"github.com/stretchr/testify/assert"
)

func postings(cells ...string) []posting.Posting {
	out := make([]posting.Posting, 0, len(cells))
	for _, c := range cells {
		out = append(out, posting.New("ML Engineer", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), c))
	}
	return out
}

func TestBuild_TwoPostings(t *testing.T) {
	g := Build(postings("python, sql", "python, excel"))

	assert.Equal(t, []string{"python", "sql", "excel"}, g.Skills())
	assert.True(t, g.HasEdge("python", "sql"))
	assert.True(t, g.HasEdge("python", "excel"))
	assert.False(t, g.HasEdge("sql", "excel"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []Edge{{From: "excel", To: "python"}, {From: "python", To: "sql"}}, g.Edges())
}

func TestBuild_Symmetric(t *testing.T) {
	g := Build(postings("docker, kubernetes, go", "terraform, docker"))

	for _, e := range g.Edges() {
		assert.True(t, g.HasEdge(e.From, e.To))
		assert.True(t, g.HasEdge(e.To, e.From))
	}
}

func TestBuild_RepeatedPairsAreIdempotent(t *testing.T) {
	g := Build(postings("go, sql", "sql, go", "go, sql, go"))

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree("go"))
}

func TestBuild_IsolatedSkillIsANode(t *testing.T) {
	g := Build(postings("go, sql", "cobol"))

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 0, g.Degree("cobol"))
	assert.False(t, g.HasEdge("cobol", "go"))
	assert.False(t, g.HasEdge("missing", "go"))
}

func TestBuild_Empty(t *testing.T) {
	g := Build(nil)

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
}
