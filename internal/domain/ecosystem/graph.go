package ecosystem

import (
	"slices"
	"strings"

	"skill-insight/internal/domain/posting"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is an unweighted, undirected skill co-occurrence graph. Adding the
// same pair twice is a no-op.
type Graph struct {
	g     *simple.UndirectedGraph
	ids   map[string]int64
	names []string
}

func NewGraph() *Graph {
	return &Graph{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[string]int64),
	}
}

// Build adds every skill of every posting as a node and connects each
// unordered pair of distinct skills found in the same posting.
func Build(postings []posting.Posting) *Graph {
	g := NewGraph()
	for _, p := range postings {
		for _, s := range p.SkillList {
			g.AddSkill(s)
		}
		for i := 0; i < len(p.SkillList); i++ {
			for j := i + 1; j < len(p.SkillList); j++ {
				g.AddPair(p.SkillList[i], p.SkillList[j])
			}
		}
	}
	return g
}

func (g *Graph) AddSkill(skill string) graph.Node {
	if id, ok := g.ids[skill]; ok {
		return g.g.Node(id)
	}
	id := int64(len(g.names))
	n := simple.Node(id)
	g.g.AddNode(n)
	g.ids[skill] = id
	g.names = append(g.names, skill)
	return n
}

func (g *Graph) AddPair(a, b string) {
	if a == b {
		return
	}
	u := g.AddSkill(a)
	v := g.AddSkill(b)
	if g.g.HasEdgeBetween(u.ID(), v.ID()) {
		return
	}
	g.g.SetEdge(g.g.NewEdge(u, v))
}

func (g *Graph) HasEdge(a, b string) bool {
	u, ok := g.ids[a]
	if !ok {
		return false
	}
	v, ok := g.ids[b]
	if !ok {
		return false
	}
	return g.g.HasEdgeBetween(u, v)
}

// Skills returns node names in first-seen order.
func (g *Graph) Skills() []string {
	return slices.Clone(g.names)
}

func (g *Graph) NodeCount() int {
	return len(g.names)
}

func (g *Graph) EdgeCount() int {
	return g.g.Edges().Len()
}

func (g *Graph) Degree(skill string) int {
	id, ok := g.ids[skill]
	if !ok {
		return 0
	}
	return g.g.From(id).Len()
}

// Edges returns every edge once with endpoints in lexical order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, e := range graph.EdgesOf(g.g.Edges()) {
		a, b := g.names[e.From().ID()], g.names[e.To().ID()]
		if a > b {
			a, b = b, a
		}
		out = append(out, Edge{From: a, To: b})
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if c := strings.Compare(x.From, y.From); c != 0 {
			return c
		}
		return strings.Compare(x.To, y.To)
	})
	return out
}

func (g *Graph) name(n graph.Node) string {
	return g.names[n.ID()]
}

func (g *Graph) node(skill string) (graph.Node, bool) {
	id, ok := g.ids[skill]
	if !ok {
		return nil, false
	}
	return g.g.Node(id), true
}
