package ecosystem

import (
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
)

// CommunityDetector assigns every node of a graph a community id.
type CommunityDetector interface {
	Detect(g *Graph) map[string]int
}

// Louvain runs gonum's modularity optimisation. Its internal source of
// randomness is not seeded, so ids may differ between runs.
type Louvain struct {
	Resolution float64
}

func NewLouvain(resolution float64) Louvain {
	if resolution <= 0 {
		resolution = 1
	}
	return Louvain{Resolution: resolution}
}

func (l Louvain) Detect(g *Graph) map[string]int {
	out := make(map[string]int, g.NodeCount())
	if g.NodeCount() == 0 {
		return out
	}

	var groups [][]graph.Node
	if g.EdgeCount() > 0 {
		groups = community.Modularize(g.g, l.Resolution, nil).Communities()
	}

	next := 0
	for _, grp := range groups {
		if len(grp) == 0 {
			continue
		}
		for _, n := range grp {
			out[g.name(n)] = next
		}
		next++
	}

	// Nodes the detector did not place become singletons.
	for _, s := range g.names {
		if _, ok := out[s]; ok {
			continue
		}
		out[s] = next
		next++
	}
	return out
}

type Assignment struct {
	Skill     string `json:"skill"`
	Community int    `json:"community"`
}

type Community struct {
	ID     int      `json:"id"`
	Size   int      `json:"size"`
	Skills []string `json:"skills"`
}

type Partition struct {
	Assignments    []Assignment `json:"assignments"`
	Communities    []Community  `json:"communities"`
	CommunityCount int          `json:"community_count"`
	Modularity     float64      `json:"modularity"`
}

// Partitions groups a detector's raw assignment. Communities are renumbered by
// size (largest first, ties by first skill name) so the output is readable;
// membership is left exactly as detected.
func Partitions(g *Graph, raw map[string]int, resolution float64) Partition {
	byRaw := make(map[int][]string)
	for _, s := range g.names {
		id, ok := raw[s]
		if !ok {
			continue
		}
		byRaw[id] = append(byRaw[id], s)
	}

	groups := make([][]string, 0, len(byRaw))
	for _, members := range byRaw {
		slices.Sort(members)
		groups = append(groups, members)
	}
	slices.SortFunc(groups, func(a, b []string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a[0], b[0])
	})

	p := Partition{
		Assignments:    make([]Assignment, 0, len(raw)),
		Communities:    make([]Community, 0, len(groups)),
		CommunityCount: len(groups),
	}
	for id, members := range groups {
		p.Communities = append(p.Communities, Community{ID: id, Size: len(members), Skills: members})
		for _, s := range members {
			p.Assignments = append(p.Assignments, Assignment{Skill: s, Community: id})
		}
	}
	p.Modularity = g.modularity(groups, resolution)
	return p
}

func (g *Graph) modularity(groups [][]string, resolution float64) float64 {
	if g.EdgeCount() == 0 || len(groups) == 0 {
		return 0
	}
	comms := make([][]graph.Node, 0, len(groups))
	for _, members := range groups {
		nodes := make([]graph.Node, 0, len(members))
		for _, s := range members {
			if n, ok := g.node(s); ok {
				nodes = append(nodes, n)
			}
		}
		comms = append(comms, nodes)
	}
	q := community.Q(g.g, comms, resolution)
	if math.IsNaN(q) {
		return 0
	}
	return q
}
