package bfs

import (
	"github.com/katalvlaran/georoute/core"
)

// Components partitions the vertices of g into connected components.
// Components are ordered by their first vertex in insertion order, and each
// lists its vertices in BFS visit order from that first vertex.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// ComponentIndex maps every vertex of g to the position of its component
// in Components(g).
func ComponentIndex(g *core.Graph) (map[string]int, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int, g.VertexCount())
	for i, c := range comps {
		for _, v := range c {
			idx[v] = i
		}
	}

	return idx, nil
}
