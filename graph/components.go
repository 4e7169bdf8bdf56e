package graph

import "sort"

// ConnectedComponents finds all connected components, treating directed
// edges as undirected (weak connectivity). Each component is a sorted
// slice of vertex IDs; components are ordered by size descending, ties
// broken by smallest member ID, so the result is deterministic.
//
// Time:   O(V + E)
// Memory: O(V) for visited flags and output.
func (g *Graph) ConnectedComponents() [][]string {
	seen := make(map[string]struct{}, len(g.vertices))
	var comps [][]string

	for _, start := range g.Vertices() {
		if _, ok := seen[start]; ok {
			continue
		}
		// BFS to collect component over the undirected view
		queue := []string{start}
		seen[start] = struct{}{}
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := range g.adjacency[u] {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
			for v := range g.predecessors[u] {
				if _, ok := seen[v]; !ok {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}
		return comps[i][0] < comps[j][0]
	})

	return comps
}

// NumConnectedComponents returns the number of (weakly) connected
// components.
func (g *Graph) NumConnectedComponents() int {
	return len(g.ConnectedComponents())
}

// LargestConnectedComponent returns the induced subgraph of the largest
// (weakly) connected component as a deep copy. An empty graph yields an
// empty copy.
func (g *Graph) LargestConnectedComponent() *Graph {
	comps := g.ConnectedComponents()
	if len(comps) == 0 {
		return g.Clone()
	}
	return g.Subgraph(comps[0])
}
