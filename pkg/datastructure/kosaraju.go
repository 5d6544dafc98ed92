package datastructure

// StronglyConnectedComponents. kosaraju's algorithm over the vertices of g. returns the component id of every vertex
// and the number of components. component ids are in topological order of the condensation graph.
func (g *Graph) StronglyConnectedComponents() ([]Index, int) {
	n := Index(g.NumberOfVertices())

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < n; v++ {
		if !visited[v] {
			g.dfs(v, &order, visited, false)
		}
	}

	// reset visited
	visited = make([]bool, n)
	sccs := make([]Index, n)
	numComponents := 0

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if visited[v] {
			continue
		}
		component := make([]Index, 0, 10)
		g.dfs(v, &component, visited, true)
		for _, u := range component {
			sccs[u] = Index(numComponents)
		}
		numComponents++
	}

	return sccs, numComponents
}

func (g *Graph) dfs(v Index, output *[]Index, visited []bool, reversed bool) {
	visited[v] = true

	if !reversed {
		g.ForOutEdgesOf(v, func(e *OutEdge) {
			if !visited[e.head] {
				g.dfs(e.head, output, visited, reversed)
			}
		})
	} else {
		g.ForInEdgesOf(v, func(e *InEdge) {
			if !visited[e.tail] {
				g.dfs(e.tail, output, visited, reversed)
			}
		})
	}

	*output = append(*output, v)
}

// LargestComponent. membership mask of the biggest strongly connected component, ties go to the lowest component id.
func (g *Graph) LargestComponent() []bool {
	sccs, numComponents := g.StronglyConnectedComponents()
	size := make([]int, numComponents)
	for _, c := range sccs {
		size[c]++
	}

	best := 0
	for c := 1; c < numComponents; c++ {
		if size[c] > size[best] {
			best = c
		}
	}

	keep := make([]bool, len(sccs))
	for v, c := range sccs {
		keep[v] = int(c) == best
	}
	return keep
}

// Subgraph. new graph induced by the vertices with keep[v] set. vertex ids are renumbered in increasing order and
// parallel edges keep their relative order.
func (g *Graph) Subgraph(keep []bool) *Graph {
	newId := make([]Index, g.NumberOfVertices())
	vertexData := make([]VertexData, 0, g.NumberOfVertices())
	for v := 0; v < g.NumberOfVertices(); v++ {
		if !keep[v] {
			continue
		}
		newId[v] = Index(len(vertexData))
		vert := g.vertices[v]
		vertexData = append(vertexData, NewVertexData(vert.lat, vert.lon, vert.osmId))
	}

	edges := make([]Edge, 0, g.NumberOfEdges())
	for edgeId, e := range g.outEdges {
		tail := g.tails[edgeId]
		if !keep[tail] || !keep[e.head] {
			continue
		}
		edges = append(edges, NewEdge(newId[tail], newId[e.head], e.weight, e.dist, e.category))
	}

	return BuildGraph(vertexData, edges)
}
