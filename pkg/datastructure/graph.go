package datastructure

import (
	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
)

type Index uint32

type Vertex struct {
	lat      float64
	lon      float64
	firstOut Index // index of the first outEdge of this vertex in the flattened graph.outEdges array
	firstIn  Index // index of the first inEdge of this vertex in the flattened graph.inEdges array
	id       Index
	osmId    int64
}

func NewVertex(lat, lon float64, id Index) *Vertex {
	return &Vertex{
		lat: lat,
		lon: lon,
		id:  id,
	}
}

func (v *Vertex) GetID() Index {
	return v.id
}

func (v *Vertex) GetOsmID() int64 {
	return v.osmId
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetFirstOut() Index {
	return v.firstOut
}

func (v *Vertex) GetFirstIn() Index {
	return v.firstIn
}

// OutEdge. directed edge (tail, head, key). key is the index among the parallel edges tail->head.
type OutEdge struct {
	weight   float64 // estimated travel time, second
	dist     float64 // meter
	edgeId   Index
	head     Index
	category pkg.RoadCategory
	key      uint16
}

type InEdge struct {
	edgeId Index // id of the matching OutEdge
	tail   Index
}

func NewOutEdge(edgeId, head Index, weight, dist float64, category pkg.RoadCategory, key uint16) *OutEdge {
	return &OutEdge{
		edgeId:   edgeId,
		head:     head,
		weight:   weight,
		dist:     dist,
		category: category,
		key:      key,
	}
}

func NewInEdge(edgeId, tail Index) *InEdge {
	return &InEdge{
		edgeId: edgeId,
		tail:   tail,
	}
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

// GetEdgeSpeed. meter per second
func (e *OutEdge) GetEdgeSpeed() float64 {
	if e.weight == 0 {
		return 0
	}
	return e.dist / e.weight
}

func (e *OutEdge) GetLength() float64 {
	return e.dist
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

func (e *OutEdge) GetRoadCategory() pkg.RoadCategory {
	return e.category
}

func (e *OutEdge) GetKey() uint16 {
	return e.key
}

func (e *InEdge) GetTail() Index {
	return e.tail
}

func (e *InEdge) GetEdgeId() Index {
	return e.edgeId
}

// Graph. read-only directed multigraph in adjacency array form. vertices has one sentinel vertex at the end so
// that the outEdges of u are outEdges[vertices[u].firstOut : vertices[u+1].firstOut].
// nothing mutates a Graph after BuildGraph, so any number of queries can read it concurrently.
type Graph struct {
	vertices      []*Vertex
	outEdges      []*OutEdge
	inEdges       []*InEdge
	tails         []Index // edgeId -> tail
	neighborCount []uint32

	boundingBox *BoundingBox
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices) - 1
}

func (g *Graph) NumberOfEdges() int {
	return len(g.outEdges)
}

func (g *Graph) IsValidVertex(u Index) bool {
	return int(u) < g.NumberOfVertices()
}

func (g *Graph) GetVertex(u Index) *Vertex {
	return g.vertices[u]
}

func (g *Graph) GetVertexCoordinates(u Index) (float64, float64) {
	return g.vertices[u].lat, g.vertices[u].lon
}

func (g *Graph) GetCoordinate(u Index) geo.Coordinate {
	return geo.NewCoordinate(g.vertices[u].lat, g.vertices[u].lon)
}

func (g *Graph) GetOutDegree(u Index) Index {
	return g.vertices[u+1].firstOut - g.vertices[u].firstOut
}

func (g *Graph) GetInDegree(u Index) Index {
	return g.vertices[u+1].firstIn - g.vertices[u].firstIn
}

func (g *Graph) GetOutEdge(e Index) *OutEdge {
	return g.outEdges[e]
}

func (g *Graph) GetInEdge(e Index) *InEdge {
	return g.inEdges[e]
}

func (g *Graph) GetTailOfOutedge(e Index) Index {
	return g.tails[e]
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e *OutEdge)) {
	for e := g.vertices[u].firstOut; e < g.vertices[u+1].firstOut; e++ {
		handle(g.outEdges[e])
	}
}

func (g *Graph) ForInEdgesOf(v Index, handle func(e *InEdge)) {
	for e := g.vertices[v].firstIn; e < g.vertices[v+1].firstIn; e++ {
		handle(g.inEdges[e])
	}
}

// GetEdge. edge (u, v, key).
func (g *Graph) GetEdge(u, v Index, key uint16) (*OutEdge, bool) {
	if !g.IsValidVertex(u) {
		return nil, false
	}
	for e := g.vertices[u].firstOut; e < g.vertices[u+1].firstOut; e++ {
		if g.outEdges[e].head == v && g.outEdges[e].key == key {
			return g.outEdges[e], true
		}
	}
	return nil, false
}

// FindOutEdge. first parallel edge (key 0) from u to v.
func (g *Graph) FindOutEdge(u, v Index) (*OutEdge, bool) {
	return g.GetEdge(u, v, 0)
}

func (g *Graph) HasEdge(u, v Index) bool {
	_, ok := g.FindOutEdge(u, v)
	return ok
}

// NumberOfNeighbors. distinct successors of u plus distinct predecessors of u. a vertex on a two way road counts
// both directions, so the middle of a two way road has 4 and the middle of a one way road has 2.
func (g *Graph) NumberOfNeighbors(u Index) int {
	return int(g.neighborCount[u])
}

func (g *Graph) GetBoundingBox() *BoundingBox {
	return g.boundingBox
}

// PathDistance. length of the path in meter, following the first parallel edge of each hop.
func (g *Graph) PathDistance(path []Index) float64 {
	dist := 0.0
	for i := 1; i < len(path); i++ {
		if e, ok := g.FindOutEdge(path[i-1], path[i]); ok {
			dist += e.dist
		}
	}
	return dist
}

func (g *Graph) PathCoordinates(path []Index) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(path))
	for _, u := range path {
		coords = append(coords, g.GetCoordinate(u))
	}
	return coords
}
