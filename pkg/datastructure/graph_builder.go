package datastructure

import (
	"math"
	"sort"

	"github.com/lintang-b-s/quickestpath/pkg"
)

// Edge. edge handed over by a graph provider (osm parser, mysql store, tests) before the graph is built.
type Edge struct {
	From       Index
	To         Index
	TravelTime float64 // second
	Distance   float64 // meter
	Category   pkg.RoadCategory
}

func NewEdge(from, to Index, travelTime, distance float64, category pkg.RoadCategory) Edge {
	return Edge{
		From:       from,
		To:         to,
		TravelTime: travelTime,
		Distance:   distance,
		Category:   category,
	}
}

// VertexData. coordinate and osm id of the vertex with the same position in the slice.
type VertexData struct {
	Lat   float64
	Lon   float64
	OsmID int64
}

func NewVertexData(lat, lon float64, osmID int64) VertexData {
	return VertexData{Lat: lat, Lon: lon, OsmID: osmID}
}

/*
BuildGraph. build the adjacency array graph. edges keep their relative order per tail, so parallel edges u->v get
keys 0,1,... in input order. every Edge endpoint must be < len(vertexData).
*/
func BuildGraph(vertexData []VertexData, edges []Edge) *Graph {
	numV := len(vertexData)

	var (
		outEdges  [][]*OutEdge = make([][]*OutEdge, numV)
		inEdgeIds [][]Index    = make([][]Index, numV)
		vertices  []*Vertex    = make([]*Vertex, numV+1)
	)

	for v := 0; v < numV; v++ {
		vertices[v] = NewVertex(vertexData[v].Lat, vertexData[v].Lon, Index(v))
		vertices[v].osmId = vertexData[v].OsmID
	}
	vertices[numV] = NewVertex(0, 0, Index(numV))

	sortedEdges := make([]Edge, len(edges))
	copy(sortedEdges, edges)
	sort.SliceStable(sortedEdges, func(i, j int) bool {
		return sortedEdges[i].From < sortedEdges[j].From
	})

	parallel := make(map[[2]Index]uint16)
	flatOut := make([]*OutEdge, 0, len(sortedEdges))
	tails := make([]Index, 0, len(sortedEdges))
	for _, e := range sortedEdges {
		pair := [2]Index{e.From, e.To}
		key := parallel[pair]
		parallel[pair] = key + 1

		edgeId := Index(len(flatOut))
		outEdge := NewOutEdge(edgeId, e.To, e.TravelTime, e.Distance, e.Category, key)
		outEdges[e.From] = append(outEdges[e.From], outEdge)
		inEdgeIds[e.To] = append(inEdgeIds[e.To], edgeId)

		flatOut = append(flatOut, outEdge)
		tails = append(tails, e.From)
	}

	flatIn := make([]*InEdge, 0, len(sortedEdges))
	outOffset, inOffset := Index(0), Index(0)
	for v := 0; v < numV; v++ {
		vertices[v].firstOut = outOffset
		vertices[v].firstIn = inOffset
		outOffset += Index(len(outEdges[v]))
		for _, edgeId := range inEdgeIds[v] {
			flatIn = append(flatIn, NewInEdge(edgeId, tails[edgeId]))
		}
		inOffset += Index(len(inEdgeIds[v]))
	}
	vertices[numV].firstOut = outOffset
	vertices[numV].firstIn = inOffset

	g := &Graph{
		vertices: vertices,
		outEdges: flatOut,
		inEdges:  flatIn,
		tails:    tails,
	}
	g.neighborCount = countNeighbors(g)
	g.boundingBox = computeBoundingBox(vertexData)
	return g
}

func countNeighbors(g *Graph) []uint32 {
	counts := make([]uint32, g.NumberOfVertices())
	for u := Index(0); int(u) < g.NumberOfVertices(); u++ {
		successors := make(map[Index]struct{})
		g.ForOutEdgesOf(u, func(e *OutEdge) {
			successors[e.head] = struct{}{}
		})
		predecessors := make(map[Index]struct{})
		g.ForInEdgesOf(u, func(e *InEdge) {
			predecessors[e.tail] = struct{}{}
		})
		counts[u] = uint32(len(successors) + len(predecessors))
	}
	return counts
}

func computeBoundingBox(vertexData []VertexData) *BoundingBox {
	minLat, minLon := math.Inf(1), math.Inf(1)
	maxLat, maxLon := math.Inf(-1), math.Inf(-1)
	for _, v := range vertexData {
		minLat = math.Min(minLat, v.Lat)
		minLon = math.Min(minLon, v.Lon)
		maxLat = math.Max(maxLat, v.Lat)
		maxLon = math.Max(maxLon, v.Lon)
	}
	return NewBoundingBox(minLat, minLon, maxLat, maxLon)
}
