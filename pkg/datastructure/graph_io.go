package datastructure

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/lintang-b-s/quickestpath/pkg/util"
)

/*
graph file (bzip2 compressed text):

	numVertices numEdges
	osmId lat lon                          (numVertices lines)
	tail head travelTime distance category (numEdges lines, in edgeId order)
*/
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	return g.Encode(bz)
}

func (g *Graph) Encode(out io.Writer) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for vId := 0; vId < g.NumberOfVertices(); vId++ {
		v := g.vertices[vId]
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%d %s %s\n", v.osmId, latF, lonF)
	}

	for edgeId, e := range g.outEdges {
		weightF := strconv.FormatFloat(e.weight, 'f', -1, 64)
		distF := strconv.FormatFloat(e.dist, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %s %s %d\n", g.tails[edgeId], e.head, weightF, distF, e.category)
	}

	return w.Flush()
}

func fields(s string) []string {
	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return Index(u), nil
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	return DecodeGraph(bz)
}

func DecodeGraph(in io.Reader) (*Graph, error) {
	br := bufio.NewReader(in)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}

	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, fmt.Errorf("expected 2 header fields, got %d", len(tokens))
	}

	numVertices, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}

	numEdges, err := ParseIndex(tokens[1])
	if err != nil {
		return nil, err
	}

	vertexData := make([]VertexData, numVertices)
	for i := 0; i < int(numVertices); i++ {
		vertexLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		vertexData[i], err = parseVertex(vertexLine)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
	}

	edges := make([]Edge, numEdges)
	for i := 0; i < int(numEdges); i++ {
		edgeLine, err := util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		edges[i], err = parseEdge(edgeLine)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if edges[i].From >= numVertices || edges[i].To >= numVertices {
			return nil, fmt.Errorf("edge %d: endpoint out of range", i)
		}
	}

	return BuildGraph(vertexData, edges), nil
}

func parseVertex(line string) (VertexData, error) {
	tokens := fields(line)
	if len(tokens) != 3 {
		return VertexData{}, fmt.Errorf("expected 3 fields, got %d", len(tokens))
	}

	osmId, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil {
		return VertexData{}, err
	}
	lat, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return VertexData{}, fmt.Errorf("lat: %w", err)
	}
	lon, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return VertexData{}, fmt.Errorf("lon: %w", err)
	}
	return NewVertexData(lat, lon, osmId), nil
}

func parseEdge(line string) (Edge, error) {
	tokens := fields(line)
	if len(tokens) != 5 {
		return Edge{}, fmt.Errorf("expected 5 fields, got %d", len(tokens))
	}

	tail, err := ParseIndex(tokens[0])
	if err != nil {
		return Edge{}, err
	}
	head, err := ParseIndex(tokens[1])
	if err != nil {
		return Edge{}, err
	}
	weight, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return Edge{}, fmt.Errorf("weight: %w", err)
	}
	dist, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return Edge{}, fmt.Errorf("dist: %w", err)
	}
	category, err := strconv.ParseUint(tokens[4], 10, 8)
	if err != nil {
		return Edge{}, fmt.Errorf("category: %w", err)
	}
	return NewEdge(tail, head, weight, dist, pkg.RoadCategory(category)), nil
}
