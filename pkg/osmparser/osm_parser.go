package osmparser

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type OsmParser struct {
	ways            []osmWay
	wayNodeMap      map[int64]struct{}
	acceptedNodeMap map[int64]NodeCoord
	nodeIDMap       map[int64]datastructure.Index
	nodeToOsmId     []int64
	logger          *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		ways:            make([]osmWay, 0),
		wayNodeMap:      make(map[int64]struct{}),
		acceptedNodeMap: make(map[int64]NodeCoord),
		nodeIDMap:       make(map[int64]datastructure.Index),
		nodeToOsmId:     make([]int64, 0),
		logger:          logger,
	}
}

/*
Parse. build the road graph from an osm pbf file.
the file is scanned twice: first for the drivable ways and the nodes they reference, then for the coordinates
of those nodes.
*/
func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := osmpbf.New(ctx, f, 0)
	err = p.ScanWays(scanner)
	scanner.Close()
	if err != nil {
		return nil, err
	}

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	scanner = osmpbf.New(ctx, f, 0)
	defer scanner.Close()
	if err = p.ScanNodes(scanner); err != nil {
		return nil, err
	}

	return p.BuildGraph(), nil
}

func (p *OsmParser) ScanWays(scanner osm.Scanner) error {
	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 {
			continue
		}

		if !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		p.processWay(way)
	}
	return scanner.Err()
}

func (p *OsmParser) ScanNodes(scanner osm.Scanner) error {
	countNodes := 0
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, ok := p.wayNodeMap[int64(node.ID)]; !ok {
			continue
		}
		if (countNodes+1)%500000 == 0 {
			p.logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		p.acceptedNodeMap[int64(node.ID)] = NewNodeCoord(node.Lat, node.Lon)
	}
	return scanner.Err()
}

func (p *OsmParser) processWay(way *osm.Way) {
	highway := way.Tags.Find("highway")

	w := osmWay{
		id:       int64(way.ID),
		nodes:    make([]int64, 0, len(way.Nodes)),
		highway:  highway,
		maxSpeed: fillMaxSpeed(way.Tags.Find("maxspeed"), highway),
	}

	switch way.Tags.Find("oneway") {
	case "yes", "true", "1":
		w.oneWay = true
	case reverseOneWay:
		w.oneWay = true
		w.reversed = true
	}
	if way.Tags.Find("junction") == roundaboutValue {
		w.oneWay = true
	}

	for _, node := range way.Nodes {
		w.nodes = append(w.nodes, int64(node.ID))
		p.wayNodeMap[int64(node.ID)] = struct{}{}
	}
	p.ways = append(p.ways, w)
}

func (p *OsmParser) getNodeIndex(osmId int64) datastructure.Index {
	if idx, ok := p.nodeIDMap[osmId]; ok {
		return idx
	}
	idx := datastructure.Index(len(p.nodeToOsmId))
	p.nodeIDMap[osmId] = idx
	p.nodeToOsmId = append(p.nodeToOsmId, osmId)
	return idx
}

// BuildGraph. every pair of consecutive way nodes with known coordinates becomes an edge.
func (p *OsmParser) BuildGraph() *datastructure.Graph {
	edges := make([]datastructure.Edge, 0)
	for _, w := range p.ways {
		category := pkg.GetRoadCategory(w.highway)
		for i := 1; i < len(w.nodes); i++ {
			fromId, toId := w.nodes[i-1], w.nodes[i]
			if fromId == toId {
				continue
			}
			from, okFrom := p.acceptedNodeMap[fromId]
			to, okTo := p.acceptedNodeMap[toId]
			if !okFrom || !okTo {
				continue
			}

			distanceInMeter := geo.CalculateHaversineDistance(from.lat, from.lon, to.lat, to.lon) * 1000
			travelTime := EstimatedTravelTime(distanceInMeter, w.maxSpeed)

			u, v := p.getNodeIndex(fromId), p.getNodeIndex(toId)
			if w.reversed {
				u, v = v, u
			}
			edges = append(edges, datastructure.NewEdge(u, v, travelTime, distanceInMeter, category))
			if !w.oneWay {
				edges = append(edges, datastructure.NewEdge(v, u, travelTime, distanceInMeter, category))
			}
		}
	}

	vertexData := make([]datastructure.VertexData, len(p.nodeToOsmId))
	for i, osmId := range p.nodeToOsmId {
		coord := p.acceptedNodeMap[osmId]
		vertexData[i] = datastructure.NewVertexData(coord.lat, coord.lon, osmId)
	}

	graph := datastructure.BuildGraph(vertexData, edges)

	p.logger.Sugar().Infof("number of vertices: %v", graph.NumberOfVertices())
	p.logger.Sugar().Infof("number of edges: %v", graph.NumberOfEdges())
	return graph
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if _, ok := acceptedHighway[highway]; !ok {
		return false
	}

	for _, key := range rejectedTagKeys {
		if way.Tags.Find(key) != "" {
			return false
		}
	}

	for key, values := range rejectedTagValues {
		if _, ok := values[way.Tags.Find(key)]; ok {
			return false
		}
	}
	return true
}

// EstimatedTravelTime. second needed to drive distance meter at maxSpeed km/h.
func EstimatedTravelTime(distance, maxSpeed float64) float64 {
	return distance / (maxSpeed / 3.6)
}

/*
fillMaxSpeed. km/h from the maxspeed tag, falling back to the default speed of the highway category when the tag
is missing or can not be parsed.
*/
func fillMaxSpeed(maxSpeedTag, highway string) float64 {
	if speed, ok := parseMaxSpeed(maxSpeedTag); ok {
		return speed
	}
	if speed, ok := highwayDefaultSpeed[highway]; ok {
		return speed
	}
	return defaultSpeed
}

func parseMaxSpeed(tag string) (float64, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return 0, false
	}
	if strings.HasSuffix(tag, ":urban") {
		return urbanSpeed, true
	}

	unit := 1.0
	switch {
	case strings.HasSuffix(tag, "mph"):
		unit = mphToKmh
		tag = strings.TrimSuffix(tag, "mph")
	case strings.HasSuffix(tag, "knots"):
		unit = knotsToKmh
		tag = strings.TrimSuffix(tag, "knots")
	case strings.HasSuffix(tag, "km/h"):
		tag = strings.TrimSuffix(tag, "km/h")
	}

	speed, err := strconv.ParseFloat(strings.TrimSpace(tag), 64)
	if err != nil || speed <= 0 {
		return 0, false
	}
	return speed * unit, true
}

// DefaultMaxSpeed. km/h of a highway category without a maxspeed tag.
func DefaultMaxSpeed(highway string) float64 {
	return fillMaxSpeed("", highway)
}
