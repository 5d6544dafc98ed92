package spatialindex

import (
	"errors"
	"math"

	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

const maxRadiusDoubling = 8

var ErrNoNearbyVertex = errors.New("no road vertex near the query point")

type Rtree struct {
	tr *rtree.RTreeG[VertexPoint]
}

type VertexPoint struct {
	id  datastructure.Index
	lat float64
	lon float64
}

func (vp VertexPoint) GetID() datastructure.Index {
	return vp.id
}

func (vp VertexPoint) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(vp.lat, vp.lon)
}

func newVertexPoint(id datastructure.Index, lat, lon float64) VertexPoint {
	return VertexPoint{
		id:  id,
		lat: lat,
		lon: lon,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[VertexPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every vertex of the graph as a point.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	n := graph.NumberOfVertices()
	step := n / 10
	for v := 0; v < n; v++ {
		if step > 0 && v%step == 0 {
			log.Info("Building R-tree spatial index...", zap.Float64("progress", float64(v)/float64(n)*100))
		}
		lat, lon := graph.GetVertexCoordinates(datastructure.Index(v))
		point := [2]float64{lon, lat}
		rt.tr.Insert(point, point, newVertexPoint(datastructure.Index(v), lat, lon))
	}

	log.Info("R-tree spatial index built.", zap.Int("numberOfPoints", rt.tr.Len()))
}

// SearchWithinRadius search for all vertices inside the box of radius (in km) around the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []VertexPoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius*math.Sqrt2)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius*math.Sqrt2)

	results := make([]VertexPoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data VertexPoint) bool {
			results = append(results, data)
			return true
		})
	return results
}

/*
NearestVertex. closest vertex (haversine) to (qLat, qLon). starts with radius km and doubles the radius
up to maxRadiusDoubling times while nothing is found.
*/
func (rt *Rtree) NearestVertex(qLat, qLon, radius float64) (VertexPoint, error) {
	for i := 0; i <= maxRadiusDoubling; i++ {
		candidates := rt.SearchWithinRadius(qLat, qLon, radius)
		if len(candidates) > 0 {
			best := candidates[0]
			bestDist := math.Inf(1)
			for _, c := range candidates {
				dist := geo.CalculateHaversineDistance(qLat, qLon, c.lat, c.lon)
				if dist < bestDist || (dist == bestDist && c.id < best.id) {
					best, bestDist = c, dist
				}
			}
			return best, nil
		}
		radius *= 2
	}

	return VertexPoint{}, util.WrapErrorf(ErrNoNearbyVertex, util.ErrBadParamInput,
		"no vertex within %v km of (%v, %v)", radius/2, qLat, qLon)
}
