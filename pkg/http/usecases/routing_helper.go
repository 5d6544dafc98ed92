package usecases

import (
	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func (rs *RoutingService) validateNumberOfPoints(points []geo.Coordinate) error {
	if len(points) == 0 {
		return util.WrapErrorf(ErrNoPoints, util.ErrBadParamInput, "no points given")
	}
	if len(points) > rs.maxPointsAllowed {
		return util.WrapErrorf(ErrTooManyPoints, util.ErrBadParamInput,
			"%d points given, at most %d allowed", len(points), rs.maxPointsAllowed)
	}
	return nil
}

func (rs *RoutingService) validatePointsWithinBoundingBox(points []geo.Coordinate) error {
	bb := rs.engine.GetGraph().GetBoundingBox()
	for i, p := range points {
		if !bb.Contains(p.Lat, p.Lon) {
			return util.WrapErrorf(ErrOutOfBounds, util.ErrBadParamInput, "point %d (%v, %v)", i, p.Lat, p.Lon)
		}
	}
	return nil
}

func (rs *RoutingService) snapToVertices(points []geo.Coordinate) ([]datastructure.Index, error) {
	nodes := make([]datastructure.Index, 0, len(points))
	for _, p := range points {
		v, err := rs.spatialIndex.NearestVertex(p.Lat, p.Lon, rs.searchRadius)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, v.GetID())
	}
	return nodes, nil
}

func toOrbPoint(c geo.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

func routeFeatureCollection(graph *datastructure.Graph, path []datastructure.Index, travelTime float64) *geojson.FeatureCollection {
	line := make(orb.LineString, 0, len(path))
	for _, c := range graph.PathCoordinates(path) {
		line = append(line, toOrbPoint(c))
	}

	feature := geojson.NewFeature(line)
	feature.Properties["eta"] = travelTime
	feature.Properties["distance"] = graph.PathDistance(path)

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)
	return fc
}

// stopsFeatureCollection. one point per requested stop at its snapped vertex, in visiting order.
func stopsFeatureCollection(graph *datastructure.Graph, points []geo.Coordinate, nodes, visitOrder []datastructure.Index,
) *geojson.FeatureCollection {
	requested := make(map[datastructure.Index]geo.Coordinate, len(nodes))
	for i, u := range nodes {
		if _, ok := requested[u]; !ok {
			requested[u] = points[i]
		}
	}

	fc := geojson.NewFeatureCollection()
	for order, u := range visitOrder {
		feature := geojson.NewFeature(toOrbPoint(graph.GetCoordinate(u)))
		feature.Properties["order"] = order
		feature.Properties["osm_id"] = graph.GetVertex(u).GetOsmID()
		if p, ok := requested[u]; ok {
			feature.Properties["requested_lat"] = p.Lat
			feature.Properties["requested_lon"] = p.Lon
		}
		fc.Append(feature)
	}
	return fc
}
