package usecases

import (
	"errors"

	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/engine/routing"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

const (
	NearestNeighbor = "nearest_neighbor"
	BruteForce      = "brute_force"
)

var (
	ErrTooManyPoints    = errors.New("too many points to visit")
	ErrNoPoints         = errors.New("at least one point is required")
	ErrOutOfBounds      = errors.New("point is outside of the road map")
	ErrUnknownAlgorithm = errors.New("unknown tour algorithm")
)

type RouteResult struct {
	TravelTime float64 // second
	Distance   float64 // meter
	Path       string  // encoded polyline
	Nodes      []int64 // osm node ids
}

type TourResult struct {
	RouteResult
	VisitOrder []int64
	Route      *geojson.FeatureCollection
	Stops      *geojson.FeatureCollection
}

type RoutingService struct {
	log              *zap.Logger
	engine           RoutingEngine
	spatialIndex     SpatialIndex
	searchRadius     float64
	maxPointsAllowed int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialindex SpatialIndex,
	searchRadius float64, maxPointsAllowed int) *RoutingService {
	return &RoutingService{
		log:              log,
		engine:           engine,
		spatialIndex:     spatialindex,
		searchRadius:     searchRadius,
		maxPointsAllowed: maxPointsAllowed,
	}
}

func (rs *RoutingService) ShortestPath(origLat, origLon, dstLat, dstLon float64) (RouteResult, error) {
	points := []geo.Coordinate{geo.NewCoordinate(origLat, origLon), geo.NewCoordinate(dstLat, dstLon)}
	if err := rs.validatePointsWithinBoundingBox(points); err != nil {
		return RouteResult{}, err
	}

	nodes, err := rs.snapToVertices(points)
	if err != nil {
		return RouteResult{}, err
	}

	graph := rs.engine.GetGraph()
	path, travelTime, err := rs.engine.GetRoutingEngine().ShortestPath(graph, nodes[0], nodes[1])
	if err != nil {
		return RouteResult{}, err
	}

	rs.log.Debug("shortest path found", zap.Int("numberOfVertices", len(path)), zap.Float64("travelTime", travelTime))
	return rs.newRouteResult(path, travelTime), nil
}

func (rs *RoutingService) Tour(points []geo.Coordinate, algorithm string) (TourResult, error) {
	if err := rs.validateNumberOfPoints(points); err != nil {
		return TourResult{}, err
	}
	if err := rs.validatePointsWithinBoundingBox(points); err != nil {
		return TourResult{}, err
	}

	nodes, err := rs.snapToVertices(points)
	if err != nil {
		return TourResult{}, err
	}

	graph := rs.engine.GetGraph()
	solver := rs.engine.GetTourSolver()

	var tour *routing.Tour
	switch algorithm {
	case NearestNeighbor, "":
		tour, err = solver.SolveNearestNeighbor(graph, nodes)
	case BruteForce:
		tour, err = solver.SolveBruteForce(graph, nodes)
	default:
		return TourResult{}, util.WrapErrorf(ErrUnknownAlgorithm, util.ErrBadParamInput, "algorithm %q", algorithm)
	}
	if err != nil {
		return TourResult{}, err
	}

	rs.log.Debug("tour found", zap.String("algorithm", algorithm), zap.Int("numberOfStops", len(nodes)),
		zap.Float64("travelTime", tour.TravelTime))

	return TourResult{
		RouteResult: rs.newRouteResult(tour.Path, tour.TravelTime),
		VisitOrder:  rs.osmIds(tour.VisitOrder),
		Route:       routeFeatureCollection(graph, tour.Path, tour.TravelTime),
		Stops:       stopsFeatureCollection(graph, points, nodes, tour.VisitOrder),
	}, nil
}

func (rs *RoutingService) newRouteResult(path []datastructure.Index, travelTime float64) RouteResult {
	graph := rs.engine.GetGraph()
	return RouteResult{
		TravelTime: util.RoundFloat(travelTime, 2),
		Distance:   util.RoundFloat(graph.PathDistance(path), 2),
		Path:       geo.PolylineFromCoords(graph.PathCoordinates(path)),
		Nodes:      rs.osmIds(path),
	}
}

func (rs *RoutingService) osmIds(path []datastructure.Index) []int64 {
	graph := rs.engine.GetGraph()
	ids := make([]int64, 0, len(path))
	for _, u := range path {
		ids = append(ids, graph.GetVertex(u).GetOsmID())
	}
	return ids
}
