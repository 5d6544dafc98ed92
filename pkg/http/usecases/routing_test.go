package usecases

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/quickestpath/pkg"
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/engine"
	"github.com/lintang-b-s/quickestpath/pkg/engine/routing"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/spatialindex"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	gridBaseLat = 52.230
	gridBaseLon = 21.010
	gridStep    = 0.001
)

func gridCoordinate(row, col int) geo.Coordinate {
	return geo.NewCoordinate(gridBaseLat+float64(row)*gridStep, gridBaseLon+float64(col)*gridStep)
}

// gridGraph. 3x3 two way grid, vertex id = row*3 + col, osm id = 1000 + vertex id, 10 seconds per edge.
func gridGraph() *da.Graph {
	vertexData := make([]da.VertexData, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c := gridCoordinate(row, col)
			vertexData = append(vertexData, da.NewVertexData(c.Lat, c.Lon, int64(1000+row*3+col)))
		}
	}

	edges := []da.Edge{}
	connect := func(u, v int) {
		edges = append(edges,
			da.NewEdge(da.Index(u), da.Index(v), 10, 100, pkg.SECONDARY),
			da.NewEdge(da.Index(v), da.Index(u), 10, 100, pkg.SECONDARY),
		)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			u := row*3 + col
			if col < 2 {
				connect(u, u+1)
			}
			if row < 2 {
				connect(u, u+3)
			}
		}
	}
	return da.BuildGraph(vertexData, edges)
}

func newTestRoutingService(t *testing.T) *RoutingService {
	t.Helper()
	g := gridGraph()

	config := util.RoutingConfig{
		LeftTurnMinAngle:    pkg.DEFAULT_LEFT_TURN_MIN_ANGLE,
		PenaltyToBetterRoad: pkg.DEFAULT_PENALTY_TO_BETTER_ROAD,
		PenaltyToEqualRoad:  pkg.DEFAULT_PENALTY_TO_EQUAL_ROAD,
		PenaltyToWorseRoad:  pkg.DEFAULT_PENALTY_TO_WORSE_ROAD,
		HeuristicMaxSpeed:   pkg.DEFAULT_HEURISTIC_MAX_SPEED,
	}
	e, err := engine.NewEngineWithGraph(g, config, zap.NewNop())
	require.NoError(t, err)

	rt := spatialindex.NewRtree()
	rt.Build(g, zap.NewNop())

	return NewRoutingService(zap.NewNop(), e, rt, 0.05, 4)
}

func TestRoutingServiceShortestPath(t *testing.T) {
	rs := newTestRoutingService(t)

	orig, dst := gridCoordinate(0, 0), gridCoordinate(0, 2)
	res, err := rs.ShortestPath(orig.Lat, orig.Lon, dst.Lat, dst.Lon)
	require.NoError(t, err)

	assert.Equal(t, []int64{1000, 1001, 1002}, res.Nodes)
	assert.Equal(t, 20.0, res.TravelTime)
	assert.Equal(t, 200.0, res.Distance)
	assert.NotEmpty(t, res.Path)
}

func TestRoutingServiceShortestPathOutOfBounds(t *testing.T) {
	rs := newTestRoutingService(t)

	orig := gridCoordinate(0, 0)
	_, err := rs.ShortestPath(orig.Lat, orig.Lon, 48.8566, 2.3522)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
}

func TestRoutingServiceTour(t *testing.T) {
	rs := newTestRoutingService(t)

	points := []geo.Coordinate{gridCoordinate(0, 0), gridCoordinate(2, 2), gridCoordinate(0, 1)}

	testCases := []struct {
		name      string
		algorithm string
	}{
		{name: "default algorithm", algorithm: ""},
		{name: "nearest neighbor", algorithm: NearestNeighbor},
		{name: "brute force", algorithm: BruteForce},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := rs.Tour(points, tt.algorithm)
			require.NoError(t, err)

			// 0,0 -> 0,1 -> 2,2 is 1 + 3 edges.
			assert.Equal(t, []int64{1000, 1001, 1008}, res.VisitOrder)
			assert.Equal(t, int64(1000), res.Nodes[0])
			assert.Equal(t, int64(1008), res.Nodes[len(res.Nodes)-1])
			assert.Len(t, res.Nodes, 5)
			assert.Equal(t, 400.0, res.Distance)
			assert.GreaterOrEqual(t, res.TravelTime, 40.0)

			require.Len(t, res.Route.Features, 1)
			require.Len(t, res.Stops.Features, 3)
			assert.Equal(t, 1, res.Stops.Features[1].Properties["order"])
			assert.Equal(t, int64(1001), res.Stops.Features[1].Properties["osm_id"])
		})
	}
}

func TestRoutingServiceTourValidation(t *testing.T) {
	rs := newTestRoutingService(t)

	testCases := []struct {
		name        string
		points      []geo.Coordinate
		algorithm   string
		expectedErr error
	}{
		{name: "no points", points: nil, expectedErr: ErrNoPoints},
		{
			name: "too many points",
			points: []geo.Coordinate{
				gridCoordinate(0, 0), gridCoordinate(0, 1), gridCoordinate(0, 2),
				gridCoordinate(1, 0), gridCoordinate(1, 1),
			},
			expectedErr: ErrTooManyPoints,
		},
		{
			name:        "outside of the map",
			points:      []geo.Coordinate{gridCoordinate(0, 0), geo.NewCoordinate(0, 0)},
			expectedErr: ErrOutOfBounds,
		},
		{
			name:        "unknown algorithm",
			points:      []geo.Coordinate{gridCoordinate(0, 0), gridCoordinate(1, 1)},
			algorithm:   "genetic",
			expectedErr: ErrUnknownAlgorithm,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rs.Tour(tt.points, tt.algorithm)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr))
			assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
		})
	}
}

func TestRoutingServicePathNotFound(t *testing.T) {
	g := da.BuildGraph(
		[]da.VertexData{
			da.NewVertexData(gridBaseLat, gridBaseLon, 1),
			da.NewVertexData(gridBaseLat+gridStep, gridBaseLon, 2),
		},
		[]da.Edge{da.NewEdge(0, 1, 10, 100, pkg.PRIMARY)},
	)
	e, err := engine.NewEngineWithGraph(g, util.RoutingConfig{HeuristicMaxSpeed: 140}, zap.NewNop())
	require.NoError(t, err)
	rt := spatialindex.NewRtree()
	rt.Build(g, zap.NewNop())
	rs := NewRoutingService(zap.NewNop(), e, rt, 0.05, 4)

	_, err = rs.ShortestPath(gridBaseLat+gridStep, gridBaseLon, gridBaseLat, gridBaseLon)
	require.Error(t, err)
	assert.True(t, errors.Is(err, routing.ErrPathNotFound))
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
}
