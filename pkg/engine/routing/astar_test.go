package routing

import (
	"errors"
	"math"
	"testing"

	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/lintang-b-s/quickestpath/pkg/costfunction"
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/guidance"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAStar(t *testing.T, turnHandler *guidance.LeftTurnHandler) *AStar {
	t.Helper()
	as, err := NewAStar(turnHandler, costfunction.NewTimeCostFunction(), pkg.DEFAULT_HEURISTIC_MAX_SPEED)
	require.NoError(t, err)
	return as
}

// lineGraph. A -> B -> C -> D heading north, 10 seconds per edge, plus an isolated vertex E.
func lineGraph() *da.Graph {
	vertexData := []da.VertexData{
		da.NewVertexData(0.000, 0, 0),
		da.NewVertexData(0.001, 0, 1),
		da.NewVertexData(0.002, 0, 2),
		da.NewVertexData(0.003, 0, 3),
		da.NewVertexData(0.010, 0.010, 4),
	}
	edges := []da.Edge{
		da.NewEdge(0, 1, 10, 111, pkg.PRIMARY),
		da.NewEdge(1, 2, 10, 111, pkg.PRIMARY),
		da.NewEdge(2, 3, 10, 111, pkg.PRIMARY),
	}
	return da.BuildGraph(vertexData, edges)
}

/*
detourGraph:

	      N
	      |
	W <-- X --> E
	^     ^
	|     |
	Y <-- S

S -> X -> W is shorter but turns left at X, S -> Y -> W turns right at Y.
*/
const (
	dS da.Index = iota
	dX
	dW
	dY
	dE
	dN
)

func detourGraph() *da.Graph {
	vertexData := []da.VertexData{
		da.NewVertexData(0.000, 0.000, 0),
		da.NewVertexData(0.001, 0.000, 1),
		da.NewVertexData(0.001, -0.001, 2),
		da.NewVertexData(0.000, -0.001, 3),
		da.NewVertexData(0.001, 0.001, 4),
		da.NewVertexData(0.002, 0.000, 5),
	}
	edges := []da.Edge{
		da.NewEdge(dS, dX, 10, 111, pkg.PRIMARY),
		da.NewEdge(dX, dW, 10, 111, pkg.PRIMARY),
		da.NewEdge(dS, dY, 12, 111, pkg.PRIMARY),
		da.NewEdge(dY, dW, 12, 111, pkg.PRIMARY),
		da.NewEdge(dX, dE, 10, 111, pkg.PRIMARY),
		da.NewEdge(dX, dN, 10, 111, pkg.PRIMARY),
	}
	return da.BuildGraph(vertexData, edges)
}

func TestShortestPathLineGraph(t *testing.T) {
	g := lineGraph()
	as := newTestAStar(t, guidance.NewDefaultLeftTurnHandler())

	path, travelTime, err := as.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []da.Index{0, 1, 2, 3}, path)
	assert.Equal(t, 30.0, travelTime)
}

func TestShortestPathSourceIsDestination(t *testing.T) {
	as := newTestAStar(t, guidance.NewDefaultLeftTurnHandler())

	testCases := []struct {
		name string
		g    *da.Graph
		s    da.Index
	}{
		{name: "line graph", g: lineGraph(), s: 2},
		{name: "isolated vertex", g: lineGraph(), s: 4},
		{name: "intersection", g: detourGraph(), s: dX},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			path, travelTime, err := as.ShortestPath(tt.g, tt.s, tt.s)
			require.NoError(t, err)
			assert.Equal(t, []da.Index{tt.s}, path)
			assert.Equal(t, 0.0, travelTime)
		})
	}
}

func TestShortestPathNotFound(t *testing.T) {
	g := lineGraph()
	as := newTestAStar(t, guidance.NewDefaultLeftTurnHandler())

	testCases := []struct {
		name string
		s, t da.Index
	}{
		{name: "against edge direction", s: 3, t: 0},
		{name: "isolated target", s: 0, t: 4},
		{name: "isolated source", s: 4, t: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			path, _, err := as.ShortestPath(g, tt.s, tt.t)
			require.Error(t, err)
			assert.Nil(t, path)
			assert.True(t, errors.Is(err, ErrPathNotFound))
			assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))
		})
	}
}

func TestShortestPathInvalidVertex(t *testing.T) {
	as := newTestAStar(t, guidance.NewDefaultLeftTurnHandler())

	_, _, err := as.ShortestPath(lineGraph(), 0, 100)
	assert.True(t, errors.Is(err, ErrInvalidVertex))
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
}

func TestNewAStarRejectsNonPositiveSpeed(t *testing.T) {
	_, err := NewAStar(guidance.NewDefaultLeftTurnHandler(), costfunction.NewTimeCostFunction(), 0)
	assert.True(t, errors.Is(err, ErrInvalidSpeed))
}

func TestShortestPathAvoidsLeftTurn(t *testing.T) {
	g := detourGraph()

	withPenalty, err := guidance.NewLeftTurnHandler(45, 30, 20, 10)
	require.NoError(t, err)
	noPenalty, err := guidance.NewLeftTurnHandler(45, 0, 0, 0)
	require.NoError(t, err)

	testCases := []struct {
		name         string
		turnHandler  *guidance.LeftTurnHandler
		expectedPath []da.Index
		expectedTime float64
	}{
		{
			name:         "left turn penalty makes the detour quicker",
			turnHandler:  withPenalty,
			expectedPath: []da.Index{dS, dY, dW},
			expectedTime: 24,
		},
		{
			name:         "without penalty the direct route wins",
			turnHandler:  noPenalty,
			expectedPath: []da.Index{dS, dX, dW},
			expectedTime: 20,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			as := newTestAStar(t, tt.turnHandler)
			path, travelTime, err := as.ShortestPath(g, dS, dW)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath, path)
			assert.Equal(t, tt.expectedTime, travelTime)
		})
	}
}

// enumerateBestTravelTime. minimum travel time over all simple s-t paths, turn penalties included.
func enumerateBestTravelTime(t *testing.T, g *da.Graph, h *guidance.LeftTurnHandler, s, target da.Index) float64 {
	t.Helper()
	best := math.Inf(1)
	onPath := map[da.Index]bool{s: true}

	var dfs func(path []da.Index, travelTime float64)
	dfs = func(path []da.Index, travelTime float64) {
		u := path[len(path)-1]
		if u == target {
			best = math.Min(best, travelTime)
			return
		}
		g.ForOutEdgesOf(u, func(e *da.OutEdge) {
			v := e.GetHead()
			if onPath[v] {
				return
			}
			cost := e.GetWeight()
			if len(path) > 1 {
				turnCost, err := h.TurnCost(g, path[len(path)-2], u, v)
				require.NoError(t, err)
				cost += turnCost
			}
			onPath[v] = true
			dfs(append(path, v), travelTime+cost)
			onPath[v] = false
		})
	}
	dfs([]da.Index{s}, 0)
	return best
}

func TestShortestPathIsOptimal(t *testing.T) {
	g := detourGraph()
	h := guidance.NewDefaultLeftTurnHandler()
	as := newTestAStar(t, h)

	for s := da.Index(0); int(s) < g.NumberOfVertices(); s++ {
		for target := da.Index(0); int(target) < g.NumberOfVertices(); target++ {
			expected := enumerateBestTravelTime(t, g, h, s, target)

			path, travelTime, err := as.ShortestPath(g, s, target)
			if math.IsInf(expected, 1) {
				assert.True(t, errors.Is(err, ErrPathNotFound))
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, expected, travelTime)
			assert.Equal(t, s, path[0])
			assert.Equal(t, target, path[len(path)-1])
			for i := 1; i < len(path); i++ {
				assert.True(t, g.HasEdge(path[i-1], path[i]))
			}
		}
	}
}
