package spatialindex

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/quickestpath/pkg"
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildTestRtree() *Rtree {
	g := da.BuildGraph(
		[]da.VertexData{
			da.NewVertexData(-7.7600, 110.3700, 1),
			da.NewVertexData(-7.7610, 110.3710, 2),
			da.NewVertexData(-7.7700, 110.3800, 3),
			da.NewVertexData(-7.8000, 110.4000, 4),
		},
		[]da.Edge{
			da.NewEdge(0, 1, 10, 150, pkg.PRIMARY),
			da.NewEdge(1, 2, 60, 1400, pkg.PRIMARY),
			da.NewEdge(2, 3, 150, 4000, pkg.PRIMARY),
		},
	)
	rt := NewRtree()
	rt.Build(g, zap.NewNop())
	return rt
}

func TestNearestVertex(t *testing.T) {
	rt := buildTestRtree()

	testCases := []struct {
		name     string
		lat, lon float64
		radius   float64
		expected da.Index
	}{
		{name: "exact vertex", lat: -7.7600, lon: 110.3700, radius: 0.5, expected: 0},
		{name: "between two vertices", lat: -7.7608, lon: 110.3708, radius: 0.5, expected: 1},
		{name: "radius grows until a vertex is found", lat: -7.7900, lon: 110.3950, radius: 0.1, expected: 3},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			v, err := rt.NearestVertex(tt.lat, tt.lon, tt.radius)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.GetID())
		})
	}
}

func TestNearestVertexTooFar(t *testing.T) {
	rt := buildTestRtree()

	_, err := rt.NearestVertex(1.0, 100.0, 0.1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoNearbyVertex))
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))
}

func TestSearchWithinRadius(t *testing.T) {
	rt := buildTestRtree()

	results := rt.SearchWithinRadius(-7.7605, 110.3705, 0.5)
	ids := make([]da.Index, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.GetID())
	}
	assert.ElementsMatch(t, []da.Index{0, 1}, ids)
}
