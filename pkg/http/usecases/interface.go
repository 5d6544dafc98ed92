package usecases

import (
	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/engine/routing"
	"github.com/lintang-b-s/quickestpath/pkg/spatialindex"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	GetRoutingEngine() *routing.AStar
	GetTourSolver() *routing.TourSolver
}

type SpatialIndex interface {
	NearestVertex(lat, lon, radius float64) (spatialindex.VertexPoint, error)
}
