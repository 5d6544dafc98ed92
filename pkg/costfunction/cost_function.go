package costfunction

import (
	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
)

type EdgeAttributes interface {
	GetWeight() float64
	GetEdgeSpeed() float64
	GetLength() float64
	GetEdgeId() datastructure.Index
	GetRoadCategory() pkg.RoadCategory
}

type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
}
