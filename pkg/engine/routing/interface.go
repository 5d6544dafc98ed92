package routing

import (
	"github.com/lintang-b-s/quickestpath/pkg/costfunction"
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/guidance"
)

type CostFunction interface {
	GetWeight(e costfunction.EdgeAttributes) float64
}

type TurnHandler interface {
	IsLeftTurn(g guidance.Graph, a, b, c da.Index) (bool, error)
	Penalty(g guidance.Graph, a, b, c da.Index) (float64, error)
}

type PathFinder interface {
	ShortestPath(g *da.Graph, s, t da.Index) ([]da.Index, float64, error)
}
