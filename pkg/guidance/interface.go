package guidance

import (
	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
)

type Graph interface {
	FindOutEdge(u, v datastructure.Index) (*datastructure.OutEdge, bool)
	NumberOfNeighbors(u datastructure.Index) int
	GetCoordinate(u datastructure.Index) geo.Coordinate
}
