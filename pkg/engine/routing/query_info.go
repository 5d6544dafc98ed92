package routing

import (
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
)

// vertexInfo. search label of a vertex. the source is the only vertex without a parent.
type vertexInfo struct {
	travelTime float64
	parent     da.Index
	hasParent  bool
}

func newSourceInfo() *vertexInfo {
	return &vertexInfo{}
}

func newVertexInfo(travelTime float64, parent da.Index) *vertexInfo {
	return &vertexInfo{
		travelTime: travelTime,
		parent:     parent,
		hasParent:  true,
	}
}

func (vi *vertexInfo) GetTravelTime() float64 {
	return vi.travelTime
}

func (vi *vertexInfo) GetParent() (da.Index, bool) {
	return vi.parent, vi.hasParent
}
