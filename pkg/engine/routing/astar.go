package routing

import (
	"github.com/lintang-b-s/quickestpath/pkg"
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/util"
)

/*
AStar. time-optimal search over the road graph with a left turn penalty.

priority of a vertex v is g(v) + h(v), h(v) = straight line distance from v to the target divided by maxSpeed.
the heap uses lazy deletion: a vertex may be pushed several times, stale entries are skipped when popped
because the vertex is already finalized.
every query keeps its own labels, so one AStar can serve concurrent queries on the same read-only graph.
*/
type AStar struct {
	turnHandler  TurnHandler
	costFunction CostFunction
	maxSpeed     float64 // km/h
}

func NewAStar(turnHandler TurnHandler, costFunction CostFunction, maxSpeed float64) (*AStar, error) {
	if maxSpeed <= 0 {
		return nil, util.WrapErrorf(ErrInvalidSpeed, util.ErrBadParamInput, "max speed %v km/h", maxSpeed)
	}
	return &AStar{
		turnHandler:  turnHandler,
		costFunction: costFunction,
		maxSpeed:     maxSpeed,
	}, nil
}

type astarQuery struct {
	forwardInfo map[da.Index]*vertexInfo
	finalized   map[da.Index]struct{}
	pq          *da.MinHeap[da.Index]

	numSettledNodes int
}

func newAstarQuery() *astarQuery {
	return &astarQuery{
		forwardInfo: make(map[da.Index]*vertexInfo),
		finalized:   make(map[da.Index]struct{}),
		pq:          da.NewFourAryHeap[da.Index](),
	}
}

func (as *AStar) heuristic(g *da.Graph, v, t da.Index) float64 {
	return geo.HeuristicEstimate(geo.EuclideanDistance(g.GetCoordinate(v), g.GetCoordinate(t)), as.maxSpeed)
}

// ShortestPath. returns the vertices of the quickest s-t path and its travel time in second (turn penalties included).
func (as *AStar) ShortestPath(g *da.Graph, s, t da.Index) ([]da.Index, float64, error) {
	if !g.IsValidVertex(s) || !g.IsValidVertex(t) {
		return nil, 0, util.WrapErrorf(ErrInvalidVertex, util.ErrBadParamInput, "source %d or destination %d", s, t)
	}

	q := newAstarQuery()
	q.forwardInfo[s] = newSourceInfo()
	q.pq.Insert(da.NewPriorityQueueNode(0, s))

	for !q.pq.IsEmpty() {
		node, _ := q.pq.ExtractMin()
		uId := node.GetItem()

		if _, ok := q.finalized[uId]; ok {
			continue
		}

		if uId == t {
			return q.retrievePath(t), q.forwardInfo[t].GetTravelTime(), nil
		}

		if err := as.relaxOutEdges(g, q, s, t, uId); err != nil {
			return nil, 0, err
		}

		q.finalized[uId] = struct{}{}
		q.numSettledNodes++
	}

	return nil, 0, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound, "no path from %d to %d", s, t)
}

func (as *AStar) relaxOutEdges(g *da.Graph, q *astarQuery, source, target, uId da.Index) error {
	uInfo := q.forwardInfo[uId]
	prev, hasPrev := uInfo.GetParent()

	var err error
	g.ForOutEdgesOf(uId, func(outArc *da.OutEdge) {
		if err != nil {
			return
		}

		vId := outArc.GetHead()
		if vId == uId {
			return
		}

		edgeWeight := as.costFunction.GetWeight(outArc)

		// the first edge out of the source does not make a turn
		turnCost := 0.0
		if uId != source && hasPrev {
			turnCost, err = as.turnCost(g, prev, uId, vId)
			if err != nil {
				return
			}
		}

		newTravelTime := uInfo.GetTravelTime() + edgeWeight + turnCost
		if newTravelTime >= pkg.INF_WEIGHT {
			return
		}

		vInfo, vAlreadyVisited := q.forwardInfo[vId]
		if vAlreadyVisited && newTravelTime >= vInfo.GetTravelTime() {
			return
		}

		q.forwardInfo[vId] = newVertexInfo(newTravelTime, uId)
		q.pq.Insert(da.NewPriorityQueueNode(newTravelTime+as.heuristic(g, vId, target), vId))
	})

	return err
}

func (as *AStar) turnCost(g *da.Graph, a, b, c da.Index) (float64, error) {
	isLeft, err := as.turnHandler.IsLeftTurn(g, a, b, c)
	if err != nil || !isLeft {
		return 0, err
	}
	return as.turnHandler.Penalty(g, a, b, c)
}

func (q *astarQuery) retrievePath(t da.Index) []da.Index {
	path := []da.Index{t}
	cur := t
	for {
		parent, ok := q.forwardInfo[cur].GetParent()
		if !ok {
			break
		}
		path = append(path, parent)
		cur = parent
	}
	return util.ReverseG(path)
}
