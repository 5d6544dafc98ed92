package routing

import (
	"math"

	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/util"
)

type Tour struct {
	Path       []da.Index
	TravelTime float64    // second
	VisitOrder []da.Index // stops in the order they are visited, starting with the start node
}

type TourSolver struct {
	pathFinder PathFinder
}

func NewTourSolver(pathFinder PathFinder) *TourSolver {
	return &TourSolver{pathFinder: pathFinder}
}

func newTrivialTour(g *da.Graph, nodes []da.Index) (*Tour, bool, error) {
	if len(nodes) == 0 {
		return nil, true, util.WrapErrorf(ErrEmptyTour, util.ErrBadParamInput, "empty node list")
	}
	for i, u := range nodes {
		if !g.IsValidVertex(u) {
			return nil, true, util.WrapErrorf(ErrInvalidVertex, util.ErrBadParamInput, "stop %d (vertex %d)", i, u)
		}
	}
	if len(nodes) == 1 {
		return &Tour{
			Path:       []da.Index{nodes[0]},
			VisitOrder: []da.Index{nodes[0]},
		}, true, nil
	}
	return nil, false, nil
}

// appendSegment. every segment after the first starts at the last vertex of the path so far.
func appendSegment(path, segment []da.Index) []da.Index {
	if len(path) == 0 {
		return append(path, segment...)
	}
	return append(path, segment[1:]...)
}

/*
SolveNearestNeighbor. greedy tour starting at nodes[0]: always go to the unvisited node with the smallest straight
line distance from the current position. the legs are computed with the path finder but the order only looks at
straight line distance, so the tour is not optimal.
*/
func (ts *TourSolver) SolveNearestNeighbor(g *da.Graph, nodes []da.Index) (*Tour, error) {
	if tour, done, err := newTrivialTour(g, nodes); done {
		return tour, err
	}

	visited := make([]bool, len(nodes))
	visited[0] = true
	cur := nodes[0]

	tour := &Tour{
		Path:       make([]da.Index, 0),
		VisitOrder: []da.Index{cur},
	}

	for {
		nearest := -1
		nearestDist := math.Inf(1)
		for i, node := range nodes {
			if visited[i] {
				continue
			}
			dist := geo.EuclideanDistance(g.GetCoordinate(cur), g.GetCoordinate(node))
			if dist < nearestDist {
				nearest, nearestDist = i, dist
			}
		}
		if nearest == -1 {
			break
		}

		next := nodes[nearest]
		segment, travelTime, err := ts.pathFinder.ShortestPath(g, cur, next)
		if err != nil {
			return nil, err
		}

		tour.Path = appendSegment(tour.Path, segment)
		tour.TravelTime += travelTime
		tour.VisitOrder = append(tour.VisitOrder, next)

		visited[nearest] = true
		cur = next
	}

	return tour, nil
}

type segmentKey struct {
	from, to da.Index
}

type segment struct {
	path       []da.Index
	travelTime float64
}

// bruteForceQuery. legs already computed during one SolveBruteForce call.
type bruteForceQuery struct {
	g          *da.Graph
	pathFinder PathFinder
	segments   map[segmentKey]segment

	numEvaluatedOrders int
}

func (bq *bruteForceQuery) getSegment(from, to da.Index) (segment, error) {
	key := segmentKey{from, to}
	if seg, ok := bq.segments[key]; ok {
		return seg, nil
	}
	path, travelTime, err := bq.pathFinder.ShortestPath(bq.g, from, to)
	if err != nil {
		return segment{}, err
	}
	seg := segment{path: path, travelTime: travelTime}
	bq.segments[key] = seg
	return seg, nil
}

// evaluate. travel time of the tour visiting nodes in order, or (bestSoFar, false) as soon as the running total reaches bestSoFar.
func (bq *bruteForceQuery) evaluate(order []da.Index, bestSoFar float64) (float64, bool, error) {
	bq.numEvaluatedOrders++
	total := 0.0
	for i := 1; i < len(order); i++ {
		seg, err := bq.getSegment(order[i-1], order[i])
		if err != nil {
			return 0, false, err
		}
		total += seg.travelTime
		if total >= bestSoFar {
			return bestSoFar, false, nil
		}
	}
	return total, true, nil
}

func (bq *bruteForceQuery) buildTour(order []da.Index, travelTime float64) *Tour {
	path := make([]da.Index, 0)
	for i := 1; i < len(order); i++ {
		path = appendSegment(path, bq.segments[segmentKey{order[i-1], order[i]}].path)
	}
	return &Tour{
		Path:       path,
		TravelTime: travelTime,
		VisitOrder: order,
	}
}

/*
SolveBruteForce. try every order of nodes[1:] after the fixed start nodes[0] and keep the quickest one.
(len(nodes)-1)! orders, only usable for a handful of stops.
an order is dropped once its running travel time reaches the best total so far. edge weights and turn penalties are
never negative, so the running total never decreases and the dropped order can not win.
*/
func (ts *TourSolver) SolveBruteForce(g *da.Graph, nodes []da.Index) (*Tour, error) {
	if tour, done, err := newTrivialTour(g, nodes); done {
		return tour, err
	}

	bq := &bruteForceQuery{
		g:          g,
		pathFinder: ts.pathFinder,
		segments:   make(map[segmentKey]segment),
	}

	perm := make([]int, len(nodes)-1)
	for i := range perm {
		perm[i] = i + 1
	}

	order := make([]da.Index, len(nodes))
	order[0] = nodes[0]

	var (
		bestOrder []da.Index
		bestTime  = math.Inf(1)
	)

	for {
		for i, idx := range perm {
			order[i+1] = nodes[idx]
		}

		travelTime, complete, err := bq.evaluate(order, bestTime)
		if err != nil {
			return nil, err
		}
		if complete {
			bestTime = travelTime
			bestOrder = append(bestOrder[:0], order...)
		}

		if !nextPermutation(perm) {
			break
		}
	}

	return bq.buildTour(bestOrder, bestTime), nil
}

// nextPermutation. rearrange p into its lexicographic successor, false if p is already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
