package guidance

import (
	"errors"

	"github.com/lintang-b-s/quickestpath/pkg"
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/util"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNegativePenalty   = errors.New("turn penalty must not be negative")
)

/*
LeftTurnHandler. classify a -> b -> c as a left turn and price it.

a turn is a left turn when the signed angle from vector a->b to vector b->c is larger than minAngle.
the vectors live on a plane with x east and y north, so a counter-clockwise (left) turn has a positive angle.
the penalty depends on the road category transition from edge (a,b) to edge (b,c).
*/
type LeftTurnHandler struct {
	minAngle        float64 // degree
	penaltyToBetter float64 // second
	penaltyToEqual  float64
	penaltyToWorse  float64
}

func NewLeftTurnHandler(minAngle, penaltyToBetter, penaltyToEqual, penaltyToWorse float64) (*LeftTurnHandler, error) {
	if penaltyToBetter < 0 || penaltyToEqual < 0 || penaltyToWorse < 0 {
		return nil, util.WrapErrorf(ErrNegativePenalty, util.ErrBadParamInput,
			"penalties better=%v equal=%v worse=%v", penaltyToBetter, penaltyToEqual, penaltyToWorse)
	}
	return &LeftTurnHandler{
		minAngle:        minAngle,
		penaltyToBetter: penaltyToBetter,
		penaltyToEqual:  penaltyToEqual,
		penaltyToWorse:  penaltyToWorse,
	}, nil
}

func NewDefaultLeftTurnHandler() *LeftTurnHandler {
	return &LeftTurnHandler{
		minAngle:        pkg.DEFAULT_LEFT_TURN_MIN_ANGLE,
		penaltyToBetter: pkg.DEFAULT_PENALTY_TO_BETTER_ROAD,
		penaltyToEqual:  pkg.DEFAULT_PENALTY_TO_EQUAL_ROAD,
		penaltyToWorse:  pkg.DEFAULT_PENALTY_TO_WORSE_ROAD,
	}
}

func (h *LeftTurnHandler) GetMinAngle() float64 {
	return h.minAngle
}

func (h *LeftTurnHandler) edges(g Graph, a, b, c da.Index) (*da.OutEdge, *da.OutEdge, error) {
	ab, ok := g.FindOutEdge(a, b)
	if !ok {
		return nil, nil, util.WrapErrorf(ErrInvalidTransition, util.ErrInternalServerError,
			"no edge %d -> %d", a, b)
	}
	bc, ok := g.FindOutEdge(b, c)
	if !ok {
		return nil, nil, util.WrapErrorf(ErrInvalidTransition, util.ErrInternalServerError,
			"no edge %d -> %d", b, c)
	}
	return ab, bc, nil
}

// TurnAngle. signed angle in degree of the turn a -> b -> c, positive to the left.
func TurnAngle(g Graph, a, b, c da.Index) float64 {
	ab := geo.VectorBetween(g.GetCoordinate(a), g.GetCoordinate(b))
	bc := geo.VectorBetween(g.GetCoordinate(b), g.GetCoordinate(c))
	return geo.AngleBetweenVectors(ab, bc)
}

// IsLeftTurn. b with exactly two neighbors (one predecessor and one successor) is a point along a one way road,
// not an intersection.
func (h *LeftTurnHandler) IsLeftTurn(g Graph, a, b, c da.Index) (bool, error) {
	if _, _, err := h.edges(g, a, b, c); err != nil {
		return false, err
	}

	if g.NumberOfNeighbors(b) == 2 {
		return false, nil
	}

	return TurnAngle(g, a, b, c) > h.minAngle, nil
}

func (h *LeftTurnHandler) Penalty(g Graph, a, b, c da.Index) (float64, error) {
	ab, bc, err := h.edges(g, a, b, c)
	if err != nil {
		return 0, err
	}

	switch pkg.CompareRoadCategories(ab.GetRoadCategory(), bc.GetRoadCategory()) {
	case pkg.WORSE_ROAD:
		return h.penaltyToWorse, nil
	case pkg.EQUAL_ROAD:
		return h.penaltyToEqual, nil
	default:
		return h.penaltyToBetter, nil
	}
}

// TurnCost. penalty of a -> b -> c if it is a left turn, 0 otherwise.
func (h *LeftTurnHandler) TurnCost(g Graph, a, b, c da.Index) (float64, error) {
	isLeft, err := h.IsLeftTurn(g, a, b, c)
	if err != nil || !isLeft {
		return 0, err
	}
	return h.Penalty(g, a, b, c)
}
