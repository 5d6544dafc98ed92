package routing

import "errors"

var (
	ErrPathNotFound  = errors.New("path not found")
	ErrInvalidVertex = errors.New("vertex does not exist in the graph")
	ErrEmptyTour     = errors.New("tour needs at least one node")
	ErrInvalidSpeed  = errors.New("heuristic max speed must be positive")
)
