package engine

import (
	"github.com/lintang-b-s/quickestpath/pkg/costfunction"
	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/engine/routing"
	"github.com/lintang-b-s/quickestpath/pkg/guidance"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"go.uber.org/zap"
)

type Engine struct {
	graph      *datastructure.Graph
	astar      *routing.AStar
	tourSolver *routing.TourSolver
	config     util.RoutingConfig
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) GetRoutingEngine() *routing.AStar {
	return e.astar
}

func (e *Engine) GetTourSolver() *routing.TourSolver {
	return e.tourSolver
}

func (e *Engine) GetConfig() util.RoutingConfig {
	return e.config
}

func NewEngine(graphFilePath string, config util.RoutingConfig, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting query engine of left-turn-aware A*...")

	logger.Info("Reading graph from ", zap.String("graphFilePath", graphFilePath))
	graph, err := datastructure.ReadGraph(graphFilePath)
	if err != nil {
		return nil, err
	}
	logger.Info("Graph loaded", zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	return NewEngineWithGraph(graph, config, logger)
}

// NewEngineWithGraph. engine over a graph that is already in memory, e.g. loaded from mysql.
func NewEngineWithGraph(graph *datastructure.Graph, config util.RoutingConfig, logger *zap.Logger) (*Engine, error) {
	turnHandler, err := guidance.NewLeftTurnHandler(config.LeftTurnMinAngle, config.PenaltyToBetterRoad,
		config.PenaltyToEqualRoad, config.PenaltyToWorseRoad)
	if err != nil {
		return nil, err
	}

	astar, err := routing.NewAStar(turnHandler, costfunction.NewTimeCostFunction(), config.HeuristicMaxSpeed)
	if err != nil {
		return nil, err
	}

	logger.Info("Routing engine ready",
		zap.Float64("leftTurnMinAngle", config.LeftTurnMinAngle),
		zap.Float64("penaltyToBetterRoad", config.PenaltyToBetterRoad),
		zap.Float64("penaltyToEqualRoad", config.PenaltyToEqualRoad),
		zap.Float64("penaltyToWorseRoad", config.PenaltyToWorseRoad),
		zap.Float64("heuristicMaxSpeed", config.HeuristicMaxSpeed))

	return &Engine{
		graph:      graph,
		astar:      astar,
		tourSolver: routing.NewTourSolver(astar),
		config:     config,
	}, nil
}
