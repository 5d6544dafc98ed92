package main

import (
	"errors"
	"flag"
	"runtime"
	"time"

	"github.com/lintang-b-s/quickestpath/pkg/concurrent"
	da "github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/engine"
	log "github.com/lintang-b-s/quickestpath/pkg/logger"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	graphFile  = flag.String("graph", "./data/original.graph", "graph file written by the preprocessor")
	numQueries = flag.Int("n", 200, "number of random tours")
	numPoints  = flag.Int("k", 6, "points per tour")
	seed       = flag.Uint64("seed", 42, "random seed")
)

type tourQuery struct {
	id    int
	nodes []da.Index
}

type tourResult struct {
	id         int
	nnTime     float64
	bfTime     float64
	nnDuration time.Duration
	bfDuration time.Duration
	err        error
}

// compares the nearest neighbor heuristic with the exact brute force order on random tours.
func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	re, err := engine.NewEngine(*graphFile, util.LoadRoutingConfig(), logger)
	if err != nil {
		panic(err)
	}
	g := re.GetGraph()
	solver := re.GetTourSolver()

	rd := rand.New(rand.NewSource(*seed))
	queries := make([]tourQuery, *numQueries)
	for i := range queries {
		nodes := make([]da.Index, *numPoints)
		for j := range nodes {
			nodes[j] = da.Index(rd.Intn(g.NumberOfVertices()))
		}
		queries[i] = tourQuery{id: i, nodes: nodes}
	}

	results := concurrent.Run(runtime.NumCPU(), queries, func(q tourQuery) tourResult {
		start := time.Now()
		nn, err := solver.SolveNearestNeighbor(g, q.nodes)
		if err != nil {
			return tourResult{id: q.id, err: err}
		}
		nnDuration := time.Since(start)

		start = time.Now()
		bf, err := solver.SolveBruteForce(g, q.nodes)
		if err != nil {
			return tourResult{id: q.id, err: err}
		}
		return tourResult{
			id:         q.id,
			nnTime:     nn.TravelTime,
			bfTime:     bf.TravelTime,
			nnDuration: nnDuration,
			bfDuration: time.Since(start),
		}
	})

	var (
		solved, unreachable, improved int
		ratioSum                      float64
		nnTotal, bfTotal              time.Duration
	)
	for _, res := range results {
		if res.err != nil {
			if errors.Is(util.ErrorCode(res.err), util.ErrNotFound) {
				unreachable++
				continue
			}
			logger.Error("tour failed", zap.Int("query", res.id), zap.Error(res.err))
			continue
		}
		if res.bfTime > res.nnTime+1e-9 {
			logger.Error("brute force tour is longer than nearest neighbor", zap.Int("query", res.id),
				zap.Float64("nearestNeighbor", res.nnTime), zap.Float64("bruteForce", res.bfTime))
		}
		solved++
		if res.bfTime < res.nnTime {
			improved++
		}
		if res.bfTime > 0 {
			ratioSum += res.nnTime / res.bfTime
		} else {
			ratioSum += 1
		}
		nnTotal += res.nnDuration
		bfTotal += res.bfDuration
	}

	if solved == 0 {
		logger.Info("no tour solved", zap.Int("unreachable", unreachable))
		return
	}

	logger.Info("tour evaluation done",
		zap.Int("solved", solved),
		zap.Int("unreachable", unreachable),
		zap.Int("bruteForceImproved", improved),
		zap.Float64("meanNearestNeighborRatio", ratioSum/float64(solved)),
		zap.Duration("meanNearestNeighborLatency", nnTotal/time.Duration(solved)),
		zap.Duration("meanBruteForceLatency", bfTotal/time.Duration(solved)),
	)
}
