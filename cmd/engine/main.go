package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/quickestpath/pkg/engine"
	"github.com/lintang-b-s/quickestpath/pkg/graphstore"
	"github.com/lintang-b-s/quickestpath/pkg/http"
	"github.com/lintang-b-s/quickestpath/pkg/http/usecases"
	"github.com/lintang-b-s/quickestpath/pkg/logger"
	"github.com/lintang-b-s/quickestpath/pkg/spatialindex"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile    = flag.String("graph", "./data/original.graph", "bzip2 compressed graph file written by the preprocessor")
	dsn          = flag.String("dsn", "", "load the road graph from this mysql dsn instead of the graph file")
	useRateLimit = flag.Bool("rate_limit", false, "enable the global request rate limiter")
)

func main() {
	flag.Parse()
	configErr := util.ReadConfig()

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if configErr != nil {
		if !errors.Is(util.ErrorCode(configErr), util.ErrNotFound) {
			logger.Fatal("failed to read config", zap.Error(configErr))
		}
		logger.Info("no config file, using defaults and environment")
	}
	config := util.LoadRoutingConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routingEngine, err := newEngine(ctx, config, logger)
	if err != nil {
		logger.Fatal("failed to start routing engine", zap.Error(err))
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(routingEngine.GetGraph(), logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, rtree, config.SnapRadius,
		config.MaxPointsAllowed)

	api := http.NewServer(logger)
	err = api.Use(ctx, logger, *useRateLimit, routingService)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
	}

	logger.Info("quickestpath routing engine server stopped")
}

func newEngine(ctx context.Context, config util.RoutingConfig, logger *zap.Logger) (*engine.Engine, error) {
	if *dsn == "" {
		return engine.NewEngine(*graphFile, config, logger)
	}

	store, err := graphstore.Open(*dsn, logger)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	graph, err := store.LoadGraph(ctx)
	if err != nil {
		return nil, err
	}
	return engine.NewEngineWithGraph(graph, config, logger)
}
