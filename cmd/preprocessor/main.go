package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/graphstore"
	"github.com/lintang-b-s/quickestpath/pkg/logger"
	"github.com/lintang-b-s/quickestpath/pkg/osmparser"
	"go.uber.org/zap"
)

var (
	source  = flag.String("source", "osm", "road network source: osm or mysql")
	mapFile = flag.String("f", "./data/map.osm.pbf", "openstreetmap pbf file, used when source is osm")
	dsn     = flag.String("dsn", "", "mysql dsn, used when source is mysql")
	outFile = flag.String("out", "./data/original.graph", "output graph file")
	keepSCC = flag.Bool("largest_scc", true, "keep only the largest strongly connected component")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var graph *datastructure.Graph
	switch *source {
	case "osm":
		osmParser := osmparser.NewOSMParser(logger)
		graph, err = osmParser.Parse(ctx, *mapFile)
	case "mysql":
		var store *graphstore.Store
		store, err = graphstore.Open(*dsn, logger)
		if err != nil {
			break
		}
		defer store.Close()
		graph, err = store.LoadGraph(ctx)
	default:
		logger.Fatal("unknown source, expected osm or mysql", zap.String("source", *source))
	}
	if err != nil {
		logger.Fatal("failed to build road graph", zap.Error(err))
	}

	if *keepSCC {
		numVertices := graph.NumberOfVertices()
		graph = graph.Subgraph(graph.LargestComponent())
		logger.Info("restricted graph to its largest strongly connected component",
			zap.Int("verticesBefore", numVertices), zap.Int("verticesAfter", graph.NumberOfVertices()))
	}

	if err := graph.WriteGraph(*outFile); err != nil {
		logger.Fatal("failed to write graph", zap.Error(err))
	}

	logger.Sugar().Infof("Preprocessing completed successfully. %d vertices, %d edges written to %s",
		graph.NumberOfVertices(), graph.NumberOfEdges(), *outFile)
}
