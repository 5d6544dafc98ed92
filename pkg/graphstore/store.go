package graphstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/lintang-b-s/quickestpath/pkg/datastructure"
	"github.com/lintang-b-s/quickestpath/pkg/osmparser"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"go.uber.org/zap"
)

var ErrUnknownNode = errors.New("edge references a node missing from the nodes table")

const (
	selectNodes = `SELECT osm_id, lat, lon FROM nodes ORDER BY osm_id`
	selectEdges = `SELECT src_node, dst_node, highway, length_m, estimated_time FROM edges`
)

// Store. road graph kept in mysql tables nodes(osm_id, lat, lon) and
// edges(src_node, dst_node, highway, length_m, estimated_time).
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

func Open(dsn string, logger *zap.Logger) (*Store, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid mysql dsn")
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}
	return NewStore(db, logger), nil
}

func NewStore(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) Close() error {
	return s.db.Close()
}

type nodeRow struct {
	osmId int64
	lat   float64
	lon   float64
}

type edgeRow struct {
	src           int64
	dst           int64
	highway       sql.NullString
	length        float64 // meter
	estimatedTime sql.NullFloat64
}

func (s *Store) LoadGraph(ctx context.Context) (*datastructure.Graph, error) {
	if err := s.db.PingContext(ctx); err != nil {
		return nil, err
	}

	nodes, err := s.loadNodes(ctx)
	if err != nil {
		return nil, err
	}
	edges, err := s.loadEdges(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("graph rows loaded from mysql", zap.Int("nodes", len(nodes)), zap.Int("edges", len(edges)))

	return assembleGraph(nodes, edges)
}

func (s *Store) loadNodes(ctx context.Context) ([]nodeRow, error) {
	rows, err := s.db.QueryContext(ctx, selectNodes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nodes := make([]nodeRow, 0, 1024)
	for rows.Next() {
		var n nodeRow
		if err := rows.Scan(&n.osmId, &n.lat, &n.lon); err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

func (s *Store) loadEdges(ctx context.Context) ([]edgeRow, error) {
	rows, err := s.db.QueryContext(ctx, selectEdges)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edges := make([]edgeRow, 0, 1024)
	for rows.Next() {
		var e edgeRow
		if err := rows.Scan(&e.src, &e.dst, &e.highway, &e.length, &e.estimatedTime); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// assembleGraph. edges without estimated_time are timed with the default speed of their highway category.
func assembleGraph(nodes []nodeRow, edges []edgeRow) (*datastructure.Graph, error) {
	nodeIDMap := make(map[int64]datastructure.Index, len(nodes))
	vertexData := make([]datastructure.VertexData, 0, len(nodes))
	for _, n := range nodes {
		if _, ok := nodeIDMap[n.osmId]; ok {
			continue
		}
		nodeIDMap[n.osmId] = datastructure.Index(len(vertexData))
		vertexData = append(vertexData, datastructure.NewVertexData(n.lat, n.lon, n.osmId))
	}

	graphEdges := make([]datastructure.Edge, 0, len(edges))
	for _, e := range edges {
		u, okU := nodeIDMap[e.src]
		v, okV := nodeIDMap[e.dst]
		if !okU || !okV {
			return nil, util.WrapErrorf(ErrUnknownNode, util.ErrInternalServerError,
				"edge %d -> %d", e.src, e.dst)
		}

		highway := e.highway.String
		travelTime := e.estimatedTime.Float64
		if !e.estimatedTime.Valid || travelTime <= 0 {
			travelTime = osmparser.EstimatedTravelTime(e.length, osmparser.DefaultMaxSpeed(highway))
		}
		graphEdges = append(graphEdges,
			datastructure.NewEdge(u, v, travelTime, e.length, pkg.GetRoadCategory(highway)))
	}

	return datastructure.BuildGraph(vertexData, graphEdges), nil
}
