package controllers

import (
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPath(origLat, origLon, dstLat, dstLon float64) (usecases.RouteResult, error)
	Tour(points []geo.Coordinate, algorithm string) (usecases.TourResult, error)
}
