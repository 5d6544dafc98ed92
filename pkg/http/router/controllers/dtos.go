package controllers

import (
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	"github.com/lintang-b-s/quickestpath/pkg/http/usecases"
	"github.com/paulmach/orb/geojson"
)

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
}

type shortestPathResponse struct {
	Eta   float64 `json:"eta"`
	Path  string  `json:"path"`
	Dist  float64 `json:"distance"`
	Nodes []int64 `json:"nodes"`
}

func NewShortestPathResponse(res usecases.RouteResult) shortestPathResponse {
	return shortestPathResponse{
		Eta:   res.TravelTime,
		Path:  res.Path,
		Dist:  res.Distance,
		Nodes: res.Nodes,
	}
}

type point struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

type tourRequest struct {
	Points    []point `json:"points" validate:"required,min=1,dive"`
	Algorithm string  `json:"algorithm" validate:"omitempty,oneof=nearest_neighbor brute_force"`
}

func (r tourRequest) coordinates() []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(r.Points))
	for _, p := range r.Points {
		coords = append(coords, geo.NewCoordinate(*p.Lat, *p.Lon))
	}
	return coords
}

type tourResponse struct {
	shortestPathResponse
	VisitOrder []int64                    `json:"visit_order"`
	Route      *geojson.FeatureCollection `json:"route"`
	Stops      *geojson.FeatureCollection `json:"stops"`
}

func NewTourResponse(res usecases.TourResult) tourResponse {
	return tourResponse{
		shortestPathResponse: NewShortestPathResponse(res.RouteResult),
		VisitOrder:           res.VisitOrder,
		Route:                res.Route,
		Stops:                res.Stops,
	}
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}
