package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/quickestpath/pkg/geo"
	helper "github.com/lintang-b-s/quickestpath/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/quickestpath/pkg/http/usecases"
	"github.com/lintang-b-s/quickestpath/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRoutingService struct {
	routeErr   error
	tourErr    error
	gotPoints  []geo.Coordinate
	gotAlgo    string
	routeCalls int
}

func (f *fakeRoutingService) ShortestPath(origLat, origLon, dstLat, dstLon float64) (usecases.RouteResult, error) {
	f.routeCalls++
	if f.routeErr != nil {
		return usecases.RouteResult{}, f.routeErr
	}
	return usecases.RouteResult{TravelTime: 20, Distance: 200, Path: "abc", Nodes: []int64{1000, 1001, 1002}}, nil
}

func (f *fakeRoutingService) Tour(points []geo.Coordinate, algorithm string) (usecases.TourResult, error) {
	f.gotPoints = points
	f.gotAlgo = algorithm
	if f.tourErr != nil {
		return usecases.TourResult{}, f.tourErr
	}
	return usecases.TourResult{
		RouteResult: usecases.RouteResult{TravelTime: 40, Distance: 400, Path: "xyz", Nodes: []int64{1000, 1001, 1008}},
		VisitOrder:  []int64{1000, 1001, 1008},
	}, nil
}

func newTestRouter(svc RoutingService) *httprouter.Router {
	router := httprouter.New()
	New(svc, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

type responseBody struct {
	Data  map[string]any `json:"data"`
	Error errorDetail    `json:"error"`
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) responseBody {
	t.Helper()
	var body responseBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestComputeRoutes(t *testing.T) {
	validQuery := "origin_lat=52.23&origin_lon=21.01&destination_lat=52.232&destination_lon=21.01"

	cases := []struct {
		name       string
		query      string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "ok", query: validQuery, wantStatus: http.StatusOK},
		{name: "missing param", query: "origin_lat=52.23&origin_lon=21.01&destination_lat=52.232",
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "not a float", query: "origin_lat=abc&origin_lon=21.01&destination_lat=52.232&destination_lon=21.01",
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "latitude out of range", query: "origin_lat=91&origin_lon=21.01&destination_lat=52.232&destination_lon=21.01",
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "path not found", query: validQuery,
			svcErr:     util.WrapErrorf(nil, util.ErrNotFound, "no path"),
			wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "bad input from service", query: validQuery,
			svcErr:     util.WrapErrorf(usecases.ErrOutOfBounds, util.ErrBadParamInput, "origin"),
			wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "internal error", query: validQuery,
			svcErr:     assert.AnError,
			wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeRoutingService{routeErr: tc.svcErr}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/computeRoutes?"+tc.query, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			body := decodeBody(t, rr)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, 20.0, body.Data["eta"])
				assert.Equal(t, 200.0, body.Data["distance"])
				assert.Equal(t, "abc", body.Data["path"])
				assert.Equal(t, []any{1000.0, 1001.0, 1002.0}, body.Data["nodes"])
				return
			}
			assert.Equal(t, tc.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestComputeTour(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantStatus int
		wantAlgo   string
		wantPoints int
	}{
		{name: "nearest neighbor", body: `{"points":[{"lat":52.23,"lon":21.01},{"lat":52.231,"lon":21.011}],"algorithm":"nearest_neighbor"}`,
			wantStatus: http.StatusOK, wantAlgo: "nearest_neighbor", wantPoints: 2},
		{name: "default algorithm", body: `{"points":[{"lat":0,"lon":0}]}`,
			wantStatus: http.StatusOK, wantAlgo: "", wantPoints: 1},
		{name: "brute force", body: `{"points":[{"lat":52.23,"lon":21.01},{"lat":52.231,"lon":21.011},{"lat":52.232,"lon":21.012}],"algorithm":"brute_force"}`,
			wantStatus: http.StatusOK, wantAlgo: "brute_force", wantPoints: 3},
		{name: "unknown algorithm", body: `{"points":[{"lat":52.23,"lon":21.01}],"algorithm":"genetic"}`,
			wantStatus: http.StatusBadRequest},
		{name: "missing lon", body: `{"points":[{"lat":52.23}]}`, wantStatus: http.StatusBadRequest},
		{name: "empty points", body: `{"points":[]}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"points":`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeRoutingService{}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/computeTour", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			body := decodeBody(t, rr)
			if tc.wantStatus != http.StatusOK {
				assert.Equal(t, "BAD_REQUEST", body.Error.Code)
				assert.Nil(t, svc.gotPoints)
				return
			}

			assert.Equal(t, tc.wantAlgo, svc.gotAlgo)
			assert.Len(t, svc.gotPoints, tc.wantPoints)
			assert.Equal(t, 40.0, body.Data["eta"])
			assert.Equal(t, []any{1000.0, 1001.0, 1008.0}, body.Data["visit_order"])
		})
	}
}

func TestComputeTourServiceError(t *testing.T) {
	svc := &fakeRoutingService{tourErr: util.WrapErrorf(usecases.ErrTooManyPoints, util.ErrBadParamInput, "8 points")}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/computeTour",
		strings.NewReader(`{"points":[{"lat":52.23,"lon":21.01}]}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Contains(t, body.Error.Message, usecases.ErrTooManyPoints.Error())
}
