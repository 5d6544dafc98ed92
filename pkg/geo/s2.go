package geo

import (
	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/quickestpath/pkg"
)

func toS2Point(c Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

// EuclideanDistance. straight-line (chord) distance in km between two points placed in 3D on a sphere of
// the earth radius. s2 points lie on the unit sphere, so the chord is scaled by the radius.
func EuclideanDistance(a, b Coordinate) float64 {
	pa, pb := toS2Point(a), toS2Point(b)
	return pa.Sub(pb.Vector).Norm() * pkg.EARTH_RADIUS_KM
}
