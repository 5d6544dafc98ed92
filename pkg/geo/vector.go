package geo

import (
	"math"

	"github.com/lintang-b-s/quickestpath/pkg"
	"github.com/lintang-b-s/quickestpath/pkg/util"
)

// Vector. planar displacement in meter, x points east and y points north.
type Vector struct {
	X float64
	Y float64
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

/*
VectorBetween. project both coordinates to a plane (x = R*lon, y = R*lat in radians) and return to - from.
only meaningful for short distances, e.g. two adjacent edges of an intersection.
*/
func VectorBetween(from, to Coordinate) Vector {
	xFrom := pkg.EARTH_RADIUS_M * util.DegreeToRadians(from.Lon)
	yFrom := pkg.EARTH_RADIUS_M * util.DegreeToRadians(from.Lat)
	xTo := pkg.EARTH_RADIUS_M * util.DegreeToRadians(to.Lon)
	yTo := pkg.EARTH_RADIUS_M * util.DegreeToRadians(to.Lat)

	return Vector{X: xTo - xFrom, Y: yTo - yFrom}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross. z component of v x w. positive when w is counter-clockwise from v.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

/*
AngleBetweenVectors. signed angle in degree, range (-180, 180], from a to b.
with x east and y north a left (counter-clockwise) turn gives a positive angle and a right turn a negative one,
e.g. heading north a=(0,1) then west b=(-1,0): cross = 1, dot = 0 => +90.
*/
func AngleBetweenVectors(a, b Vector) float64 {
	deg := util.RadiansToDegree(math.Atan2(a.Cross(b), a.Dot(b)))
	// atan2(-0, x<0) is -180, a u-turn is always +180
	if deg <= -180 {
		deg += 360
	}
	return deg
}
