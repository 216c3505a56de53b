package geometry

import (
	"math"

	"spatial-bigraph/internal/bigraph/models"

	"github.com/golang/geo/r3"
)

// ============================================================
// Geometry primitives
// ============================================================

// ToVector переводит {x, y, z} в вектор. Отсутствие любой координаты дает
// MissingCoordinateError (Owner заполняет вызывающий код).
func ToVector(p *models.Point) (r3.Vector, error) {
	if p == nil {
		return r3.Vector{}, &models.MissingCoordinateError{}
	}
	switch {
	case p.X == nil:
		return r3.Vector{}, &models.MissingCoordinateError{Coordinate: "x"}
	case p.Y == nil:
		return r3.Vector{}, &models.MissingCoordinateError{Coordinate: "y"}
	case p.Z == nil:
		return r3.Vector{}, &models.MissingCoordinateError{Coordinate: "z"}
	}
	return r3.Vector{X: *p.X, Y: *p.Y, Z: *p.Z}, nil
}

// PointToPlaneDistance: беззнаковое расстояние до бесконечной плоскости.
// normal должен быть единичным, функция его не нормирует.
func PointToPlaneDistance(point, planePoint, normal r3.Vector) float64 {
	return math.Abs(normal.Dot(point.Sub(planePoint)))
}

// PointToBoxDistance: расстояние до AABB; 0 внутри и на границе.
func PointToBoxDistance(point, boxMin, boxMax r3.Vector) float64 {
	d := r3.Vector{
		X: axisOverflow(point.X, boxMin.X, boxMax.X),
		Y: axisOverflow(point.Y, boxMin.Y, boxMax.Y),
		Z: axisOverflow(point.Z, boxMin.Z, boxMax.Z),
	}
	return d.Norm()
}

func axisOverflow(v, lo, hi float64) float64 {
	return math.Max(math.Max(lo-v, 0), v-hi)
}
