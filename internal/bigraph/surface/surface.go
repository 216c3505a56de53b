package surface

import (
	"spatial-bigraph/internal/bigraph/geometry"

	"github.com/golang/geo/r3"
)

// ============================================================
// Surface
// ============================================================

type Kind int

const (
	KindPlane Kind = iota
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Surface: плоскость (Point, Normal) или AABB (Min, Max) объекта OwnerID.
// Поля другого варианта не используются.
type Surface struct {
	OwnerID string
	Kind    Kind

	Point  r3.Vector
	Normal r3.Vector

	Min r3.Vector
	Max r3.Vector
}

func NewPlane(owner string, point, normal r3.Vector) Surface {
	return Surface{OwnerID: owner, Kind: KindPlane, Point: point, Normal: normal}
}

func NewBox(owner string, min, max r3.Vector) Surface {
	return Surface{OwnerID: owner, Kind: KindBox, Min: min, Max: max}
}

// Distance считает расстояние от точки до поверхности по ее типу.
func (s Surface) Distance(p r3.Vector) float64 {
	if s.Kind == KindPlane {
		return geometry.PointToPlaneDistance(p, s.Point, s.Normal)
	}
	return geometry.PointToBoxDistance(p, s.Min, s.Max)
}

// Centroid: для плоскости это точка плоскости (угол + половина габаритов),
// для коробки ее центр.
func (s Surface) Centroid() r3.Vector {
	if s.Kind == KindPlane {
		return s.Point
	}
	return s.Min.Add(s.Max).Mul(0.5)
}
