package surface

import (
	"math"

	"spatial-bigraph/internal/bigraph/models"

	"github.com/golang/geo/r3"
)

// ============================================================
// Nearest surface resolver
// ============================================================

// Strategy: способ измерять расстояние до кандидата.
type Strategy int

const (
	// StrategySurface: расстояние до плоскости/AABB.
	StrategySurface Strategy = iota
	// StrategyCentroid: расстояние до центра объекта.
	//
	// Deprecated: оставлен для сравнения со старыми графами, по умолчанию не используется.
	StrategyCentroid
)

func (s Strategy) String() string {
	switch s {
	case StrategySurface:
		return "surface"
	case StrategyCentroid:
		return "centroid"
	default:
		return "unknown"
	}
}

// ParseStrategy понимает "surface" и "centroid".
func ParseStrategy(s string) (Strategy, bool) {
	switch s {
	case "surface", "":
		return StrategySurface, true
	case "centroid":
		return StrategyCentroid, true
	}
	return StrategySurface, false
}

// Match: выбранная поверхность.
type Match struct {
	OwnerID  string
	Distance float64
	Index    int
}

// closer: кандидат заменяет лучший только при строго меньшем расстоянии,
// поэтому при равенстве остается первый по порядку.
func closer(candidate, best Match) bool {
	return candidate.Distance < best.Distance
}

type Resolver struct {
	strategy Strategy
}

func NewResolver(strategy Strategy) *Resolver {
	return &Resolver{strategy: strategy}
}

// Resolve проходит поверхности в переданном порядке и возвращает ближайшую.
// Пустой набор: ErrEmptyCandidateSet.
func (r *Resolver) Resolve(p r3.Vector, surfaces []Surface) (Match, error) {
	if len(surfaces) == 0 {
		return Match{}, models.ErrEmptyCandidateSet
	}

	best := Match{Distance: math.Inf(1), Index: -1}
	for i, s := range surfaces {
		candidate := Match{OwnerID: s.OwnerID, Distance: r.distance(p, s), Index: i}
		if best.Index < 0 || closer(candidate, best) {
			best = candidate
		}
	}
	return best, nil
}

func (r *Resolver) distance(p r3.Vector, s Surface) float64 {
	if r.strategy == StrategyCentroid {
		return p.Distance(s.Centroid())
	}
	return s.Distance(p)
}
