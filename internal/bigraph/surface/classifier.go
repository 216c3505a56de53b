package surface

import (
	"math"

	"spatial-bigraph/internal/bigraph/models"

	"github.com/golang/geo/r3"
)

// ============================================================
// Classifier
// ============================================================

const zeroTolerance = 1e-6

// Convention задает, как габариты мебели раскладываются по осям коробки.
type Convention int

const (
	// ConventionAnalyzed: length -> x, height -> y, width -> z
	// (обратно к плоскостям, где width -> x, length -> z).
	ConventionAnalyzed Convention = iota
	// ConventionConsistent: width -> x, height -> y, length -> z, как у плоскостей.
	ConventionConsistent
)

func (c Convention) String() string {
	switch c {
	case ConventionAnalyzed:
		return "analyzed"
	case ConventionConsistent:
		return "consistent"
	default:
		return "unknown"
	}
}

// ParseConvention понимает "analyzed" и "consistent".
func ParseConvention(s string) (Convention, bool) {
	switch s {
	case "analyzed", "":
		return ConventionAnalyzed, true
	case "consistent":
		return ConventionConsistent, true
	}
	return ConventionAnalyzed, false
}

// Object: объект комнаты перед классификацией. Anchor: угол для
// стен/дверей/окон, центр для мебели.
type Object struct {
	ID     string
	Anchor r3.Vector
	Dims   models.Dimensions
}

type Classifier struct {
	convention Convention
}

func NewClassifier(convention Convention) *Classifier {
	return &Classifier{convention: convention}
}

// Classify строит ровно одну поверхность на объект, в том же порядке.
// Объекты из structural становятся плоскостями, остальные: коробками.
func (c *Classifier) Classify(objects []Object, structural map[string]struct{}) []Surface {
	surfaces := make([]Surface, 0, len(objects))
	for _, obj := range objects {
		if _, ok := structural[obj.ID]; ok {
			surfaces = append(surfaces, planeOf(obj))
			continue
		}
		surfaces = append(surfaces, c.boxOf(obj))
	}
	return surfaces
}

func planeOf(obj Object) Surface {
	d := obj.Dims
	point := obj.Anchor.Add(r3.Vector{X: d.Width / 2, Y: d.Height / 2, Z: d.Length / 2})

	var normal r3.Vector
	switch {
	case almostZero(d.Length):
		normal = r3.Vector{X: 0, Y: 0, Z: 1}
	case almostZero(d.Width):
		normal = r3.Vector{X: 1, Y: 0, Z: 0}
	default:
		// считаем вырожденной высоту
		normal = r3.Vector{X: 0, Y: 1, Z: 0}
	}

	return NewPlane(obj.ID, point, normal)
}

func (c *Classifier) boxOf(obj Object) Surface {
	d := obj.Dims
	half := r3.Vector{X: d.Length / 2, Y: d.Height / 2, Z: d.Width / 2}
	if c.convention == ConventionConsistent {
		half = r3.Vector{X: d.Width / 2, Y: d.Height / 2, Z: d.Length / 2}
	}
	return NewBox(obj.ID, obj.Anchor.Sub(half), obj.Anchor.Add(half))
}

func almostZero(v float64) bool {
	return math.Abs(v) < zeroTolerance
}
