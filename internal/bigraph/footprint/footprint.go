package footprint

import (
	"fmt"
	"math"

	"spatial-bigraph/internal/bigraph/geometry"
	"spatial-bigraph/internal/bigraph/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ============================================================
// Plan view (x, z)
// ============================================================

// допуск "проем лежит на границе комнаты"
const flushTolerance = 1e-3

const (
	KindBoundary = "boundary"
	KindDoor     = "door"
	KindWindow   = "window"
	KindObject   = "object"
	KindDevice   = "device"
)

// ProjectFloor проецирует все комнаты в одну коллекцию.
func ProjectFloor(floor *models.Floor) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for i := range floor.Rooms {
		roomFC, err := Project(&floor.Rooms[i])
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, roomFC.Features...)
	}
	return fc, nil
}

// Project строит вид сверху одной комнаты: границу по углам стен,
// проемы на границе, прямоугольники мебели и точки устройств.
func Project(room *models.Room) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	bound, ok, err := wallBound(room)
	if err != nil {
		return nil, err
	}
	if ok {
		fc.Append(newFeature(bound.ToPolygon(), room.Name, KindBoundary, room.Name, room.Name))
	}

	for _, group := range []struct {
		kind  string
		name  string
		items []models.Item
	}{
		{KindDoor, models.GroupDoors, room.Doors},
		{KindWindow, models.GroupWindows, room.Windows},
	} {
		for i, item := range group.items {
			id := itemID(item, group.name, i)
			p, err := planPoint(item.Anchor(), id)
			if err != nil {
				return nil, err
			}
			seg := openingSegment(p, item.Dimensions, bound, ok)
			fc.Append(newFeature(seg, room.Name, group.kind, id, models.StructuralLabel(group.name)))
		}
	}

	for _, group := range room.Objects {
		for i, item := range group.Items {
			id := itemID(item, group.Name, i)
			p, err := planPoint(item.Anchor(), id)
			if err != nil {
				return nil, err
			}
			// центр, length вдоль x, width вдоль z
			halfL, halfW := item.Dimensions.Length/2, item.Dimensions.Width/2
			rect := orb.Bound{
				Min: orb.Point{p[0] - halfL, p[1] - halfW},
				Max: orb.Point{p[0] + halfL, p[1] + halfW},
			}
			label := item.Category
			if label == "" {
				label = group.Name
			}
			fc.Append(newFeature(rect.ToPolygon(), room.Name, KindObject, id, label))
		}
	}

	for _, dev := range room.Devices {
		id := string(dev.ID)
		p, err := planPoint(dev.Position, id)
		if err != nil {
			return nil, err
		}
		fc.Append(newFeature(p, room.Name, KindDevice, id, dev.Label()))
	}

	return fc, nil
}

// wallBound: ограничивающий прямоугольник углов стен; ok=false, если стен нет.
func wallBound(room *models.Room) (orb.Bound, bool, error) {
	var bound orb.Bound
	for i, wall := range room.Walls {
		p, err := planPoint(wall.Anchor(), itemID(wall, models.GroupWalls, i))
		if err != nil {
			return orb.Bound{}, false, err
		}
		if i == 0 {
			bound = p.Bound()
			continue
		}
		bound = bound.Extend(p)
	}
	return bound, len(room.Walls) > 0, nil
}

// openingSegment кладет дверь/окно на ту сторону границы, к которой прилегает угол.
func openingSegment(p orb.Point, dims models.Dimensions, bound orb.Bound, hasBound bool) orb.LineString {
	x, z := p[0], p[1]
	w, l := dims.Width, dims.Length

	if hasBound {
		switch {
		case math.Abs(z-bound.Max[1]) < flushTolerance:
			return orb.LineString{{x, bound.Max[1]}, {x + w, bound.Max[1]}}
		case math.Abs(z-bound.Min[1]) < flushTolerance:
			return orb.LineString{{x, bound.Min[1]}, {x + w, bound.Min[1]}}
		case math.Abs(x-bound.Min[0]) < flushTolerance:
			return orb.LineString{{bound.Min[0], z}, {bound.Min[0], z - w}}
		case math.Abs(x-bound.Max[0]) < flushTolerance:
			return orb.LineString{{bound.Max[0], z}, {bound.Max[0], z - w}}
		}
	}

	if w > 0 {
		return orb.LineString{{x, z}, {x + w, z}}
	}
	return orb.LineString{{x, z}, {x, z + l}}
}

func planPoint(p *models.Point, owner string) (orb.Point, error) {
	v, err := geometry.ToVector(p)
	if err != nil {
		if mc, ok := err.(*models.MissingCoordinateError); ok {
			mc.Owner = owner
		}
		return orb.Point{}, fmt.Errorf("footprint: %w", err)
	}
	return orb.Point{v.X, v.Z}, nil
}

func itemID(item models.Item, group string, i int) string {
	if item.ID != "" {
		return string(item.ID)
	}
	return fmt.Sprintf("%s_%d", group, i)
}

func newFeature(g orb.Geometry, room, kind, id, label string) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties["room"] = room
	f.Properties["kind"] = kind
	f.Properties["id"] = id
	f.Properties["label"] = label
	return f
}
