package footprint

import (
	"errors"
	"testing"

	"spatial-bigraph/internal/bigraph/models"

	"github.com/paulmach/orb"
)

func bathroom() models.Room {
	return models.Room{
		Name: "Bathroom",
		Walls: []models.Item{
			{ID: "w1", Location: models.NewPoint(0, 0, 0)},
			{ID: "w2", Location: models.NewPoint(4, 0, 0)},
			{ID: "w3", Location: models.NewPoint(4, 0, 3)},
			{ID: "w4", Location: models.NewPoint(0, 0, 3)},
		},
		Doors: []models.Item{
			{ID: "d1", Location: models.NewPoint(1, 0, 3), Dimensions: models.Dimensions{Width: 0.5}},
		},
		Windows: []models.Item{
			{ID: "win1", Location: models.NewPoint(4, 1, 2), Dimensions: models.Dimensions{Width: 1}},
		},
		Objects: []models.Group{{
			Name: "bathtubs",
			Items: []models.Item{{
				Location:   models.NewPoint(2, 0, 1),
				Dimensions: models.Dimensions{Length: 2, Width: 1},
			}},
		}},
		Devices: []models.Device{{ID: "hum1", Name: "Humidity", Position: models.NewPoint(3, 2, 0.1)}},
	}
}

func TestProject_Bathroom(t *testing.T) {
	room := bathroom()
	fc, err := Project(&room)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(fc.Features) != 5 {
		t.Fatalf("expected 5 features, got %d", len(fc.Features))
	}

	boundary := fc.Features[0]
	if boundary.Properties["kind"] != KindBoundary {
		t.Fatalf("expected boundary first, got %v", boundary.Properties["kind"])
	}
	if b := boundary.Geometry.Bound(); b.Min != (orb.Point{0, 0}) || b.Max != (orb.Point{4, 3}) {
		t.Errorf("unexpected boundary %v", b)
	}

	door := fc.Features[1].Geometry.(orb.LineString)
	if door[0] != (orb.Point{1, 3}) || door[1] != (orb.Point{1.5, 3}) {
		t.Errorf("door should run along the z-max wall, got %v", door)
	}

	window := fc.Features[2].Geometry.(orb.LineString)
	if window[0] != (orb.Point{4, 2}) || window[1] != (orb.Point{4, 1}) {
		t.Errorf("window should run along the x-max wall, got %v", window)
	}

	tub := fc.Features[3]
	if tub.Properties["id"] != "bathtubs_0" || tub.Properties["label"] != "bathtubs" {
		t.Errorf("unexpected object properties %v", tub.Properties)
	}
	if b := tub.Geometry.Bound(); b.Min != (orb.Point{1, 0.5}) || b.Max != (orb.Point{3, 1.5}) {
		t.Errorf("unexpected object rectangle %v", b)
	}

	dev := fc.Features[4]
	if dev.Geometry.(orb.Point) != (orb.Point{3, 0.1}) || dev.Properties["label"] != "Humidity" {
		t.Errorf("unexpected device feature %v %v", dev.Geometry, dev.Properties)
	}
}

func TestProject_NoWalls(t *testing.T) {
	room := models.Room{
		Name:  "Closet",
		Doors: []models.Item{{ID: "d1", Location: models.NewPoint(1, 0, 1), Dimensions: models.Dimensions{Length: 0.5}}},
	}

	fc, err := Project(&room)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected only the door, got %d features", len(fc.Features))
	}
	seg := fc.Features[0].Geometry.(orb.LineString)
	if seg[1] != (orb.Point{1, 1.5}) {
		t.Errorf("zero-width opening should extend along z, got %v", seg)
	}
}

func TestProjectFloor_MissingCoordinate(t *testing.T) {
	one := 1.0
	room := bathroom()
	room.Devices[0].Position = &models.Point{X: &one, Z: &one}

	_, err := ProjectFloor(&models.Floor{Rooms: []models.Room{room}})
	var mc *models.MissingCoordinateError
	if !errors.As(err, &mc) {
		t.Fatalf("expected MissingCoordinateError, got %v", err)
	}
	if mc.Owner != "hum1" || mc.Coordinate != "y" {
		t.Errorf("unexpected error details %+v", mc)
	}
}
