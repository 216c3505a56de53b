package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ============================================================
// Geometry input
// ============================================================

// Point: сырая точка {x, y, z} из JSON. nil означает, что ключ отсутствует.
type Point struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

// NewPoint собирает полную точку (удобно в тестах и в CLI).
func NewPoint(x, y, z float64) *Point {
	return &Point{X: &x, Y: &y, Z: &z}
}

// Dimensions: габариты объекта. Отсутствующее поле равно 0.0:
// объект без габаритов считается вырожденным, а не ошибочным.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// ============================================================
// Room contents
// ============================================================

// ID принимает и строковые, и числовые идентификаторы.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Item: стена, дверь, окно или предмет мебели.
type Item struct {
	ID         ID         `json:"id"`
	Location   *Point     `json:"location"`
	Position   *Point     `json:"position"`
	Dimensions Dimensions `json:"dimensions"`
	Category   string     `json:"category"`
}

// Anchor возвращает заявленную позицию: location приоритетнее position.
// Для стен/дверей/окон это угол, для мебели: центр.
func (i Item) Anchor() *Point {
	if i.Location != nil {
		return i.Location
	}
	return i.Position
}

// Group: именованная группа объектов (walls, doors, windows или категория мебели).
// Structural ставится только для стен/дверей/окон комнаты, не по имени:
// категория мебели "doors" остается мебелью.
type Group struct {
	Name       string
	Items      []Item
	Structural bool
}

// Device: IoT устройство.
type Device struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Position *Point `json:"position"`
}

const DefaultDeviceLabel = "IoT Device"

// Label возвращает отображаемое имя устройства.
func (d Device) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return DefaultDeviceLabel
}

// Room: содержимое одной комнаты в порядке объявления.
type Room struct {
	Name    string
	Walls   []Item
	Doors   []Item
	Windows []Item
	Objects []Group
	Devices []Device
}

// Floor: снимок этажа, комнаты в порядке объявления.
type Floor struct {
	Rooms []Room
}

// ============================================================
// Groups
// ============================================================

const (
	GroupWalls   = "walls"
	GroupDoors   = "doors"
	GroupWindows = "windows"
)

// StructuralGroups задает порядок обхода структурных групп.
var StructuralGroups = []string{GroupWalls, GroupDoors, GroupWindows}

// StructuralLabel: "walls" -> "Wall".
func StructuralLabel(group string) string {
	singular := strings.TrimSuffix(group, "s")
	if singular == "" {
		return singular
	}
	return strings.ToUpper(singular[:1]) + singular[1:]
}

// Groups возвращает все группы комнаты в порядке обхода:
// walls, doors, windows, затем категории мебели как объявлены.
func (r *Room) Groups() []Group {
	groups := make([]Group, 0, len(StructuralGroups)+len(r.Objects))
	groups = append(groups,
		Group{Name: GroupWalls, Items: r.Walls, Structural: true},
		Group{Name: GroupDoors, Items: r.Doors, Structural: true},
		Group{Name: GroupWindows, Items: r.Windows, Structural: true},
	)
	for _, g := range r.Objects {
		g.Structural = false
		groups = append(groups, g)
	}
	return groups
}
