package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"spatial-bigraph/internal/bigraph/models"
)

// ============================================================
// JSON Structures
// ============================================================

// ключи сравниваются точно: теги encoding/json совпали бы без учета регистра
const (
	keyRooms     = "Rooms"
	keyWalls     = "walls"
	keyDoors     = "doors"
	keyWindows   = "windows"
	keyObjects   = "objects"
	keyFurniture = "furniture"
	keyDevices   = "iot_devices"
)

type member struct {
	key   string
	value json.RawMessage
}

// ============================================================
// Parser
// ============================================================

// ParseFloor читает документ {"Rooms": [{<room>: RoomData}, ...]}.
// Порядок комнат и категорий мебели сохраняется как в файле.
func ParseFloor(r io.Reader) (*models.Floor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read floor: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not a JSON document", models.ErrInvalidFloor)
	}
	top, err := orderedMembers(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidFloor, err)
	}
	rooms, ok := lookup(top, keyRooms)
	if !ok || isNull(rooms) {
		return nil, fmt.Errorf("%w: Rooms is required", models.ErrInvalidFloor)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rooms, &entries); err != nil {
		return nil, fmt.Errorf("%w: Rooms must be an array: %v", models.ErrInvalidFloor, err)
	}

	floor := &models.Floor{}
	for i, entry := range entries {
		members, err := orderedMembers(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: Rooms[%d]: %v", models.ErrInvalidFloor, i, err)
		}
		for _, m := range members {
			room, err := parseRoom(m.key, m.value)
			if err != nil {
				return nil, err
			}
			floor.Rooms = append(floor.Rooms, room)
		}
	}

	return floor, nil
}

func parseRoom(name string, data json.RawMessage) (models.Room, error) {
	room := models.Room{Name: name}
	if isNull(data) {
		return room, nil
	}

	members, err := orderedMembers(data)
	if err != nil {
		return room, fmt.Errorf("%w: room %q: %v", models.ErrInvalidFloor, name, err)
	}

	var objects, furniture json.RawMessage
	for _, m := range members {
		var err error
		switch m.key {
		case keyWalls:
			err = json.Unmarshal(m.value, &room.Walls)
		case keyDoors:
			err = json.Unmarshal(m.value, &room.Doors)
		case keyWindows:
			err = json.Unmarshal(m.value, &room.Windows)
		case keyDevices:
			err = json.Unmarshal(m.value, &room.Devices)
		case keyObjects:
			objects = m.value
		case keyFurniture:
			furniture = m.value
		}
		if err != nil {
			return room, fmt.Errorf("%w: room %q: %s: %v", models.ErrInvalidFloor, name, m.key, err)
		}
	}

	// старые выгрузки сканера кладут мебель в "furniture"
	if isNull(objects) {
		objects = furniture
	}

	categories, err := orderedMembers(objects)
	if err != nil {
		return room, fmt.Errorf("%w: room %q: objects: %v", models.ErrInvalidFloor, name, err)
	}
	for _, c := range categories {
		var items []models.Item
		if !isNull(c.value) {
			if err := json.Unmarshal(c.value, &items); err != nil {
				return room, fmt.Errorf("%w: room %q: objects[%q]: %v", models.ErrInvalidFloor, name, c.key, err)
			}
		}
		room.Objects = append(room.Objects, models.Group{Name: c.key, Items: items})
	}

	for i, dev := range room.Devices {
		if dev.ID == "" {
			return room, fmt.Errorf("room %q: iot_devices[%d]: %w", name, i, models.ErrMissingID)
		}
	}

	return room, nil
}

// orderedMembers разбирает JSON объект, сохраняя порядок ключей.
func orderedMembers(data json.RawMessage) ([]member, error) {
	if isNull(data) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		members = append(members, member{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// lookup ищет ключ с точным совпадением; при повторах побеждает последний.
func lookup(members []member, key string) (json.RawMessage, bool) {
	var (
		value json.RawMessage
		found bool
	)
	for _, m := range members {
		if m.key == key {
			value, found = m.value, true
		}
	}
	return value, found
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
