package models

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCoordinate is returned when a position mapping lacks x, y or z.
	ErrMissingCoordinate = errors.New("missing coordinate")

	// ErrEmptyCandidateSet is returned when a device has no surface to attach to.
	ErrEmptyCandidateSet = errors.New("empty candidate set")

	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = errors.New("duplicate node id")

	// ErrMissingID is returned when an IoT device has no id.
	ErrMissingID = errors.New("missing id")

	// ErrInvalidFloor is returned when the floor document does not follow the Rooms schema.
	ErrInvalidFloor = errors.New("invalid floor document")
)

// MissingCoordinateError указывает, у какого объекта и какой координаты не хватает.
// Пустой Coordinate означает, что точки нет вовсе.
type MissingCoordinateError struct {
	Owner      string
	Coordinate string
}

func (e *MissingCoordinateError) Error() string {
	switch {
	case e.Owner == "" && e.Coordinate == "":
		return "missing point"
	case e.Owner == "":
		return fmt.Sprintf("missing coordinate %q", e.Coordinate)
	case e.Coordinate == "":
		return fmt.Sprintf("%s: missing point", e.Owner)
	}
	return fmt.Sprintf("%s: missing coordinate %q", e.Owner, e.Coordinate)
}

func (e *MissingCoordinateError) Is(target error) bool {
	return target == ErrMissingCoordinate
}

// EmptyCandidateSetError: в комнате устройства нет ни одной поверхности.
type EmptyCandidateSetError struct {
	Room   string
	Device string
}

func (e *EmptyCandidateSetError) Error() string {
	return fmt.Sprintf("room %q: device %q has no candidate surfaces", e.Room, e.Device)
}

func (e *EmptyCandidateSetError) Is(target error) bool {
	return target == ErrEmptyCandidateSet
}

// DuplicateNodeError: id узла уже занят.
type DuplicateNodeError struct {
	ID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node id %q", e.ID)
}

func (e *DuplicateNodeError) Is(target error) bool {
	return target == ErrDuplicateNode
}
