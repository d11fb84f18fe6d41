package graph

import "errors"

var (
	// ErrUnknownSystem means a system name is not present in the universe.
	ErrUnknownSystem = errors.New("unknown system")
	// ErrNoPath means two known systems are in different connected components.
	ErrNoPath = errors.New("no path between systems")
	// ErrBadSnapshot means a persisted graph snapshot is unusable and the
	// graph must be rebuilt from source data.
	ErrBadSnapshot = errors.New("unusable graph snapshot")
)
