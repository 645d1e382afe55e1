package taskrepo

import "errors"

var (
	// ErrNotFound indicates the requested task does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidTask indicates the task is missing fields required to store it
	// (name, a known kind, and a namespace for namespaced tasks).
	ErrInvalidTask = errors.New("invalid task")
)
