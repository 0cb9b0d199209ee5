package todo

import "errors"

// Todo store errors
var (
	// ErrTaskNotFound indicates an operation referencing an unknown task id
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousID indicates an id prefix matching more than one task
	ErrAmbiguousID = errors.New("task id prefix is ambiguous")
)
