package models

import "errors"

// Domain-specific errors for tasks and their collections
var (
	// ErrInvalidCategory indicates a value that is neither work nor travel
	ErrInvalidCategory = errors.New("invalid category")

	// ErrDuplicateTaskID indicates an Add with an id that is already present
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrEmptyTaskID indicates an Add with a blank id
	ErrEmptyTaskID = errors.New("task id cannot be empty")

	// ErrMalformedCollection indicates stored task JSON that is not an object of tasks
	ErrMalformedCollection = errors.New("malformed task collection")
)
