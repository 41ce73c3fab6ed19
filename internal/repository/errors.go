package repository

import "errors"

var (
	// Common errors
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Field configuration errors
	ErrConfigNotFound = errors.New("field config not found")
	ErrConfigExists   = errors.New("field config already exists for project")
)
