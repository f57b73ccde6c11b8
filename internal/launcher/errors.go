package launcher

import "errors"

var (
	// ErrEnvironmentMissing means the environment root has no activation script.
	ErrEnvironmentMissing = errors.New("virtual environment not found")

	// ErrTargetNotFound means the target script or the program to run is missing.
	ErrTargetNotFound = errors.New("target program not found")

	// ErrInterpreterNotFound means no python interpreter could be located.
	ErrInterpreterNotFound = errors.New("python interpreter not found")
)
