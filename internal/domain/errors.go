// Package domain defines the core music-theory entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidSpelling is returned when text cannot be read as a note spelling.
	ErrInvalidSpelling = errors.New("invalid spelling")

	// ErrInvalidRoot is returned when a root note cannot be located in the
	// chromatic table. Callers should re-prompt rather than abort.
	ErrInvalidRoot = errors.New("invalid root note")

	// ErrInvalidMode is returned when a mode is neither major nor minor.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidDegree is returned when a scale degree is out of range.
	ErrInvalidDegree = errors.New("invalid scale degree")

	// ErrInvalidExercise is returned when an exercise kind is not known.
	ErrInvalidExercise = errors.New("invalid exercise")

	// ErrEmptyNoteSet is returned when a question is requested from no roots.
	ErrEmptyNoteSet = errors.New("note set is empty")
)
