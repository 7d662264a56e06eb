package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/scry-scales/internal/domain"
)

// GradedEvent records one graded answer of a practice session.
type GradedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Exercise is the kind of question that was asked
	Exercise domain.ExerciseKind `json:"exercise"`

	// Entry is the note-set entry the question was drawn from, e.g. "E♭ minor"
	Entry string `json:"entry"`

	// Degree is the requested tone for single-tone questions
	Degree int `json:"degree,omitempty"`

	// Answer is the raw text the player typed
	Answer string `json:"answer"`

	// Verdict is the grading outcome
	Verdict domain.Verdict `json:"verdict"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewGradedEvent creates a GradedEvent for a question and its verdict.
func NewGradedEvent(q domain.Question, answer string, verdict domain.Verdict) *GradedEvent {
	event := &GradedEvent{
		ID:        uuid.New(),
		Exercise:  q.Kind,
		Entry:     q.Entry(),
		Answer:    answer,
		Verdict:   verdict,
		CreatedAt: time.Now(),
	}
	if q.Kind == domain.ExerciseSingleTone {
		event.Degree = q.Degree
	}
	return event
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *GradedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the session loop to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *GradedEvent) error
}
