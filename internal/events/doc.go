// Package events provides types and interfaces for an event-driven architecture.
//
// The practice session emits a GradedEvent for every answer it grades.
// Handlers such as the session scoreboard subscribe to them without the
// loop knowing who listens.
//
// The primary components are:
// - GradedEvent: Records one graded answer
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
