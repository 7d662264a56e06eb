package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/scry-scales/internal/domain"
	"github.com/phrazzld/scry-scales/internal/events"
)

// Scoreboard tallies graded events by verdict. It is an events.EventHandler.
type Scoreboard struct {
	mu     sync.Mutex
	counts map[domain.Verdict]int
}

var _ events.EventHandler = (*Scoreboard)(nil)

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{counts: make(map[domain.Verdict]int)}
}

// HandleEvent counts the event's verdict.
func (b *Scoreboard) HandleEvent(_ context.Context, event *events.GradedEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts[event.Verdict]++
	return nil
}

// Count returns how many events had verdict.
func (b *Scoreboard) Count(verdict domain.Verdict) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[verdict]
}

// Answered returns the number of questions that got an answer.
func (b *Scoreboard) Answered() int {
	return b.Count(domain.VerdictExact) + b.Count(domain.VerdictEnharmonic) + b.Count(domain.VerdictWrong)
}

// Summary is the one-line score printed when a session ends.
func (b *Scoreboard) Summary() string {
	return fmt.Sprintf("Score: %d correct, %d enharmonically correct, %d nope (%d answered, %d skipped)",
		b.Count(domain.VerdictExact),
		b.Count(domain.VerdictEnharmonic),
		b.Count(domain.VerdictWrong),
		b.Answered(),
		b.Count(domain.VerdictNoAnswer))
}
