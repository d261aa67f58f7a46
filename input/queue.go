package input

import (
	"sync"

	"github.com/plus3/blockfall/engine"
)

// Queue carries commands from an event goroutine to the frame loop. Push
// may be called from any goroutine; Drain belongs to the loop.
type Queue struct {
	mu      sync.Mutex
	pending []engine.Command
	limit   int
}

// NewQueue returns a queue holding at most limit commands; further pushes
// are dropped until the loop drains. A limit of 0 means unbounded.
func NewQueue(limit int) *Queue {
	return &Queue{limit: limit}
}

// Push appends cmd and reports whether it was kept.
func (q *Queue) Push(cmd engine.Command) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.limit > 0 && len(q.pending) >= q.limit {
		return false
	}
	q.pending = append(q.pending, cmd)
	return true
}

// Drain removes and returns everything queued, oldest first. The dt
// parameter lets Drain serve as an input source for game.InputSystem.
func (q *Queue) Drain(float64) []engine.Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
