// internal/input/queue.go
package input

import "sync"

// CommandKind identifies a host input.
type CommandKind int

const (
	PointerDown CommandKind = iota
	PointerMove
	PointerUp
	Fire
	Special
)

func (k CommandKind) String() string {
	switch k {
	case PointerDown:
		return "pointer_down"
	case PointerMove:
		return "pointer_move"
	case PointerUp:
		return "pointer_up"
	case Fire:
		return "fire"
	case Special:
		return "special"
	}
	return "unknown"
}

// Command is one buffered input. X and Y are only meaningful for pointer down/move.
type Command struct {
	Kind CommandKind
	X, Y float64
}

// Queue buffers commands from any goroutine until the simulation drains them at a tick
// boundary. Push may be called concurrently; Drain belongs to the single tick driver.
type Queue struct {
	mu      sync.Mutex
	pending []Command
	spare   []Command
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		pending: make([]Command, 0, 16),
		spare:   make([]Command, 0, 16),
	}
}

// Push appends a command.
func (q *Queue) Push(cmd Command) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain returns every pending command in FIFO order and empties the queue. The returned
// slice is reused by the next Drain.
func (q *Queue) Drain() []Command {
	q.mu.Lock()
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	q.mu.Unlock()
	return out
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
