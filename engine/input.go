package engine

import "sync"

// InputSource yields pending player actions. Poll returns false when nothing
// is queued.
type InputSource interface {
	Poll() (Action, bool)
}

// ActionQueue is a FIFO InputSource. Push may be called from any goroutine,
// such as a terminal event reader.
type ActionQueue struct {
	mu      sync.Mutex
	actions []Action
}

func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

func (q *ActionQueue) Push(actions ...Action) {
	q.mu.Lock()
	q.actions = append(q.actions, actions...)
	q.mu.Unlock()
}

func (q *ActionQueue) Poll() (Action, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.actions) == 0 {
		return 0, false
	}
	a := q.actions[0]
	q.actions = q.actions[1:]
	return a, true
}

func (q *ActionQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}
