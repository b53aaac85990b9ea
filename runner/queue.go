package runner

import (
	"sync"

	"github.com/joeycumines/go-taskkit/task"
)

// TaskQueue is a mutable ordered sequence of boxed Executables, owned by one
// worker but readable — and stealable — by all. Items inserted locally are
// processed FIFO; stealing takes the newer (tail) half, leaving the older
// half for the owning worker. Mutation (Insert/Append/Next/Split) is
// exclusive; Len is a shared/advisory read.
type TaskQueue struct {
	mu    sync.RWMutex
	items []task.Executable
}

func newTaskQueue() *TaskQueue { return &TaskQueue{} }

// Insert appends item to the tail.
func (q *TaskQueue) Insert(item task.Executable) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
}

// Append move-appends a batch to the tail.
func (q *TaskQueue) Append(items []task.Executable) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, items...)
	q.mu.Unlock()
}

// Next pops from the head, returning nil if empty.
func (q *TaskQueue) Next() task.Executable {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	item := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return item
}

// Split is the steal primitive: if length is at least 2, splits off the
// back half (the smaller half when the length is odd, so the owner keeps
// the larger one) and returns it; otherwise returns nil without mutating. The
// length check is first taken as a shared snapshot read, escalating to the
// exclusive lock only when a split looks possible.
func (q *TaskQueue) Split() []task.Executable {
	q.mu.RLock()
	n := len(q.items)
	q.mu.RUnlock()
	if n < 2 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	n = len(q.items)
	if n < 2 {
		return nil
	}
	mid := (n + 1) / 2
	tail := append([]task.Executable(nil), q.items[mid:]...)
	q.items = q.items[:mid]
	return tail
}

// Len returns a snapshot length; advisory only — it may be stale by the
// time a caller acts on it.
func (q *TaskQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.items)
}
