package runner

import (
	"math/rand/v2"
	"sync"

	"github.com/joeycumines/go-taskkit/task"
)

// TaskQueueSet is the registry of all per-worker queues: appended to only
// during Runner construction (one NewQueue call per worker), then frozen —
// only queue contents change for the remainder of the Runner's lifetime.
//
// Victim/destination selection uses math/rand/v2's top-level functions,
// which are safe for concurrent use without an explicit per-worker mutex or
// seed — each goroutine draws from fast, statistically-independent state,
// which is simpler than coordinating a single guarded *rand.Rand across
// workers.
type TaskQueueSet struct {
	mu     sync.RWMutex
	queues []*TaskQueue
}

func newTaskQueueSet() *TaskQueueSet { return &TaskQueueSet{} }

// NewQueue appends a fresh TaskQueue to the set and returns it. Called once
// per worker, at construction.
func (s *TaskQueueSet) NewQueue() *TaskQueue {
	q := newTaskQueue()
	s.mu.Lock()
	s.queues = append(s.queues, q)
	s.mu.Unlock()
	return q
}

// PushToRandQueue uniformly picks one queue and inserts item. Panics if the
// set is empty — a Runner constructed with zero workers, which is itself
// rejected at construction by WithWorkerCount; this is defense in depth.
func (s *TaskQueueSet) PushToRandQueue(item task.Executable) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.queues) == 0 {
		panic("runner: no queues to push to")
	}
	s.queues[rand.N(len(s.queues))].Insert(item)
}

// StealFromRandQueue shuffles the queue list and returns the first queue's
// Split output whose advisory length is more than 1; it returns nil iff
// every queue has length <= 1 at the moment of inspection.
func (s *TaskQueueSet) StealFromRandQueue() []task.Executable {
	s.mu.RLock()
	queues := append([]*TaskQueue(nil), s.queues...)
	s.mu.RUnlock()

	rand.Shuffle(len(queues), func(i, j int) { queues[i], queues[j] = queues[j], queues[i] })

	for _, q := range queues {
		if q.Len() > 1 {
			if batch := q.Split(); len(batch) > 0 {
				return batch
			}
		}
	}
	return nil
}

// Len sums advisory lengths across every queue in the set.
func (s *TaskQueueSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	for _, q := range s.queues {
		n += q.Len()
	}
	return n
}
