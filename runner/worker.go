package runner

import (
	"runtime"
	"sync"

	"github.com/joeycumines/go-taskkit/task"
)

// Worker owns one goroutine and one TaskQueue. Its run loop drains locally
// available work, steals when its own queue empties, and exits once the
// running flag is cleared and a steal attempt still comes back empty.
//
// Crucial property: a task observed Pending after exec is NOT put back on
// the queue — the worker stays on it, calling Exec in a tight local loop
// until it settles. A step that never settles will block its worker
// forever; long-running work should either return Pending promptly or be
// built on Task.Wait run on its own goroutine outside the pool.
type Worker struct {
	index    int
	queue    *TaskQueue
	queueSet *TaskQueueSet
	log      *runnerLogger
	done     chan struct{}

	running struct {
		mu sync.Mutex
		v  bool
	}
}

func newWorker(index int, queueSet *TaskQueueSet, log *runnerLogger) *Worker {
	w := &Worker{
		index:    index,
		queue:    queueSet.NewQueue(),
		queueSet: queueSet,
		log:      log,
		done:     make(chan struct{}),
	}
	w.running.v = true
	go w.loop()
	return w
}

// Submit hands item directly to this worker's own queue.
func (w *Worker) Submit(item task.Executable) { w.queue.Insert(item) }

func (w *Worker) loop() {
	defer close(w.done)
	ranTask := false
	for {
		if item := w.queue.Next(); item != nil {
			for !item.Exec() {
			}
			ranTask = true
			continue
		}

		if ranTask {
			w.log.drained(w.index)
			ranTask = false
		}

		if batch := w.queueSet.StealFromRandQueue(); len(batch) > 0 {
			w.queue.Append(batch)
			w.log.stole(w.index, len(batch))
			continue
		}

		if !w.isRunning() {
			return
		}
		w.log.idle(w.index)
		runtime.Gosched()
	}
}

func (w *Worker) isRunning() bool {
	w.running.mu.Lock()
	defer w.running.mu.Unlock()
	return w.running.v
}

// Finish flips the running flag to false, then blocks until the worker's
// goroutine has exited. After Finish returns, this worker will not execute
// any further task steps.
func (w *Worker) Finish() {
	w.running.mu.Lock()
	w.running.v = false
	w.running.mu.Unlock()
	<-w.done
}
