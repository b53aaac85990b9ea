// Package runner implements a work-stealing thread pool that drives
// task.Task and other task.Executable values to completion.
package runner

import (
	"runtime"
	"time"

	"github.com/joeycumines/go-taskkit/ratelimit"
	"github.com/joeycumines/go-taskkit/task"
)

// Runner is a fixed-size pool of Workers sharing a TaskQueueSet. Submit and
// Run hand work to a uniformly random queue; each Worker drains its own
// queue before attempting to steal from another, busy-looping any task
// that reports itself still Pending until it settles.
//
// A Runner is safe for concurrent use by multiple goroutines submitting
// work; Finish must be called exactly once, after which no further Submit
// calls are permitted.
type Runner struct {
	queueSet *TaskQueueSet
	workers  []*Worker
	log      *runnerLogger
	limiter  *ratelimit.Limiter
}

// New constructs a Runner and starts its workers immediately. With no
// WithWorkerCount option, it starts runtime.GOMAXPROCS(0)+1 workers: one
// per available processor, plus one extra so a worker blocked on a
// slow-to-settle task doesn't leave every processor idle.
func New(opts ...RunnerOption) *Runner {
	o := resolveRunnerOptions(opts)

	n := o.workerCount
	if n <= 0 {
		n = runtime.GOMAXPROCS(0) + 1
		if n <= 0 {
			n = 1
		}
	}

	log := &runnerLogger{logger: o.logger}

	r := &Runner{
		queueSet: newTaskQueueSet(),
		log:      log,
		limiter:  o.limiter,
	}
	r.workers = make([]*Worker, n)
	for i := range r.workers {
		r.workers[i] = newWorker(i, r.queueSet, log)
	}
	return r
}

// Submit enqueues item onto a uniformly random worker's queue. Unconditional:
// use TrySubmit to honor a configured submit rate limit.
func (r *Runner) Submit(item task.Executable) { r.queueSet.PushToRandQueue(item) }

// Run is an alias for Submit, read more naturally at call sites that treat
// a Task as "the thing to run" rather than "the thing to enqueue".
func (r *Runner) Run(item task.Executable) { r.Submit(item) }

// RunAll submits every item in batch, each to an independently chosen
// random queue.
func (r *Runner) RunAll(batch []task.Executable) {
	for _, item := range batch {
		r.Submit(item)
	}
}

// TrySubmit attempts to register category against the Runner's configured
// rate limiter (see WithSubmitRateLimit) before submitting item. If no
// limiter is configured, behaves exactly like Submit and always succeeds.
// On rejection, item is not enqueued, ok is false, and next reports when a
// subsequent TrySubmit for the same category may succeed.
func (r *Runner) TrySubmit(category any, item task.Executable) (next time.Time, ok bool) {
	next, ok = r.limiter.Allow(category)
	if !ok {
		return next, false
	}
	r.Submit(item)
	return time.Time{}, true
}

// Len reports the total number of queued-but-not-yet-settled items across
// every worker's queue. Advisory only.
func (r *Runner) Len() int { return r.queueSet.Len() }

// Finish signals every worker to stop once its queue and steal attempts
// both come up empty, then blocks until all have exited. After Finish
// returns, no further Submit/Run/RunAll/TrySubmit calls are permitted.
func (r *Runner) Finish() {
	for _, w := range r.workers {
		w.Finish()
	}
}
