package task

// Executable is the minimal polymorphic capability the scheduler drives: it
// knows nothing about what it is driving beyond "step me; tell me if I'm
// done". Implementations must be safe to hand off across goroutines and
// safe to reference from multiple goroutines concurrently (e.g. for debug
// printing); they need not be safe to call Exec on concurrently — a given
// Executable is stepped by at most one worker goroutine at a time.
type Executable interface {
	// Exec performs one step of work, returning true iff the underlying
	// task is now settled and must not be scheduled again.
	Exec() bool
}
