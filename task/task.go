package task

// Task is an owned, polled computation: a step closure plus the latest
// observed [State]. Step is only invoked while the state is Pending; once
// settled, further calls to [Task.Exec] are no-ops that report done.
//
// A Task is safe to transfer between goroutines and safe to reference from
// several goroutines at once (for example, a debug logger reading its
// current state), but it is not safe to call Exec on concurrently — the
// runner guarantees a given Task is stepped by at most one worker goroutine
// at a time; see [github.com/joeycumines/go-taskkit/runner].
//
// Combinators (Map, Then, Join, Recover, Catch, Done, Finally and the
// comparison sugars) consume their input Task(s) exclusively: once fed into
// a combinator, an input is no longer independently pollable, and any
// settlement hooks registered on it directly are cleared when the
// combinator is built (by [Then], [Recover] and [Join], which the others
// are built on).
type Task[T, E any] struct {
	step  func() State[T, E]
	state State[T, E]
	onOK  func(T)
	onErr func(E)
}

// New wraps a step closure. The returned Task starts Pending.
func New[T, E any](step func() State[T, E]) *Task[T, E] {
	if step == nil {
		panic("task: nil step")
	}
	return &Task[T, E]{step: step}
}

// FromValue returns a Task that settles successfully to v on its first
// step; once Poll or Wait has taken that payload, the state is Resolved and
// later polls return an unsettled Outcome.
// Named FromValue, not From, to avoid colliding with the package-level
// [From] State constructor.
func FromValue[T, E any](v T) *Task[T, E] {
	return New(func() State[T, E] { return Resolve[T, E](v) })
}

// With wraps a one-shot value producer, invoked exactly once (guaranteed by
// Exec's own Pending guard), resolving to the produced value.
func With[T, E any](producer func() T) *Task[T, E] {
	if producer == nil {
		panic("task: nil producer")
	}
	return New(func() State[T, E] { return Resolve[T, E](producer()) })
}

// OnSuccess registers a side-effect hook invoked exactly once, at the step
// on which the task settles successfully, with the resolved payload.
// Registering a second success hook supersedes the first; the previous hook
// is discarded and never invoked. Returns t, for chaining.
func (t *Task[T, E]) OnSuccess(f func(T)) *Task[T, E] {
	t.onOK = f
	return t
}

// OnFailure registers a side-effect hook invoked exactly once, at the step
// on which the task settles in error, with the rejected payload. Registering
// a second failure hook supersedes the first. Returns t, for chaining.
func (t *Task[T, E]) OnFailure(f func(E)) *Task[T, E] {
	t.onErr = f
	return t
}

// State returns the task's most recently observed State.
func (t *Task[T, E]) State() State[T, E] { return t.state }

// Exec performs one step of work. If the state is not Pending, it returns
// true immediately (idempotent completion) without invoking the step
// closure. Otherwise it invokes the step closure once, and if a matching
// settlement hook is registered, takes the payload and invokes it — at most
// one of OnSuccess/OnFailure ever fires, since a state cannot be both
// Resolve and Reject.
func (t *Task[T, E]) Exec() bool {
	if !t.state.IsPending() {
		return true
	}

	t.state = t.step()

	switch {
	case t.onOK != nil && t.state.IsResolve():
		v, _ := t.state.Take().ResolveValue()
		t.onOK(v)
	case t.onErr != nil && t.state.IsReject():
		e, _ := t.state.Take().RejectValue()
		t.onErr(e)
	}

	return !t.state.IsPending()
}

// Poll steps the task once, returning an unsettled Outcome unless the step
// just settled the task, in which case the settled payload is taken and
// returned.
func (t *Task[T, E]) Poll() Outcome[T, E] {
	t.Exec()
	if t.state.IsPending() {
		return Outcome[T, E]{}
	}
	return t.state.Take().IntoResult()
}

// Wait steps the task repeatedly in the calling goroutine until it settles,
// then returns the settled Outcome.
//
// Callers must not invoke Wait from within a runner-owned worker goroutine:
// doing so would permanently occupy that worker's pool slot. This is
// undefined/prohibited behavior, not guarded against at runtime.
func (t *Task[T, E]) Wait() Outcome[T, E] {
	for {
		t.Exec()
		if !t.state.IsPending() {
			return t.state.Take().IntoResult()
		}
	}
}

// FutureResult is the three-way outcome an externally-driven pollable
// reports on each poll: not-ready maps to Pending, a ready value to
// Resolve(v), a ready error to Reject(e).
type FutureResult[T, E any] struct {
	Ready bool
	Val   T
	Err   E
	IsErr bool
}

// FromFuture adapts a non-blocking external pollable into a Task. poll is
// invoked by the scheduler exactly like any other step closure — on every
// Exec call while Pending — and must not block; a long-polling external
// primitive should signal Ready:false promptly rather than spin internally.
func FromFuture[T, E any](poll func() FutureResult[T, E]) *Task[T, E] {
	if poll == nil {
		panic("task: nil poll func")
	}
	return New(func() State[T, E] {
		r := poll()
		switch {
		case !r.Ready:
			return Pending[T, E]()
		case r.IsErr:
			return Reject[T, E](r.Err)
		default:
			return Resolve[T, E](r.Val)
		}
	})
}

// AsFuture lets a Task satisfy the same bidirectional pollable contract that
// FromFuture consumes. Polling after the task's settled payload has already
// been taken is a programmer error and panics.
func (t *Task[T, E]) AsFuture() FutureResult[T, E] {
	t.Exec()
	switch {
	case t.state.IsPending():
		return FutureResult[T, E]{Ready: false}
	case t.state.IsResolve():
		v, _ := t.state.Take().ResolveValue()
		return FutureResult[T, E]{Ready: true, Val: v}
	case t.state.IsReject():
		e, _ := t.state.Take().RejectValue()
		return FutureResult[T, E]{Ready: true, IsErr: true, Err: e}
	default:
		panic("task: AsFuture: polled a task whose settled value was already taken")
	}
}
