package task

import "golang.org/x/exp/constraints"

// Combinators are free functions, not methods: a method on Task[T, E]
// cannot introduce the additional type parameters (U, O) that Map, Then,
// Join, Recover and friends need for their output type. All combinators
// below are lazy — constructing the returned Task does not step t (or u).

// Map polls t; on success applies f to the resolved value, on failure
// propagates the rejection unchanged.
func Map[T, U, E any](t *Task[T, E], f func(T) U) *Task[U, E] {
	return Then(t, func(v T) State[U, E] { return Resolve[U, E](f(v)) })
}

// Then polls t; on success, hands the resolved value to g, which may itself
// return Pending, Resolve or Reject; on failure, propagates the rejection
// unchanged. Building it clears any OnSuccess/OnFailure hooks on t.
func Then[T, U, E any](t *Task[T, E], g func(T) State[U, E]) *Task[U, E] {
	t.onOK, t.onErr = nil, nil

	return New(func() State[U, E] {
		t.Exec()
		if t.state.IsPending() {
			return Pending[U, E]()
		}

		taken := t.state.Take()
		if v, ok := taken.ResolveValue(); ok {
			return g(v)
		}
		if e, ok := taken.RejectValue(); ok {
			return Reject[U, E](e)
		}

		// Unreachable: t's hooks were cleared above, so nothing takes its
		// payload before this closure does, and this closure is not run
		// again once the composite has settled.
		panic("task: then: input settled without a payload")
	})
}

// Pair is the composite value produced by Join.
type Pair[A, B any] struct {
	A A
	B B
}

// Join drives t and u concurrently at the step level: one step of t
// followed by one step of u, per call. Settles to Resolve(Pair{a, b}) once
// both have resolved; settles with the first observed rejection (t checked
// before u on any given step); Pending otherwise.
//
// Building a join clears any OnSuccess/OnFailure hooks registered directly
// on t and u: once joined, the inputs' own settlement is no longer
// independently observable, only the composite's is.
func Join[T, U, E any](t *Task[T, E], u *Task[U, E]) *Task[Pair[T, U], E] {
	t.onOK, t.onErr = nil, nil
	u.onOK, u.onErr = nil, nil

	return New(func() State[Pair[T, U], E] {
		if t.state.IsPending() {
			t.Exec()
		}
		if u.state.IsPending() {
			u.Exec()
		}

		if t.state.IsReject() {
			e, _ := t.state.Take().RejectValue()
			return Reject[Pair[T, U], E](e)
		}
		if u.state.IsReject() {
			e, _ := u.state.Take().RejectValue()
			return Reject[Pair[T, U], E](e)
		}

		if t.state.IsResolve() && u.state.IsResolve() {
			a, _ := t.state.Take().ResolveValue()
			b, _ := u.state.Take().ResolveValue()
			return Resolve[Pair[T, U], E](Pair[T, U]{A: a, B: b})
		}

		return Pending[Pair[T, U], E]()
	})
}

// Recover polls t; on success, propagates the value unchanged; on failure,
// adopts the State produced by h(e), allowing the error to be swallowed,
// re-thrown as a different error type O, or turned into a fresh success.
// Building it clears any OnSuccess/OnFailure hooks on t.
func Recover[T, E, O any](t *Task[T, E], h func(E) State[T, O]) *Task[T, O] {
	t.onOK, t.onErr = nil, nil

	return New(func() State[T, O] {
		t.Exec()
		if t.state.IsPending() {
			return Pending[T, O]()
		}

		taken := t.state.Take()
		if v, ok := taken.ResolveValue(); ok {
			return Resolve[T, O](v)
		}
		if e, ok := taken.RejectValue(); ok {
			return h(e)
		}

		panic("task: recover: input settled without a payload")
	})
}

// Catch is a side-effecting error observer: equivalent to Recover with a
// handler that always re-rejects with the unit error.
func Catch[T, E any](t *Task[T, E], h func(E)) *Task[T, struct{}] {
	return Recover(t, func(e E) State[T, struct{}] {
		h(e)
		return Reject[T, struct{}](struct{}{})
	})
}

// Done is a one-shot success side-effect observer whose composite value
// type becomes struct{}: the hook fires exactly once, on success, before
// the composite's own settlement is observed by a caller.
func Done[T, E any](t *Task[T, E], h func(T)) *Task[struct{}, E] {
	return Then(t, func(v T) State[struct{}, E] {
		h(v)
		return Resolve[struct{}, E](struct{}{})
	})
}

// Finally is a one-shot success side-effect observer that preserves the
// value type T (unlike Done, which collapses it to struct{}): the hook
// fires exactly once, on success, and the composite resolves to the same
// value that was observed.
func Finally[T, E any](t *Task[T, E], h func(T)) *Task[T, E] {
	return Then(t, func(v T) State[T, E] {
		h(v)
		return Resolve[T, E](v)
	})
}

// Eq joins t and u and compares their resolved values for equality; error
// short-circuit and step ordering are inherited from Join.
func Eq[T comparable, E any](t, u *Task[T, E]) *Task[bool, E] {
	return Map(Join(t, u), func(p Pair[T, T]) bool { return p.A == p.B })
}

// Ne is the negation of Eq.
func Ne[T comparable, E any](t, u *Task[T, E]) *Task[bool, E] {
	return Map(Join(t, u), func(p Pair[T, T]) bool { return p.A != p.B })
}

// Lt joins t and u and compares their resolved values with <.
func Lt[T constraints.Ordered, E any](t, u *Task[T, E]) *Task[bool, E] {
	return Map(Join(t, u), func(p Pair[T, T]) bool { return p.A < p.B })
}

// Le joins t and u and compares their resolved values with <=.
func Le[T constraints.Ordered, E any](t, u *Task[T, E]) *Task[bool, E] {
	return Map(Join(t, u), func(p Pair[T, T]) bool { return p.A <= p.B })
}

// Gt joins t and u and compares their resolved values with >.
func Gt[T constraints.Ordered, E any](t, u *Task[T, E]) *Task[bool, E] {
	return Map(Join(t, u), func(p Pair[T, T]) bool { return p.A > p.B })
}

// Ge joins t and u and compares their resolved values with >=.
func Ge[T constraints.Ordered, E any](t, u *Task[T, E]) *Task[bool, E] {
	return Map(Join(t, u), func(p Pair[T, T]) bool { return p.A >= p.B })
}
