package task

import "testing"

func TestState_predicates(t *testing.T) {
	if !Pending[int, string]().IsPending() {
		t.Fatal("expected Pending().IsPending()")
	}
	if !Resolve[int, string](1).IsResolve() {
		t.Fatal("expected Resolve(1).IsResolve()")
	}
	if !Resolved[int, string]().IsResolved() {
		t.Fatal("expected Resolved().IsResolved()")
	}
	if !Reject[int, string]("boom").IsReject() {
		t.Fatal("expected Reject(...).IsReject()")
	}
	if !Rejected[int, string]().IsRejected() {
		t.Fatal("expected Rejected().IsRejected()")
	}
}

func TestState_Take_resolve(t *testing.T) {
	s := Resolve[int, string](42)
	old := s.Take()
	if !old.IsResolve() {
		t.Fatalf("expected Take to return the original Resolve variant, got %v", old)
	}
	if v, ok := old.ResolveValue(); !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%v, %v)", v, ok)
	}
	if !s.IsResolved() {
		t.Fatalf("expected s to advance to Resolved, got %v", s)
	}
}

func TestState_Take_reject(t *testing.T) {
	s := Reject[int, string]("boom")
	old := s.Take()
	if e, ok := old.RejectValue(); !ok || e != "boom" {
		t.Fatalf("expected (boom, true), got (%v, %v)", e, ok)
	}
	if !s.IsRejected() {
		t.Fatalf("expected s to advance to Rejected, got %v", s)
	}
}

func TestState_Take_idempotentOnTerminal(t *testing.T) {
	for _, s := range []State[int, string]{
		Pending[int, string](),
		Resolved[int, string](),
		Rejected[int, string](),
	} {
		before := s.String()
		got := s.Take()
		if got.String() != before {
			t.Fatalf("Take on %s mutated/changed variant to %s", before, got)
		}
		if s.String() != before {
			t.Fatalf("Take on %s mutated the receiver to %s", before, s.String())
		}
	}
}

func TestState_IntoResult(t *testing.T) {
	if o := Resolve[int, string](5).IntoResult(); !o.Settled || !o.Ok || o.Val != 5 {
		t.Fatalf("unexpected outcome for Resolve: %+v", o)
	}
	if o := Reject[int, string]("x").IntoResult(); !o.Settled || o.Ok || o.Err != "x" {
		t.Fatalf("unexpected outcome for Reject: %+v", o)
	}
	for _, s := range []State[int, string]{
		Pending[int, string](),
		Resolved[int, string](),
		Rejected[int, string](),
	} {
		if o := s.IntoResult(); o.Settled {
			t.Fatalf("expected unsettled outcome for %s, got %+v", s, o)
		}
	}
}

func TestMap(t *testing.T) {
	got := Map(Resolve[int, string](2), func(v int) int { return v * 10 })
	if v, ok := got.ResolveValue(); !ok || v != 20 {
		t.Fatalf("expected (20, true), got (%v, %v)", v, ok)
	}
	// Reject, Pending and terminal variants pass through unchanged.
	if got := Map(Reject[int, string]("e"), func(v int) int { return v }); !got.IsReject() {
		t.Fatalf("expected Map to pass through Reject, got %v", got)
	}
}

func TestAndOr_pendingAndTakenPropagateUnchanged(t *testing.T) {
	// Pending and the taken-terminal variants must never be silently
	// replaced by res, for every variant of the other operand.
	res := Resolve[string, string]("res")

	if got := And(Pending[int, string](), res); !got.IsPending() {
		t.Fatalf("And(Pending, res) = %v, want Pending", got)
	}
	if got := And(Resolved[int, string](), res); !got.IsResolved() {
		t.Fatalf("And(Resolved, res) = %v, want Resolved", got)
	}
	if got := And(Rejected[int, string](), res); !got.IsRejected() {
		t.Fatalf("And(Rejected, res) = %v, want Rejected", got)
	}
	if got := And(Reject[int, string]("e"), res); !got.IsReject() {
		t.Fatalf("And(Reject, res) = %v, want Reject (short-circuit)", got)
	}
	if got := And(Resolve[int, string](1), res); got != res {
		t.Fatalf("And(Resolve, res) = %v, want res", got)
	}

	if got := Or(Pending[int, string](), Resolve[int, string](9)); !got.IsPending() {
		t.Fatalf("Or(Pending, res) = %v, want Pending", got)
	}
	if got := Or(Resolve[int, string](1), Resolve[int, string](9)); got.UnwrapOrDefault() != 1 {
		t.Fatalf("Or(Resolve(1), res) = %v, want short-circuit to 1", got)
	}
}

func TestUnwrapFamily(t *testing.T) {
	if Resolve[int, string](7).Unwrap() != 7 {
		t.Fatal("expected Unwrap() == 7")
	}
	if Reject[int, string]("e").UnwrapReject() != "e" {
		t.Fatal("expected UnwrapReject() == \"e\"")
	}
	if v := Pending[int, string]().UnwrapOr(99); v != 99 {
		t.Fatalf("expected UnwrapOr fallback 99, got %d", v)
	}
	if v := Rejected[int, string]().UnwrapOrDefault(); v != 0 {
		t.Fatalf("expected zero value default, got %d", v)
	}
}

func TestUnwrap_panicsOnPending(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Pending[int, string]().Unwrap()
}
