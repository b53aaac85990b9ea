package runner

import "testing"

func TestTaskQueueSet_StealFromRandQueue_allQueuesAtMostOneReturnsEmpty(t *testing.T) {
	s := newTaskQueueSet()
	q0 := s.NewQueue()
	q1 := s.NewQueue()
	q2 := s.NewQueue()

	q0.Insert(stubExecutable{id: 0})
	// q1 stays empty.
	q2.Insert(stubExecutable{id: 2})

	got := s.StealFromRandQueue()
	if got != nil {
		t.Fatalf("StealFromRandQueue with every queue len<=1 = %v, want nil", got)
	}
	if n := s.Len(); n != 2 {
		t.Fatalf("Len after a no-op steal = %d, want 2 (unmutated)", n)
	}
	_ = q1
}

func TestTaskQueueSet_StealFromRandQueue_stealsFromTheOnlyEligibleQueue(t *testing.T) {
	s := newTaskQueueSet()
	q0 := s.NewQueue()
	q1 := s.NewQueue()
	q1.Insert(stubExecutable{id: 0})
	q1.Insert(stubExecutable{id: 1})
	q1.Insert(stubExecutable{id: 2})
	q1.Insert(stubExecutable{id: 3})

	got := s.StealFromRandQueue()
	if len(got) != 2 {
		t.Fatalf("len(StealFromRandQueue()) = %d, want 2", len(got))
	}
	if n := s.Len(); n != 2 {
		t.Fatalf("Len after steal = %d, want 2 (the other half stays on q1)", n)
	}
	_ = q0
}

func TestTaskQueueSet_StealFromRandQueue_emptySetReturnsEmpty(t *testing.T) {
	s := newTaskQueueSet()

	got := s.StealFromRandQueue()
	if got != nil {
		t.Fatalf("StealFromRandQueue on an empty set = %v, want nil", got)
	}
}
