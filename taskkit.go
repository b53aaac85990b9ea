// Package taskkit re-exports the primary types and constructors of task
// and runner for callers who want a single import.
//
// Most non-trivial programs will want the task and runner packages
// directly; this file exists for small programs that want the shortest
// possible import list.
package taskkit

import (
	"github.com/joeycumines/go-taskkit/runner"
	"github.com/joeycumines/go-taskkit/task"
)

type (
	// State is task.State.
	State[T, E any] = task.State[T, E]
	// Task is task.Task.
	Task[T, E any] = task.Task[T, E]
	// Outcome is task.Outcome.
	Outcome[T, E any] = task.Outcome[T, E]
	// Pair is task.Pair.
	Pair[A, B any] = task.Pair[A, B]
	// Executable is task.Executable.
	Executable = task.Executable
	// Runner is runner.Runner.
	Runner = runner.Runner
)

// NewRunner constructs a Runner with the given options; see runner.New.
func NewRunner(opts ...runner.RunnerOption) *Runner { return runner.New(opts...) }
