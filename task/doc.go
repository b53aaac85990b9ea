// Package task implements a polled, composable unit of work: [State], a
// five-variant outcome sum type, and [Task], a step-driven computation built
// from a closure plus combinators (map, then, join, recover, catch, done,
// finally) that compose new Tasks without invoking any of their inputs.
//
// A Task makes progress only when something calls Exec on it (directly, or
// via [Task.Poll]/[Task.Wait], or by being handed to a
// [github.com/joeycumines/go-taskkit/runner.Runner]). There is no
// background goroutine, no scheduler, and no readiness notification built
// into a bare Task; see the runner package for a work-stealing scheduler
// that drives many Tasks across a fixed pool of worker goroutines.
//
// See also [github.com/joeycumines/go-taskkit/runner], which consumes
// [Executable] to drive arbitrarily many Tasks to completion.
package task
