package runner

import (
	"fmt"

	"github.com/joeycumines/go-taskkit/ratelimit"
	"github.com/joeycumines/logiface"
)

// RunnerOption configures a Runner at construction: a small interface plus
// a function-backed implementation, applied left-to-right over a private
// options struct.
type RunnerOption interface{ applyRunnerOption(*runnerOptions) }

type runnerOptionFunc func(*runnerOptions)

func (f runnerOptionFunc) applyRunnerOption(o *runnerOptions) { f(o) }

type runnerOptions struct {
	workerCount int
	logger      *logiface.Logger[logiface.Event]
	limiter     *ratelimit.Limiter
}

// WithWorkerCount fixes the number of workers a Runner starts. n must be
// positive; WithWorkerCount panics otherwise. Without this option, New
// starts runtime.GOMAXPROCS(0)+1 workers.
func WithWorkerCount(n int) RunnerOption {
	if n <= 0 {
		panic(fmt.Sprintf("runner: WithWorkerCount: n must be positive, got %d", n))
	}
	return runnerOptionFunc(func(o *runnerOptions) { o.workerCount = n })
}

// WithLogger attaches a structured logger; workers emit Debug/Trace
// entries for queue drains, steals, and idle yields. A nil logger (the
// default) disables logging entirely at negligible per-call cost.
func WithLogger(logger *logiface.Logger[logiface.Event]) RunnerOption {
	return runnerOptionFunc(func(o *runnerOptions) { o.logger = logger })
}

// WithSubmitRateLimit attaches a ratelimit.Limiter that Runner.TrySubmit
// consults before enqueuing work. Runner.Submit and Runner.Run remain
// unconditional; TrySubmit is the rate-limited entry point for callers
// who need backpressure.
func WithSubmitRateLimit(limiter *ratelimit.Limiter) RunnerOption {
	return runnerOptionFunc(func(o *runnerOptions) { o.limiter = limiter })
}

func resolveRunnerOptions(opts []RunnerOption) *runnerOptions {
	o := &runnerOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt.applyRunnerOption(o)
		}
	}
	return o
}
