package runner

import "github.com/joeycumines/logiface"

// runnerLogger wraps an optional structured logger, emitting debug/trace
// traces for worker lifecycle events. With no logger configured (the
// default), every call site here is a single nil check, and the hot
// scheduling path pays nothing extra: logging is lazily evaluated, never
// formatted or allocated unless a logger is actually attached.
type runnerLogger struct {
	logger *logiface.Logger[logiface.Event]
}

func (l *runnerLogger) drained(worker int) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug().Int(`worker`, worker).Log(`drained local queue`)
}

func (l *runnerLogger) stole(worker, n int) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug().Int(`worker`, worker).Int(`stolen`, n).Log(`stole work`)
}

func (l *runnerLogger) idle(worker int) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Trace().Int(`worker`, worker).Log(`idle, yielding`)
}
