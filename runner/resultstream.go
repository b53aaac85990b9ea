package runner

import (
	"context"
	"io"
	"time"

	"github.com/joeycumines/go-taskkit/task"
)

// DrainConfig controls how DrainResults sizes a batch: a minimum and
// maximum batch size, plus a partial-wait timeout for when the minimum
// can't be reached promptly.
type DrainConfig struct {
	// MaxBatch is the absolute maximum number of outcomes to receive in one
	// call. A value < 0 disables the maximum. Defaults to 16 if 0.
	MaxBatch int

	// MinBatch is the target minimum number of outcomes to receive before
	// returning, unless PartialWait elapses first. A value < 0 allows
	// returning an empty batch once PartialWait elapses with nothing
	// received. Defaults to 4 if 0.
	MinBatch int

	// PartialWait bounds how long to wait for a partial batch (fewer than
	// MinBatch outcomes). Defaults to 50ms if 0.
	PartialWait time.Duration
}

// DrainResults performs one blocking batched receive from ch, a channel a
// caller fans completed task.Outcome values into (for example, from
// several Task.Wait calls each running on their own goroutine outside the
// Runner's pool — Wait must never be called from a worker goroutine
// itself). It returns as many outcomes as it can, honoring cfg's size and
// timing constraints, or fewer than cfg.MinBatch if ctx is cancelled or
// PartialWait elapses first.
//
// Once ch is closed and every buffered outcome has been drained, DrainResults
// returns io.EOF alongside whatever was collected up to that point — the
// returned batch may be non-empty even when the error is io.EOF.
//
// Results accumulate into a returned batch rather than firing a callback
// per value, since the usual reason to want batched results at all is
// batch-level processing (one combined log line, one combined durable
// write) rather than per-item handling.
func DrainResults[T, E any](ctx context.Context, cfg *DrainConfig, ch <-chan task.Outcome[T, E]) ([]task.Outcome[T, E], error) {
	if ctx == nil {
		panic(`runner: DrainResults: nil context`)
	}
	if ch == nil {
		panic(`runner: DrainResults: nil channel`)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maxBatch := 16
	minBatch := 4
	partialWait := 50 * time.Millisecond
	if cfg != nil {
		if cfg.MaxBatch != 0 {
			maxBatch = cfg.MaxBatch
		}
		if cfg.MinBatch != 0 {
			minBatch = cfg.MinBatch
		}
		if cfg.PartialWait != 0 {
			partialWait = cfg.PartialWait
		}
	}

	var batch []task.Outcome[T, E]

	var partialCh <-chan time.Time
	if partialWait > 0 && minBatch < 0 {
		timer := time.NewTimer(partialWait)
		defer timer.Stop()
		partialCh = timer.C
	}

minSizeLoop:
	for (maxBatch < 0 || len(batch) < maxBatch) && (len(batch) < minBatch || (len(batch) == 0 && partialCh != nil)) {
		select {
		case <-ctx.Done():
			return batch, ctx.Err()

		case <-partialCh:
			if err := ctx.Err(); err != nil {
				return batch, err
			}
			break minSizeLoop

		case outcome, ok := <-ch:
			if !ok {
				return batch, io.EOF
			}
			batch = append(batch, outcome)

			if len(batch) == 1 && partialWait > 0 && partialCh == nil {
				timer := time.NewTimer(partialWait)
				//goland:noinspection GoDeferInLoop
				defer timer.Stop()
				partialCh = timer.C
			}
		}

		if err := ctx.Err(); err != nil {
			return batch, err
		}
	}

maxSizeLoop:
	for maxBatch < 0 || len(batch) < maxBatch {
		select {
		case <-ctx.Done():
			return batch, ctx.Err()

		case outcome, ok := <-ch:
			if !ok {
				return batch, io.EOF
			}
			batch = append(batch, outcome)

		default:
			if err := ctx.Err(); err != nil {
				return batch, err
			}
			break maxSizeLoop
		}

		if err := ctx.Err(); err != nil {
			return batch, err
		}
	}

	return batch, nil
}
