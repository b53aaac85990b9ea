// Package ratelimit implements a sliding-window rate limiter keyed by an
// arbitrary comparable category, for use as
// [github.com/joeycumines/go-taskkit/runner]'s optional submission throttle,
// via runner.WithSubmitRateLimit.
//
// Unlike a ring-buffer-backed limiter built for very-high-frequency call
// sites, this package keeps a plain growable slice of event timestamps per
// category and compacts it during periodic cleanup. Rate limiting a
// scheduler's Submit call is not that kind of hot inner loop, so the
// simpler structure is the right trade here.
package ratelimit
