// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with builderErrorf, which keeps %w intact.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewActors indicates an actor pool smaller than one.
var ErrTooFewActors = errors.New("builder: too few actors")

// ErrNegativeCount indicates a negative movie or pair count.
var ErrNegativeCount = errors.New("builder: count must be non-negative")

// ErrBadCastSize indicates a cast-size range that is empty or starts below
// one. A range wider than the actor pool is capped by Cast, not rejected.
var ErrBadCastSize = errors.New("builder: invalid cast size")

// ErrBadYearRange indicates a release-year range with from > to.
var ErrBadYearRange = errors.New("builder: invalid year range")

// ErrNeedRandSource indicates a generator ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes err with method context, e.g.
// "Cast: actors=0: builder: too few actors".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
