// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors PANIC on nil functions or RNGs (programmer error).
//   • Numeric knobs are stored as given and validated by the generators,
//     which return sentinel errors instead of panicking.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the actor name generator: idx -> name. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithTitleScheme sets the movie title generator: idx -> title. Panics on nil.
func WithTitleScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTitleScheme(nil)")
	}
	return func(c *builderConfig) {
		c.titleFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithActors sets the size of the actor pool.
func WithActors(n int) BuilderOption {
	return func(c *builderConfig) {
		c.actors = n
	}
}

// WithMovies sets the number of movies generated.
func WithMovies(n int) BuilderOption {
	return func(c *builderConfig) {
		c.movies = n
	}
}

// WithCastSize sets the inclusive range of credits per movie.
// Sizes above the actor pool are capped at the pool size.
func WithCastSize(lo, hi int) BuilderOption {
	return func(c *builderConfig) {
		c.castMin, c.castMax = lo, hi
	}
}

// WithYears sets the inclusive range of release years.
func WithYears(from, to int) BuilderOption {
	return func(c *builderConfig) {
		c.from, c.to = from, to
	}
}
