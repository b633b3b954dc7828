// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = SymbolNumberIDFn("Actor ")  ("Actor 0","Actor 1",...)
//   • titleFn  = SymbolNumberIDFn("Movie ")  ("Movie 0",...)
//   • rng      = nil                          (generators require a seed)
//   • actors   = 100, movies = 200
//   • cast     = 2..6 credits per movie
//   • years    = 1950..2015

package builder

import "math/rand"

// builderConfig aggregates all knobs used by the generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	idFn    IDFn
	titleFn IDFn
	rng     *rand.Rand

	actors  int
	movies  int
	castMin int
	castMax int
	from    int
	to      int
}

const (
	defaultActors   = 100
	defaultMovies   = 200
	defaultCastMin  = 2
	defaultCastMax  = 6
	defaultFromYear = 1950
	defaultToYear   = 2015
)

// newBuilderConfig applies opts over the defaults, last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    SymbolNumberIDFn("Actor "),
		titleFn: SymbolNumberIDFn("Movie "),
		actors:  defaultActors,
		movies:  defaultMovies,
		castMin: defaultCastMin,
		castMax: defaultCastMax,
		from:    defaultFromYear,
		to:      defaultToYear,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate reports the first violated constraint for method.
func (c builderConfig) validate(method string) error {
	switch {
	case c.actors < 1:
		return builderErrorf(method, ErrTooFewActors, "actors=%d", c.actors)
	case c.movies < 0:
		return builderErrorf(method, ErrNegativeCount, "movies=%d", c.movies)
	case c.castMin < 1 || c.castMin > c.castMax:
		return builderErrorf(method, ErrBadCastSize, "cast=%d..%d", c.castMin, c.castMax)
	case c.from > c.to:
		return builderErrorf(method, ErrBadYearRange, "years=%d..%d", c.from, c.to)
	case c.rng == nil:
		return builderErrorf(method, ErrNeedRandSource, "no seed")
	}

	return nil
}
