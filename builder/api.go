// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// api.go — public generators and TSV writers.
//
// Determinism: same options and seed ⇒ identical records and pairs.

package builder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/costar/cast"
)

// Method names used as error context.
const (
	MethodCast  = "Cast"
	MethodPairs = "Pairs"
)

// CastHeader is the header line written by WriteCast.
const CastHeader = "Actor/Actress\tMovie\tYear"

// PairsHeader is the header line written by WritePairs.
const PairsHeader = "Actor1\tActor2"

// Cast generates credit records for a synthetic movie catalog.
//
// Each movie draws a release year uniformly from the year range and a cast
// of distinct actors whose size is drawn uniformly from the cast-size range
// (capped at the pool). Records are emitted movie by movie.
//
// Complexity: O(actors + Σ cast sizes).
func Cast(opts ...BuilderOption) ([]cast.Record, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodCast); err != nil {
		return nil, err
	}

	// pool holds actor indices; the first k slots are shuffled per movie.
	pool := make([]int, cfg.actors)
	for i := range pool {
		pool[i] = i
	}

	hi := cfg.castMax
	if hi > cfg.actors {
		hi = cfg.actors
	}
	lo := cfg.castMin
	if lo > hi {
		lo = hi
	}

	recs := make([]cast.Record, 0, cfg.movies*(lo+hi)/2)
	for m := 0; m < cfg.movies; m++ {
		title := cfg.titleFn(m)
		year := cfg.from + cfg.rng.Intn(cfg.to-cfg.from+1)
		k := lo + cfg.rng.Intn(hi-lo+1)

		// partial Fisher–Yates: pool[0:k] becomes a uniform k-subset
		for j := 0; j < k; j++ {
			r := j + cfg.rng.Intn(len(pool)-j)
			pool[j], pool[r] = pool[r], pool[j]
			recs = append(recs, cast.Record{Actor: cfg.idFn(pool[j]), Title: title, Year: year})
		}
	}

	return recs, nil
}

// Pairs draws n query pairs of actors from the same pool Cast uses.
// Src and Dst of one pair may coincide.
func Pairs(n int, opts ...BuilderOption) ([]cast.Pair, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodPairs); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, builderErrorf(MethodPairs, ErrNegativeCount, "n=%d", n)
	}

	pairs := make([]cast.Pair, n)
	for i := range pairs {
		pairs[i] = cast.Pair{
			Src: cfg.idFn(cfg.rng.Intn(cfg.actors)),
			Dst: cfg.idFn(cfg.rng.Intn(cfg.actors)),
		}
	}

	return pairs, nil
}

// WriteCast writes recs in the cast TSV format read by cast.ReadRecords.
func WriteCast(w io.Writer, recs []cast.Record) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, CastHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\n", r.Actor, r.Title, r.Year); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePairs writes pairs in the format read by cast.ReadPairs.
func WritePairs(w io.Writer, pairs []cast.Pair) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, PairsHeader); err != nil {
		return err
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", p.Src, p.Dst); err != nil {
			return err
		}
	}

	return bw.Flush()
}
