package connect

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/costar/cast"
)

// Run computes, for every pair, the first year in which the two actors are
// connected. See RunStats.
func Run(ix *cast.Index, pairs []cast.Pair, b Backend) []Result {
	res, _ := RunStats(ix, pairs, b)

	return res
}

// RunStats is Run that also reports counters.
//
// Movies are consumed in (year, title) order. Whenever a movie's year differs
// from the previous movie's, every unresolved pair is checked and, if
// connected, answered with the previous year. The movie's relations are then
// added. A last check after all movies uses the final year; pairs still not
// connected get Sentinel. With no movies every pair gets Sentinel.
//
// b is Reset first, so one back end can serve several runs.
func RunStats(ix *cast.Index, pairs []cast.Pair, b Backend) ([]Result, Stats) {
	b.Reset()

	movies := ix.Movies()
	st := Stats{Backend: b.Name(), Movies: len(movies)}

	res := make([]Result, len(pairs))
	done := make([]bool, len(pairs))
	for i, p := range pairs {
		res[i] = Result{Src: p.Src, Dst: p.Dst, Year: Sentinel}
	}

	// check answers every open pair that b now reports connected
	check := func(year int) {
		for i, p := range pairs {
			if done[i] {
				continue
			}
			st.Checks++
			if b.Connected(p.Src, p.Dst) {
				res[i].Year = year
				done[i] = true
				st.Resolved++
			}
		}
	}

	prev := Sentinel
	if len(movies) > 0 {
		prev = movies[0].Year
		st.Buckets = 1
	}
	for _, m := range movies {
		if m.Year != prev {
			check(prev)
			prev = m.Year
			st.Buckets++
		}
		b.Connect(m)
	}
	if len(movies) > 0 {
		check(prev)
	}
	st.Unresolved = len(pairs) - st.Resolved

	return res, st
}

// WriteTSV writes the "Actor1\tActor2\tYear" header and one row per result.
func WriteTSV(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprint(bw, "Actor1\tActor2\tYear\n"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\n", r.Src, r.Dst, r.Year); err != nil {
			return err
		}
	}

	return bw.Flush()
}
