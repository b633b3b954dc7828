package connect_test

import (
	"testing"

	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/cast"
	"github.com/katalvlaran/costar/connect"
)

func benchData(b *testing.B) (*cast.Index, []cast.Pair) {
	b.Helper()
	opts := []builder.BuilderOption{
		builder.WithSeed(2015),
		builder.WithActors(2000),
		builder.WithMovies(1500),
		builder.WithCastSize(3, 8),
		builder.WithYears(1950, 2015),
	}
	recs, err := builder.Cast(opts...)
	if err != nil {
		b.Fatal(err)
	}
	pairs, err := builder.Pairs(100, opts...)
	if err != nil {
		b.Fatal(err)
	}
	ix := cast.NewIndex()
	for _, r := range recs {
		ix.Add(r)
	}

	return ix, pairs
}

func BenchmarkRun(b *testing.B) {
	ix, pairs := benchData(b)
	for _, name := range []string{connect.AlgBFS, connect.AlgUFind} {
		be, err := connect.NewBackend(name, ix)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				connect.Run(ix, pairs, be)
			}
		})
	}
}
