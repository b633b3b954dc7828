package connect_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/cast"
	"github.com/katalvlaran/costar/connect"
)

const sampleTSV = "Actor/Actress\tMovie\tYear\n" +
	"A\tM1\t2000\n" +
	"B\tM1\t2000\n" +
	"B\tM2\t2005\n" +
	"C\tM2\t2005\n"

func loadIndex(t testing.TB, data string) *cast.Index {
	t.Helper()
	ix, err := cast.Load(strings.NewReader(data), nil)
	require.NoError(t, err)

	return ix
}

func backends(ix *cast.Index) []connect.Backend {
	return []connect.Backend{connect.NewGraphBackend(ix), connect.NewUpTreeBackend(ix)}
}

func years(res []connect.Result) []int {
	out := make([]int, len(res))
	for i, r := range res {
		out[i] = r.Year
	}

	return out
}

func TestRun_Sample(t *testing.T) {
	ix := loadIndex(t, sampleTSV)
	pairs := []cast.Pair{{Src: "A", Dst: "C"}, {Src: "A", Dst: "Z"}, {Src: "A", Dst: "B"}}

	for _, b := range backends(ix) {
		t.Run(b.Name(), func(t *testing.T) {
			res, st := connect.RunStats(ix, pairs, b)
			assert.Equal(t, []connect.Result{
				{Src: "A", Dst: "C", Year: 2005},
				{Src: "A", Dst: "Z", Year: connect.Sentinel},
				{Src: "A", Dst: "B", Year: 2000},
			}, res)
			assert.Equal(t, b.Name(), st.Backend)
			assert.Equal(t, 2, st.Movies)
			assert.Equal(t, 2, st.Buckets)
			assert.Equal(t, 2, st.Resolved)
			assert.Equal(t, 1, st.Unresolved)
			// boundary 2000→2005 checks 3 pairs, then the final check 2
			assert.Equal(t, 5, st.Checks)
		})
	}
}

func TestRun_PreviousBucketYear(t *testing.T) {
	// A–C becomes connected by M2 (2005), but is first observed at the
	// 2010 boundary and answered with the bucket year that just ended.
	ix := loadIndex(t, sampleTSV+"D\tM3\t2010\nE\tM3\t2010\n")
	pairs := []cast.Pair{{Src: "A", Dst: "C"}, {Src: "D", Dst: "E"}}

	for _, b := range backends(ix) {
		res := connect.Run(ix, pairs, b)
		assert.Equal(t, []int{2005, 2010}, years(res), b.Name())
	}
}

func TestRun_SingleYear(t *testing.T) {
	ix := loadIndex(t, "h\th\th\nA\tX\t1999\nB\tX\t1999\nB\tY\t1999\nC\tY\t1999\n")
	pairs := []cast.Pair{{Src: "A", Dst: "C"}}

	for _, b := range backends(ix) {
		assert.Equal(t, []int{1999}, years(connect.Run(ix, pairs, b)), b.Name())
	}
}

func TestRun_EmptyIndex(t *testing.T) {
	ix := cast.NewIndex()
	pairs := []cast.Pair{{Src: "A", Dst: "A"}, {Src: "A", Dst: "B"}}

	for _, b := range backends(ix) {
		res, st := connect.RunStats(ix, pairs, b)
		assert.Equal(t, []int{connect.Sentinel, connect.Sentinel}, years(res), b.Name())
		assert.Zero(t, st.Checks)
		assert.Zero(t, st.Buckets)
	}
}

func TestRun_SelfPairAndUnknowns(t *testing.T) {
	ix := loadIndex(t, sampleTSV)
	pairs := []cast.Pair{{Src: "A", Dst: "A"}, {Src: "Q", Dst: "Q"}, {Src: "Q", Dst: "R"}}

	for _, b := range backends(ix) {
		res := connect.Run(ix, pairs, b)
		assert.Equal(t, []int{2000, connect.Sentinel, connect.Sentinel}, years(res), b.Name())
	}
}

func TestRun_BackendReusable(t *testing.T) {
	ix := loadIndex(t, sampleTSV)
	pairs := []cast.Pair{{Src: "A", Dst: "C"}}

	for _, b := range backends(ix) {
		first := connect.Run(ix, pairs, b)
		second := connect.Run(ix, pairs, b)
		assert.Equal(t, first, second, b.Name())
	}
}

func TestBackends_AgreeOnGeneratedData(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		opts := []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithActors(60),
			builder.WithMovies(45),
			builder.WithCastSize(2, 4),
			builder.WithYears(1980, 2015),
		}
		recs, err := builder.Cast(opts...)
		require.NoError(t, err)
		pairs, err := builder.Pairs(80, opts...)
		require.NoError(t, err)

		ix := cast.NewIndex()
		for _, r := range recs {
			ix.Add(r)
		}
		// a stranger that never appears in any movie
		pairs = append(pairs, cast.Pair{Src: "Actor 0", Dst: "nobody"})

		g := connect.Run(ix, pairs, connect.NewGraphBackend(ix))
		u := connect.Run(ix, pairs, connect.NewUpTreeBackend(ix))
		require.Equal(t, years(g), years(u), "seed %d", seed)
		assert.Equal(t, connect.Sentinel, g[len(g)-1].Year)
	}
}

func TestNewBackend(t *testing.T) {
	ix := loadIndex(t, sampleTSV)

	b, err := connect.NewBackend("bfs", ix)
	require.NoError(t, err)
	assert.IsType(t, &connect.GraphBackend{}, b)

	b, err = connect.NewBackend("ufind", ix)
	require.NoError(t, err)
	assert.IsType(t, &connect.UpTreeBackend{}, b)

	_, err = connect.NewBackend("dfs", ix)
	assert.ErrorIs(t, err, connect.ErrUnknownAlgorithm)
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	err := connect.WriteTSV(&buf, []connect.Result{
		{Src: "A", Dst: "C", Year: 2005},
		{Src: "A", Dst: "Z", Year: connect.Sentinel},
	})
	require.NoError(t, err)
	assert.Equal(t, "Actor1\tActor2\tYear\nA\tC\t2005\nA\tZ\t9999\n", buf.String())
}
