package builder_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costar/builder"
	"github.com/katalvlaran/costar/cast"
)

func TestCast_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithActors(30),
		builder.WithMovies(25),
		builder.WithCastSize(2, 5),
		builder.WithYears(1990, 2000),
	}
	a, err := builder.Cast(opts...)
	require.NoError(t, err)
	b, err := builder.Cast(opts...)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Cast(append(opts, builder.WithSeed(43))...)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestCast_Shape(t *testing.T) {
	recs, err := builder.Cast(
		builder.WithSeed(7),
		builder.WithActors(10),
		builder.WithMovies(40),
		builder.WithCastSize(2, 4),
		builder.WithYears(2001, 2003),
	)
	require.NoError(t, err)

	ix := cast.NewIndex()
	for _, r := range recs {
		ix.Add(r)
	}
	assert.Equal(t, 40, ix.Len())

	for _, m := range ix.Movies() {
		assert.GreaterOrEqual(t, m.Year, 2001)
		assert.LessOrEqual(t, m.Year, 2003)
		assert.GreaterOrEqual(t, len(m.Cast), 2)
		assert.LessOrEqual(t, len(m.Cast), 4)

		seen := map[string]bool{}
		for _, a := range m.Cast {
			assert.False(t, seen[a], "movie %s credits %s twice", m.Title, a)
			seen[a] = true
		}
	}
}

func TestCast_CastCappedAtPool(t *testing.T) {
	recs, err := builder.Cast(
		builder.WithSeed(1),
		builder.WithActors(3),
		builder.WithMovies(5),
		builder.WithCastSize(5, 9),
		builder.WithExcelColumnIDs(),
	)
	require.NoError(t, err)
	assert.Len(t, recs, 15)
	for _, r := range recs {
		assert.Contains(t, []string{"A", "B", "C"}, r.Actor)
	}
}

func TestCast_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		want error
	}{
		{"no seed", nil, builder.ErrNeedRandSource},
		{"no actors", []builder.BuilderOption{builder.WithSeed(1), builder.WithActors(0)}, builder.ErrTooFewActors},
		{"negative movies", []builder.BuilderOption{builder.WithSeed(1), builder.WithMovies(-1)}, builder.ErrNegativeCount},
		{"empty cast range", []builder.BuilderOption{builder.WithSeed(1), builder.WithCastSize(4, 2)}, builder.ErrBadCastSize},
		{"zero cast", []builder.BuilderOption{builder.WithSeed(1), builder.WithCastSize(0, 2)}, builder.ErrBadCastSize},
		{"years reversed", []builder.BuilderOption{builder.WithSeed(1), builder.WithYears(2010, 2000)}, builder.ErrBadYearRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Cast(tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithTitleScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestPairs(t *testing.T) {
	pairs, err := builder.Pairs(20, builder.WithSeed(3), builder.WithActors(5), builder.WithDefaultIDs())
	require.NoError(t, err)
	require.Len(t, pairs, 20)
	for _, p := range pairs {
		assert.Contains(t, []string{"0", "1", "2", "3", "4"}, p.Src)
		assert.Contains(t, []string{"0", "1", "2", "3", "4"}, p.Dst)
	}

	_, err = builder.Pairs(-1, builder.WithSeed(3))
	assert.ErrorIs(t, err, builder.ErrNegativeCount)
}

func TestWriters_RoundTripThroughCast(t *testing.T) {
	recs, err := builder.Cast(builder.WithSeed(11), builder.WithActors(8), builder.WithMovies(6))
	require.NoError(t, err)
	pairs, err := builder.Pairs(4, builder.WithSeed(11), builder.WithActors(8))
	require.NoError(t, err)

	var cb, pb bytes.Buffer
	require.NoError(t, builder.WriteCast(&cb, recs))
	require.NoError(t, builder.WritePairs(&pb, pairs))

	gotRecs, err := cast.ReadRecords(&cb)
	require.NoError(t, err)
	assert.Equal(t, recs, gotRecs)

	gotPairs, err := cast.ReadPairs(&pb)
	require.NoError(t, err)
	assert.Equal(t, pairs, gotPairs)
}
