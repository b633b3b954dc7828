package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/costar/builder"
)

var (
	errIDScheme = errors.New("unknown id scheme (actor, excel or decimal)")
	errPairsOut = errors.New("--pairs needs --pairs-out")
)

// idSchemes maps --ids values to actor naming options.
var idSchemes = map[string]builder.BuilderOption{
	"actor":   builder.WithIDScheme(builder.SymbolNumberIDFn("Actor ")),
	"excel":   builder.WithExcelColumnIDs(),
	"decimal": builder.WithDefaultIDs(),
}

type genFlags struct {
	ids      string
	actors   int
	movies   int
	castMin  int
	castMax  int
	seed     int64
	from     int
	to       int
	pairs    int
	pairsOut string
}

func newGenCmd(a *app) *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen <out.tsv>",
		Short: "Generate a synthetic cast file (and optionally a pairs file)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.gen(args[0], f)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&f.actors, "actors", 1000, "size of the actor pool")
	fs.IntVar(&f.movies, "movies", 2000, "number of movies")
	fs.IntVar(&f.castMin, "cast-min", 2, "minimum credits per movie")
	fs.IntVar(&f.castMax, "cast-max", 8, "maximum credits per movie")
	fs.StringVar(&f.ids, "ids", "actor", "actor naming: actor (Actor 0), excel (A, B, ... AA) or decimal (0, 1, ...)")
	fs.Int64Var(&f.seed, "seed", 1, "random seed")
	fs.IntVar(&f.from, "from", 1950, "first release year")
	fs.IntVar(&f.to, "to", 2015, "last release year")
	fs.IntVar(&f.pairs, "pairs", 0, "number of query pairs to generate")
	fs.StringVar(&f.pairsOut, "pairs-out", "", "pairs output file (required with --pairs)")

	return cmd
}

func (a *app) gen(out string, f genFlags) error {
	ids, ok := idSchemes[f.ids]
	if !ok {
		return fmt.Errorf("%w: %q", errIDScheme, f.ids)
	}
	if f.pairs != 0 && f.pairsOut == "" {
		return errPairsOut
	}

	opts := []builder.BuilderOption{
		ids,
		builder.WithSeed(f.seed),
		builder.WithActors(f.actors),
		builder.WithMovies(f.movies),
		builder.WithCastSize(f.castMin, f.castMax),
		builder.WithYears(f.from, f.to),
	}
	recs, err := builder.Cast(opts...)
	if err != nil {
		return err
	}
	if err := writeFile(out, func(w io.Writer) error { return builder.WriteCast(w, recs) }); err != nil {
		return err
	}
	a.log.Info("cast generated", "out", out, "credits", len(recs), "movies", f.movies, "ids", f.ids, "seed", f.seed)

	if f.pairs == 0 {
		return nil
	}
	pairs, err := builder.Pairs(f.pairs, opts...)
	if err != nil {
		return err
	}
	if err := writeFile(f.pairsOut, func(w io.Writer) error { return builder.WritePairs(w, pairs) }); err != nil {
		return err
	}
	a.log.Info("pairs generated", "out", f.pairsOut, "pairs", len(pairs))

	return nil
}
