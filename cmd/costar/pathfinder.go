package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/costar/cast"
	"github.com/katalvlaran/costar/pathfind"
	"github.com/katalvlaran/costar/report"
)

func newPathfinderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pathfinder <cast.tsv> <u|w> <pairs.tsv> <out.txt>",
		Short: "Write the shortest co-star trail for every actor pair",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := pathfind.ParseMode(args[1])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Invalid weight option (u or w only).")
				return err
			}
			files := []string{args[0], args[2]}
			return a.runOrWatch(cmd.Context(), files, func(context.Context) error {
				return a.pathfinder(args[0], mode, args[2], args[3])
			})
		},
	}
}

func (a *app) pathfinder(castPath string, mode pathfind.Mode, pairsPath, outPath string) error {
	rep := report.New("pathfinder")
	rep.Algorithm = mode.String()
	rep.CastFile, rep.PairsFile, rep.OutputFile = castPath, pairsPath, outPath
	log := a.log.With("run_id", rep.RunID)

	ix, err := cast.LoadFile(castPath, nil)
	if err != nil {
		if errors.Is(err, cast.ErrRead) {
			log.Error("failed to read cast file", "path", castPath, "err", err)
		}
		return err
	}
	pairs, err := cast.ReadPairsFile(pairsPath)
	if err != nil {
		return err
	}
	log.Info("inputs loaded", "actors", len(ix.Actors()), "movies", ix.Len(), "credits", ix.Credits(), "pairs", len(pairs))

	eng := pathfind.NewEngine(pathfind.Build(ix, mode, a.cfg.BaseYear), mode)
	g := eng.Graph()

	start := time.Now()
	lines, err := eng.Run(pairs)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeFile(outPath, func(w io.Writer) error { return pathfind.WriteTrails(w, lines) }); err != nil {
		return err
	}

	queries, found := eng.Counts()
	log.Info("pathfinder done",
		"mode", eng.Mode().String(), "edges", g.Size()/2, "queries", queries, "found", found,
		"elapsed_ms", float64(elapsed.Microseconds())/1000, "out", outPath)

	rep.Actors, rep.Movies, rep.Credits = g.Order(), ix.Len(), ix.Credits()
	rep.Pairs, rep.Found = queries, found

	return a.saveReport(rep)
}
