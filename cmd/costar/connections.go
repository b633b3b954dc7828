package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/costar/cast"
	"github.com/katalvlaran/costar/connect"
	"github.com/katalvlaran/costar/report"
)

func newConnectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connections <cast.tsv> <pairs.tsv> <out.tsv> <bfs|ufind>",
		Short: "Write the year each actor pair first became connected",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := args[3]
			if err := connect.CheckAlgorithm(alg); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Invalid algorithm option (bfs or ufind only).")
				return err
			}
			files := []string{args[0], args[1]}
			return a.runOrWatch(cmd.Context(), files, func(context.Context) error {
				return a.connections(cmd.OutOrStdout(), args[0], args[1], args[2], alg)
			})
		},
	}
}

func (a *app) connections(stdout io.Writer, castPath, pairsPath, outPath, alg string) error {
	rep := report.New("connections")
	rep.Algorithm = alg
	rep.CastFile, rep.PairsFile, rep.OutputFile = castPath, pairsPath, outPath
	log := a.log.With("run_id", rep.RunID)

	pairs, err := cast.ReadPairsFile(pairsPath)
	if err != nil {
		return err
	}
	ix, err := cast.LoadFile(castPath, nil)
	if err != nil {
		if errors.Is(err, cast.ErrRead) {
			log.Error("failed to read cast file", "path", castPath, "err", err)
		}
		return err
	}
	backend, err := connect.NewBackend(alg, ix)
	if err != nil {
		return err
	}

	start := time.Now()
	results, st := connect.RunStats(ix, pairs, backend)
	elapsed := time.Since(start)

	if err := writeFile(outPath, func(w io.Writer) error { return connect.WriteTSV(w, results) }); err != nil {
		return err
	}

	ms := float64(elapsed.Nanoseconds()) / 1e6
	fmt.Fprintf(stdout, "Time for %s: %g ms\n", alg, ms)
	log.Info("connections done",
		"alg", alg, "movies", st.Movies, "buckets", st.Buckets, "checks", st.Checks,
		"resolved", st.Resolved, "unresolved", st.Unresolved, "elapsed_ms", ms, "out", outPath)

	rep.Actors, rep.Movies, rep.Credits = len(ix.Actors()), ix.Len(), ix.Credits()
	rep.Pairs, rep.Found = len(pairs), st.Resolved
	rep.Connections = &report.Connectivity{
		Buckets:    st.Buckets,
		Checks:     st.Checks,
		Resolved:   st.Resolved,
		Unresolved: st.Unresolved,
	}

	return a.saveReport(rep)
}
