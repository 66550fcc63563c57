package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hadron43/pgn-manager/internal/output"
	"github.com/hadron43/pgn-manager/internal/parser"
	"github.com/hadron43/pgn-manager/internal/tree"
	"github.com/hadron43/pgn-manager/internal/worker"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Replay every game and report moves the rules engine rejects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(a, args, cmd.OutOrStdout())
		},
	}
}

func runCheck(a *app, files []string, w io.Writer) error {
	var firstErr error
	for _, file := range files {
		if err := checkFile(a, file, w); err != nil {
			a.log.Errorw("check failed", "file", file, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func checkFile(a *app, file string, w io.Writer) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	games, err := parser.NewParser(f).ParseAllGames()
	if err != nil {
		return err
	}

	pool := worker.NewPool(func(item worker.Item) worker.Result {
		opts := []tree.Option{tree.WithLogger(a.log)}
		if a.cfg.Strict {
			opts = append(opts, tree.WithStrictOnly())
		}
		eng := tree.New(item.Game, opts...)
		return worker.Result{
			Index:        item.Index,
			Game:         item.Game,
			PlyCount:     eng.PlyCount(),
			InvalidMoves: eng.InvalidMoveCount(),
		}
	}, worker.WithWorkers(a.cfg.Workers))

	pool.Start()
	go func() {
		for i, g := range games {
			pool.Submit(worker.Item{Game: g, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.Result, 0, len(games))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	report := &output.CheckReport{File: file, Games: len(games)}
	for _, r := range results {
		if r.InvalidMoves > 0 {
			report.Rejected++
		}
		report.Results = append(report.Results, output.GameCheck{
			Game:         r.Index + 1,
			White:        r.Game.White(),
			Black:        r.Game.Black(),
			PlyCount:     r.PlyCount,
			InvalidMoves: r.InvalidMoves,
		})
	}

	if a.cfg.Format == "json" {
		return output.WriteCheckReport(w, report)
	}
	for _, gc := range report.Results {
		if gc.InvalidMoves > 0 {
			fmt.Fprintf(w, "%s: game %d (%s vs %s): %d of %d moves rejected\n",
				file, gc.Game, playerOrUnknown(gc.White), playerOrUnknown(gc.Black),
				gc.InvalidMoves, gc.PlyCount)
		}
	}
	fmt.Fprintf(w, "%s: %d games, %d with rejected moves\n", file, report.Games, report.Rejected)
	return nil
}

func playerOrUnknown(name string) string {
	if name == "" {
		return "?"
	}
	return name
}
