package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/hadron43/pgn-manager/internal/output"
	"github.com/hadron43/pgn-manager/internal/tree"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the linearized view of each game as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(a, args[0], cmd.OutOrStdout())
		},
	}
}

func runDump(a *app, file string, w io.Writer) error {
	games, err := parseFile(file)
	if err != nil {
		return err
	}

	if len(games) == 1 {
		eng := tree.New(games[0], tree.WithLogger(a.log))
		return output.WriteJSON(w, eng.Dump())
	}

	dumps := make([]*output.GameDump, len(games))
	for i, g := range games {
		eng := tree.New(g, tree.WithLogger(a.log))
		dumps[i] = eng.Dump()
	}
	return output.WriteJSONSet(w, dumps)
}
