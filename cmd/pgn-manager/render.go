package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadron43/pgn-manager/internal/parser"
	"github.com/hadron43/pgn-manager/internal/pgn"
	"github.com/hadron43/pgn-manager/internal/tree"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>",
		Short: "Re-render games as normalized PGN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(a, args[0], cmd.OutOrStdout())
		},
	}
}

func runRender(a *app, file string, w io.Writer) error {
	games, err := parseFile(file)
	if err != nil {
		return err
	}
	for i, g := range games {
		if i > 0 {
			fmt.Fprintln(w)
		}
		eng := tree.New(g, tree.WithLogger(a.log))
		fmt.Fprint(w, eng.PGN())
	}
	return nil
}

// parseFile parses every game in a file; "-" reads standard input.
func parseFile(file string) ([]*pgn.Game, error) {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return parser.NewParser(r).ParseAllGames()
}
