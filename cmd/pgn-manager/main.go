// pgn-manager is a tool for checking, normalizing, and inspecting chess
// games in PGN format. It replays every move of every game (variations
// included) through a rules engine and can re-render or dump the result.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
