package testutil

import (
	"strings"
	"testing"

	"github.com/hadron43/pgn-manager/internal/parser"
	"github.com/hadron43/pgn-manager/internal/pgn"
)

// ParseTestGame parses a PGN string and returns the first game, or nil if
// no game is found. Use this where parse failure is an acceptable outcome.
func ParseTestGame(text string) *pgn.Game {
	if games := ParseTestGames(text); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestGames parses a PGN string and returns all games found.
func ParseTestGames(text string) []*pgn.Game {
	p := parser.NewParser(strings.NewReader(text))
	games, err := p.ParseAllGames()
	if err != nil {
		return nil
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game, aborting
// the test if nothing parses.
func MustParseGame(t *testing.T, text string) *pgn.Game {
	t.Helper()
	game := ParseTestGame(text)
	if game == nil {
		t.Fatalf("failed to parse test game:\n%s", text)
	}
	return game
}

// MustParseGames parses a PGN string and returns all games found, aborting
// the test if nothing parses.
func MustParseGames(t *testing.T, text string) []*pgn.Game {
	t.Helper()
	games := ParseTestGames(text)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", text)
	}
	return games
}
