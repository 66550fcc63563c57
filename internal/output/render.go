// Package output renders a game tree back to text. Rendering is pure: it
// reads the tree and the caller-supplied colour lookup and produces a
// string, so the tree engine can regenerate the rendering after every edit.
package output

import (
	"fmt"
	"strings"

	"github.com/hadron43/pgn-manager/internal/pgn"
)

// ColorFunc reports the side that played a move. The serializer needs it to
// decide between "N." and "N..." numbering.
type ColorFunc func(*pgn.Move) pgn.Colour

// Render produces the PGN text for a game: leading comments, headers,
// prefix comments, the move sequence, and the terminal result marker, with
// a blank line between each populated section.
func Render(game *pgn.Game, colorOf ColorFunc) string {
	var sb strings.Builder

	for _, c := range game.LeadingComments {
		sb.WriteString(wrapComment(c.Text))
		sb.WriteByte('\n')
	}
	if len(game.LeadingComments) > 0 {
		sb.WriteByte('\n')
	}

	for _, t := range game.Tags {
		fmt.Fprintf(&sb, "[%s %q]\n", t.Name, t.Value)
	}
	if len(game.Tags) > 0 {
		sb.WriteByte('\n')
	}

	for _, c := range game.PrefixComments {
		sb.WriteString(wrapComment(c.Text))
		sb.WriteByte('\n')
	}
	if len(game.PrefixComments) > 0 {
		sb.WriteByte('\n')
	}

	tokens := moveTokens(game.Moves, colorOf)
	tokens = append(tokens, gameResult(game))
	sb.WriteString(strings.Join(tokens, " "))
	sb.WriteByte('\n')

	return sb.String()
}

// moveTokens renders one container recursively. Each token is emitted
// whole; the caller joins them with single spaces.
func moveTokens(moves []*pgn.Move, colorOf ColorFunc) []string {
	var tokens []string
	for _, m := range moves {
		if m.Number > 0 {
			num := fmt.Sprintf("%d.", m.Number)
			if colorOf(m) == pgn.Black {
				num += ".."
			}
			tokens = append(tokens, num)
		}
		tokens = append(tokens, m.Text)
		for _, c := range m.Comments {
			tokens = append(tokens, wrapComment(c.Text))
		}
		for _, v := range m.Variations {
			sub := moveTokens(v.Moves, colorOf)
			if v.Result != "" {
				sub = append(sub, v.Result)
			}
			tokens = append(tokens, "("+strings.Join(sub, " ")+")")
		}
	}
	return tokens
}

// gameResult returns the terminal marker for the game.
func gameResult(game *pgn.Game) string {
	if game.Result != "" {
		return game.Result
	}
	if r := game.GetTag("Result"); pgn.IsValidResult(r) {
		return r
	}
	return pgn.ResultUnknown
}

func wrapComment(text string) string {
	return "{" + text + "}"
}
