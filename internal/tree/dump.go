package tree

import (
	"github.com/hadron43/pgn-manager/internal/output"
)

// Dump captures the linearized view of the game for machine consumption:
// every move in depth-first order with its cached position, colour, and
// container information.
func (e *Engine) Dump() *output.GameDump {
	dump := &output.GameDump{
		Tags:         e.game.Tags,
		InitialFEN:   e.startFEN,
		Result:       e.game.Result,
		PlyCount:     len(e.order),
		InvalidMoves: e.invalid,
	}
	if dump.Result == "" {
		dump.Result = e.game.GetTag("Result")
	}

	for i, m := range e.order {
		entry := e.positions[m]
		md := output.MoveDump{
			Ply:      i + 1,
			Text:     m.Text,
			Number:   m.Number,
			Color:    entry.toMove.Opposite().String(),
			FEN:      entry.fen,
			Mainline: e.containers[m] == nil,
			Comments: output.CommentTexts(m),
		}
		if c := e.containers[m]; c != nil {
			if anchor := e.anchors[c]; anchor != nil {
				md.Anchor = anchor.Text
			}
		}
		dump.Moves = append(dump.Moves, md)
	}
	return dump
}
