package tree

import (
	"github.com/hadron43/pgn-manager/internal/pgn"
	"github.com/hadron43/pgn-manager/internal/rules"
)

// rebuild discards and repopulates every derived cache by walking the whole
// tree depth-first from the starting position. The tree itself is never
// touched, so the pass is safe to run any number of times; given the same
// tree it produces identical caches.
func (e *Engine) rebuild() {
	e.order = nil
	e.index = make(map[*pgn.Move]int)
	e.slot = make(map[*pgn.Move]int)
	e.containers = make(map[*pgn.Move]*pgn.Variation)
	e.anchors = make(map[*pgn.Variation]*pgn.Move)
	e.positions = make(map[*pgn.Move]positionEntry)
	e.invalid = 0

	e.startFEN = e.startPosition()
	e.walk(e.game.Moves, nil, e.startFEN)
}

// walk linearizes one container starting from the given position. Each
// variation attached to a move branches from the position before that move,
// independent of its sibling variations; the move itself is played only
// after all of its variations have been walked.
func (e *Engine) walk(moves []*pgn.Move, container *pgn.Variation, fen string) {
	for i, m := range moves {
		e.index[m] = len(e.order)
		e.order = append(e.order, m)
		e.slot[m] = i
		e.containers[m] = container

		for _, v := range m.Variations {
			e.anchors[v] = m
			e.walk(v.Moves, v, fen)
		}

		fen = e.play(m, fen)
	}
}

// play applies one move and caches the outcome, returning the position the
// rest of the container continues from. A move the rules engine rejects is
// a data-quality condition, not an error: it is logged and the pre-move
// position is kept, so the remainder of the tree stays navigable.
func (e *Engine) play(m *pgn.Move, fen string) string {
	next, _, err := rules.Apply(fen, m.Text, true)
	if err != nil && !e.strictOnly {
		next, _, err = rules.Apply(fen, m.Text, false)
	}

	number, nerr := rules.FullMove(fen)
	if nerr != nil {
		number = 1
	}

	if err != nil {
		e.invalid++
		e.log.Warnw("illegal move in source, keeping pre-move position",
			"ply", e.index[m]+1,
			"move", m.Text,
			"position", fen,
		)
		next = fen
	}

	toMove, terr := rules.SideToMove(next)
	if terr != nil {
		toMove = pgn.White
	}

	e.positions[m] = positionEntry{fen: next, toMove: toMove, number: number}
	return next
}
