package tree

import (
	"github.com/hadron43/pgn-manager/internal/errors"
	"github.com/hadron43/pgn-manager/internal/pgn"
	"github.com/hadron43/pgn-manager/internal/rules"
)

// Insert plays a candidate move after anchor and grafts it into the tree.
// A nil anchor inserts at the start of the game. The candidate is validated
// by the rules engine before the tree is touched, so a rejected insert
// leaves the tree, caches, and rendering exactly as they were.
//
// Placement never reorders existing content: when a continuation already
// exists at the insertion point, the new move becomes a fresh variation
// attached to that continuation, offering the new move as an alternative
// to it.
func (e *Engine) Insert(anchor *pgn.Move, text, result string) (*pgn.Move, error) {
	if result == "" {
		result = pgn.ResultUnknown
	}
	if !pgn.IsValidResult(result) {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "result %q", result)
	}

	startFEN := e.startFEN
	if anchor != nil {
		entry, ok := e.positions[anchor]
		if !ok {
			return nil, errors.Wrap(errors.ErrInvalidMove, "anchor is not in the tree")
		}
		startFEN = entry.fen
	}

	_, san, err := rules.Apply(startFEN, text, true)
	if err != nil && !e.strictOnly {
		_, san, err = rules.Apply(startFEN, text, false)
	}
	if err != nil {
		return nil, err
	}

	move := pgn.NewMove(san)
	move.Number = e.insertNumber(anchor)
	e.graft(anchor, move, result)

	e.rebuild()
	e.render()
	return move, nil
}

// InsertAt is Insert addressed by order position: 0 inserts at the start of
// the game, n > 0 inserts after the nth move of the depth-first order.
func (e *Engine) InsertAt(n int, text, result string) (*pgn.Move, error) {
	if n == 0 {
		return e.Insert(nil, text, result)
	}
	anchor, err := e.MoveAt(n)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "insert anchor %d", n)
	}
	return e.Insert(anchor, text, result)
}

// insertNumber assigns the full-move number for a move inserted after
// anchor: the anchor's own number when the anchor was played by White,
// one past it when played by Black, 1 with no anchor.
func (e *Engine) insertNumber(anchor *pgn.Move) int {
	if anchor == nil {
		return 1
	}
	entry := e.positions[anchor]
	if entry.toMove.Opposite() == pgn.White {
		return entry.number
	}
	return entry.number + 1
}

// graft splices the validated move into the tree.
func (e *Engine) graft(anchor *pgn.Move, move *pgn.Move, result string) {
	if anchor == nil {
		// A populated mainline cannot take a prepended move; offer it as
		// an alternative to the current first move instead.
		if len(e.game.Moves) > 0 {
			e.game.Moves[0].AppendVariation(&pgn.Variation{
				Moves:  []*pgn.Move{move},
				Result: result,
			})
		} else {
			e.game.AppendMove(move)
		}
		return
	}

	c := e.containers[anchor]
	seq := e.containerMoves(c)
	j := e.slot[anchor]
	if j == len(seq)-1 {
		// Ordinary continuation at the end of the container.
		if c == nil {
			e.game.AppendMove(move)
		} else {
			c.AppendMove(move)
		}
		return
	}

	// The anchor already has a continuation; the new move becomes an
	// alternative to it.
	seq[j+1].AppendVariation(&pgn.Variation{
		Moves:  []*pgn.Move{move},
		Result: result,
	})
}

// Delete removes the move at the given order position together with every
// later move in the same container. Variations attached to earlier moves of
// that container, and the rest of the tree, are unaffected.
func (e *Engine) Delete(n int) error {
	m, err := e.MoveAt(n)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidMove, "order position %d", n)
	}
	return e.DeleteMove(m)
}

// DeleteMove removes m and every move after it in m's container.
func (e *Engine) DeleteMove(m *pgn.Move) error {
	if m == nil {
		return errors.Wrap(errors.ErrInvalidMove, "no move given")
	}
	c, ok := e.containers[m]
	if !ok {
		return errors.Wrapf(errors.ErrInvalidMove, "move %q is not in the tree", m.Text)
	}

	j := e.slot[m]
	seq := e.containerMoves(c)
	removed := seq[j:]
	if c == nil {
		e.game.Moves = e.game.Moves[:j]
	} else {
		c.Moves = c.Moves[:j]
	}

	// Evict removed moves one level deep; the rebuild below repopulates
	// every cache from the smaller tree, so nothing deeper can be observed
	// through the public surface.
	for _, rm := range removed {
		delete(e.positions, rm)
		delete(e.containers, rm)
		delete(e.index, rm)
		delete(e.slot, rm)
		for _, v := range rm.Variations {
			delete(e.anchors, v)
		}
	}

	// Clear the dropped slots so the backing array does not keep the
	// removed moves alive.
	for i := range removed {
		removed[i] = nil
	}

	e.rebuild()
	e.render()
	return nil
}
