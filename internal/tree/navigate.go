package tree

import (
	"github.com/hadron43/pgn-manager/internal/errors"
	"github.com/hadron43/pgn-manager/internal/pgn"
)

// Navigation over the linearized tree. The nil *pgn.Move is the canonical
// absence sentinel: Next(nil) starts from the first move, Previous returns
// nil for the very first top-level move. "No further move" is signalled by
// Next returning its argument; callers detect it by identity, never by
// value comparison.

// MoveAt returns the nth move of the depth-first order, 1-based.
func (e *Engine) MoveAt(n int) (*pgn.Move, error) {
	if n < 1 || n > len(e.order) {
		return nil, errors.Wrapf(errors.ErrNotFound, "order position %d of %d", n, len(e.order))
	}
	return e.order[n-1], nil
}

// OrderOf returns the move's 1-based position in the depth-first order, or
// 0 if the move is not in the tree.
func (e *Engine) OrderOf(m *pgn.Move) int {
	if m == nil {
		return 0
	}
	i, ok := e.index[m]
	if !ok {
		return 0
	}
	return i + 1
}

// First returns the first move of the depth-first order.
func (e *Engine) First() (*pgn.Move, error) {
	if len(e.order) == 0 {
		return nil, errors.ErrEmptyGame
	}
	return e.order[0], nil
}

// Last returns the last move of the top-level sequence. Note that this is
// not necessarily the last move of the depth-first order: variations
// attached to the final mainline move sort after it.
func (e *Engine) Last() (*pgn.Move, error) {
	if len(e.game.Moves) == 0 {
		return nil, errors.ErrEmptyGame
	}
	return e.game.Moves[len(e.game.Moves)-1], nil
}

// Next returns the move following m. Successors are container-local: the
// last move of a variation continues at the successor of the variation's
// anchor, climbing out level by level. Next(nil) is First(). If m has no
// successor, m itself is returned.
func (e *Engine) Next(m *pgn.Move) (*pgn.Move, error) {
	if len(e.order) == 0 {
		return nil, errors.ErrEmptyGame
	}
	if m == nil {
		return e.First()
	}

	i, ok := e.index[m]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "move %q is not in the tree", m.Text)
	}
	if m == e.game.Moves[len(e.game.Moves)-1] || i == len(e.order)-1 {
		return m, nil
	}
	fallback := e.order[i+1]

	c := e.containers[m]
	seq := e.containerMoves(c)
	j := e.slot[m]
	if j < len(seq)-1 {
		return seq[j+1], nil
	}
	// m ends its variation: continue at the anchor's own successor.
	if c != nil {
		return e.Next(e.anchors[c])
	}
	return fallback, nil
}

// HasNext reports whether Next(m) yields a move other than m itself. The
// absence sentinel has a next move whenever the game has any moves.
func (e *Engine) HasNext(m *pgn.Move) bool {
	next, err := e.Next(m)
	if err != nil {
		return false
	}
	return next != m
}

// Previous returns the move preceding m, nil if m is the first move of the
// top-level sequence. Predecessors are container-local; for the first move
// of a variation the predecessor is the variation's anchor itself (the
// move the variation is an alternative to), not the move played before it.
func (e *Engine) Previous(m *pgn.Move) (*pgn.Move, error) {
	if len(e.order) == 0 {
		return nil, errors.ErrEmptyGame
	}
	if m == nil {
		return nil, errors.Wrap(errors.ErrInvalidMove, "no move given")
	}

	i, ok := e.index[m]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "move %q is not in the tree", m.Text)
	}
	if i == 0 {
		return nil, nil
	}
	naive := e.order[i-1]

	c := e.containers[m]
	j := e.slot[m]
	if j > 0 {
		return e.containerMoves(c)[j-1], nil
	}
	if c != nil {
		return e.anchors[c], nil
	}
	return naive, nil
}

// ContainerOf returns the variation holding m, or nil for mainline moves.
func (e *Engine) ContainerOf(m *pgn.Move) (*pgn.Variation, error) {
	if m == nil {
		return nil, errors.Wrap(errors.ErrInvalidMove, "no move given")
	}
	c, ok := e.containers[m]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "move %q is not in the tree", m.Text)
	}
	return c, nil
}

// ParentVariation is the accessor alias for ContainerOf: the variation a
// move belongs to, or nil for mainline moves.
func (e *Engine) ParentVariation(m *pgn.Move) (*pgn.Variation, error) {
	return e.ContainerOf(m)
}

// ColorOf returns the side that played m, derived from the cached side to
// move after it.
func (e *Engine) ColorOf(m *pgn.Move) (pgn.Colour, error) {
	entry, ok := e.positions[m]
	if !ok {
		return pgn.White, errors.Wrap(errors.ErrInvalidMove, "move has no cached position")
	}
	return entry.toMove.Opposite(), nil
}

// FENOf returns the cached position after m.
func (e *Engine) FENOf(m *pgn.Move) (string, error) {
	entry, ok := e.positions[m]
	if !ok {
		return "", errors.Wrap(errors.ErrInvalidMove, "move has no cached position")
	}
	return entry.fen, nil
}
