// Package rules wraps the external chess rules engine behind the narrow
// contract the tree engine consumes: apply a candidate move to a position,
// report the side to move, and supply the standard position constants.
// Positions cross this boundary as opaque FEN strings; nothing outside this
// package inspects their internals.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	ntchess "github.com/notnil/chess"

	"github.com/hadron43/pgn-manager/internal/errors"
	"github.com/hadron43/pgn-manager/internal/pgn"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PlaceholderFEN is an empty-board placeholder for callers that need a
// position value before any real position is known.
const PlaceholderFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// Apply plays the candidate move text against the position given by fen.
// In strict mode only standard algebraic notation is accepted; permissive
// mode additionally cleans annotation suffixes and castling zeros and falls
// back to long-algebraic and UCI forms. On success it returns the resulting
// position and the canonical SAN for the move actually played.
func Apply(fen, text string, strict bool) (newFEN, san string, err error) {
	pos, err := position(fen)
	if err != nil {
		return "", "", err
	}

	mv, err := decode(pos, text, strict)
	if err != nil {
		return "", "", &errors.GameError{
			Err:      errors.ErrInvalidMove,
			MoveText: text,
			Position: fen,
		}
	}

	san = ntchess.AlgebraicNotation{}.Encode(pos, mv)
	next := pos.Update(mv)
	return next.String(), san, nil
}

// SideToMove returns the colour to move in the given position.
func SideToMove(fen string) (pgn.Colour, error) {
	pos, err := position(fen)
	if err != nil {
		return pgn.White, err
	}
	if pos.Turn() == ntchess.White {
		return pgn.White, nil
	}
	return pgn.Black, nil
}

// FullMove returns the full-move number recorded in the given position.
func FullMove(fen string) (int, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return 0, errors.Wrapf(errors.ErrInvalidFEN, "%q", fen)
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 0, errors.Wrapf(errors.ErrInvalidFEN, "bad full-move field in %q", fen)
	}
	return n, nil
}

// Validate checks that fen is a position the rules engine accepts.
func Validate(fen string) error {
	_, err := position(fen)
	return err
}

// position builds an engine position from a FEN string.
func position(fen string) (*ntchess.Position, error) {
	opt, err := ntchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", fen, errors.ErrInvalidFEN)
	}
	return ntchess.NewGame(opt).Position(), nil
}

// decode resolves move text to a legal move in the given position.
func decode(pos *ntchess.Position, text string, strict bool) (*ntchess.Move, error) {
	mv, err := ntchess.AlgebraicNotation{}.Decode(pos, text)
	if err == nil || strict {
		return mv, err
	}

	cleaned := cleanMoveText(text)
	if cleaned != text {
		if mv, err2 := (ntchess.AlgebraicNotation{}).Decode(pos, cleaned); err2 == nil {
			return mv, nil
		}
	}
	if mv, err2 := (ntchess.LongAlgebraicNotation{}).Decode(pos, cleaned); err2 == nil {
		return mv, nil
	}
	if mv, err2 := (ntchess.UCINotation{}).Decode(pos, cleaned); err2 == nil {
		return mv, nil
	}
	return nil, err
}

// cleanMoveText normalizes common permissive spellings: zero-style castling,
// annotation suffixes, and en-passant markers.
func cleanMoveText(text string) string {
	s := strings.TrimSuffix(text, "e.p.")
	s = strings.TrimSuffix(s, "ep")
	s = strings.TrimRight(s, "!?+#")

	switch s {
	case "0-0", "o-o":
		return "O-O"
	case "0-0-0", "o-o-o":
		return "O-O-O"
	}
	return s
}
