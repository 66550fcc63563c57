package tree

import (
	"testing"

	"github.com/hadron43/pgn-manager/internal/errors"
	"github.com/hadron43/pgn-manager/internal/pgn"
	"github.com/hadron43/pgn-manager/internal/rules"
	"github.com/hadron43/pgn-manager/internal/testutil"
)

func TestInsert_AppendsAtContainerEnd(t *testing.T) {
	e := mustEngine(t, "1. e4 e5 *")
	e5 := findMove(t, e, "e5", 1)

	m, err := e.Insert(e5, "Nf3", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Text, "Nf3")
	testutil.AssertEqual(t, m.Number, 2)
	testutil.AssertEqual(t, e.PlyCount(), 3)

	last, err := e.Last()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, last == m, "appended move is the new mainline end")

	c, err := e.ContainerOf(m)
	testutil.AssertNoError(t, err)
	testutil.AssertNil(t, c, "appended move joins the top-level container")

	testutil.AssertEqual(t, e.PGN(), "1. e4 e5 2. Nf3 *\n")
}

func TestInsert_MidContainerBecomesVariation(t *testing.T) {
	e := mustEngine(t, "1. e4 e5 *")
	e4 := findMove(t, e, "e4", 1)

	m, err := e.Insert(e4, "c5", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Number, 1)

	// The anchor already has a continuation (e5), so the new move is offered
	// as an alternative to it, never reordering existing content.
	e5 := findMove(t, e, "e5", 1)
	c, err := e.ParentVariation(m)
	testutil.AssertNoError(t, err)
	testutil.AssertNotNil(t, c)
	testutil.AssertTrue(t, e.anchors[c] == e5, "new variation hangs off the displaced continuation")

	// It branches from the position after the anchor.
	afterE4, err := e.FENOf(e4)
	testutil.AssertNoError(t, err)
	wantC5, _, err := rules.Apply(afterE4, "c5", true)
	testutil.AssertNoError(t, err)
	gotC5, err := e.FENOf(m)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gotC5, wantC5)

	testutil.AssertEqual(t, e.PGN(), "1. e4 e5 (1... c5 *) *\n")
}

func TestInsert_EmptyGame(t *testing.T) {
	e := New(&pgn.Game{})

	m, err := e.Insert(nil, "d4", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Number, 1)
	testutil.AssertEqual(t, e.PlyCount(), 1)

	first, err := e.First()
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, first == m, "first insert becomes the mainline")
}

func TestInsert_NilAnchorWithMainline(t *testing.T) {
	e := mustEngine(t, "1. e4 e5 *")

	m, err := e.Insert(nil, "d4", "")
	testutil.AssertNoError(t, err)

	// A populated mainline keeps its first move; the insert becomes an
	// alternative first move.
	first, err := e.First()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, first.Text, "e4")

	c, err := e.ParentVariation(m)
	testutil.AssertNoError(t, err)
	testutil.AssertNotNil(t, c)
	testutil.AssertTrue(t, e.anchors[c] == first, "alternative first move anchors to the original first move")

	gotD4, err := e.FENOf(m)
	testutil.AssertNoError(t, err)
	wantD4, _, err := rules.Apply(rules.InitialFEN, "d4", true)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, gotD4, wantD4)
}

func TestInsert_RejectionLeavesTreeUntouched(t *testing.T) {
	e := mustEngine(t, "1. e4 e5 *")
	before := e.PGN()
	e4 := findMove(t, e, "e4", 1)

	_, err := e.Insert(e4, "Qd5", "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	testutil.AssertEqual(t, e.PlyCount(), 2)
	testutil.AssertEqual(t, e.PGN(), before)

	_, err = e.Insert(e4, "c5", "2-0")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	testutil.AssertEqual(t, e.PGN(), before)

	_, err = e.Insert(&pgn.Move{Text: "h4"}, "c5", "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	testutil.AssertEqual(t, e.PGN(), before)
}

func TestInsert_NotationModes(t *testing.T) {
	const game = "1. e4 e5 2. Nf3 Nc6 3. Bc4 Nf6 *"

	// The default engine accepts permissive spellings.
	e := mustEngine(t, game)
	last, err := e.Last()
	testutil.AssertNoError(t, err)
	m, err := e.Insert(last, "0-0", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Text, "O-O")

	// A strict-only engine rejects them but still takes standard notation.
	e = New(testutil.MustParseGame(t, game), WithStrictOnly())
	last, err = e.Last()
	testutil.AssertNoError(t, err)
	_, err = e.Insert(last, "0-0", "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	testutil.AssertEqual(t, e.PlyCount(), 6)

	m, err = e.Insert(last, "O-O", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Text, "O-O")
}

func TestInsert_CanonicalizesMoveText(t *testing.T) {
	e := mustEngine(t, "1. f3 e5 2. g4 *")
	last, err := e.Last()
	testutil.AssertNoError(t, err)

	m, err := e.Insert(last, "Qh4", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Text, "Qh4#", "stored text is the rules engine's canonical form")
}

func TestInsert_NumberFromPosition(t *testing.T) {
	e := mustEngine(t, `[FEN "k7/8/8/8/8/8/8/K6R w - - 0 42"]

1. Rh8+ *
`)
	rh8 := findMove(t, e, "Rh8+", 1)

	m, err := e.Insert(rh8, "Kb7", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Number, 42, "move number comes from the position, not the source token")
}

func TestInsertAt(t *testing.T) {
	e := mustEngine(t, "1. e4 e5 *")

	m, err := e.InsertAt(2, "Nf3", "")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, e.OrderOf(m), 3)

	_, err = e.InsertAt(99, "Nc6", "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
}

func TestDelete_TruncatesContainerTail(t *testing.T) {
	e := mustEngine(t, variationGame)
	nc6 := findMove(t, e, "Nc6", 1)
	bb5 := findMove(t, e, "Bb5", 1)

	err := e.Delete(e.OrderOf(nc6))
	testutil.AssertNoError(t, err)

	// 2... Nc6 and everything after it in the mainline are gone; the
	// variation attached to 2. Nf3 is untouched.
	testutil.AssertEqual(t, orderTexts(e), []string{"e4", "e5", "Nf3", "f4", "exf4", "Nf3"})
	testutil.AssertEqual(t, e.OrderOf(nc6), 0)
	testutil.AssertEqual(t, e.OrderOf(bb5), 0)

	last, err := e.Last()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, last.Text, "Nf3")
	testutil.AssertFalse(t, e.HasNext(last))
	_, err = e.FENOf(nc6)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
}

func TestDelete_InsideVariation(t *testing.T) {
	e := mustEngine(t, variationGame)
	exf4 := findMove(t, e, "exf4", 1)

	err := e.Delete(e.OrderOf(exf4))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, orderTexts(e), []string{"e4", "e5", "Nf3", "f4", "Nc6", "Bb5"})

	// The shortened variation still climbs out to the anchor's successor.
	next, err := e.Next(findMove(t, e, "f4", 1))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, next.Text, "Nc6")
}

func TestDelete_FirstMoveEmptiesGame(t *testing.T) {
	e := mustEngine(t, "1. e4 e5 *")

	err := e.Delete(1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, e.PlyCount(), 0)

	_, err = e.First()
	testutil.AssertErrorIs(t, err, errors.ErrEmptyGame)
	testutil.AssertEqual(t, e.PGN(), "*\n")
}

func TestDelete_ReleasesRemovedMoves(t *testing.T) {
	e := mustEngine(t, "1. e4 e5 2. Nf3 *")
	before := e.Game().Moves

	testutil.AssertNoError(t, e.Delete(2))
	testutil.AssertEqual(t, len(e.Game().Moves), 1)

	// The shared backing array no longer references the removed moves.
	testutil.AssertNotNil(t, before[0])
	testutil.AssertNil(t, before[1])
	testutil.AssertNil(t, before[2])
}

func TestDelete_InvalidPosition(t *testing.T) {
	e := mustEngine(t, "1. e4 *")

	err := e.Delete(0)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	err = e.Delete(5)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	err = e.DeleteMove(nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
	err = e.DeleteMove(&pgn.Move{Text: "d4"})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
}

// Rendering the tree and re-reading the rendered text reproduces the same
// depth-first order, before and after mutation.
func TestRender_RoundTrip(t *testing.T) {
	e := mustEngine(t, variationGame)

	e5 := findMove(t, e, "e5", 1)
	_, err := e.Insert(e5, "Nc3", "")
	testutil.AssertNoError(t, err)
	err = e.Delete(e.OrderOf(findMove(t, e, "Bb5", 1)))
	testutil.AssertNoError(t, err)

	reread := New(testutil.MustParseGame(t, e.PGN()))
	testutil.AssertEqual(t, orderTexts(reread), orderTexts(e))
	testutil.AssertEqual(t, reread.PlyCount(), e.PlyCount())
	testutil.AssertEqual(t, reread.InvalidMoveCount(), 0)
}
