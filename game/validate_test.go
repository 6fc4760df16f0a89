package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
	"github.com/domino14/blokus/piece"
)

func place(t *testing.T, id piece.ID, o, x, y int) move.Placement {
	t.Helper()
	pl, err := piece.Translate(id, o, x, y)
	if err != nil {
		t.Fatalf("translate %v/%d at (%d, %d): %v", id, o, x, y, err)
	}
	return pl
}

func TestFirstMoveCorner(t *testing.T) {
	is := is.New(t)
	b := board.New()

	is.NoErr(Validate(b, board.Player1, place(t, piece.Single, 0, 0, 0), true))
	is.NoErr(Validate(b, board.Player1, place(t, piece.Single, 0, 7, 7), true))
	is.NoErr(Validate(b, board.Player2, place(t, piece.Line, 1, 7, 0), true))

	err := Validate(b, board.Player1, place(t, piece.Single, 0, 1, 1), true)
	is.True(errors.Is(err, ErrWrongFirstMoveCorner))
	err = Validate(b, board.Player1, place(t, piece.Square, 0, 3, 3), true)
	is.True(errors.Is(err, ErrWrongFirstMoveCorner))
}

func TestEdgeAdjacency(t *testing.T) {
	is := is.New(t)
	b := board.New()
	b.Player1 = board.CoordsToMask(0, 0)

	err := Validate(b, board.Player1, place(t, piece.Single, 0, 1, 0), false)
	is.True(errors.Is(err, ErrEdgeAdjacencyViolation))
	err = Validate(b, board.Player1, place(t, piece.Single, 0, 0, 1), false)
	is.True(errors.Is(err, ErrEdgeAdjacencyViolation))

	// Corner contact only.
	is.NoErr(Validate(b, board.Player1, place(t, piece.Single, 0, 1, 1), false))
	is.NoErr(Validate(b, board.Player1, place(t, piece.Square, 0, 1, 1), false))

	// Touching a corner but also an edge is still illegal.
	err = Validate(b, board.Player1, place(t, piece.L, 1, 1, 0), false)
	is.True(errors.Is(err, ErrEdgeAdjacencyViolation))
}

func TestNoCornerTouch(t *testing.T) {
	is := is.New(t)
	b := board.New()
	b.Player1 = board.CoordsToMask(0, 0)
	b.Player2 = board.CoordsToMask(4, 4)

	err := Validate(b, board.Player1, place(t, piece.Single, 0, 3, 3), false)
	is.True(errors.Is(err, ErrNoCornerTouch))

	// Touching the opponent's corner doesn't help.
	err = Validate(b, board.Player1, place(t, piece.Single, 0, 5, 5), false)
	is.True(errors.Is(err, ErrNoCornerTouch))

	// Player 2 plays off their own tile.
	is.NoErr(Validate(b, board.Player2, place(t, piece.Single, 0, 5, 5), false))
	err = Validate(b, board.Player2, place(t, piece.Single, 0, 5, 4), false)
	is.True(errors.Is(err, ErrEdgeAdjacencyViolation))
}

func TestPieceAlreadyUsed(t *testing.T) {
	is := is.New(t)
	b := board.New()

	b, err := Play(b, board.Player1, place(t, piece.Single, 0, 0, 0), true)
	is.NoErr(err)

	first := IsFirstMove(b, board.Player1)
	is.True(!first)
	err = Validate(b, board.Player1, place(t, piece.Single, 0, 1, 1), first)
	is.True(errors.Is(err, ErrPieceAlreadyUsed))

	// The other player still has theirs.
	is.NoErr(Validate(b, board.Player2, place(t, piece.Single, 0, 7, 7), true))
}

func TestOverlapRegardlessOfOwner(t *testing.T) {
	is := is.New(t)
	b := board.New()
	b.Player1 = board.CoordsToMask(0, 0)
	b.Player2 = board.CoordsToMask(7, 7)

	err := Validate(b, board.Player1, place(t, piece.Single, 0, 7, 7), true)
	is.True(errors.Is(err, ErrOverlap))
	err = Validate(b, board.Player2, place(t, piece.Single, 0, 0, 0), false)
	is.True(errors.Is(err, ErrOverlap))
	err = Validate(b, board.Player1, place(t, piece.Domino, 0, 0, 0), false)
	is.True(errors.Is(err, ErrOverlap))
}

func TestOverlapCheckedBeforeInventory(t *testing.T) {
	is := is.New(t)
	b := board.BitBoard{Player2: board.CoordsToMask(0, 0)}
	err := Validate(b, board.Player1, place(t, piece.Single, 0, 0, 0), true)
	is.True(errors.Is(err, ErrOverlap))
}

func TestValidateIdempotent(t *testing.T) {
	is := is.New(t)
	b := board.New()
	b.Player1 = board.CoordsToMask(0, 0)
	before := b

	for _, pl := range []move.Placement{
		place(t, piece.Single, 0, 1, 0),
		place(t, piece.Single, 0, 1, 1),
		place(t, piece.Single, 0, 4, 4),
	} {
		e1 := Validate(b, board.Player1, pl, false)
		e2 := Validate(b, board.Player1, pl, false)
		is.Equal(e1 == nil, e2 == nil)
		if e1 != nil {
			is.Equal(e1.Error(), e2.Error())
		}
		is.Equal(b, before)
	}
}

func TestDefensiveBounds(t *testing.T) {
	is := is.New(t)
	b := board.New()

	// A line pushed past the right edge by a raw shift wraps into the next
	// row. Validation must not accept it.
	wrapped := move.Placement{Piece: int(piece.Line), Orientation: 0, X: 6, Y: 0, Mask: 0b111 << 6}
	err := Validate(b, board.Player1, wrapped, true)
	is.True(errors.Is(err, board.ErrOutOfBounds))

	// Coordinates fine, mask doesn't match the piece.
	tampered := place(t, piece.Single, 0, 0, 0)
	tampered.Mask |= board.CoordsToMask(1, 0)
	err = Validate(b, board.Player1, tampered, true)
	is.True(errors.Is(err, board.ErrOutOfBounds))

	empty := place(t, piece.Single, 0, 0, 0)
	empty.Mask = 0
	err = Validate(b, board.Player1, empty, true)
	is.True(errors.Is(err, board.ErrOutOfBounds))

	err = Validate(b, board.Player1, move.Placement{Piece: 8, Mask: 1}, true)
	is.True(errors.Is(err, piece.ErrInvalidPieceID))
	err = Validate(b, board.Player1, move.Placement{Piece: 0, Orientation: 5, Mask: 1}, true)
	is.True(errors.Is(err, piece.ErrInvalidOrientation))
}

func TestInvalidPlayer(t *testing.T) {
	is := is.New(t)
	err := Validate(board.New(), board.Player(3), place(t, piece.Single, 0, 0, 0), true)
	is.True(errors.Is(err, board.ErrInvalidPlayer))
}

func TestMoveErrorDetails(t *testing.T) {
	is := is.New(t)
	b := board.New()
	pl := place(t, piece.Single, 0, 1, 1)
	err := Validate(b, board.Player2, pl, true)

	var merr *MoveError
	is.True(errors.As(err, &merr))
	is.Equal(merr.Reason, ErrWrongFirstMoveCorner)
	is.Equal(merr.Player, board.Player2)
	is.Equal(merr.Placement, pl)
}
