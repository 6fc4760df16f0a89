package game

import (
	"errors"
	"fmt"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
)

// Reasons a placement is illegal. They are carried by a *MoveError and
// can be matched with errors.Is.
var (
	ErrOverlap                = errors.New("tile already occupied")
	ErrPieceAlreadyUsed       = errors.New("piece already used")
	ErrWrongFirstMoveCorner   = errors.New("first move must cover a corner tile")
	ErrEdgeAdjacencyViolation = errors.New("piece touches the edge of a friendly piece")
	ErrNoCornerTouch          = errors.New("piece does not touch the corner of a friendly piece")
)

// ErrFatalInvariantBroken means a board ended up with a tile owned by both
// players. It is a programming error, never a user error.
var ErrFatalInvariantBroken = errors.New("board invariant broken: players overlap")

// A MoveError is a rejected placement. The board it was checked against
// is left untouched.
type MoveError struct {
	Reason    error
	Player    board.Player
	Placement move.Placement
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("illegal move by %v %v: %v", e.Player, e.Placement, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Reason
}
