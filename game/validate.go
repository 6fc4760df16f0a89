// Package game implements the rules of 8x8 Blokus: checking a placement
// against a board, applying it, and deciding when the game is over.
package game

import (
	"fmt"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
	"github.com/domino14/blokus/piece"
)

// IsFirstMove returns true if p has not placed any tiles yet.
func IsFirstMove(b board.BitBoard, p board.Player) bool {
	return b.Occupancy(p) == 0
}

// Validate checks whether p may make placement pl on b. It returns nil if
// the move is legal. Checks run in a fixed order and stop at the first
// failure: bounds, overlap, inventory, then either the first-move corner
// rule or the corner-touch rule. Validate never modifies anything.
func Validate(b board.BitBoard, p board.Player, pl move.Placement, firstMove bool) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", board.ErrInvalidPlayer, uint8(p))
	}
	if err := checkBounds(pl); err != nil {
		return err
	}
	if pl.Mask&b.Occupied() != 0 {
		return &MoveError{Reason: ErrOverlap, Player: p, Placement: pl}
	}
	if !b.HasPiece(p, pl.Piece) {
		return &MoveError{Reason: ErrPieceAlreadyUsed, Player: p, Placement: pl}
	}
	if firstMove {
		if pl.Mask&board.CornerTiles == 0 {
			return &MoveError{Reason: ErrWrongFirstMoveCorner, Player: p, Placement: pl}
		}
		return nil
	}
	own := b.Occupancy(p)
	if board.EdgeNeighbors(pl.Mask)&own != 0 {
		return &MoveError{Reason: ErrEdgeAdjacencyViolation, Player: p, Placement: pl}
	}
	if board.DiagonalNeighbors(own)&pl.Mask == 0 {
		return &MoveError{Reason: ErrNoCornerTouch, Player: p, Placement: pl}
	}
	return nil
}

// checkBounds re-derives the placement from the catalog. A placement that
// was not produced by piece.Translate, or that has been tampered with,
// does not match and is treated as off the board.
func checkBounds(pl move.Placement) error {
	want, err := piece.Translate(piece.ID(pl.Piece), pl.Orientation, pl.X, pl.Y)
	if err != nil {
		return err
	}
	if pl.Mask == 0 || pl.Mask != want.Mask {
		return fmt.Errorf("placement %v does not match its piece geometry: %w",
			pl, board.ErrOutOfBounds)
	}
	return nil
}
