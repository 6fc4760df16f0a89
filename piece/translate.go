package piece

import (
	"fmt"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
)

// TranslateMask moves an anchored mask so that its lower-left corner lands
// on tile (x, y). The bounding box is checked before anything is shifted:
// a shift that would push a tile past the right edge would otherwise wrap
// into the next row.
func TranslateMask(mask uint64, x, y, width, height int) (uint64, error) {
	if x < 0 || y < 0 || x+width > board.Dim || y+height > board.Dim {
		return 0, fmt.Errorf("%dx%d piece at (%d, %d): %w", width, height, x, y, board.ErrOutOfBounds)
	}
	return mask << (uint(y)*board.Dim + uint(x)), nil
}

// Translate resolves a piece in an orientation at offset (x, y) into a
// Placement.
func Translate(id ID, o, x, y int) (move.Placement, error) {
	mask, w, h, err := Geometry(id, o)
	if err != nil {
		return move.Placement{}, err
	}
	tm, err := TranslateMask(mask, x, y, w, h)
	if err != nil {
		return move.Placement{}, err
	}
	return move.Placement{
		Piece:       int(id),
		Orientation: o,
		X:           x,
		Y:           y,
		Mask:        tm,
	}, nil
}
