package move

import (
	"fmt"
	"math/bits"

	"github.com/domino14/blokus/board"
)

// MoveType is a type of move; a piece placement or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypePass
)

// A Placement is a piece at a specific spot on the board: the piece id,
// its orientation, the offset of its bounding box, and the tiles it would
// cover. Build one with piece.Translate; a hand-built Placement is
// rejected by validation unless it agrees with the catalog.
type Placement struct {
	Piece       int
	Orientation int
	X, Y        int
	Mask        uint64
}

// Tiles is the number of tiles the placement covers.
func (p Placement) Tiles() int {
	return bits.OnesCount64(p.Mask)
}

func (p Placement) String() string {
	return fmt.Sprintf("<piece: %d orientation: %d at (%d, %d) mask: %#016x>",
		p.Piece, p.Orientation, p.X, p.Y, p.Mask)
}

// Move is a move made by a player. Passes have a zero Placement.
type Move struct {
	action    MoveType
	player    board.Player
	placement Placement
}

func NewPlacementMove(p board.Player, pl Placement) *Move {
	return &Move{action: MoveTypePlay, player: p, placement: pl}
}

func NewPassMove(p board.Player) *Move {
	return &Move{action: MoveTypePass, player: p}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Player() board.Player {
	return m.player
}

func (m *Move) Placement() Placement {
	return m.placement
}

// Score is what the move adds to the player's area.
func (m *Move) Score() int {
	if m.action != MoveTypePlay {
		return 0
	}
	return m.placement.Tiles()
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("<%p action: play player: %v %v score: %d>",
			m, m.player, m.placement, m.Score())
	case MoveTypePass:
		return fmt.Sprintf("<%p action: pass player: %v>", m, m.player)
	}
	return "<Unhandled move>"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("%d/%d@%d,%d", m.placement.Piece, m.placement.Orientation,
			m.placement.X, m.placement.Y)
	case MoveTypePass:
		return "(Pass)"
	}
	return "UNHANDLED"
}

// Equals compares two moves by content.
func (m *Move) Equals(o *Move) bool {
	return m.action == o.action && m.player == o.player && m.placement == o.placement
}
