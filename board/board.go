// Package board holds the packed state of an 8x8 Blokus game: one occupancy
// bitboard per player plus a byte-sized piece inventory per player.
package board

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	// Dim is the width and height of the board.
	Dim = 8
	// NumTiles is the number of tiles on the board, one bit each.
	NumTiles = Dim * Dim
	// NumPieceTypes is the number of piece types each player owns.
	NumPieceTypes = 8
	// FullInventory has a bit set for every piece type.
	FullInventory uint8 = 0xFF

	// CornerTiles has the four corner tiles set: indices 0, 7, 56 and 63.
	CornerTiles uint64 = 0x8100000000000081
)

var ErrOutOfBounds = errors.New("coordinates out of bounds")
var ErrInvalidPlayer = errors.New("invalid player")

// Player is either Player1 or Player2.
type Player uint8

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return fmt.Sprintf("player(%d)", uint8(p))
}

// Valid returns true for Player1 and Player2.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// TileState is the content of a single tile.
type TileState uint8

const (
	Empty TileState = iota
	Player1Tile
	Player2Tile
)

func (t TileState) String() string {
	switch t {
	case Player1Tile:
		return "1"
	case Player2Tile:
		return "2"
	}
	return " "
}

// A BitBoard is the whole state of a game. Bit y*8+x of an occupancy mask
// stands for tile (x, y); bit i of an inventory stands for piece type i and
// is set while that piece is still unused.
type BitBoard struct {
	Player1 uint64
	Player2 uint64

	P1Pieces uint8
	P2Pieces uint8
}

// New creates an empty board where both players hold every piece.
func New() BitBoard {
	return BitBoard{P1Pieces: FullInventory, P2Pieces: FullInventory}
}

// CoordsToMask converts coordinates to a mask with only that tile set.
// It does not check bounds; see InBounds.
func CoordsToMask(x, y int) uint64 {
	return uint64(1) << (uint(y)*Dim + uint(x))
}

// InBounds returns true if (x, y) addresses a tile on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Dim && y >= 0 && y < Dim
}

// Verify checks the structural invariant: no tile is claimed by both
// players. Inventories are not checked.
func (b BitBoard) Verify() bool {
	return b.Player1&b.Player2 == 0
}

// Tile returns the state of tile (x, y).
func (b BitBoard) Tile(x, y int) (TileState, error) {
	if !InBounds(x, y) {
		return Empty, fmt.Errorf("tile (%d, %d): %w", x, y, ErrOutOfBounds)
	}
	m := CoordsToMask(x, y)
	switch {
	case b.Player1&m != 0:
		return Player1Tile, nil
	case b.Player2&m != 0:
		return Player2Tile, nil
	}
	return Empty, nil
}

// Occupied returns the tiles claimed by either player.
func (b BitBoard) Occupied() uint64 {
	return b.Player1 | b.Player2
}

// Occupancy returns the tiles claimed by p.
func (b BitBoard) Occupancy(p Player) uint64 {
	if p == Player1 {
		return b.Player1
	}
	return b.Player2
}

// Inventory returns the unused-piece mask of p.
func (b BitBoard) Inventory(p Player) uint8 {
	if p == Player1 {
		return b.P1Pieces
	}
	return b.P2Pieces
}

// HasPiece returns true if p has not yet placed piece type id.
func (b BitBoard) HasPiece(p Player, id int) bool {
	if id < 0 || id >= NumPieceTypes {
		return false
	}
	return b.Inventory(p)&(1<<uint(id)) != 0
}

// Area is the number of tiles covered by p. This is the player's score.
func (b BitBoard) Area(p Player) int {
	return bits.OnesCount64(b.Occupancy(p))
}

// Flipped returns the board with the two players swapped, so that a
// caller can always look at the position from Player1's point of view.
func (b BitBoard) Flipped() BitBoard {
	return BitBoard{
		Player1:  b.Player2,
		Player2:  b.Player1,
		P1Pieces: b.P2Pieces,
		P2Pieces: b.P1Pieces,
	}
}

// String provides a string just for debugging purposes.
func (b BitBoard) String() string {
	return fmt.Sprintf("<p1: %#016x p2: %#016x inv1: %08b inv2: %08b>",
		b.Player1, b.Player2, b.P1Pieces, b.P2Pieces)
}
