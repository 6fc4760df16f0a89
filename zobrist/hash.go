package zobrist

import (
	"math/bits"

	"lukechampine.com/frand"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a blokus position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	player2ToMove uint64

	// posTable[tile][player-1]
	posTable [board.NumTiles][2]uint64
	// usedTable[player-1][piece] is xored in once a piece leaves the
	// inventory.
	usedTable [2][board.NumPieceTypes]uint64
}

func (z *Zobrist) Initialize() {
	for i := 0; i < board.NumTiles; i++ {
		for j := 0; j < 2; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < board.NumPieceTypes; j++ {
			z.usedTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	z.player2ToMove = frand.Uint64n(bignum) + 1
}

func (z *Zobrist) hashTiles(key, tiles uint64, p board.Player) uint64 {
	for tiles != 0 {
		idx := bits.TrailingZeros64(tiles)
		key ^= z.posTable[idx][p-1]
		tiles &= tiles - 1
	}
	return key
}

func (z *Zobrist) Hash(b board.BitBoard, toMove board.Player) uint64 {
	key := uint64(0)
	key = z.hashTiles(key, b.Player1, board.Player1)
	key = z.hashTiles(key, b.Player2, board.Player2)
	for _, p := range []board.Player{board.Player1, board.Player2} {
		inv := b.Inventory(p)
		for i := 0; i < board.NumPieceTypes; i++ {
			if inv&(1<<uint(i)) == 0 {
				key ^= z.usedTable[p-1][i]
			}
		}
	}
	if toMove == board.Player2 {
		key ^= z.player2ToMove
	}
	return key
}

// AddPlacement updates key for p making placement pl. The turn always
// flips, so the result equals Hash of the applied board with the
// opponent to move.
func (z *Zobrist) AddPlacement(key uint64, p board.Player, pl move.Placement) uint64 {
	key = z.hashTiles(key, pl.Mask, p)
	key ^= z.usedTable[p-1][pl.Piece]
	key ^= z.player2ToMove
	return key
}

// AddPass only flips the side to move.
func (z *Zobrist) AddPass(key uint64) uint64 {
	return key ^ z.player2ToMove
}
