// Package piece is the immutable catalog of the eight polyomino shapes and
// their four orientations.
package piece

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/domino14/blokus/board"
)

// NumOrientations is the number of orientations of every piece. Orientation
// n is the shape rotated counterclockwise by 90*n degrees.
const NumOrientations = 4

var (
	ErrInvalidPieceID     = errors.New("invalid piece id")
	ErrInvalidOrientation = errors.New("invalid orientation")
)

// ID identifies a piece type. It is also the piece's bit index in a
// player's inventory.
type ID int

const (
	Single ID = iota
	Domino
	Staircase
	Line
	T
	L
	Squiggly
	Square
)

var names = [board.NumPieceTypes]string{
	"single", "domino", "staircase", "line", "T", "L", "squiggly", "square",
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("piece(%d)", int(id))
	}
	return names[id]
}

func (id ID) Valid() bool {
	return id >= 0 && id < board.NumPieceTypes
}

// InventoryBit is the bit that marks this piece as unused.
func (id ID) InventoryBit() uint8 {
	return 1 << uint(id)
}

// The shapes placed in the lower-left corner of the board. Row y of a
// shape lives in bits 8y..8y+7.
var rawShapes = [board.NumPieceTypes][NumOrientations]uint64{
	{0b1, 0b1, 0b1, 0b1},
	{0b11, 0x101, 0b11, 0x101},
	{0x103, 0x203, 0x302, 0x301},
	{0b111, 0x10101, 0b111, 0x10101},
	{0x207, 0x20302, 0x702, 0x20602},
	{0x107, 0x20203, 0x704, 0x30101},
	{0x603, 0x10302, 0x603, 0x10302},
	{0x303, 0x303, 0x303, 0x303},
}

// Width and height of each piece in orientation 0. Odd orientations swap
// the two.
var baseDimensions = [board.NumPieceTypes][2]int{
	{1, 1},
	{2, 1},
	{2, 2},
	{3, 1},
	{3, 2},
	{3, 2},
	{3, 2},
	{2, 2},
}

var areas = [board.NumPieceTypes]int{1, 2, 3, 3, 4, 4, 4, 4}

type orientation struct {
	mask   uint64
	width  int
	height int
}

// catalog is built once in init and never written afterwards, so it can
// be read from any number of goroutines.
var catalog [board.NumPieceTypes][NumOrientations]orientation

func init() {
	for id := range rawShapes {
		for o, raw := range rawShapes[id] {
			mask, w, h := normalize(raw)
			bw, bh := baseDimensions[id][0], baseDimensions[id][1]
			if o%2 == 1 {
				bw, bh = bh, bw
			}
			if w != bw || h != bh {
				panic(fmt.Sprintf("piece %d orientation %d: bounding box %dx%d, expected %dx%d",
					id, o, w, h, bw, bh))
			}
			if bits.OnesCount64(mask) != areas[id] {
				panic(fmt.Sprintf("piece %d orientation %d: area mismatch", id, o))
			}
			catalog[id][o] = orientation{mask: mask, width: w, height: h}
		}
	}
}

// normalize slides a shape down and left until its bounding box starts at
// tile (0, 0), and measures the box.
func normalize(m uint64) (uint64, int, int) {
	for m&0xFF == 0 {
		m >>= board.Dim
	}
	for m&board.FileA == 0 {
		m >>= 1
	}
	w, h := 0, 0
	for x := 0; x < board.Dim; x++ {
		if m&(board.FileA<<uint(x)) != 0 {
			w = x + 1
		}
	}
	for y := 0; y < board.Dim; y++ {
		if m&(uint64(0xFF)<<(uint(y)*board.Dim)) != 0 {
			h = y + 1
		}
	}
	return m, w, h
}

func check(id ID, o int) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPieceID, int(id))
	}
	if o < 0 || o >= NumOrientations {
		return fmt.Errorf("%w: %d", ErrInvalidOrientation, o)
	}
	return nil
}

// Geometry returns the anchored mask of a piece in an orientation, along
// with the width and height of its bounding box.
func Geometry(id ID, o int) (mask uint64, width, height int, err error) {
	if err = check(id, o); err != nil {
		return 0, 0, 0, err
	}
	g := catalog[id][o]
	return g.mask, g.width, g.height, nil
}

// Area is the number of tiles in a piece, which is what it scores. It
// returns 0 for an invalid id.
func Area(id ID) int {
	if !id.Valid() {
		return 0
	}
	return areas[id]
}

// All returns every piece id in inventory order.
func All() []ID {
	ids := make([]ID, board.NumPieceTypes)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
