package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
)

// Apply places pl for p and returns the resulting board. The caller must
// already have a nil result from Validate for these exact arguments; Apply
// does not check legality again. It only asserts the board invariant, and
// panics with ErrFatalInvariantBroken if it does not hold.
func Apply(b board.BitBoard, p board.Player, pl move.Placement) board.BitBoard {
	next := b
	bit := uint8(1) << uint(pl.Piece)
	if p == board.Player1 {
		next.Player1 |= pl.Mask
		next.P1Pieces &^= bit
	} else {
		next.Player2 |= pl.Mask
		next.P2Pieces &^= bit
	}
	if !next.Verify() {
		log.Error().Stringer("before", b).Stringer("after", next).
			Stringer("placement", pl).Msg("invariant-broken")
		panic(fmt.Errorf("%w: applying %v for %v", ErrFatalInvariantBroken, pl, p))
	}
	log.Debug().Stringer("player", p).Int("piece", pl.Piece).
		Uint64("fingerprint", next.Fingerprint()).Msg("applied placement")
	return next
}

// Play validates and then applies a placement. On error the original
// board is returned unchanged.
func Play(b board.BitBoard, p board.Player, pl move.Placement, firstMove bool) (board.BitBoard, error) {
	if err := Validate(b, p, pl, firstMove); err != nil {
		return b, err
	}
	return Apply(b, p, pl), nil
}
