package game

import (
	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
	"github.com/domino14/blokus/piece"
)

type GameStatus uint8

const (
	Ongoing GameStatus = iota
	Draw
	Player1Wins
	Player2Wins
)

func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Draw:
		return "draw"
	case Player1Wins:
		return "player1 wins"
	case Player2Wins:
		return "player2 wins"
	}
	return "unknown"
}

// Turn is whose move the game is waiting for.
type Turn uint8

const (
	AwaitingPlayer1 Turn = iota
	AwaitingPlayer2
	GameOver
)

func (t Turn) String() string {
	switch t {
	case AwaitingPlayer1:
		return "awaiting player1"
	case AwaitingPlayer2:
		return "awaiting player2"
	}
	return "game over"
}

func awaiting(p board.Player) Turn {
	if p == board.Player1 {
		return AwaitingPlayer1
	}
	return AwaitingPlayer2
}

// forEachPlacement calls fn with every legal placement for p, in piece,
// orientation, y, x order, until fn returns false. It is the plain
// 8 pieces x 4 orientations x 64 offsets search.
func forEachPlacement(b board.BitBoard, p board.Player, fn func(move.Placement) bool) {
	if b.Inventory(p) == 0 {
		return
	}
	first := IsFirstMove(b, p)
	for _, id := range piece.All() {
		if !forEachPiecePlacement(b, p, id, first, fn) {
			return
		}
	}
}

// forEachPiecePlacement is forEachPlacement for a single piece. It returns
// false if fn stopped the search.
func forEachPiecePlacement(b board.BitBoard, p board.Player, id piece.ID, first bool,
	fn func(move.Placement) bool) bool {

	if !b.HasPiece(p, int(id)) {
		return true
	}
	for o := 0; o < piece.NumOrientations; o++ {
		for y := 0; y < board.Dim; y++ {
			for x := 0; x < board.Dim; x++ {
				pl, err := piece.Translate(id, o, x, y)
				if err != nil {
					// Wider pieces run off the right edge first; the rest
					// of this row can't fit either.
					break
				}
				if Validate(b, p, pl, first) != nil {
					continue
				}
				if !fn(pl) {
					return false
				}
			}
		}
	}
	return true
}

// PiecePlacements returns every legal placement of piece id for p.
func PiecePlacements(b board.BitBoard, p board.Player, id piece.ID) []move.Placement {
	var pls []move.Placement
	forEachPiecePlacement(b, p, id, IsFirstMove(b, p), func(pl move.Placement) bool {
		pls = append(pls, pl)
		return true
	})
	return pls
}

// LegalPlacements returns every legal placement for p. Orientations with
// identical tiles, like those of the square, are listed separately.
func LegalPlacements(b board.BitBoard, p board.Player) []move.Placement {
	var pls []move.Placement
	forEachPlacement(b, p, func(pl move.Placement) bool {
		pls = append(pls, pl)
		return true
	})
	return pls
}

// HasLegalPlacement returns true if p can place any unused piece.
func HasLegalPlacement(b board.BitBoard, p board.Player) bool {
	found := false
	forEachPlacement(b, p, func(move.Placement) bool {
		found = true
		return false
	})
	return found
}

// Status returns Ongoing while either player can still move. Otherwise the
// player covering more tiles wins.
func Status(b board.BitBoard) GameStatus {
	if HasLegalPlacement(b, board.Player1) || HasLegalPlacement(b, board.Player2) {
		return Ongoing
	}
	a1, a2 := b.Area(board.Player1), b.Area(board.Player2)
	switch {
	case a1 > a2:
		return Player1Wins
	case a2 > a1:
		return Player2Wins
	}
	return Draw
}

// NextTurn is the turn that follows a move or pass by mover. A player with
// no legal placement is skipped; when neither can move the game is over.
func NextTurn(b board.BitBoard, mover board.Player) Turn {
	opp := mover.Opponent()
	if HasLegalPlacement(b, opp) {
		return awaiting(opp)
	}
	if HasLegalPlacement(b, mover) {
		return awaiting(mover)
	}
	return GameOver
}
