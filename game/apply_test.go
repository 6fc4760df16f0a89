package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/blokus/board"
	"github.com/domino14/blokus/move"
	"github.com/domino14/blokus/piece"
)

func TestApply(t *testing.T) {
	b := board.New()
	pl := place(t, piece.L, 0, 0, 0)
	require.NoError(t, Validate(b, board.Player1, pl, true))

	next := Apply(b, board.Player1, pl)
	assert.Equal(t, pl.Mask, next.Player1)
	assert.Equal(t, uint64(0), next.Player2)
	assert.Equal(t, board.FullInventory&^piece.L.InventoryBit(), next.P1Pieces)
	assert.Equal(t, board.FullInventory, next.P2Pieces)
	assert.Equal(t, 4, next.Area(board.Player1))

	// The input is a value and stays as it was.
	assert.Equal(t, board.New(), b)

	pl2 := place(t, piece.Square, 0, 6, 6)
	require.NoError(t, Validate(next, board.Player2, pl2, true))
	after := Apply(next, board.Player2, pl2)
	assert.Equal(t, pl.Mask, after.Player1)
	assert.Equal(t, pl2.Mask, after.Player2)
	assert.Equal(t, board.FullInventory&^piece.Square.InventoryBit(), after.P2Pieces)
	assert.True(t, after.Verify())
}

func TestApplyBrokenInvariantPanics(t *testing.T) {
	b := board.New()
	b.Player2 = board.CoordsToMask(0, 0)
	pl := place(t, piece.Single, 0, 0, 0)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrFatalInvariantBroken))
	}()
	Apply(b, board.Player1, pl)
	t.Fatal("apply did not panic")
}

func TestPlayLeavesBoardOnError(t *testing.T) {
	b := board.New()
	b.Player1 = board.CoordsToMask(0, 0)
	before := b

	next, err := Play(b, board.Player1, place(t, piece.Single, 0, 1, 0), false)
	assert.ErrorIs(t, err, ErrEdgeAdjacencyViolation)
	assert.Equal(t, before, next)
	assert.Equal(t, before, b)
}

// Play a whole game, each player always taking the first legal placement,
// and check the invariant after every move.
func TestInvariantHoldsThroughGame(t *testing.T) {
	b := board.New()
	turn := AwaitingPlayer1
	moves := 0
	for turn != GameOver {
		p := board.Player1
		if turn == AwaitingPlayer2 {
			p = board.Player2
		}
		pls := LegalPlacements(b, p)
		require.NotEmpty(t, pls)
		var err error
		b, err = Play(b, p, pls[0], IsFirstMove(b, p))
		require.NoError(t, err)
		require.True(t, b.Verify())
		moves++
		turn = NextTurn(b, p)
	}
	assert.LessOrEqual(t, moves, 2*board.NumPieceTypes)
	assert.NotEqual(t, Ongoing, Status(b))
	assert.False(t, HasLegalPlacement(b, board.Player1))
	assert.False(t, HasLegalPlacement(b, board.Player2))
}

func TestPlayedMovesAreDisjoint(t *testing.T) {
	b := board.New()
	var played []move.Placement
	for _, p := range []board.Player{board.Player1, board.Player2, board.Player1, board.Player2} {
		pls := LegalPlacements(b, p)
		require.NotEmpty(t, pls)
		pl := pls[len(pls)-1]
		b = Apply(b, p, pl)
		played = append(played, pl)
	}
	for i := range played {
		for j := i + 1; j < len(played); j++ {
			assert.Zero(t, played[i].Mask&played[j].Mask)
		}
	}
}
