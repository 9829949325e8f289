package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSuccessor(t *testing.T) {
	t.Run("rejects illegal moves without touching the state", func(t *testing.T) {
		initial := NewGameState()
		before := *initial

		next, err := initial.GetSuccessor(man(Player0, 32), move(23))

		require.ErrorIs(t, err, ErrInvalidMove)
		require.Nil(t, next)
		require.Equal(t, before, *initial, "State should not change")
	})

	t.Run("rejects an empty move", func(t *testing.T) {
		_, err := NewGameState().GetSuccessor(man(Player0, 32), nil)
		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("advances the turn after player 1 only", func(t *testing.T) {
		initial := NewGameState()

		afterWhite, err := initial.GetSuccessor(man(Player0, 32), move(28))
		require.NoError(t, err)
		require.Equal(t, 1, afterWhite.Turn)
		require.Equal(t, Player1, afterWhite.CurrentPlayer)

		afterBlack, err := afterWhite.GetSuccessor(man(Player1, 19), move(23))
		require.NoError(t, err)
		require.Equal(t, 2, afterBlack.Turn)
		require.Equal(t, Player0, afterBlack.CurrentPlayer)
	})

	t.Run("successor owns its board", func(t *testing.T) {
		initial := NewGameState()
		next, err := initial.GetSuccessor(man(Player0, 32), move(28))
		require.NoError(t, err)

		require.True(t, initial.Board.Occupied(sq(32)), "Parent board should keep the piece")
		require.False(t, initial.Board.Occupied(sq(28)))
		require.False(t, next.Board.Occupied(sq(32)))
		require.True(t, next.Board.Occupied(sq(28)))
	})

	t.Run("removes every captured piece", func(t *testing.T) {
		state := stateWith(Player0, man(Player0, 41), man(Player1, 37), man(Player1, 28), man(Player1, 3))

		next, err := state.GetSuccessor(man(Player0, 41), move(32, 23))

		require.NoError(t, err)
		require.Equal(t, []Piece{man(Player1, 3)}, next.Board.PiecesOf(Player1))
		require.Equal(t, []Piece{man(Player0, 23)}, next.Board.PiecesOf(Player0))
	})
}

func TestPromotion(t *testing.T) {
	t.Run("player 0 man is crowned on row 0", func(t *testing.T) {
		state := stateWith(Player0, man(Player0, 6), man(Player1, 50))
		next, err := state.GetSuccessor(man(Player0, 6), move(1))
		require.NoError(t, err)

		isKing, ok := next.Board.StatusAt(sq(1))
		require.True(t, ok)
		require.True(t, isKing)
	})

	t.Run("player 1 man is crowned on row 9", func(t *testing.T) {
		state := stateWith(Player1, man(Player1, 45), man(Player0, 1))
		next, err := state.GetSuccessor(man(Player1, 45), move(50))
		require.NoError(t, err)

		isKing, _ := next.Board.StatusAt(sq(50))
		require.True(t, isKing)
	})

	t.Run("man passing over row 0 mid-capture is not crowned", func(t *testing.T) {
		state := stateWith(Player0, man(Player0, 11), man(Player1, 7), man(Player1, 8), man(Player1, 50))
		next, err := state.GetSuccessor(man(Player0, 11), move(2, 13))
		require.NoError(t, err)

		isKing, _ := next.Board.StatusAt(sq(13))
		require.False(t, isKing)
	})

	t.Run("king reaching the back rank stays a king", func(t *testing.T) {
		state := stateWith(Player0, king(Player0, 10), man(Player1, 46))
		next, err := state.GetSuccessor(king(Player0, 10), move(5))
		require.NoError(t, err)

		require.Equal(t, []Piece{king(Player0, 5)}, next.Board.PiecesOf(Player0))
	})
}

func TestTieRequestCarry(t *testing.T) {
	t.Run("request raised by the mover is kept for the opponent to answer", func(t *testing.T) {
		state := NewGameState().WithTieRequest(TieRequestBy(Player0))
		next, err := state.GetSuccessor(man(Player0, 32), move(28))
		require.NoError(t, err)
		require.Equal(t, TieRequestPlayer0, next.TieRequest)
	})

	t.Run("unanswered opponent request expires", func(t *testing.T) {
		state := NewGameState().WithTieRequest(TieRequestBy(Player1))
		next, err := state.GetSuccessor(man(Player0, 32), move(28))
		require.NoError(t, err)
		require.Equal(t, NoTieRequest, next.TieRequest)
	})

	t.Run("WithTieRequest copies", func(t *testing.T) {
		state := NewGameState()
		_ = state.WithTieRequest(InvalidTieRequest)
		require.Equal(t, NoTieRequest, state.TieRequest)
	})
}

func TestHash(t *testing.T) {
	a := NewGameState()
	b := NewGameState()
	require.Equal(t, a.Hash(), b.Hash())

	c := NewGameStateFrom(NewBoard(), 1, Player1)
	require.NotEqual(t, a.Hash(), c.Hash(), "Player to move is part of the hash")

	d := NewGameStateFrom(NewBoard(), 7, Player0).WithTieRequest(TieRequestPlayer1)
	require.Equal(t, a.Hash(), d.Hash(), "Turn and tie request are not part of the hash")

	board := NewBoard()
	board.Remove(sq(31))
	require.NotEqual(t, a.Hash(), NewGameStateFrom(board, 1, Player0).Hash())
}

func TestHistoryCountsByHash(t *testing.T) {
	h := NewHistory(NewGameState())
	h.record(NewGameStateFrom(NewBoard(), 12, Player0).WithTieRequest(TieRequestPlayer0))
	require.Equal(t, 2, h.LastOccurrence(), "Same player and board count as a repetition")

	h.record(NewGameStateFrom(NewBoard(), 12, Player1))
	require.Equal(t, 1, h.LastOccurrence())

	clone := h.Clone()
	clone.record(NewGameState())
	require.Equal(t, 3, clone.LastOccurrence())
	require.Equal(t, 1, h.LastOccurrence(), "Clone has its own table")
}
