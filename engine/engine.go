package engine

import (
	"fmt"

	"draughts/game"
)

// Reason explains how a match ended.
type Reason string

const (
	NoMoves     Reason = "no-moves"
	Resigned    Reason = "resigned"
	TieAccepted Reason = "tie-accepted"
	MaxPlies    Reason = "max-plies"
)

// drawReason maps a draw rule onto a Reason.
func drawReason(rule game.DrawRule) Reason {
	return Reason(rule.String())
}

// Outcome is the result of resolving one action.
type Outcome struct {
	State    *game.GameState  // state after the action; unchanged for resign and accepted ties
	Move     game.HistoryMove // entry appended to the history
	Over     bool
	Winner   game.Player // game.NoWinner on a draw or while the game goes on
	Reason   Reason
	Captured int // opponent pieces removed by the move
}

// Step resolves action for the player to move in state and appends it to history.
// Rejected actions return an error and leave both untouched.
func Step(state *game.GameState, history *game.History, action game.Action, tieRequestTurn int) (Outcome, error) {
	mover := state.CurrentPlayer

	switch action.Type {
	case game.ResignAction:
		move := game.ResignMove(mover)
		history.Add(nil, move, state)
		return Outcome{State: state, Move: move, Over: true, Winner: mover.Opponent(), Reason: Resigned}, nil

	case game.AcceptTieAction:
		if state.Turn < tieRequestTurn || !state.TieRequest.RaisedBy(mover.Opponent()) {
			return Outcome{}, game.ErrPrematureTieAcceptance
		}
		move := game.AcceptTieMove(mover)
		history.Add(nil, move, state)
		return Outcome{State: state, Move: move, Over: true, Winner: game.NoWinner, Reason: TieAccepted}, nil

	case game.PlayAction:
		if action.RequestTie && state.Turn < tieRequestTurn {
			return Outcome{}, game.ErrPrematureTieRequest
		}
		return play(state, history, action)
	}

	return Outcome{}, fmt.Errorf("unknown action type %d", action.Type)
}

func play(state *game.GameState, history *game.History, action game.Action) (Outcome, error) {
	mover := state.CurrentPlayer

	from := state
	if action.RequestTie {
		from = state.WithTieRequest(game.TieRequestBy(mover))
	}
	// GetSuccessor validates before touching anything
	next, err := from.GetSuccessor(action.Piece, action.Move)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", mover, err)
	}

	piece, _ := state.Board.PieceAt(action.Piece.Position)
	captured := game.CapturedBy(piece, action.Move, state.Board.PiecesOf(mover.Opponent()))

	move := game.PlayedMove(mover, piece, action.Move, len(captured) > 0, action.RequestTie)
	history.Add(next, move, state)

	outcome := Outcome{State: next, Move: move, Winner: game.NoWinner, Captured: len(captured)}
	if next.IsOpponentWinning() {
		outcome.Over = true
		outcome.Winner = mover
		outcome.Reason = NoMoves
	} else if rule := next.DrawRule(history); rule != game.NoDraw {
		outcome.Over = true
		outcome.Reason = drawReason(rule)
	}
	return outcome, nil
}
