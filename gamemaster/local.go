package gamemaster

import (
	"errors"
	"fmt"

	"draughts/engine"
	"draughts/game"
	"draughts/meta"

	"github.com/rs/zerolog/log"
)

// UpdateGetter returns the next pending update without blocking. Both values are
// nil when nothing new has been played or the game is over and drained.
type UpdateGetter func() (*game.HistoryMove, *game.GameState)

type Session interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Action) error
}

type update struct {
	move  game.HistoryMove
	state *game.GameState
}

// localSession drives a single match one action at a time, for callers such as a
// human front end that submit actions as they come. Unlike engine.Run, a rejected
// action is reported and the same player may try again.
type localSession struct {
	state          *game.GameState
	history        *game.History
	tieRequestTurn int
	updateCh       chan update
	gameOver       bool
	outcome        engine.Outcome
}

var _ Session = (*localSession)(nil)

func NewLocalSession() *localSession {
	return &localSession{tieRequestTurn: meta.TIE_REQUEST_TURN}
}

func (s *localSession) Init() (*game.GameState, UpdateGetter) {
	s.state = game.NewGameState()
	s.history = game.NewHistory(s.state)
	s.gameOver = false
	s.outcome = engine.Outcome{Winner: game.NoWinner}
	// one slot per ply so Play never blocks on a caller that polls late
	s.updateCh = make(chan update, meta.MAX_PLIES+1)

	updateCh := s.updateCh
	return s.state.Copy(), func() (*game.HistoryMove, *game.GameState) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return nil, nil
			}
			move := u.move
			return &move, u.state.Copy()
		default:
			return nil, nil
		}
	}
}

func (s *localSession) Play(action game.Action) error {
	if s.state == nil {
		return fmt.Errorf("session not initialized")
	}
	if s.gameOver {
		return game.ErrGameOver
	}

	out, err := engine.Step(s.state, s.history, action, s.tieRequestTurn)
	if err != nil {
		log.Warn().Err(err).Msgf("rejected %s action from %s", action.Type, s.state.CurrentPlayer)
	}
	if errors.Is(err, game.ErrPrematureTieRequest) || errors.Is(err, game.ErrPrematureTieAcceptance) {
		s.state = s.state.WithTieRequest(game.InvalidTieRequest)
		return err
	}
	if err != nil {
		return err
	}

	s.state = out.State
	s.updateCh <- update{move: out.Move, state: s.state}

	if out.Over || s.history.Len() >= meta.MAX_PLIES {
		if !out.Over {
			out.Winner, out.Reason = game.NoWinner, engine.MaxPlies
		}
		s.gameOver = true
		s.outcome = out
		close(s.updateCh)
		log.Info().Msgf("session over after %d plies: winner %s (%s)", s.history.Len(), out.Winner, out.Reason)
	}
	return nil
}

// State returns a copy of the current state.
func (s *localSession) State() *game.GameState {
	return s.state.Copy()
}

func (s *localSession) History() *game.History {
	return s.history.Clone()
}

// Result reports whether the game is over, and if so who won and why.
func (s *localSession) Result() (over bool, winner game.Player, reason engine.Reason) {
	return s.gameOver, s.outcome.Winner, s.outcome.Reason
}
