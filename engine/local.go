package engine

import (
	"fmt"
	"time"

	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/meta"
	"draughts/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Engine struct {
	ID      uuid.UUID
	State   *game.GameState
	History *game.History

	players        [2]player.Player
	maxPlies       int
	tieRequestTurn int
	collector      metrics.Collector
}

type Option func(*Engine)

func WithMaxPlies(plies int) Option {
	return func(e *Engine) {
		e.maxPlies = plies
	}
}

func WithTieRequestTurn(turn int) Option {
	return func(e *Engine) {
		e.tieRequestTurn = turn
	}
}

func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.ID = id
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// Result summarizes a finished match.
type Result struct {
	ID      uuid.UUID
	Winner  game.Player // game.NoWinner on a draw
	Reason  Reason
	Plies   int
	Final   *game.GameState
	History *game.History
	Game    metrics.GameMetric
	Moves   []metrics.PlyMetric
}

// LocalEngine sets up a match from the opening position. players[0] moves first.
func LocalEngine(players []player.Player, opts ...Option) *Engine {
	if len(players) != 2 {
		panic("a match needs exactly two players")
	}

	state := game.NewGameState()
	e := &Engine{
		ID:             uuid.New(),
		State:          state,
		History:        game.NewHistory(state),
		players:        [2]player.Player{players[0], players[1]},
		maxPlies:       meta.MAX_PLIES,
		tieRequestTurn: meta.TIE_REQUEST_TURN,
		collector:      metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the game loop until the match ends. Any rejected action aborts
// the match with an error wrapping the rule that was broken.
func (e *Engine) Run() (Result, error) {
	for i, p := range e.players {
		p.Initialize(game.Player(i))
	}
	e.collector.Start(e.ID.String(), e.players[0].Name(), e.players[1].Name())

	log.Debug().Msgf("match %s: %s vs %s", e.ID, e.players[0].Name(), e.players[1].Name())

	plies := 0
	outcome := Outcome{Winner: game.NoWinner, Reason: MaxPlies}
	for plies < e.maxPlies {
		mover := e.State.CurrentPlayer
		p := e.players[mover]

		start := time.Now()
		action := p.Action(e.State.Copy(), e.History.Clone())
		elapsed := time.Since(start)

		next, err := Step(e.State, e.History, action, e.tieRequestTurn)
		if err != nil {
			log.Warn().Err(err).Msgf("match %s: rejected action from %s", e.ID, p.Name())
			return Result{}, fmt.Errorf("match %s, turn %d, %s (%s): %w", e.ID, e.State.Turn, p.Name(), mover, err)
		}
		plies++

		e.collector.AddPly(metrics.PlyMetric{
			Ply:          plies,
			Player:       mover,
			Notation:     next.Move.Notation(),
			Captured:     next.Captured > 0,
			Captures:     next.Captured,
			RequestedTie: next.Move.RequestedTie,
			Duration:     elapsed,
		})
		log.Debug().Msgf("match %s ply %d: %s plays %s", e.ID, plies, p.Name(), next.Move.Notation())

		e.State = next.State
		if next.Over {
			outcome = next
			break
		}
	}

	if outcome.Reason == MaxPlies {
		log.Warn().Msgf("match %s stopped after %d plies without a result", e.ID, plies)
	}

	for _, p := range e.players {
		p.EndGame(e.History.Clone(), outcome.Winner)
	}

	gameMetric, moveMetrics := e.collector.Complete(outcome.Winner, string(outcome.Reason))
	log.Info().Msgf("match %s over after %d plies: winner %s (%s)", e.ID, plies, outcome.Winner, outcome.Reason)

	return Result{
		ID:      e.ID,
		Winner:  outcome.Winner,
		Reason:  outcome.Reason,
		Plies:   plies,
		Final:   e.State,
		History: e.History,
		Game:    gameMetric,
		Moves:   moveMetrics,
	}, nil
}
