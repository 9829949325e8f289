package experiments

import (
	"cmp"
	"errors"
	"fmt"
	"sync"

	"draughts/config"
	"draughts/engine"
	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type MatchResult struct {
	Pairing Pairing
	Result  engine.Result
}

type TournamentResult struct {
	ID        uuid.UUID
	Matches   []MatchResult // in schedule order, byes excluded
	Standings []metrics.Standing
}

// RunTournament plays a double round robin between the configured players. Each
// match gets fresh player instances, its own engine and its own history, and the
// matches are spread over cfg.Tournament.Workers goroutines.
func RunTournament(cfg config.Config) (*TournamentResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	id := uuid.New()
	var pairings []Pairing
	for _, p := range RoundRobinSchedule(len(cfg.Players)) {
		if !p.IsBye() {
			pairings = append(pairings, p)
		}
	}
	log.Info().Msgf("starting tournament %s: %d players, %d matches, %d workers", id, len(cfg.Players), len(pairings), cfg.Tournament.Workers)

	task := make(chan int, len(pairings))
	for i := range pairings {
		task <- i
	}
	close(task)

	results := make([]engine.Result, len(pairings))
	errs := make([]error, len(pairings))

	var wg sync.WaitGroup
	for i := 0; i < cfg.Tournament.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				results[idx], errs[idx] = playMatch(cfg, pairings[idx])
			}
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	matches := make([]MatchResult, len(pairings))
	for i, p := range pairings {
		matches[i] = MatchResult{Pairing: p, Result: results[i]}
	}

	log.Info().Msgf("completed tournament %s", id)
	return &TournamentResult{
		ID:        id,
		Matches:   matches,
		Standings: Standings(cfg, matches),
	}, nil
}

func playMatch(cfg config.Config, p Pairing) (engine.Result, error) {
	first, err := player.New(cfg.Players[p.Player0], cfg.Match.TieRequestTurn)
	if err != nil {
		return engine.Result{}, err
	}
	second, err := player.New(cfg.Players[p.Player1], cfg.Match.TieRequestTurn)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.LocalEngine([]player.Player{first, second},
		engine.WithMaxPlies(cfg.Match.MaxPlies),
		engine.WithTieRequestTurn(cfg.Match.TieRequestTurn),
		engine.WithCollector(metrics.NewCollector()),
	)
	log.Info().Msgf("playing %s - %s", first.Name(), second.Name())

	result, err := e.Run()
	if err != nil {
		return engine.Result{}, fmt.Errorf("%s - %s: %w", first.Name(), second.Name(), err)
	}
	return result, nil
}

// Standings tallies points per player and sorts them, best first. Ties on points
// keep the configuration order.
func Standings(cfg config.Config, matches []MatchResult) []metrics.Standing {
	points := cfg.Tournament.Points
	standings := make([]metrics.Standing, len(cfg.Players))
	for i, p := range cfg.Players {
		standings[i].Player = p.Name
	}

	for _, m := range matches {
		seats := [2]*metrics.Standing{&standings[m.Pairing.Player0], &standings[m.Pairing.Player1]}
		for _, s := range seats {
			s.Played++
		}

		switch m.Result.Winner {
		case game.Player0, game.Player1:
			winner, loser := seats[m.Result.Winner], seats[m.Result.Winner.Opponent()]
			winner.Wins++
			winner.Points += points.Win
			loser.Losses++
			loser.Points += points.Loss
		default:
			for _, s := range seats {
				s.Draws++
				s.Points += points.Draw
			}
		}
	}

	slices.SortStableFunc(standings, func(a, b metrics.Standing) int {
		return cmp.Compare(b.Points, a.Points)
	})
	return standings
}

// WriteResults stores standings, per-game and per-ply records and one replay file
// per match.
func WriteResults(w *metrics.Writer, res *TournamentResult) error {
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for i, m := range res.Matches {
		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: m.Result.Game})
		for _, ply := range m.Result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, PlyMetric: ply})
		}
		if _, err := w.WriteReplay(m.Result.ID.String(), m.Result.History.Records()); err != nil {
			return fmt.Errorf("failed to write replay of match %s: %w", m.Result.ID, err)
		}
	}

	if err := w.WriteStandings(res.Standings); err != nil {
		return fmt.Errorf("failed to write standings: %w", err)
	}
	log.Info().Msg("stored standings")

	if err := w.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := w.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}

// Run plays the configured tournament and writes its results under
// cfg.Tournament.OutputDir.
func Run(cfg config.Config) (*TournamentResult, error) {
	res, err := RunTournament(cfg)
	if err != nil {
		return nil, err
	}

	writer, err := metrics.NewWriter(cfg.Tournament.OutputDir, "tournament")
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament writer: %w", err)
	}
	if err := WriteResults(writer, res); err != nil {
		return nil, err
	}
	log.Info().Msgf("results written to %s", writer.Dir())
	return res, nil
}
