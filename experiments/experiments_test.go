package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"draughts/config"
	"draughts/engine"
	"draughts/experiments/metrics"
	"draughts/game"

	"github.com/stretchr/testify/require"
)

func TestRoundRobinSchedule(t *testing.T) {
	t.Run("even number of players", func(t *testing.T) {
		schedule := RoundRobinSchedule(4)
		require.Len(t, schedule, 12)

		seen := make(map[Pairing]int)
		for _, p := range schedule {
			require.False(t, p.IsBye())
			require.NotEqual(t, p.Player0, p.Player1)
			seen[p]++
		}
		require.Len(t, seen, 12, "Every ordered pairing should be played exactly once")
	})

	t.Run("odd number of players gets byes", func(t *testing.T) {
		schedule := RoundRobinSchedule(3)
		require.Len(t, schedule, 12)

		byes := make(map[int]int)
		games := make(map[Pairing]int)
		for _, p := range schedule {
			switch {
			case p.Player0 == Bye:
				byes[p.Player1]++
			case p.Player1 == Bye:
				byes[p.Player0]++
			default:
				games[p]++
			}
		}
		require.Len(t, games, 6)
		for player := 0; player < 3; player++ {
			require.Equal(t, 2, byes[player], "Player %d should sit out once per half", player)
		}
	})

	t.Run("second half reverses colors", func(t *testing.T) {
		schedule := RoundRobinSchedule(6)
		half := len(schedule) / 2
		for i := 0; i < half; i++ {
			require.Equal(t, schedule[i].Player0, schedule[half+i].Player1)
			require.Equal(t, schedule[i].Player1, schedule[half+i].Player0)
		}
	})

	t.Run("first round", func(t *testing.T) {
		require.Equal(t, []Pairing{{3, 0}, {2, 1}}, RoundRobinSchedule(4)[:2])
	})

	t.Run("too few players", func(t *testing.T) {
		require.Empty(t, RoundRobinSchedule(1))
	})
}

func TestStandings(t *testing.T) {
	cfg := config.Default()
	cfg.Players = []config.PlayerConfig{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	matches := []MatchResult{
		{Pairing: Pairing{0, 1}, Result: engine.Result{Winner: game.Player0}},
		{Pairing: Pairing{1, 2}, Result: engine.Result{Winner: game.NoWinner}},
		{Pairing: Pairing{2, 0}, Result: engine.Result{Winner: game.Player0}},
	}

	standings := Standings(cfg, matches)
	require.Equal(t, []metrics.Standing{
		{Player: "c", Played: 2, Wins: 1, Draws: 1, Points: 2.5},
		{Player: "a", Played: 2, Wins: 1, Losses: 1, Points: 2},
		{Player: "b", Played: 2, Draws: 1, Losses: 1, Points: 0.5},
	}, standings)
}

func TestRunTournament(t *testing.T) {
	cfg := config.Default()
	cfg.Match.MaxPlies = 60
	cfg.Tournament.Workers = 3
	cfg.Tournament.OutputDir = t.TempDir()
	cfg.Players = []config.PlayerConfig{
		{Name: "r1", Kind: config.RandomPlayer, Seed: 1},
		{Name: "r2", Kind: config.RandomPlayer, Seed: 2},
		{Name: "f", Kind: config.FirstPlayer},
	}

	res, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, res.Matches, 6)
	require.Len(t, res.Standings, 3)

	played := 0
	var points float64
	for _, s := range res.Standings {
		require.Equal(t, 4, s.Played)
		played += s.Played
		points += s.Points
	}
	require.Equal(t, 12, played)

	var expected float64
	for _, m := range res.Matches {
		require.NotEqual(t, m.Pairing.Player0, m.Pairing.Player1)
		require.LessOrEqual(t, m.Result.Plies, cfg.Match.MaxPlies)
		if m.Result.Winner == game.NoWinner {
			expected += 2 * cfg.Tournament.Points.Draw
		} else {
			expected += cfg.Tournament.Points.Win + cfg.Tournament.Points.Loss
		}
	}
	require.Equal(t, expected, points)

	dirs, err := filepath.Glob(filepath.Join(cfg.Tournament.OutputDir, "tournament", "*"))
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	for _, name := range []string{"standings.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(dirs[0], name))
		require.NoError(t, err, name)
	}
	replays, err := os.ReadDir(filepath.Join(dirs[0], "replays"))
	require.NoError(t, err)
	require.Len(t, replays, 6)
}

func TestRunTournamentInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Players = cfg.Players[:1]

	_, err := RunTournament(cfg)
	require.Error(t, err)
}
