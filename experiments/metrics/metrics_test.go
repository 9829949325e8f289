package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"draughts/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("m1", "a", "b")
	c.AddPly(PlyMetric{Ply: 1, Player: game.Player0, Notation: "32-28"})
	c.AddPly(PlyMetric{Ply: 2, Player: game.Player1, Notation: "19-23"})
	c.AddPly(PlyMetric{Ply: 3, Player: game.Player0, Notation: "28x19", Captured: true, Captures: 1})
	c.AddPly(PlyMetric{Ply: 4, Player: game.Player1, Notation: "13x33", Captured: true, Captures: 3})

	gm, plies := c.Complete(game.Player0, "resigned")
	require.Equal(t, "m1", gm.MatchID)
	require.Equal(t, "a", gm.Player0)
	require.Equal(t, 4, gm.Plies)
	require.Equal(t, 4, gm.Captures, "Pieces are counted, not capturing plies")
	require.Equal(t, game.Player0, gm.Winner)
	require.False(t, gm.EndTime.Before(gm.StartTime))
	require.Len(t, plies, 4)

	c.Start("m2", "b", "a")
	gm, plies = c.Complete(game.NoWinner, "repetition")
	require.Zero(t, gm.Plies, "Start resets the collector")
	require.Zero(t, gm.Captures)
	require.Empty(t, plies)

	d := NewDummyCollector()
	d.Start("m3", "a", "b")
	d.AddPly(PlyMetric{Ply: 1})
	gm, plies = d.Complete(game.Player1, "no-moves")
	require.Equal(t, game.Player1, gm.Winner)
	require.Nil(t, plies)
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)

	t.Run("standings", func(t *testing.T) {
		require.NoError(t, w.WriteStandings([]Standing{
			{Player: "a", Played: 2, Wins: 1, Draws: 1, Points: 2.5},
			{Player: "b", Played: 2, Draws: 1, Losses: 1, Points: 0.5},
		}))
		rows := readCSV(t, filepath.Join(w.Dir(), "standings.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "a", "2", "1", "1", "0", "2.5"}, rows[1])
		require.Equal(t, "0.5", rows[2][6])
	})

	t.Run("games and moves", func(t *testing.T) {
		require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, GameMetric: GameMetric{MatchID: "m1", Winner: game.NoWinner, Reason: "repetition"}}}))
		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "-1", rows[1][4])
		require.Equal(t, "repetition", rows[1][5])

		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, PlyMetric: PlyMetric{Ply: 1, Notation: "13x33", Captured: true, Captures: 3}}}))
		rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "ply", "player", "notation", "captures", "requested_tie", "duration"}, rows[0])
		require.Equal(t, "13x33", rows[1][3])
		require.Equal(t, "3", rows[1][4])
	})

	t.Run("replay", func(t *testing.T) {
		origin := 32
		records := []game.Record{
			{PlayerID: game.Player0, PieceOrigin: &origin, MoveStops: []int{28}},
			{PlayerID: game.Player1, Resigned: true},
		}
		path, err := w.WriteReplay("m1", records)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		decoded, err := game.DecodeRecords(f)
		require.NoError(t, err)
		require.Equal(t, records, decoded)
	})
}
