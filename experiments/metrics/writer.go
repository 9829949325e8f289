package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"draughts/game"
)

type Standing struct {
	Player string
	Played int
	Wins   int
	Draws  int
	Losses int
	Points float64
}

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	PlyMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named after name and the current timestamp.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file, what string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}

func (w *Writer) WriteStandings(standings []Standing) error {
	header := []string{"rank", "player", "played", "wins", "draws", "losses", "points"}
	rows := make([][]string, len(standings))
	for i, s := range standings {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			s.Player,
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			strconv.FormatFloat(s.Points, 'f', -1, 64),
		}
	}
	return w.writeCSV("standings.csv", "standings", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "match_id", "player0", "player1", "winner", "reason", "plies", "captures", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			record.MatchID,
			record.Player0,
			record.Player1,
			strconv.Itoa(int(record.Winner)),
			record.Reason,
			strconv.Itoa(record.Plies),
			strconv.Itoa(record.Captures),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.writeCSV("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "ply", "player", "notation", "captures", "requested_tie", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Ply),
			strconv.Itoa(int(record.Player)),
			record.Notation,
			strconv.Itoa(record.Captures),
			strconv.FormatBool(record.RequestedTie),
			record.Duration.String(),
		}
	}
	return w.writeCSV("move_records.csv", "move records", header, rows)
}

// WriteReplay stores the records of one match so a replay player can load them.
func (w *Writer) WriteReplay(matchID string, records []game.Record) (string, error) {
	dir := filepath.Join(w.baseDir, "replays")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create replay directory: %w", err)
	}

	path := filepath.Join(dir, matchID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create replay file: %w", err)
	}
	defer f.Close()

	if err := game.EncodeRecords(f, records); err != nil {
		return "", err
	}
	return path, nil
}
