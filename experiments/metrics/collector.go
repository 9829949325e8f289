package metrics

import (
	"sync/atomic"
	"time"

	"draughts/game"
)

type PlyMetric struct {
	Ply          int
	Player       game.Player
	Notation     string
	Captured     bool
	Captures     int // opponent pieces removed this ply
	RequestedTie bool
	Duration     time.Duration // time the player took to answer
}

type GameMetric struct {
	MatchID   string
	Player0   string // player name
	Player1   string // player name
	Winner    game.Player
	Reason    string
	Plies     int
	Captures  int // opponent pieces removed over the match
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type Collector interface {
	Start(matchID, player0, player1 string)
	AddPly(ply PlyMetric)
	Complete(winner game.Player, reason string) (GameMetric, []PlyMetric)
}

type collector struct {
	game     GameMetric
	plies    []PlyMetric
	captures atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(matchID, player0, player1 string) {
	m.game = GameMetric{
		MatchID:   matchID,
		Player0:   player0,
		Player1:   player1,
		StartTime: time.Now(),
	}
	m.plies = nil
	m.captures.Store(0)
}

func (m *collector) AddPly(ply PlyMetric) {
	m.captures.Add(int32(ply.Captures))
	m.plies = append(m.plies, ply)
}

func (m *collector) Complete(winner game.Player, reason string) (GameMetric, []PlyMetric) {
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	m.game.Winner = winner
	m.game.Reason = reason
	m.game.Plies = len(m.plies)
	m.game.Captures = int(m.captures.Load())
	return m.game, m.plies
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(matchID, player0, player1 string) {}
func (m *dummyCollector) AddPly(ply PlyMetric)                   {}
func (m *dummyCollector) Complete(winner game.Player, reason string) (GameMetric, []PlyMetric) {
	return GameMetric{Winner: winner, Reason: reason}, nil
}
