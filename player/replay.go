package player

import (
	"draughts/game"

	"github.com/rs/zerolog/log"
)

// Replay re-issues persisted records in order. Records belonging to the other
// side are skipped, so both sides can be fed the same list.
type Replay struct {
	base
	records []game.Record
}

func NewReplay(name string, records []game.Record) *Replay {
	if name == "" {
		name = "Replay"
	}
	return &Replay{base: base{name: name}, records: records}
}

func (r *Replay) Action(state *game.GameState, history *game.History) game.Action {
	for len(r.records) > 0 {
		record := r.records[0]
		r.records = r.records[1:]
		if record.PlayerID != r.id {
			continue
		}

		action, err := record.Action(state)
		if err != nil {
			log.Warn().Err(err).Str("player", r.name).Msg("unplayable replay record, resigning")
			return game.Resign()
		}
		return action
	}

	log.Warn().Str("player", r.name).Msg("replay exhausted, resigning")
	return game.Resign()
}

// Remaining is the number of records not yet consumed.
func (r *Replay) Remaining() int {
	return len(r.records)
}
