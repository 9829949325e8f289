package game

import (
	"fmt"
	"strconv"
	"strings"
)

// NotationPly is one ply read back from standard notation.
type NotationPly struct {
	From    int
	To      int
	Capture bool
}

func (np NotationPly) String() string {
	sep := "-"
	if np.Capture {
		sep = "x"
	}
	return fmt.Sprintf("%d%s%d", np.From, sep, np.To)
}

// Notation renders a single entry: "32-28" or "28x19" for played moves, "resign"
// or "accept-tie" otherwise.
func (hm HistoryMove) Notation() string {
	switch {
	case hm.Resigned:
		return "resign"
	case hm.AcceptedTie:
		return "accept-tie"
	case !hm.IsPlayed():
		return ""
	}
	return NotationPly{
		From:    hm.Piece.Position.Number(),
		To:      hm.Move.Final().Number(),
		Capture: hm.Captured,
	}.String()
}

// MovelistAsNotation renders the played moves two plies per line, e.g.
// "1. 32-28 19-23". Resignations and accepted ties add no text.
func (h *History) MovelistAsNotation() []string {
	var plies []string
	for _, hm := range h.moves {
		if hm.IsPlayed() {
			plies = append(plies, hm.Notation())
		}
	}

	lines := make([]string, 0, (len(plies)+1)/2)
	for i := 0; i < len(plies); i += 2 {
		line := fmt.Sprintf("%d. %s", i/2+1, plies[i])
		if i+1 < len(plies) {
			line += " " + plies[i+1]
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseNotation reads lines produced by MovelistAsNotation back into plies.
func ParseNotation(lines []string) ([]NotationPly, error) {
	var plies []NotationPly
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if strings.HasSuffix(fields[0], ".") {
			fields = fields[1:]
		}
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("line %d %q: expected one or two plies", i+1, line)
		}
		for _, field := range fields {
			ply, err := parsePly(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			plies = append(plies, ply)
		}
	}
	return plies, nil
}

func parsePly(text string) (NotationPly, error) {
	sep := strings.IndexAny(text, "-x")
	if sep <= 0 || sep == len(text)-1 {
		return NotationPly{}, fmt.Errorf("malformed ply %q", text)
	}
	from, err := parseSquareNumber(text[:sep])
	if err != nil {
		return NotationPly{}, fmt.Errorf("ply %q: %w", text, err)
	}
	to, err := parseSquareNumber(text[sep+1:])
	if err != nil {
		return NotationPly{}, fmt.Errorf("ply %q: %w", text, err)
	}
	return NotationPly{From: from, To: to, Capture: text[sep] == 'x'}, nil
}

func parseSquareNumber(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("bad square number: %w", err)
	}
	if _, err := SquareFromNumber(n); err != nil {
		return 0, err
	}
	return n, nil
}
