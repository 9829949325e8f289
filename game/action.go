package game

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlayAction ActionType = iota
	ResignAction
	AcceptTieAction
)

func (t ActionType) String() string {
	switch t {
	case PlayAction:
		return "play"
	case ResignAction:
		return "resign"
	case AcceptTieAction:
		return "accept-tie"
	}
	return "unknown"
}

// Action is what a player hands back to the game loop on its turn. Piece and Move
// only matter for PlayAction; RequestTie offers a draw along with the move.
type Action struct {
	Type       ActionType
	Piece      Piece
	Move       Move
	RequestTie bool
}

func Play(piece Piece, move Move) Action {
	return Action{Type: PlayAction, Piece: piece, Move: move}
}

func PlayAndRequestTie(piece Piece, move Move) Action {
	return Action{Type: PlayAction, Piece: piece, Move: move, RequestTie: true}
}

func Resign() Action {
	return Action{Type: ResignAction}
}

func AcceptTie() Action {
	return Action{Type: AcceptTieAction}
}
