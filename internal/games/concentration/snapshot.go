package concentration

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePeeking     GameStateType = "peeking"
	StatePaused      GameStateType = "paused"
	StateComplete    GameStateType = "complete"
	StatePausedSmall GameStateType = "paused_small_window"
)

// CardSnapshot is the visible state of one card.
type CardSnapshot struct {
	PairID  int
	FaceUp  bool
	Matched bool
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Difficulty string
	Theme      string
	Score      int
	Flips      int
	Cursor     int
	Pending    int // -1 when no card waits for a second pick
	HintUsed   bool
	Cards      []CardSnapshot
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateComplete
	case g.paused:
		state = StatePaused
	case g.eng.Peeking():
		state = StatePeeking
	}

	pending := -1
	if p, ok := g.eng.PendingIndex(); ok {
		pending = p
	}

	cards := g.eng.Cards()
	snap := Snapshot{
		Tick:       g.tick,
		Difficulty: string(g.difficulty),
		Theme:      g.theme.Name,
		Score:      g.eng.Score(),
		Flips:      g.flips,
		Cursor:     g.cursor,
		Pending:    pending,
		HintUsed:   g.eng.IsHintUsed(),
		Cards:      make([]CardSnapshot, len(cards)),
		State:      state,
	}
	for i, c := range cards {
		snap.Cards[i] = CardSnapshot{PairID: c.PairID, FaceUp: c.IsFaceUp, Matched: c.IsMatched}
	}
	return snap
}
