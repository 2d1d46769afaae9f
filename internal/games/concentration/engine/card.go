package engine

import "github.com/google/uuid"

// Card is one tile of the deck.
type Card struct {
	// ID distinguishes the two otherwise identical cards of a pair.
	ID uuid.UUID
	// PairID is shared by exactly two cards. Matching compares PairID.
	PairID int

	IsFaceUp  bool
	IsMatched bool // terminal: once true it stays true for the engine's lifetime
}

// Matches reports whether c and other belong to the same pair.
// A card never matches itself.
func (c Card) Matches(other Card) bool {
	return c.PairID == other.PairID && c.ID != other.ID
}

// newPair creates the two cards of a pair, face down and unmatched.
func newPair(pairID int) (Card, Card) {
	return Card{ID: uuid.New(), PairID: pairID}, Card{ID: uuid.New(), PairID: pairID}
}
