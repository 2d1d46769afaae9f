package engine

import (
	"fmt"
	"math/rand"
	"time"
)

const noPending = -1

// Engine owns the deck and all matching and scoring rules.
type Engine struct {
	cards    []Card
	seen     []bool // positional: seen[i] is true once cards[i] took part in a resolved turn
	pending  int    // index of the single face-up unmatched card, or noPending
	score    int
	hintUsed bool
	peeking  bool

	scoring Scoring
	rng     *rand.Rand
	shuffle bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithRand sets the random source used for shuffling.
// Pass a seeded source for reproducible deals.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithScoring overrides the default scoring policy.
func WithScoring(s Scoring) Option {
	return func(e *Engine) {
		e.scoring = s
	}
}

// WithoutInitialShuffle keeps the dealt order: the cards of pair p sit
// at indices 2p and 2p+1.
func WithoutInitialShuffle() Option {
	return func(e *Engine) {
		e.shuffle = false
	}
}

// New builds an engine with 2*pairs face-down cards in random order.
func New(pairs int, opts ...Option) (*Engine, error) {
	if pairs <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPairCount, pairs)
	}

	layout := make([]int, 0, pairs*2)
	for p := 0; p < pairs; p++ {
		layout = append(layout, p, p)
	}
	return newFromLayout(layout, opts...)
}

// newFromLayout deals cards whose pair identities follow layout.
// Every pair identity must appear exactly twice.
func newFromLayout(layout []int, opts ...Option) (*Engine, error) {
	if len(layout) == 0 || len(layout)%2 != 0 {
		return nil, fmt.Errorf("%w: layout has %d cards", ErrInvalidPairCount, len(layout))
	}

	counts := make(map[int]int, len(layout)/2)
	for _, id := range layout {
		counts[id]++
	}
	for id, n := range counts {
		if n != 2 {
			return nil, fmt.Errorf("engine: pair %d appears %d times in layout", id, n)
		}
	}

	e := &Engine{
		cards:   make([]Card, len(layout)),
		seen:    make([]bool, len(layout)),
		pending: noPending,
		scoring: DefaultScoring(),
		shuffle: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	dealt := make(map[int]Card, len(counts))
	for i, id := range layout {
		if second, ok := dealt[id]; ok {
			e.cards[i] = second
			continue
		}
		first, second := newPair(id)
		e.cards[i] = first
		dealt[id] = second
	}

	if e.shuffle {
		e.ShuffleCards()
	}
	return e, nil
}

// ChooseCard applies a pick of the card at index.
//
// Picking a matched card or the pending card again changes nothing.
// With a different pending card the two are compared: a match marks both
// matched and adds the match bonus, a mismatch costs the penalty for each
// of the two cards that had been seen before. Either way the unmatched
// cards go back face down and no card is left pending. Without a pending
// card the pick is turned face up and becomes pending; it is recorded as
// seen when the turn resolves.
func (e *Engine) ChooseCard(index int) error {
	if index < 0 || index >= len(e.cards) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(e.cards))
	}

	chosen := &e.cards[index]
	if chosen.IsMatched || index == e.pending {
		return nil
	}

	if e.pending == noPending {
		chosen.IsFaceUp = true
		e.pending = index
		return nil
	}

	first := e.pending
	pair := [2]int{first, index}
	chosen.IsFaceUp = true

	if e.cards[first].Matches(*chosen) {
		e.cards[first].IsMatched = true
		chosen.IsMatched = true
		e.score += e.scoring.MatchBonus
	} else {
		for _, i := range pair {
			if e.seen[i] {
				e.score -= e.scoring.MismatchPenalty
			}
		}
	}

	for _, i := range pair {
		if !e.cards[i].IsMatched {
			e.cards[i].IsFaceUp = false
		}
		e.seen[i] = true
	}
	e.pending = noPending
	return nil
}

// ShuffleCards permutes the deck uniformly. Flags and identities travel
// with their card, and so do the pending marker and the seen record.
func (e *Engine) ShuffleCards() {
	e.rng.Shuffle(len(e.cards), func(i, j int) {
		e.cards[i], e.cards[j] = e.cards[j], e.cards[i]
		e.seen[i], e.seen[j] = e.seen[j], e.seen[i]
		switch e.pending {
		case i:
			e.pending = j
		case j:
			e.pending = i
		}
	})
}

// FlipAllCardsFaceUp reveals every unmatched card for a peek.
// Score, seen record and pending card are left alone.
func (e *Engine) FlipAllCardsFaceUp() {
	for i := range e.cards {
		if !e.cards[i].IsMatched {
			e.cards[i].IsFaceUp = true
		}
	}
	e.peeking = true
}

// FlipAllCardsFaceDown ends a peek. Every unmatched card is turned face
// down except the pending one, which is how it was before the peek.
func (e *Engine) FlipAllCardsFaceDown() {
	for i := range e.cards {
		if !e.cards[i].IsMatched {
			e.cards[i].IsFaceUp = i == e.pending
		}
	}
	e.peeking = false
}

// UseHint consumes the one hint of this engine. It returns false when
// the hint was already used. It does not reveal anything by itself.
func (e *Engine) UseHint() bool {
	if e.hintUsed {
		return false
	}
	e.hintUsed = true
	return true
}

// IsHintUsed reports whether the hint has been consumed.
func (e *Engine) IsHintUsed() bool {
	return e.hintUsed
}

// Peeking reports whether a FlipAllCardsFaceUp is in effect.
func (e *Engine) Peeking() bool {
	return e.peeking
}

// Cards returns a copy of the deck in display order.
func (e *Engine) Cards() []Card {
	out := make([]Card, len(e.cards))
	copy(out, e.cards)
	return out
}

// Card returns the card at index.
func (e *Engine) Card(index int) (Card, error) {
	if index < 0 || index >= len(e.cards) {
		return Card{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(e.cards))
	}
	return e.cards[index], nil
}

// Len returns the number of cards.
func (e *Engine) Len() int {
	return len(e.cards)
}

// Pairs returns the number of pairs in the deck.
func (e *Engine) Pairs() int {
	return len(e.cards) / 2
}

// Score returns the current score. It can be negative.
func (e *Engine) Score() int {
	return e.score
}

// Scoring returns the policy in effect.
func (e *Engine) Scoring() Scoring {
	return e.scoring
}

// PendingIndex returns the index of the card waiting for a second pick.
func (e *Engine) PendingIndex() (int, bool) {
	if e.pending == noPending {
		return 0, false
	}
	return e.pending, true
}

// Seen reports whether the card at index has been exposed in a resolved
// turn. The pending card only counts once its turn resolves, so a first
// exposure never costs points.
func (e *Engine) Seen(index int) bool {
	if index < 0 || index >= len(e.seen) {
		return false
	}
	return e.seen[index]
}

// MatchedPairs returns how many pairs have been found.
func (e *Engine) MatchedPairs() int {
	n := 0
	for _, c := range e.cards {
		if c.IsMatched {
			n++
		}
	}
	return n / 2
}

// IsComplete reports whether every card is matched.
func (e *Engine) IsComplete() bool {
	return e.MatchedPairs() == e.Pairs()
}
