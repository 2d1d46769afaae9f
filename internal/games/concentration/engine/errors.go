package engine

import "errors"

// Sentinel errors returned by the engine. Both signal caller bugs, so
// they are returned before any state is touched.
var (
	// ErrInvalidPairCount is returned by New for a pair count <= 0.
	ErrInvalidPairCount = errors.New("engine: number of pairs must be positive")

	// ErrIndexOutOfRange is returned by ChooseCard for an index outside the deck.
	ErrIndexOutOfRange = errors.New("engine: card index out of range")
)
