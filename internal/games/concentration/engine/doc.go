// Package engine implements the Concentration match engine: a deck of
// paired cards, the flip/match state machine, scoring, shuffling and the
// one-shot peek hint.
//
// The engine is a pure pull-based model. Callers issue a command
// (ChooseCard, ShuffleCards, UseHint, FlipAllCardsFaceUp/Down) and then
// re-read Cards and Score to redraw. It never calls back into the UI,
// holds no timers and is owned by a single goroutine, so it needs no
// locking. A new engine is built for every restart or difficulty change.
package engine
