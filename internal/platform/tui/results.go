package tui

import (
	"time"

	"github.com/vovakirdan/tui-concentration/internal/core"
	"github.com/vovakirdan/tui-concentration/internal/registry"
	"github.com/vovakirdan/tui-concentration/internal/storage"
)

// recordResult saves the outcome of a finished game.
// Games that report a Summary are saved only when completed, whatever the
// sign of the score. Other games keep the positive-score rule.
func recordResult(store *storage.Store, game registry.Game, state core.GameState) error {
	if store == nil {
		return nil
	}

	if s, ok := game.(registry.Summarizer); ok {
		sum := s.Summary()
		if !sum.Completed {
			return nil
		}
		_, err := store.SaveResult(storage.Result{
			GameID:    game.ID(),
			Variant:   sum.Variant,
			Theme:     sum.Theme,
			Score:     sum.Score,
			Flips:     sum.Moves,
			Pairs:     sum.Pairs,
			HintUsed:  sum.HintUsed,
			Duration:  int(sum.Duration.Round(time.Second) / time.Second),
			Completed: true,
		})
		return err
	}

	if state.Score <= 0 {
		return nil
	}
	_, err := store.SaveScoreEntry(storage.ScoreEntry{
		GameID:  game.ID(),
		Variant: state.Variant,
		Score:   state.Score,
		Moves:   state.Moves,
	})
	return err
}
