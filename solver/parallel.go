package solver

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/agnes/cards"
)

// PlayAll solves each deck with its own Solver, running up to
// parallelism searches at once (no limit if parallelism <= 0). Results
// are in deck order. Once ctx is done no new deck is started, but a
// search already running finishes.
func PlayAll(ctx context.Context, decks []cards.Deck, cfg Config, parallelism int) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, len(decks))
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, deck := range decks {
		i, deck := i, deck
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := New(deck, cfg)
			if err != nil {
				return err
			}
			results[i] = s.Play()
			log.Debug().Int("deal", i).Str("outcome", results[i].Outcome.String()).Msg("deal-done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
