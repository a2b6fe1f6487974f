package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/agnes/game"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds the rule variants and search limits of a run.
type Config struct {
	EmptyPile         game.EmptyPilePolicy
	MoveSameSuit      bool
	SplitSameSuitRuns bool
	// FaceUp deals the whole tableau face up.
	FaceUp bool
	// MaximizeScore turns off the blocked-kings pruning so that the
	// search finds the highest score reachable rather than stopping at
	// a provable loss.
	MaximizeScore bool
	// TrackThreshold is the lowest stock count for which dead positions
	// are remembered. Raising it saves memory.
	TrackThreshold int
	// MaxStates stops the search after this many states. 0 means no
	// limit.
	MaxStates int

	// CompactLosingStates remembers dead positions by a 64-bit hash
	// instead of the full key. A hash collision can wrongly prune a
	// position, so results may differ from an exact run.
	CompactLosingStates bool
	// LosingStatesMemoryFraction is the share of system memory the
	// losing-state table may use before a warning is logged.
	LosingStatesMemoryFraction float64
	// LogStates logs every state visited at debug level.
	LogStates bool
}

func DefaultConfig() Config {
	return Config{
		EmptyPile:                  game.EmptyPileNone,
		SplitSameSuitRuns:          true,
		LosingStatesMemoryFraction: 0.5,
	}
}

func (c Config) Rules() game.Rules {
	return game.Rules{
		EmptyPile:         c.EmptyPile,
		MoveSameSuit:      c.MoveSameSuit,
		SplitSameSuitRuns: c.SplitSameSuitRuns,
	}
}

func (c Config) Validate() error {
	if !c.EmptyPile.Valid() {
		return fmt.Errorf("%w: unknown empty pile policy %d", ErrInvalidConfiguration, c.EmptyPile)
	}
	if c.TrackThreshold < 0 {
		return fmt.Errorf("%w: negative track threshold %d", ErrInvalidConfiguration, c.TrackThreshold)
	}
	if c.MaxStates < 0 {
		return fmt.Errorf("%w: negative state limit %d", ErrInvalidConfiguration, c.MaxStates)
	}
	if c.LosingStatesMemoryFraction <= 0 || c.LosingStatesMemoryFraction > 1 {
		return fmt.Errorf("%w: losing states memory fraction %v not in (0, 1]",
			ErrInvalidConfiguration, c.LosingStatesMemoryFraction)
	}
	return nil
}

// ParseEmptyPilePolicy parses a policy name such as "any 1" or
// "high_run". Spaces, dashes and underscores are interchangeable.
func ParseEmptyPilePolicy(name string) (game.EmptyPilePolicy, error) {
	norm := strings.NewReplacer("_", " ", "-", " ").Replace(strings.ToLower(strings.TrimSpace(name)))
	for p := game.EmptyPileNone; p.Valid(); p++ {
		if p.String() == norm {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown empty pile policy %q", ErrInvalidConfiguration, name)
}
