package solver

import "github.com/rs/zerolog"

// Outcome is where a run stands.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
	// Terminated means the state limit was reached first.
	Terminated
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Counters are cumulative over a run; undoing a move does not decrement
// them.
type Counters struct {
	// StatesChecked counts the initial layout and every step.
	StatesChecked int
	// Deals counts the initial layout as a deal.
	Deals           int
	TableauMoves    int
	FoundationMoves int
	// NoMovePossible counts states found to have no moves left.
	NoMovePossible int
	MaxDepth       int
	// MaxScore is the most cards on the foundations at any point,
	// starting with the base card.
	MaxScore int
}

type Result struct {
	Outcome Outcome
	Counters
	// CurrentDepth is the depth of the state the run ended on.
	CurrentDepth int
	// LosingStates is the number of dead positions remembered.
	LosingStates int
}

// MarshalZerologObject lets a Result be logged with zerolog's Object.
func (r Result) MarshalZerologObject(e *zerolog.Event) {
	e.Str("outcome", r.Outcome.String()).
		Int("states-checked", r.StatesChecked).
		Int("deals", r.Deals).
		Int("tableau-moves", r.TableauMoves).
		Int("foundation-moves", r.FoundationMoves).
		Int("no-move-possible", r.NoMovePossible).
		Int("max-depth", r.MaxDepth).
		Int("max-score", r.MaxScore).
		Int("current-depth", r.CurrentDepth).
		Int("losing-states", r.LosingStates)
}
