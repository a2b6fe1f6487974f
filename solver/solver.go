// Package solver searches a deal of Agnes for a win with an iterative
// depth-first search. One Solver mutates one game.State in place and
// undoes moves exactly on the way back up, so no copies of the state are
// made during the search.
//
// The search keeps three stacks, one entry per depth: the moves played,
// the candidate moves still to be tried at each depth, and the set of
// tableau fingerprints seen since the last deal or move to a foundation
// (used to cut loops of tableau moves).
package solver

import (
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/agnes/cards"
	"github.com/domino14/agnes/game"
	"github.com/domino14/agnes/move"
)

type loopSet map[string]struct{}

type Solver struct {
	cfg   Config
	rules game.Rules
	state *game.State

	moves []move.Move
	// frames[d] holds the untried candidate moves at depth d.
	frames [][]move.Move
	// loops[d] holds the fingerprints seen in the current loop era.
	loops []loopSet

	losing   *losingTable
	counters Counters
	outcome  Outcome

	fp []byte
}

// New lays out the deck and prepares a search. The deck does not need
// to be normalized.
func New(deck cards.Deck, cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:    cfg,
		rules:  cfg.Rules(),
		state:  game.NewState(deck.Normalized()),
		losing: newLosingTable(cfg.CompactLosingStates, cfg.LosingStatesMemoryFraction),
		counters: Counters{
			StatesChecked: 1,
			Deals:         1,
			MaxScore:      1,
		},
	}
	s.state.Layout(cfg.FaceUp)
	s.state.SetValidMoves(s.rules)
	s.frames = [][]move.Move{s.state.ValidMoves()}
	s.loops = []loopSet{nil}

	if s.blockPruning() && s.state.AnyPileBlocked() {
		log.Debug().Msg("initial-layout-blocked")
		s.outcome = Lost
	}
	return s, nil
}

// blockPruning is true when a blocked position can be treated as lost.
func (s *Solver) blockPruning() bool {
	return s.cfg.EmptyPile == game.EmptyPileNone && !s.cfg.MaximizeScore
}

func (s *Solver) State() *game.State { return s.state }
func (s *Solver) Outcome() Outcome   { return s.outcome }
func (s *Solver) Counters() Counters { return s.counters }
func (s *Solver) Depth() int         { return len(s.moves) }

// Moves returns the moves from the initial layout to the current state.
func (s *Solver) Moves() []move.Move {
	return slices.Clone(s.moves)
}

func (s *Solver) Result() Result {
	return Result{
		Outcome:      s.outcome,
		Counters:     s.counters,
		CurrentDepth: s.state.Depth(),
		LosingStates: s.losing.len(),
	}
}

// Play runs the search until it is won, lost or terminated.
func (s *Solver) Play() Result {
	log.Info().
		Str("empty-pile", s.cfg.EmptyPile.String()).
		Bool("move-same-suit", s.cfg.MoveSameSuit).
		Bool("split-same-suit-runs", s.cfg.SplitSameSuitRuns).
		Bool("face-up", s.cfg.FaceUp).
		Bool("maximize-score", s.cfg.MaximizeScore).
		Int("track-threshold", s.cfg.TrackThreshold).
		Int("max-states", s.cfg.MaxStates).
		Msg("agnes-solve-start")

	if s.cfg.LogStates {
		s.logState("initial")
	}
	for s.outcome == Running {
		s.Step()
	}
	res := s.Result()
	log.Info().Object("result", res).Msg("agnes-solve-done")
	return res
}

// Step advances the search by one state: it either plays the next
// candidate move or, if there is none, backs up one move. It returns
// the outcome after the step. Once the outcome is no longer Running,
// Step does nothing.
func (s *Solver) Step() Outcome {
	if s.outcome != Running {
		return s.outcome
	}
	s.counters.StatesChecked++
	depth := s.state.Depth()
	if depth > s.counters.MaxDepth {
		s.counters.MaxDepth = depth
	}
	if s.cfg.MaxStates > 0 && s.counters.StatesChecked > s.cfg.MaxStates {
		s.outcome = Terminated
		return s.outcome
	}

	top := len(s.frames) - 1
	candidates := s.frames[top]
	if len(candidates) == 0 {
		s.counters.NoMovePossible++
		if depth == 0 {
			s.outcome = Lost
			return s.outcome
		}
		if stock := s.state.StockLeft(); stock >= s.cfg.TrackThreshold {
			s.fp = s.state.Fingerprint(s.fp[:0])
			s.losing.add(stock, s.fp)
		}
		s.undo()
		return s.outcome
	}

	m := candidates[len(candidates)-1]
	s.frames[top] = candidates[:len(candidates)-1]
	s.state.RestoreValidMoves(s.frames[top])
	s.apply(m)
	return s.outcome
}

func (s *Solver) apply(m move.Move) {
	st := s.state
	st.PlayMove(m)

	var loops loopSet
	blocked := false
	switch m.Type() {
	case move.MoveTypeToFoundation:
		s.counters.FoundationMoves++
		if score := st.Score(); score > s.counters.MaxScore {
			s.counters.MaxScore = score
		}
		loops = loopSet{}
	case move.MoveTypeDeal:
		loops = loopSet{}
		if s.blockPruning() {
			blocked = st.AnyPileBlocked()
		}
		s.counters.Deals++
	case move.MoveTypeTableau:
		s.counters.TableauMoves++
		loops = lo.Assign(s.loops[len(s.loops)-1])
	}

	s.fp = st.Fingerprint(s.fp[:0])
	stock := st.StockLeft()
	tracked := stock >= s.cfg.TrackThreshold

	switch {
	case tracked && s.losing.contains(stock, s.fp):
		st.RestoreValidMoves(nil)
		s.logPruned(m, "already checked the new state")
	case blocked:
		st.RestoreValidMoves(nil)
		s.logPruned(m, "new state is a block")
	case lo.HasKey(loops, string(s.fp)):
		st.RestoreValidMoves(nil)
		s.logPruned(m, "new state is a loop")
	default:
		st.SetValidMoves(s.rules)
	}
	loops[string(s.fp)] = struct{}{}

	s.moves = append(s.moves, m)
	switch {
	case st.Won():
		s.frames = append(s.frames, nil)
		s.loops = append(s.loops, nil)
		s.outcome = Won
	case len(st.ValidMoves()) == 0:
		if tracked {
			s.losing.add(stock, s.fp)
		}
		s.frames = append(s.frames, nil)
		s.loops = append(s.loops, nil)
	default:
		s.frames = append(s.frames, st.ValidMoves())
		s.loops = append(s.loops, loops)
	}

	if s.cfg.LogStates {
		s.logState("new-state")
	}
}

// undo backs up one move. The counters are not touched.
func (s *Solver) undo() {
	if len(s.moves) == 0 {
		panic("undo with no moves played")
	}
	n := len(s.moves) - 1
	m := s.moves[n]
	s.moves = s.moves[:n]
	s.frames = s.frames[:len(s.frames)-1]
	s.loops = s.loops[:len(s.loops)-1]

	s.state.UnplayMove(m)
	if n > 0 {
		s.state.SetCurrentMove(s.moves[n-1])
	} else {
		s.state.SetCurrentMove(move.Move{})
	}
	s.state.RestoreValidMoves(s.frames[len(s.frames)-1])

	if s.cfg.LogStates {
		log.Debug().Str("move", m.String()).Msg("undo-move")
	}
}

func (s *Solver) logPruned(m move.Move, reason string) {
	if !s.cfg.LogStates {
		return
	}
	log.Debug().Str("move", m.String()).Str("reason", reason).Msg("pruned")
}

func (s *Solver) logState(msg string) {
	log.Debug().
		Int("depth", s.state.Depth()).
		Int("stock-left", s.state.StockLeft()).
		Str("state", s.state.ToDisplayText()).
		Msg(msg)
}

// History returns the states from the initial layout to the current
// state, each with the moves that were legal in it. The search itself is
// not disturbed.
func (s *Solver) History() []game.Snapshot {
	st := s.state.Copy()
	snaps := []game.Snapshot{st.Snapshot()}
	for i := len(s.moves) - 1; i >= 0; i-- {
		st.UnplayMove(s.moves[i])
		if i > 0 {
			st.SetCurrentMove(s.moves[i-1])
		} else {
			st.SetCurrentMove(move.Move{})
		}
		st.SetValidMoves(s.rules)
		snaps = append(snaps, st.Snapshot())
	}
	return lo.Reverse(snaps)
}
