package solver

import (
	"strconv"

	"github.com/cespare/xxhash"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

const (
	// Rough per-entry overhead of a Go map entry keyed by a string, on
	// top of the key bytes.
	exactEntryOverhead = 48
	compactEntrySize   = 16
)

// losingTable remembers positions from which no win is possible. A
// position is keyed by the stock count followed by the tableau
// fingerprint; the fingerprint starts with '+' so the two never run
// together ambiguously.
type losingTable struct {
	compact bool
	exact   map[string]struct{}
	digests map[uint64]struct{}

	estimatedBytes uint64
	budgetBytes    uint64
	warned         bool

	key []byte
}

func newLosingTable(compact bool, fractionOfMemory float64) *losingTable {
	t := &losingTable{compact: compact}
	if compact {
		t.digests = make(map[uint64]struct{})
	} else {
		t.exact = make(map[string]struct{})
	}
	// TotalMemory returns 0 if it can't tell; then there is no budget.
	t.budgetBytes = uint64(fractionOfMemory * float64(memory.TotalMemory()))
	return t
}

func (t *losingTable) makeKey(stock int, fingerprint []byte) []byte {
	t.key = strconv.AppendInt(t.key[:0], int64(stock), 10)
	t.key = append(t.key, fingerprint...)
	return t.key
}

func (t *losingTable) contains(stock int, fingerprint []byte) bool {
	k := t.makeKey(stock, fingerprint)
	if t.compact {
		_, ok := t.digests[xxhash.Sum64(k)]
		return ok
	}
	_, ok := t.exact[string(k)]
	return ok
}

func (t *losingTable) add(stock int, fingerprint []byte) {
	k := t.makeKey(stock, fingerprint)
	if t.compact {
		d := xxhash.Sum64(k)
		if _, ok := t.digests[d]; ok {
			return
		}
		t.digests[d] = struct{}{}
		t.estimatedBytes += compactEntrySize
	} else {
		if _, ok := t.exact[string(k)]; ok {
			return
		}
		t.exact[string(k)] = struct{}{}
		t.estimatedBytes += uint64(len(k)) + exactEntryOverhead
	}

	if !t.warned && t.budgetBytes > 0 && t.estimatedBytes > t.budgetBytes {
		t.warned = true
		log.Warn().
			Int("entries", t.len()).
			Uint64("estimated-bytes", t.estimatedBytes).
			Uint64("budget-bytes", t.budgetBytes).
			Bool("compact", t.compact).
			Msg("losing-states-over-memory-budget")
	}
}

func (t *losingTable) len() int {
	if t.compact {
		return len(t.digests)
	}
	return len(t.exact)
}
