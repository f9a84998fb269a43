package wordle

import (
	"github.com/bits-and-blooms/bitset"
)

// CandidateSet is the answers still consistent with every feedback applied so far.
// A set is never changed after it is built, Filter returns a new smaller set.
// Surviving words keep the order of the original answer list.
type CandidateSet struct {
	universe []Word
	index    map[Word]uint
	live     *bitset.BitSet
	words    []Word // live words in universe order
}

// NewCandidateSet starts with every answer possible
func NewCandidateSet(answers []Word) *CandidateSet {
	universe := make([]Word, len(answers))
	copy(universe, answers)
	index := make(map[Word]uint, len(universe))
	live := bitset.New(uint(len(universe)))
	for i, w := range universe {
		if _, ok := index[w]; !ok {
			index[w] = uint(i)
		}
		live.Set(uint(i))
	}
	return &CandidateSet{
		universe: universe,
		index:    index,
		live:     live,
		words:    universe,
	}
}

func (cs *CandidateSet) Len() int {
	return len(cs.words)
}

// Words returns a copy of the candidates
func (cs *CandidateSet) Words() []Word {
	ret := make([]Word, len(cs.words))
	copy(ret, cs.words)
	return ret
}

// view is the internal slice, callers must not modify it
func (cs *CandidateSet) view() []Word {
	return cs.words
}

func (cs *CandidateSet) Contains(w Word) bool {
	i, ok := cs.index[w]
	if !ok {
		return false
	}
	return cs.live.Test(i)
}

// Filter keeps the candidates that would have produced code if guess was played
func (cs *CandidateSet) Filter(guess Word, code Code) *CandidateSet {
	live := bitset.New(uint(len(cs.universe)))
	words := make([]Word, 0, len(cs.words))
	for i, ok := cs.live.NextSet(0); ok; i, ok = cs.live.NextSet(i + 1) {
		w := cs.universe[i]
		if MatchCode(w, guess) == code {
			live.Set(i)
			words = append(words, w)
		}
	}
	return &CandidateSet{
		universe: cs.universe,
		index:    cs.index,
		live:     live,
		words:    words,
	}
}
