package wordle

import (
	"math"
	"runtime"
	"sort"

	mapset "github.com/deckarep/golang-set"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Pool selects the words considered for the next guess
type Pool int

const (
	// PoolAllowed searches every allowed guess, falls back to the candidates when
	// the advisor is unrestricted
	PoolAllowed Pool = iota
	// PoolCandidates only searches words that could still be the answer
	PoolCandidates
)

func (p Pool) String() string {
	switch p {
	case PoolAllowed:
		return "allowed"
	case PoolCandidates:
		return "candidates"
	default:
		return "unknown"
	}
}

// ParsePool is the inverse of Pool.String
func ParsePool(s string) (Pool, bool) {
	switch s {
	case "allowed":
		return PoolAllowed, true
	case "candidates":
		return PoolCandidates, true
	}
	return PoolAllowed, false
}

// FallbackWord is suggested when no candidate is left, the feedback applied
// does not agree with the answer list
var FallbackWord = Word{'r', 'a', 'i', 's', 'e'}

// scores closer than this are a tie
const tieEpsilon = 1e-9

type WordScore struct {
	Word    Word
	Entropy float64
}

// Advisor picks guesses by expected information and narrows the candidates
// as feedback is applied. It is not safe for concurrent use.
type Advisor struct {
	allowed    []Word
	allowedSet mapset.Set // nil when any word may be guessed
	candidates *CandidateSet
	workers    int
	fallback   Word
	log        zerolog.Logger
}

type Option func(*Advisor)

// WithWorkers sets how many goroutines score the pool, 1 scores in the calling goroutine
func WithWorkers(n int) Option {
	return func(a *Advisor) {
		if n < 1 {
			n = 1
		}
		a.workers = n
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(a *Advisor) {
		a.log = l
	}
}

func WithFallback(w Word) Option {
	return func(a *Advisor) {
		a.fallback = w
	}
}

// NewAdvisor creates an advisor. answers are the possible solutions. allowed
// are the legal guesses, empty means any word is legal.
func NewAdvisor(allowed, answers []Word, opts ...Option) *Advisor {
	a := &Advisor{
		candidates: NewCandidateSet(answers),
		workers:    runtime.GOMAXPROCS(0),
		fallback:   FallbackWord,
		log:        zerolog.Nop(),
	}
	if len(allowed) > 0 {
		a.allowed = make([]Word, len(allowed))
		copy(a.allowed, allowed)
		a.allowedSet = mapset.NewThreadUnsafeSet()
		for _, w := range a.allowed {
			a.allowedSet.Add(w)
		}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Unrestricted is true when there is no allowed list
func (a *Advisor) Unrestricted() bool {
	return a.allowedSet == nil
}

func (a *Advisor) IsValidGuess(w Word) bool {
	if a.Unrestricted() {
		return true
	}
	return a.allowedSet.Contains(w)
}

// Remaining returns a copy of the words that could still be the answer
func (a *Advisor) Remaining() []Word {
	return a.candidates.Words()
}

func (a *Advisor) Candidates() *CandidateSet {
	return a.candidates
}

func (a *Advisor) poolWords(pool Pool) []Word {
	if pool == PoolCandidates || a.Unrestricted() {
		return a.candidates.view()
	}
	return a.allowed
}

// Suggest returns the pool word with the highest entropy against the candidates.
// Ties go to a word that is also a candidate, then to the first word scanned.
// A single candidate is returned without scoring and the fallback word is
// returned when there are no candidates.
func (a *Advisor) Suggest(pool Pool) Word {
	switch a.candidates.Len() {
	case 0:
		a.log.Warn().Str("fallback", a.fallback.String()).Msg("no candidates left")
		return a.fallback
	case 1:
		return a.candidates.view()[0]
	}
	words := a.poolWords(pool)
	scores := a.score(words)
	best := 0
	bestIsCandidate := a.candidates.Contains(words[0])
	for i := 1; i < len(words); i++ {
		h, bestH := scores[i], scores[best]
		if math.Abs(h-bestH) < tieEpsilon {
			if !bestIsCandidate && a.candidates.Contains(words[i]) {
				best, bestIsCandidate = i, true
			}
		} else if h > bestH {
			best, bestIsCandidate = i, a.candidates.Contains(words[i])
		}
	}
	a.log.Debug().
		Str("pool", pool.String()).
		Int("poolSize", len(words)).
		Int("candidates", a.candidates.Len()).
		Str("guess", words[best].String()).
		Float64("entropy", scores[best]).
		Msg("suggest")
	return words[best]
}

// Rank scores every word in the pool, highest entropy first. Equal scores keep pool order.
func (a *Advisor) Rank(pool Pool) []WordScore {
	words := a.poolWords(pool)
	scores := a.score(words)
	ret := make([]WordScore, len(words))
	for i, w := range words {
		ret[i] = WordScore{Word: w, Entropy: scores[i]}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Entropy > ret[j].Entropy
	})
	return ret
}

// score computes the entropy of each word, scores[i] belongs to words[i] no
// matter which worker computed it
func (a *Advisor) score(words []Word) []float64 {
	candidates := a.candidates.view()
	scores := make([]float64, len(words))
	workers := a.workers
	if workers > len(words) {
		workers = len(words)
	}
	if workers <= 1 {
		for i, w := range words {
			scores[i] = Entropy(w, candidates)
		}
		return scores
	}
	chunk := (len(words) + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < len(words); start += chunk {
		start := start // per-iteration copy (go 1.21 loop semantics)
		end := min(start+chunk, len(words))
		g.Go(func() error {
			for i := start; i < end; i++ {
				scores[i] = Entropy(words[i], candidates)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return scores
}

// ApplyFeedback narrows the candidates to the words that give feedback for guess.
// feedback is decoded with FromSymbols.
func (a *Advisor) ApplyFeedback(guess Word, feedback string) error {
	p, err := FromSymbols(feedback)
	if err != nil {
		return err
	}
	a.Filter(guess, p)
	return nil
}

// Filter narrows the candidates with an already decoded pattern
func (a *Advisor) Filter(guess Word, p Pattern) {
	before := a.candidates.Len()
	a.candidates = a.candidates.Filter(guess, Encode(p))
	a.log.Debug().
		Str("guess", guess.String()).
		Str("feedback", p.String()).
		Int("before", before).
		Int("after", a.candidates.Len()).
		Msg("filter")
}
